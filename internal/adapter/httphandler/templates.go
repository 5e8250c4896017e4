package httphandler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pageTemplates = template.Must(
	template.ParseFS(templateFS, "templates/*.gohtml"),
)

func render(w http.ResponseWriter, name string, data any) {
	const op = "httphandler.render"

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render page", "op", op, "page", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
