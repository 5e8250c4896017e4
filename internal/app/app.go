package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/twmb/franz-go/pkg/sr"

	"github.com/evoshop/storefront/config"
	"github.com/evoshop/storefront/internal/adapter/catalog"
	"github.com/evoshop/storefront/internal/adapter/httphandler"
	"github.com/evoshop/storefront/internal/adapter/kafka"
	"github.com/evoshop/storefront/internal/adapter/storage"
	"github.com/evoshop/storefront/internal/core/port"
	"github.com/evoshop/storefront/internal/core/service"
	"github.com/evoshop/storefront/pkg/schema"
)

type analytics struct {
	producer  *kafka.CartEventsProducer
	processor *kafka.CheckoutCounterProcessor
	view      *kafka.CheckoutCountsView
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	repo       port.CartRepository
	sqlRepo    *storage.SQLRepository
	analytics  analytics
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initRepository()
	app.initAnalytics()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initRepository() {
	const op = "App.initRepository"

	if app.cfg.SQLDB != "" {
		repo, err := storage.NewSQLRepository(app.ctx, app.cfg.SQLDB, app.cfg.ClientID)
		if err != nil {
			app.fallDown(op, err)
		}
		app.sqlRepo = &repo
		app.repo = repo
		return
	}

	repo, err := storage.NewFileRepository(app.cfg.CartStoragePath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.repo = repo
}

// initAnalytics wires the cart events pipeline. Without seed brokers the
// storefront runs standalone: no producer, no checkout counter.
func (app *App) initAnalytics() {
	const op = "App.initAnalytics"

	if len(app.cfg.Broker.SeedBrokers) == 0 {
		slog.Info("analytics is not configured, running standalone")
		return
	}

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	subject := app.cfg.Broker.Topics.CartEvents + "-value"
	cartEventSerde, err := schema.NewSerdeCartEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewCartEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx, app.cfg.Broker.SeedBrokers, app.cfg.Broker.Topics.CartEvents,
		),
		kafka.ProducerEncoderOpt(cartEventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	processor, err := kafka.NewCheckoutCounterProcessor(
		app.cfg.Broker.SeedBrokers,
		app.cfg.Broker.Topics.CartEvents,
		app.cfg.Broker.Consumers.CheckoutCounterGroup,
		cartEventSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	view, err := kafka.NewCheckoutCountsView(
		app.cfg.Broker.SeedBrokers,
		app.cfg.Broker.Consumers.CheckoutCounterGroup,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.analytics = analytics{producer: &producer, processor: processor, view: view}
}

func (app *App) initCoreService() {
	var events port.CartEventsProducer
	if app.analytics.producer != nil {
		events = *app.analytics.producer
	}
	app.service = service.New(app.ctx, app.cfg.ClientID, app.repo, events)
}

func (app *App) initInboundAdapters() {
	loader := catalog.NewLoader(catalog.NewClient(app.cfg.CatalogURL))

	mux := http.NewServeMux()
	httphandler.RegisterPages(mux, app.service, loader)
	httphandler.RegisterCart(mux, app.service)

	var counts port.CheckoutCounts
	if app.analytics.view != nil {
		counts = app.analytics.view
	}
	httphandler.RegisterCheckouts(mux, counts, app.cfg.ClientID)

	handler := httphandler.WithToasts(
		app.service.Toasts(), httphandler.LogRequests(mux),
	)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	if app.analytics.processor != nil {
		go app.analytics.processor.Run(app.ctx)
	}
	if app.analytics.view != nil {
		go app.analytics.view.Run(app.ctx)
	}

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	if app.analytics.processor != nil {
		app.analytics.processor.Close()
	}
	if app.analytics.producer != nil {
		app.analytics.producer.Close()
	}
	if app.sqlRepo != nil {
		app.sqlRepo.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
