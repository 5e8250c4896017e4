package domain

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient user-facing notification. It lives in the queue
// from Show until Dismiss.
type Toast struct {
	ID      int64
	Message string
	Kind    ToastKind
}
