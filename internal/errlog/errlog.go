// Package errlog wraps handlers so that every failure is logged on its way
// out. The wrapped handler returns exactly what the inner one returned: the
// error value is never replaced, wrapped or swallowed.
package errlog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// Func is a context-aware operation. Operations without input use struct{}.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// HandlerFunc is an HTTP handler that reports failure instead of rendering it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap returns fn with failure logging added.
func Wrap[In, Out any](logger *slog.Logger, name string, fn Func[In, Out]) Func[In, Out] {
	return func(ctx context.Context, in In) (out Out, err error) {
		defer logPanic(ctx, logger, name)

		out, err = fn(ctx, in)
		if err != nil {
			logFailure(ctx, logger, name, err)
		}
		return out, err
	}
}

// Handler returns fn with failure logging added.
func Handler(logger *slog.Logger, name string, fn HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		defer logPanic(r.Context(), logger, name)

		err := fn(w, r)
		if err != nil {
			logFailure(r.Context(), logger, name, err)
		}
		return err
	}
}

func logFailure(ctx context.Context, logger *slog.Logger, name string, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.ErrorContext(ctx, "handler failed",
		slog.String("handler", name),
		slog.String("error_kind", Kind(err)),
		slog.String("error", err.Error()),
	)
}

// logPanic must be deferred directly; it re-panics with the original value.
func logPanic(ctx context.Context, logger *slog.Logger, name string) {
	p := recover()
	if p == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.ErrorContext(ctx, "handler failed",
		slog.String("handler", name),
		slog.String("error_kind", "panic"),
		slog.String("error", fmt.Sprint(p)),
	)
	panic(p)
}

// Kind names the concrete type of err, e.g. "*apperrors.NotFoundError".
func Kind(err error) string {
	return fmt.Sprintf("%T", err)
}
