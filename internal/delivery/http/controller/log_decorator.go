package controller

import (
	"context"
	"log/slog"

	"authcore/internal/domain/entity"
	"authcore/internal/domain/repository"
	"authcore/internal/errors"
)

// LogDecorator records the diagnostic trace of server-error responses.
// It never changes the response it wraps.
type LogDecorator struct {
	errorLogRepo repository.ErrorLogRepository
	logger       *slog.Logger
}

// NewLogDecorator is the constructor for LogDecorator, injected by Fx.
func NewLogDecorator(errorLogRepo repository.ErrorLogRepository, logger *slog.Logger) *LogDecorator {
	return &LogDecorator{
		errorLogRepo: errorLogRepo,
		logger:       logger,
	}
}

// Wrap decorates next. It satisfies Middleware so it can sit in a Chain.
func (d *LogDecorator) Wrap(next Controller) Controller {
	return Func(func(ctx context.Context, req *Request) *Response {
		res := next.Handle(ctx, req)
		if res != nil && res.IsServerError() {
			d.record(ctx, res.Err)
		}

		return res
	})
}

// record is best-effort: a failing error log is reported through slog and swallowed.
func (d *LogDecorator) record(ctx context.Context, cause error) {
	trace := errors.StackTrace(cause)
	if trace == "" {
		trace = "server error without cause"
	}

	// The client may already be gone; the log entry should still be written.
	if err := d.errorLogRepo.Record(context.WithoutCancel(ctx), &entity.ErrorLog{Stack: trace}); err != nil {
		d.logger.ErrorContext(ctx, "Failed to record error log",
			slog.Any("error", err),
			slog.Any("cause", cause),
		)
	}
}
