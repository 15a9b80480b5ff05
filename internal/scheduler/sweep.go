package scheduler

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"
)

// CaptureService runs one capture sweep over all eligible orders.
type CaptureService interface {
	CapturePayments(ctx context.Context) error
}

// Sweep periodically triggers the capture service, replacing a cron-style
// scheduled task.
type Sweep struct {
	service  CaptureService
	interval time.Duration
}

func NewSweep(service CaptureService, interval time.Duration) *Sweep {
	return &Sweep{service: service, interval: interval}
}

// Start blocks until the context is cancelled. A failing or panicking run
// never stops the ticker; the next interval tries again.
func (s *Sweep) Start(ctx context.Context) error {
	slog.Info("capture sweep started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("capture sweep stopped")
			return nil
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *Sweep) run(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("capture sweep panic recovered",
				"panic", rec, "stack", string(debug.Stack()))
		}
	}()

	if err := s.service.CapturePayments(ctx); err != nil {
		slog.ErrorContext(ctx, "capture sweep failed", "error", err)
	}
}
