package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingService struct {
	runs   atomic.Int32
	err    error
	panics bool
}

func (s *countingService) CapturePayments(ctx context.Context) error {
	s.runs.Add(1)
	if s.panics {
		panic("boom")
	}
	return s.err
}

func TestSweep_Start(t *testing.T) {
	t.Parallel()

	t.Run("should trigger the service on every tick until cancelled", func(t *testing.T) {
		// given
		service := &countingService{}
		sweep := NewSweep(service, 10*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- sweep.Start(ctx) }()

		// when
		assert.Eventually(t, func() bool { return service.runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
		cancel()

		// then
		assert.NoError(t, <-done)
	})

	t.Run("should keep ticking after a failing run", func(t *testing.T) {
		// given
		service := &countingService{err: errors.New("sweep failed")}
		sweep := NewSweep(service, 10*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- sweep.Start(ctx) }()

		// when / then
		assert.Eventually(t, func() bool { return service.runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
		cancel()
		assert.NoError(t, <-done)
	})

	t.Run("should recover from a panicking run", func(t *testing.T) {
		// given
		service := &countingService{panics: true}
		sweep := NewSweep(service, 10*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- sweep.Start(ctx) }()

		// when / then
		assert.Eventually(t, func() bool { return service.runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
		cancel()
		assert.NoError(t, <-done)
	})
}
