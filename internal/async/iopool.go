package async

import (
	"context"
	"log/slog"
	"sync"
)

// IOPool bounds the number of concurrent blocking file operations so a
// burst of uploads cannot exhaust OS threads.
type IOPool struct {
	sem    chan struct{}
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewIOPool returns a pool allowing at most workers concurrent calls.
func NewIOPool(workers int, logger *slog.Logger) *IOPool {
	if workers < 1 {
		workers = 1
	}
	return &IOPool{
		sem:    make(chan struct{}, workers),
		logger: logger,
	}
}

// Do runs fn once a slot is free, waiting on ctx for one. The caller's
// error is returned unchanged; ctx expiry while waiting returns ctx.Err().
func (p *IOPool) Do(ctx context.Context, fn func() error) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return context.Canceled
	}
	p.wg.Add(1)
	p.mu.Unlock()
	defer p.wg.Done()

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.sem }()
	return fn()
}

// InFlight is the number of operations currently holding a slot.
func (p *IOPool) InFlight() int { return len(p.sem) }

// Shutdown waits for in-flight operations to finish or ctx to end.
// Subsequent Do calls fail immediately.
func (p *IOPool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("io pool shutdown interrupted by context")
	case <-done:
	}
}
