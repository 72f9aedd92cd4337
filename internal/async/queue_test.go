package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func TestQueueRejectsAtCapacity(t *testing.T) {
	q := NewQueue[int](2)

	if !q.TryEnqueue(1) || !q.TryEnqueue(2) {
		t.Fatal("enqueue under capacity failed")
	}
	if q.TryEnqueue(3) {
		t.Fatal("enqueue at capacity succeeded, want rejection")
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}

	// Draining one slot makes room again.
	if v, ok := q.TryDequeue(); !ok || v != 1 {
		t.Fatalf("TryDequeue = (%d, %v), want (1, true)", v, ok)
	}
	if !q.TryEnqueue(3) {
		t.Fatal("enqueue after drain failed")
	}
}

func TestQueueDequeueStopsOnDone(t *testing.T) {
	q := NewQueue[int](1)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	var ok bool
	go func() {
		defer wg.Done()
		_, ok = q.Dequeue(done)
	}()
	close(done)
	wg.Wait()
	if ok {
		t.Fatal("Dequeue returned ok after done closed")
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[string](3)
	for _, s := range []string{"a", "b", "c"} {
		q.TryEnqueue(s)
	}
	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.TryDequeue()
		if !ok || got != want {
			t.Fatalf("TryDequeue = (%q, %v), want (%q, true)", got, ok, want)
		}
	}
}

func TestBufferNeverRejects(t *testing.T) {
	b := NewBuffer[int]()
	for i := 0; i < 1000; i++ {
		b.Enqueue(i)
	}
	if b.Len() != 1000 {
		t.Fatalf("Len = %d, want 1000", b.Len())
	}
	for i := 0; i < 1000; i++ {
		got, ok := b.TryDequeue()
		if !ok || got != i {
			t.Fatalf("TryDequeue = (%d, %v), want (%d, true)", got, ok, i)
		}
	}
	if _, ok := b.TryDequeue(); ok {
		t.Fatal("TryDequeue on empty buffer returned ok")
	}
}

func TestIOPoolBoundsConcurrency(t *testing.T) {
	pool := NewIOPool(2, slog.Default())

	var mu sync.Mutex
	inFlight, peak := 0, 0
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.Do(context.Background(), func() error {
				mu.Lock()
				inFlight++
				if inFlight > peak {
					peak = inFlight
				}
				mu.Unlock()
				time.Sleep(5 * time.Millisecond)
				mu.Lock()
				inFlight--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	if peak > 2 {
		t.Errorf("peak concurrency %d, want at most 2", peak)
	}
}

func TestIOPoolReturnsFnError(t *testing.T) {
	pool := NewIOPool(1, slog.Default())
	sentinel := errors.New("disk full")
	if err := pool.Do(context.Background(), func() error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("Do returned %v, want %v", err, sentinel)
	}
}

func TestIOPoolShutdownStopsNewWork(t *testing.T) {
	pool := NewIOPool(1, slog.Default())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	pool.Shutdown(ctx)
	if err := pool.Do(context.Background(), func() error { return nil }); err == nil {
		t.Fatal("Do after Shutdown succeeded, want error")
	}
}
