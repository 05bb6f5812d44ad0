package safego

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func waitClosed(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for goroutine")
	}
}

func TestRunNoPanic(t *testing.T) {
	var called bool
	if Run("test", func() { called = true }) {
		t.Fatal("Run reported a panic")
	}
	if !called {
		t.Fatal("function was not called")
	}
}

func TestRunCallsPanicHandler(t *testing.T) {
	var (
		mu    sync.Mutex
		names []string
		value any
	)
	SetPanicHandler(func(name string, recovered any, stack []byte) {
		mu.Lock()
		names = append(names, name)
		value = recovered
		mu.Unlock()
	})
	defer SetPanicHandler(nil)

	if !Run("watcher", func() { panic("oops") }) {
		t.Fatal("Run did not report the panic")
	}
	Run("", func() { panic("again") })

	mu.Lock()
	defer mu.Unlock()
	if len(names) != 2 || names[0] != "watcher" || names[1] != "goroutine" {
		t.Fatalf("handler names = %v", names)
	}
	if value != "again" {
		t.Fatalf("recovered value = %v", value)
	}
}

func TestRunSurvivesPanickingHandler(t *testing.T) {
	SetPanicHandler(func(string, any, []byte) { panic("handler panic") })
	defer SetPanicHandler(nil)

	Run("test", func() { panic("original panic") })
}

func TestGoClosesDoneAfterPanic(t *testing.T) {
	var handled int32
	SetPanicHandler(func(string, any, []byte) { atomic.StoreInt32(&handled, 1) })
	defer SetPanicHandler(nil)

	waitClosed(t, Go("test-panic", func() { panic("goroutine panic") }))
	if atomic.LoadInt32(&handled) != 1 {
		t.Fatal("panic handler was not called")
	}
}

func TestGoContextStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := GoContext(ctx, "loop", func(ctx context.Context) {
		<-ctx.Done()
	})
	cancel()
	waitClosed(t, done)
}

func TestSetPanicHandlerConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetPanicHandler(func(string, any, []byte) {})
		}()
		go func() {
			defer wg.Done()
			Run("test", func() { panic("test") })
		}()
	}
	wg.Wait()
	SetPanicHandler(nil)
}
