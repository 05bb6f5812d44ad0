package safego

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/valuepicker/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

var log = logging.For("safego")

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

// Run executes fn and converts a panic into a logged error. It reports
// whether fn panicked. Runtime-fatal errors (e.g. concurrent map writes) are
// not recoverable.
func Run(name string, fn func()) (panicked bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		panicked = true
		label := name
		if label == "" {
			label = "goroutine"
		}
		stack := debug.Stack()
		log.Error("panic in %s: %v\n%s", label, r, stack)
		panicHandlerMu.RLock()
		handler := panicHandler
		panicHandlerMu.RUnlock()
		if handler != nil {
			func() {
				defer func() { _ = recover() }()
				handler(label, r, stack)
			}()
		}
	}()
	fn()
	return false
}

// Go runs fn in a new goroutine with panic recovery. The returned channel is
// closed when fn returns or panics.
func Go(name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Run(name, fn)
	}()
	return done
}

// GoContext is Go for functions that run until ctx is cancelled.
func GoContext(ctx context.Context, name string, fn func(context.Context)) <-chan struct{} {
	return Go(name, func() { fn(ctx) })
}
