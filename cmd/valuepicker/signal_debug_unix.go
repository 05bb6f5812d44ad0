//go:build !windows

package main

import (
	"bytes"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/andyrewlee/valuepicker/internal/logging"
	"github.com/andyrewlee/valuepicker/internal/safego"
)

// startSignalDebug registers a SIGUSR1 handler that logs a goroutine dump.
func startSignalDebug() {
	if !signalDebugEnabled(version, os.Getenv("VALUEPICKER_DEBUG_SIGNALS")) {
		return
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1)
	safego.Go("signal-debug", func() {
		for range ch {
			var buf bytes.Buffer
			if err := pprof.Lookup("goroutine").WriteTo(&buf, 2); err != nil {
				logging.Warn("Failed to write goroutine dump: %v", err)
				continue
			}
			logging.Warn("GOROUTINE DUMP\n%s", buf.String())
		}
	})
}
