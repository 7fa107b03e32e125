// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/trimlog/internal/ctxlog"
)

// ExitCodeInterrupted is used when a second signal forces the process to exit.
const ExitCodeInterrupted = 130

// ForceExit is called on the second signal.
var ForceExit = os.Exit

// Watch cancels the context on the first signal so line processing stops at the
// next line boundary. A second signal calls ForceExit, for a process blocked in I/O.
// Before the first signal Watch returns when ctx is done; it always returns when
// sigCh is closed.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	done := ctx.Done()
	received := false

	for {
		select {
		case <-done:
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if received {
				ctxlog.Warn(ctx, "watchdog", "detail", "received second signal, forcefully terminating", "signal", sig.String())
				ForceExit(ExitCodeInterrupted)

				return
			}

			ctxlog.Warn(ctx, "watchdog", "detail", "received signal, stopping", "signal", sig.String())

			received = true
			done = nil

			cancel()
		}
	}
}
