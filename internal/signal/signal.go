// Package signal implements the handling of signals and interruptible waiting.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/favonia/regrobot/internal/pp"
)

// Signals contains the signals that cancel the running command.
//
//nolint:gochecknoglobals
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// NotifyContext gives a copy of the context that will be canceled by signals in [Signals].
func NotifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, Signals...)
}

// Sleep waits for a period of time. It returns false if the context is done first.
func Sleep(ctx context.Context, ppfmt pp.PP, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		ppfmt.Noticef(pp.EmojiSignal, "Stopped waiting: %v", context.Cause(ctx))
		return false
	case <-timer.C:
		return true
	}
}
