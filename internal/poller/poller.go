// Package poller re-issues a command until its asynchronous effect is observed.
package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/favonia/regrobot/internal/api"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/signal"
	"github.com/favonia/regrobot/internal/tree"
	"github.com/favonia/regrobot/internal/wire"
)

// The two ways polling can time out. Both match [api.ErrTimeout].
//
//nolint:gochecknoglobals
var (
	// ErrServerTimeout means the registrar itself gave up waiting.
	ErrServerTimeout = fmt.Errorf("%w declared by the registrar", api.ErrTimeout)
	// ErrAttemptsExhausted means the predicate never held within the allowed attempts.
	ErrAttemptsExhausted = fmt.Errorf("%w: polling attempts exhausted", api.ErrTimeout)
)

// Config is the policy of a [Poller].
type Config struct {
	// MaxAttempts is the number of calls, including the first one. Values below 1 mean 1.
	MaxAttempts int
	// Interval is the fixed delay between two calls.
	Interval time.Duration
	// Verbose turns on one message per attempt.
	Verbose bool
}

// DefaultConfig returns the default policy.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 10,
		Interval:    5 * time.Second,
		Verbose:     false,
	}
}

// Predicate decides whether a response shows the desired state. It may issue
// further lookups through ctx-aware calls of its own.
type Predicate func(ctx context.Context, resp wire.Response) bool

// SuccessPredicate holds exactly when the result code is the success code.
func SuccessPredicate(codes wire.Codes) Predicate {
	return func(_ context.Context, resp wire.Response) bool {
		return codes.Classify(resp.Code) == wire.ClassSuccess
	}
}

// Sleeper waits between attempts and returns false if the wait was interrupted.
type Sleeper func(ctx context.Context, ppfmt pp.PP, d time.Duration) bool

// Poller drives the polling loop. A Poller holds no mutable state.
type Poller struct {
	caller api.Caller
	codes  wire.Codes
	config Config
	sleep  Sleeper
}

// New creates a [Poller].
func New(caller api.Caller, codes wire.Codes, config Config) *Poller {
	return &Poller{
		caller: caller,
		codes:  codes,
		config: config,
		sleep:  signal.Sleep,
	}
}

// WithSleeper returns a copy of the poller that waits with s.
func (p *Poller) WithSleeper(s Sleeper) *Poller {
	q := *p
	q.sleep = s
	return &q
}

// Config returns the policy of the poller.
func (p *Poller) Config() Config { return p.config }

func (p *Poller) maxAttempts() int {
	return max(p.config.MaxAttempts, 1)
}

// Poll calls the command until pred holds. A nil pred means [SuccessPredicate].
//
// The last response is returned together with the error whenever there is one,
// except when the call itself fails; transport errors are never retried.
func (p *Poller) Poll(ctx context.Context, ppfmt pp.PP,
	command string, params tree.Value, pred Predicate,
) (wire.Response, error) {
	if pred == nil {
		pred = SuccessPredicate(p.codes)
	}
	attempts := p.maxAttempts()

	for attempt := 1; ; attempt++ {
		resp, err := p.caller.Call(ctx, ppfmt, command, params)
		if err != nil {
			return wire.Response{}, err //nolint:exhaustruct
		}

		if p.config.Verbose {
			ppfmt.Infof(pp.EmojiResponse, "Attempt %d/%d of %q: %s", attempt, attempts, command, resp.Describe())
		}

		if p.codes.IsServerTimeout(resp) {
			ppfmt.Warningf(pp.EmojiTimeout, "The registrar gave up waiting for %q: %s", command, resp.Describe())
			return resp, fmt.Errorf("%q: %w (%s)", command, ErrServerTimeout, resp.Describe())
		}

		if pred(ctx, resp) {
			return resp, nil
		}

		if attempt >= attempts {
			ppfmt.Warningf(pp.EmojiTimeout, "The command %q did not take effect after %d attempts", command, attempts)
			ppfmt.Hintf(pp.HintPollTimeouts,
				"If the registrar is slow, consider larger POLL_MAX_ATTEMPTS or POLL_INTERVAL (currently %d and %v)",
				attempts, p.config.Interval)
			return resp, fmt.Errorf("%q: %w (%d attempts)", command, ErrAttemptsExhausted, attempts)
		}

		if p.config.Verbose {
			ppfmt.Infof(pp.EmojiRepeatOnce, "Trying again in %v . . .", p.config.Interval)
		}

		if !p.sleep(ctx, ppfmt, p.config.Interval) {
			cause := context.Cause(ctx)
			if cause == nil {
				cause = context.Canceled
			}
			return resp, fmt.Errorf("%q: polling interrupted: %w", command, cause)
		}
	}
}
