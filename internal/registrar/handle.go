// Package registrar implements the everyday registrar commands on top of a [api.Caller].
package registrar

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/favonia/regrobot/internal/api"
	"github.com/favonia/regrobot/internal/poller"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/tree"
	"github.com/favonia/regrobot/internal/wire"
)

// DefaultAuthFailedCode is the result code for rejected credentials.
const DefaultAuthFailedCode = "2200"

// DefaultCacheExpiration is the default lifetime of cached lookups.
const DefaultCacheExpiration = 6 * time.Hour

// Commands understood by the registrar.
const (
	CommandDomainInfo       = "domain.info"
	CommandDomainList       = "domain.list"
	CommandDomainUpdate     = "domain.update"
	CommandNameserverInfo   = "nameserver.info"
	CommandNameserverCreate = "nameserver.create"
	CommandRecordCreate     = "nameserver.createRecord"
	CommandRecordDelete     = "nameserver.deleteRecord"
)

// Options are the settings of a [Handle].
type Options struct {
	Codes          wire.Codes
	AuthFailedCode string
	// CacheExpiration is the lifetime of cached lookups. Zero disables the cache.
	CacheExpiration time.Duration
}

// DefaultOptions returns the default settings.
func DefaultOptions() Options {
	return Options{
		Codes:           wire.DefaultCodes(),
		AuthFailedCode:  DefaultAuthFailedCode,
		CacheExpiration: DefaultCacheExpiration,
	}
}

type cache struct {
	listDomains *ttlcache.Cache[struct{}, []Domain]
}

// Handle runs registrar commands. Lookups of the domain list are cached.
type Handle struct {
	caller  api.Caller
	poller  *poller.Poller
	options Options
	cache   cache
}

func newCache[K comparable, V any](cacheExpiration time.Duration) *ttlcache.Cache[K, V] {
	cache := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[K, V](),
		ttlcache.WithTTL[K, V](cacheExpiration),
	)

	go cache.Start()

	return cache
}

// New creates a [Handle]. The poller should use the same caller.
func New(caller api.Caller, p *poller.Poller, options Options) *Handle {
	return &Handle{
		caller:  caller,
		poller:  p,
		options: options,
		cache: cache{
			listDomains: newCache[struct{}, []Domain](options.CacheExpiration),
		},
	}
}

func (h *Handle) caching() bool { return h.options.CacheExpiration > 0 }

// FlushCache flushes the cached lookups.
func (h *Handle) FlushCache() {
	h.cache.listDomains.DeleteAll()
}

// Close stops the background cleanup of the cache.
func (h *Handle) Close() {
	h.cache.listDomains.Stop()
}

// check interprets the result code of a response. Success is always accepted;
// the classes in accepted are accepted too.
func (h *Handle) check(ppfmt pp.PP, command string, resp wire.Response, accepted ...wire.Class) error {
	if resp.Code == h.options.AuthFailedCode {
		ppfmt.Errorf(pp.EmojiUserError, "The registrar rejected the credentials: %s", resp.Describe())
		ppfmt.Hintf(pp.HintAuthentication,
			"Double check REGISTRAR_USER and REGISTRAR_PASSWORD; "+
				"the tokens depend on the current UTC hour, so the system clock must also be accurate")
		return api.NewError(api.ErrAuthentication, command, &ResultError{Command: command, Response: resp})
	}

	class := h.options.Codes.Classify(resp.Code)
	if class == wire.ClassSuccess {
		return nil
	}
	for _, c := range accepted {
		if class == c {
			return nil
		}
	}

	ppfmt.Errorf(pp.EmojiError, "The command %q failed: %s", command, resp.Describe())
	return &ResultError{Command: command, Response: resp}
}

// call sends one command and checks its result code.
func (h *Handle) call(ctx context.Context, ppfmt pp.PP, command string, params tree.Value,
	accepted ...wire.Class,
) (wire.Response, error) {
	resp, err := h.caller.Call(ctx, ppfmt, command, params)
	if err != nil {
		return resp, err
	}

	return resp, h.check(ppfmt, command, resp, accepted...)
}

// Call sends an arbitrary command and checks its result code.
func (h *Handle) Call(ctx context.Context, ppfmt pp.PP, command string, params tree.Value) (wire.Response, error) {
	return h.call(ctx, ppfmt, command, params, wire.ClassPending)
}

// Poll sends an arbitrary command until its result code is the success code.
// Rejected credentials stop the polling immediately.
func (h *Handle) Poll(ctx context.Context, ppfmt pp.PP, command string, params tree.Value) (wire.Response, error) {
	succeeded := poller.SuccessPredicate(h.options.Codes)
	resp, err := h.poller.Poll(ctx, ppfmt, command, params,
		func(ctx context.Context, resp wire.Response) bool {
			return resp.Code == h.options.AuthFailedCode || succeeded(ctx, resp)
		})
	if err != nil {
		return resp, err
	}

	return resp, h.check(ppfmt, command, resp)
}
