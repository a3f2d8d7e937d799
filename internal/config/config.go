// Package config reads and parses configurations.
package config

import (
	"time"

	"github.com/favonia/regrobot/internal/api"
	"github.com/favonia/regrobot/internal/auth"
	"github.com/favonia/regrobot/internal/poller"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/registrar"
	"github.com/favonia/regrobot/internal/wire"
)

// Config holds the configuration of the client.
type Config struct {
	Endpoint       string
	Format         wire.Format
	Credentials    auth.Credentials
	RequestTimeout time.Duration
	Poll           poller.Config
	// CacheExpiration of zero turns off the cache of domain lists.
	CacheExpiration time.Duration
	Codes           wire.Codes
	AuthFailedCode  string
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Endpoint:        "",
		Format:          wire.Flat,
		Credentials:     auth.Credentials{Identity: "", Secret: ""},
		RequestTimeout:  api.DefaultTimeout,
		Poll:            poller.DefaultConfig(),
		CacheExpiration: registrar.DefaultCacheExpiration,
		Codes:           wire.DefaultCodes(),
		AuthFailedCode:  registrar.DefaultAuthFailedCode,
	}
}

// ReadEnv reads the environment variables and updates the configuration.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadRequiredString(ppfmt, "REGISTRAR_ENDPOINT", &c.Endpoint) ||
		!ReadFormat(ppfmt, "REGISTRAR_FORMAT", &c.Format) ||
		!ReadCredentials(ppfmt, &c.Credentials) ||
		!ReadNonnegDuration(ppfmt, "REQUEST_TIMEOUT", &c.RequestTimeout) ||
		!ReadPositiveInt(ppfmt, "POLL_MAX_ATTEMPTS", &c.Poll.MaxAttempts) ||
		!ReadNonnegDuration(ppfmt, "POLL_INTERVAL", &c.Poll.Interval) ||
		!ReadBool(ppfmt, "POLL_VERBOSE", &c.Poll.Verbose) ||
		!ReadNonnegDuration(ppfmt, "CACHE_EXPIRATION", &c.CacheExpiration) ||
		!ReadCodes(ppfmt, &c.Codes, &c.AuthFailedCode) {
		return false
	}

	return true
}

// NewClient creates the transport.
func (c *Config) NewClient(ppfmt pp.PP) (*api.Client, bool) {
	return api.New(ppfmt, api.Options{
		Endpoint:    c.Endpoint,
		Format:      c.Format,
		Credentials: c.Credentials,
		Timeout:     c.RequestTimeout,
		Doer:        nil,
		Now:         nil,
	})
}

// NewPoller creates a poller that calls the caller.
func (c *Config) NewPoller(caller api.Caller) *poller.Poller {
	return poller.New(caller, c.Codes, c.Poll)
}

// NewHandle creates the transport, the poller, and the registrar handle over them.
func (c *Config) NewHandle(ppfmt pp.PP) (*registrar.Handle, bool) {
	client, ok := c.NewClient(ppfmt)
	if !ok {
		return nil, false
	}

	return registrar.New(client, c.NewPoller(client), registrar.Options{
		Codes:           c.Codes,
		AuthFailedCode:  c.AuthFailedCode,
		CacheExpiration: c.CacheExpiration,
	}), true
}
