package config

import (
	"fmt"

	"github.com/favonia/regrobot/internal/pp"
)

const itemTitleWidth = 24

// Print prints the Config on the screen. The password is never shown.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Registrar:")
	item("Endpoint:", "%s", c.Endpoint)
	item("Wire format:", "%s", c.Format.Describe())
	item("User:", "%s", c.Credentials.Describe())

	section("Timeouts and polling:")
	item("Request timeout:", "%v", c.RequestTimeout)
	item("Poll attempts:", "%d", c.Poll.MaxAttempts)
	item("Poll interval:", "%v", c.Poll.Interval)
	item("Show poll progress?", "%t", c.Poll.Verbose)
	if c.CacheExpiration > 0 {
		item("Cache expiration:", "%v", c.CacheExpiration)
	} else {
		item("Cache expiration:", "0s (caching disabled)")
	}

	section("Result codes:")
	item("Success:", "%s", c.Codes.Success)
	item("Pending:", "%s", c.Codes.Pending)
	item("Poll timeout:", "%s", c.Codes.PollTimeout)
	item("Authentication failed:", "%s", c.AuthFailedCode)
}
