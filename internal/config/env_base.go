package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/favonia/regrobot/internal/pp"
)

// Getenv reads an environment variable and trim the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ReadString reads an environment variable as a plain string.
func ReadString(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	*field = val
	return true
}

// ReadRequiredString reads an environment variable that must be set.
func ReadRequiredString(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Errorf(pp.EmojiUserError, "%s is not set", key)
		return false
	}

	*field = val
	return true
}

// ReadCode reads an environment variable as a result code, which must not contain spaces.
func ReadCode(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	switch {
	case val == "":
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	case strings.ContainsFunc(val, unicode.IsSpace):
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) contains spaces", key, val)
		return false
	default:
		*field = val
		return true
	}
}

// ReadBool reads an environment variable as a boolean value.
func ReadBool(ppfmt pp.PP, key string, field *bool) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%t", key, *field)
		return true
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*field = b
	return true
}

// ReadNonnegInt reads an environment variable as a non-negative integer.
func ReadNonnegInt(ppfmt pp.PP, key string, field *int) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	i, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false

	case i < 0:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%d) is negative", key, i)
		return false

	default:
		*field = i
		return true
	}
}

// ReadPositiveInt reads an environment variable as a positive integer.
func ReadPositiveInt(ppfmt pp.PP, key string, field *int) bool {
	i := *field
	if !ReadNonnegInt(ppfmt, key, &i) {
		return false
	}

	if i == 0 {
		ppfmt.Errorf(pp.EmojiUserError, "%s (%d) is not positive", key, i)
		return false
	}

	*field = i
	return true
}

// ReadNonnegDuration reads an environment variable and parses it as a time duration.
func ReadNonnegDuration(ppfmt pp.PP, key string, field *time.Duration) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%v", key, *field)
		return true
	}

	t, err := time.ParseDuration(val)

	switch {
	case err != nil:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, val, err)
		return false
	case t < 0:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%v) is negative", key, t)
		return false
	}

	*field = t
	return true
}
