package config

import (
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/wire"
)

// ReadFormat reads an environment variable as a wire format.
func ReadFormat(ppfmt pp.PP, key string, field *wire.Format) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, field.Describe())
		return true
	}

	format, err := wire.ParseFormat(val)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is invalid: %v", key, val, err)
		return false
	}

	*field = format
	return true
}

// ReadCodes reads the result codes that have special meanings.
func ReadCodes(ppfmt pp.PP, codes *wire.Codes, authFailed *string) bool {
	if !ReadCode(ppfmt, "CODE_SUCCESS", &codes.Success) ||
		!ReadCode(ppfmt, "CODE_PENDING", &codes.Pending) ||
		!ReadCode(ppfmt, "CODE_POLL_TIMEOUT", &codes.PollTimeout) ||
		!ReadCode(ppfmt, "CODE_AUTH_FAILED", authFailed) {
		return false
	}

	named := []struct {
		key  string
		code string
	}{
		{"CODE_SUCCESS", codes.Success},
		{"CODE_PENDING", codes.Pending},
		{"CODE_POLL_TIMEOUT", codes.PollTimeout},
		{"CODE_AUTH_FAILED", *authFailed},
	}
	for i := range named {
		for j := i + 1; j < len(named); j++ {
			if named[i].code == named[j].code {
				ppfmt.Errorf(pp.EmojiUserError, "%s and %s are both %q; they must be different",
					named[i].key, named[j].key, named[i].code)
				return false
			}
		}
	}

	return true
}
