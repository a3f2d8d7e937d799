package config

import (
	"github.com/favonia/regrobot/internal/auth"
	"github.com/favonia/regrobot/internal/file"
	"github.com/favonia/regrobot/internal/pp"
)

// Keys of environment variables.
const (
	UserKey         string = "REGISTRAR_USER"
	PasswordKey     string = "REGISTRAR_PASSWORD"
	PasswordFileKey string = "REGISTRAR_PASSWORD_FILE"
)

func readPassword(ppfmt pp.PP) (string, bool) {
	password := Getenv(PasswordKey)
	passwordFile := Getenv(PasswordFileKey)

	switch {
	case password != "" && passwordFile != "":
		ppfmt.Errorf(pp.EmojiUserError, "Cannot have both %s and %s set", PasswordKey, PasswordFileKey)
		return "", false

	case password != "":
		// foolproof check: the sample value in README
		if password == "YOUR-REGISTRAR-PASSWORD" {
			ppfmt.Errorf(pp.EmojiUserError, "You need to provide a real password as %s", PasswordKey)
			return "", false
		}
		return password, true

	case passwordFile != "":
		password, ok := file.ReadString(ppfmt, passwordFile)
		if !ok {
			return "", false
		}
		if password == "" {
			ppfmt.Errorf(pp.EmojiUserError, "The file specified by %s does not contain a password", PasswordFileKey)
			return "", false
		}
		return password, true

	default:
		ppfmt.Errorf(pp.EmojiUserError, "Needs either %s or %s", PasswordKey, PasswordFileKey)
		return "", false
	}
}

// ReadCredentials reads REGISTRAR_USER together with either REGISTRAR_PASSWORD
// or REGISTRAR_PASSWORD_FILE.
func ReadCredentials(ppfmt pp.PP, field *auth.Credentials) bool {
	var user string
	if !ReadRequiredString(ppfmt, UserKey, &user) {
		return false
	}

	password, ok := readPassword(ppfmt)
	if !ok {
		return false
	}

	*field = auth.Credentials{Identity: user, Secret: password}
	return true
}
