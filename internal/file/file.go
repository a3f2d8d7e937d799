// Package file reads secrets from files.
package file

import (
	"bytes"

	"github.com/spf13/afero"

	"github.com/favonia/regrobot/internal/pp"
)

// FS is the file system used to read files.
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// ReadString reads a file and trims the surrounding whitespace. It warns when the
// file can be read or written by others.
func ReadString(ppfmt pp.PP, path string) (string, bool) {
	info, err := FS.Stat(path)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}

	if info.IsDir() {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to read %q: it is a directory", path)
		return "", false
	}

	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		ppfmt.Warningf(pp.EmojiUserWarning, "The file %q is accessible by others (permissions %v)", path, perm)
	}

	body, err := afero.ReadFile(FS, path)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}

	return string(bytes.TrimSpace(body)), true
}
