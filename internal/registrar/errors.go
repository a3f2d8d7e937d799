package registrar

import (
	"errors"
	"fmt"

	"github.com/favonia/regrobot/internal/wire"
)

// ErrUnexpectedData means a successful response did not contain what the command promises.
var ErrUnexpectedData = errors.New("unexpected data in the response")

// ResultError is a response whose result code means failure.
type ResultError struct {
	Command  string
	Response wire.Response
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s returned %s", e.Command, e.Response.Describe())
}
