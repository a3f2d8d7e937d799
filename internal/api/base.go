// Package api talks to the registrar over HTTP(S).
package api

import (
	"context"
	"net/http"

	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/tree"
	"github.com/favonia/regrobot/internal/wire"
)

//go:generate mockgen -destination=../mocks/mock_api.go -package=mocks . Caller,Doer

// Caller sends one command and returns the decoded result.
type Caller interface {
	// Call sends the command with the parameter tree, which must be null
	// (no parameters at all) or an object. It never retries.
	Call(ctx context.Context, ppfmt pp.PP, command string, params tree.Value) (wire.Response, error)
}

// Doer executes HTTP requests. [*http.Client] is a Doer.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
