package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/favonia/regrobot/internal/auth"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/tree"
	"github.com/favonia/regrobot/internal/wire"
)

// DefaultTimeout is the default time limit of one command.
const DefaultTimeout = 30 * time.Second

// Options are the settings of a [Client].
type Options struct {
	// Endpoint is the base URL; the path of the wire format is appended to it.
	Endpoint    string
	Format      wire.Format
	Credentials auth.Credentials
	// Timeout limits each call, including reading the response. Zero means no limit
	// other than the one of the context.
	Timeout time.Duration
	// Doer sends the requests. Nil means a new [http.Client].
	Doer Doer
	// Now is the clock used for signing. Nil means [time.Now].
	Now func() time.Time
}

// Client implements [Caller] over HTTP(S). It is safe for concurrent use
// as long as its [Doer] is.
type Client struct {
	url         string
	format      wire.Format
	credentials auth.Credentials
	timeout     time.Duration
	doer        Doer
	now         func() time.Time
}

// New validates the options and creates a [Client].
func New(ppfmt pp.PP, opts Options) (*Client, bool) {
	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the registrar endpoint %q: %v", opts.Endpoint, err)
		return nil, false
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "" && u.Fragment == "" && u.RawQuery == "") {
		ppfmt.Errorf(pp.EmojiUserError, "The registrar endpoint %q does not look like a valid base URL", u.Redacted())
		ppfmt.Errorf(pp.EmojiUserError, `A valid example is "https://api.registrar.example/robot"`)
		return nil, false
	}

	if u.Scheme != "https" {
		ppfmt.Warningf(pp.EmojiUserWarning,
			"The registrar endpoint %q does not use HTTPS; the authentication token will be sent unencrypted",
			u.Redacted())
	}

	doer := opts.Doer
	if doer == nil {
		doer = &http.Client{} //nolint:exhaustruct
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		url:         strings.TrimRight(u.String(), "/") + opts.Format.Path(),
		format:      opts.Format,
		credentials: opts.Credentials,
		timeout:     opts.Timeout,
		doer:        doer,
		now:         now,
	}, true
}

// Format is the wire format of the client.
func (c *Client) Format() wire.Format { return c.format }

// URL is where the requests are sent.
func (c *Client) URL() string { return c.url }

func (c *Client) fail(ppfmt pp.PP, kind error, command string, err error) error {
	ppfmt.Warningf(pp.EmojiError, "Failed to send the command %q: %v", command, err)

	switch {
	case errors.Is(kind, ErrTimeout) && c.timeout > 0:
		ppfmt.Hintf(pp.HintRequestTimeouts,
			"If your network is slow or the registrar is busy, consider a longer REQUEST_TIMEOUT (currently %v)",
			c.timeout)
	case errors.Is(kind, ErrRequest) && errors.Is(err, wire.ErrMalformed):
		ppfmt.Hintf(pp.HintWireFormat,
			"The response is not in the %s format; double check REGISTRAR_FORMAT and REGISTRAR_ENDPOINT",
			c.format.Describe())
	}

	return NewError(kind, command, err)
}

// Call sends the command and decodes the result. It never retries.
func (c *Client) Call(ctx context.Context, ppfmt pp.PP, command string, params tree.Value) (wire.Response, error) {
	now := c.now()
	body, err := c.format.Encode(wire.Request{
		Command:             command,
		Identity:            c.credentials.Identity,
		AuthToken:           c.credentials.Token(now),
		ClientTransactionID: wire.NewTransactionID(now),
		Params:              params,
	})
	if err != nil {
		return wire.Response{}, c.fail(ppfmt, ErrRequest, command, err) //nolint:exhaustruct
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return wire.Response{}, c.fail(ppfmt, ErrRequest, command, err) //nolint:exhaustruct
	}
	req.Header.Set("Content-Type", c.format.ContentType())
	req.Header.Set("Accept", c.format.Accept())

	resp, err := c.doer.Do(req)
	if err != nil {
		return wire.Response{}, c.fail(ppfmt, Classify(err), command, err) //nolint:exhaustruct
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
		return wire.Response{}, c.fail(ppfmt, ErrRequest, command, err) //nolint:exhaustruct
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return wire.Response{}, c.fail(ppfmt, Classify(err), command, err) //nolint:exhaustruct
	}

	result, err := c.format.Decode(raw)
	if err != nil {
		return wire.Response{}, c.fail(ppfmt, ErrRequest, command, err) //nolint:exhaustruct
	}

	return result, nil
}
