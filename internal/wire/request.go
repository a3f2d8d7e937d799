package wire

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/oklog/ulid/v2"

	"github.com/favonia/regrobot/internal/tree"
)

// Keys of the request envelope.
const (
	KeyUser          = "user"
	KeyAuth          = "auth"
	KeyCommand       = "command"
	KeyTransactionID = "clTRID"
	KeyData          = "data"
)

// MarkupRoot is the root element of markup requests.
const MarkupRoot = "request"

// MarkupField is the form field carrying a markup request.
const MarkupField = "xml"

// ErrParamsNotObject means the parameters of a request are neither null nor an object.
var ErrParamsNotObject = errors.New("parameters must be an object")

// Request is one command sent to the registrar.
type Request struct {
	Command             string
	Identity            string
	AuthToken           string
	ClientTransactionID string
	// Params is the parameter tree. The null value omits the data element entirely,
	// while the empty object sends an empty data element.
	Params tree.Value
}

//nolint:gochecknoglobals
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec
)

// NewTransactionID generates a client transaction ID for a request issued at the time now.
func NewTransactionID(now time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

// Envelope returns the request as a tree.
func (r Request) Envelope() (tree.Value, error) {
	fields := []tree.Field{
		{Key: KeyUser, Value: tree.String(r.Identity)},
		{Key: KeyAuth, Value: tree.String(r.AuthToken)},
		{Key: KeyCommand, Value: tree.String(r.Command)},
		{Key: KeyTransactionID, Value: tree.String(r.ClientTransactionID)},
	}

	switch r.Params.Kind() {
	case tree.KindNull:
	case tree.KindObject:
		fields = append(fields, tree.Field{Key: KeyData, Value: r.Params})
	default:
		return tree.Null(), fmt.Errorf("%w (got %s)", ErrParamsNotObject, r.Params.Kind())
	}

	return tree.Object(fields...), nil
}

type markupForm struct {
	XML string `url:"xml"`
}

// Encode encodes the request as a body in the format f.
func (f Format) Encode(r Request) ([]byte, error) {
	envelope, err := r.Envelope()
	if err != nil {
		return nil, err
	}

	switch f {
	case Markup:
		doc, err := tree.MarshalMarkup(MarkupRoot, envelope)
		if err != nil {
			return nil, fmt.Errorf("failed to encode the markup request: %w", err)
		}
		form, err := query.Values(markupForm{XML: string(doc)})
		if err != nil {
			return nil, fmt.Errorf("failed to encode the form: %w", err)
		}
		return []byte(form.Encode()), nil

	default:
		return tree.EncodeFlat(envelope), nil
	}
}
