package wire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/favonia/regrobot/internal/tree"
)

// Keys of the response envelope. The envelope itself is tagged KeyEnvelope,
// and its human-readable message is stored under KeyMessage.
const (
	KeyEnvelope = "response"
	KeyCode     = "code"
	KeyMessage  = "result"
)

// ErrMalformed means a response body could not be decoded.
var ErrMalformed = errors.New("malformed response")

// Response is the decoded result of one command.
type Response struct {
	Code    string
	Message string
	// Data is the data tree, or the null value when the envelope has none.
	Data tree.Value
}

// HasData checks whether the envelope had a data tree. An empty data
// object still counts as having data.
func (r Response) HasData() bool { return !r.Data.IsNull() }

// Describe gives a one-line description of the result.
func (r Response) Describe() string {
	if r.Message == "" {
		return r.Code
	}
	return fmt.Sprintf("%s (%s)", r.Code, r.Message)
}

// locateEnvelope finds the envelope: the root itself, a child of the root tagged
// [KeyEnvelope], or, when no envelope tag can be found, the whole tree.
func locateEnvelope(isRoot bool, v tree.Value) tree.Value {
	if isRoot {
		return v
	}
	if child, ok := v.Get(KeyEnvelope); ok && child.Kind() == tree.KindObject {
		return child
	}
	return v
}

// Decode decodes a response body in the format f.
func (f Format) Decode(body []byte) (Response, error) {
	var envelope tree.Value

	switch f {
	case Markup:
		root, v, err := tree.DecodeMarkup(bytes.NewReader(body))
		if err != nil {
			return Response{}, fmt.Errorf("%w: %w", ErrMalformed, err) //nolint:exhaustruct
		}
		envelope = locateEnvelope(root == KeyEnvelope, v)

	default:
		v, err := tree.DecodeFlat(bytes.NewReader(body))
		if err != nil {
			return Response{}, fmt.Errorf("%w: %w", ErrMalformed, err) //nolint:exhaustruct
		}
		if v.Kind() != tree.KindObject {
			return Response{}, fmt.Errorf("%w: expected an object, got %s", ErrMalformed, v.Kind()) //nolint:exhaustruct
		}
		envelope = locateEnvelope(false, v)
	}

	return readEnvelope(f, envelope)
}

func readEnvelope(f Format, envelope tree.Value) (Response, error) {
	if envelope.Kind() != tree.KindObject {
		return Response{}, fmt.Errorf("%w: the result is a %s, not an object", ErrMalformed, envelope.Kind()) //nolint:exhaustruct,lll
	}

	codeValue, _ := envelope.Get(KeyCode)
	code, ok := codeValue.Text()
	if !ok || code == "" {
		return Response{}, fmt.Errorf("%w: no result code", ErrMalformed) //nolint:exhaustruct
	}

	var message string
	if messageValue, found := envelope.Get(KeyMessage); found {
		if message, ok = messageValue.Text(); !ok && !messageValue.IsNull() {
			return Response{}, fmt.Errorf("%w: the message is a %s", ErrMalformed, messageValue.Kind()) //nolint:exhaustruct,lll
		}
	}

	data, _ := envelope.Get(KeyData)
	if f == Markup {
		// an empty element cannot be told apart from an empty object in markup
		if text, isText := data.Text(); isText && text == "" {
			data = tree.Object()
		}
	}

	return Response{Code: code, Message: message, Data: data}, nil
}
