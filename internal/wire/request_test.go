package wire_test

import (
	"encoding/xml"
	"net/url"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"

	"github.com/favonia/regrobot/internal/tree"
	"github.com/favonia/regrobot/internal/wire"
)

func field(key string, v tree.Value) tree.Field { return tree.Field{Key: key, Value: v} }

func mockRequest(params tree.Value) wire.Request {
	return wire.Request{
		Command:             "domain.info",
		Identity:            "alice",
		AuthToken:           "tok",
		ClientTransactionID: "T1",
		Params:              params,
	}
}

func markupDocument(t *testing.T, body []byte) string {
	t.Helper()

	form, err := url.ParseQuery(string(body))
	require.NoError(t, err)
	require.Len(t, form, 1)
	return form.Get(wire.MarkupField)
}

func TestEncodeFlat(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		params   tree.Value
		expected string
	}{
		"no-params": {
			tree.Null(),
			`{"user":"alice","auth":"tok","command":"domain.info","clTRID":"T1"}`,
		},
		"empty-params": {
			tree.Object(),
			`{"user":"alice","auth":"tok","command":"domain.info","clTRID":"T1","data":{}}`,
		},
		"params": {
			tree.Object(field("domain", tree.String("example.com")), field("ns", tree.Strings("a", "b"))),
			`{"user":"alice","auth":"tok","command":"domain.info","clTRID":"T1",` +
				`"data":{"domain":"example.com","ns":["a","b"]}}`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			body, err := wire.Flat.Encode(mockRequest(tc.params))
			require.NoError(t, err)
			require.Equal(t, tc.expected, string(body))
		})
	}
}

func TestEncodeMarkup(t *testing.T) {
	t.Parallel()

	const prefix = `<request><user>alice</user><auth>tok</auth><command>domain.info</command><clTRID>T1</clTRID>`

	for name, tc := range map[string]struct {
		params   tree.Value
		expected string
	}{
		"no-params": {
			tree.Null(),
			prefix + `</request>`,
		},
		"empty-params": {
			tree.Object(),
			prefix + `<data></data></request>`,
		},
		"params": {
			tree.Object(
				field("domain", tree.String("example.com")),
				field("ns", tree.Strings("a", "b")),
				field("contact", tree.Object(field("id", tree.Int(7)))),
				field("note", tree.Null()),
			),
			prefix + `<data><domain>example.com</domain><ns>a</ns><ns>b</ns>` +
				`<contact><id>7</id></contact><note></note></data></request>`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			body, err := wire.Markup.Encode(mockRequest(tc.params))
			require.NoError(t, err)
			require.Equal(t, xml.Header+tc.expected, markupDocument(t, body))
		})
	}
}

func TestEncodeNonObjectParams(t *testing.T) {
	t.Parallel()

	for _, format := range []wire.Format{wire.Flat, wire.Markup} {
		for name, params := range map[string]tree.Value{
			"string": tree.String("x"),
			"list":   tree.Strings("a"),
		} {
			_, err := format.Encode(mockRequest(params))
			require.ErrorIsf(t, err, wire.ErrParamsNotObject, "%s/%s", format.Describe(), name)
		}
	}
}

func TestEnvelopeReuse(t *testing.T) {
	t.Parallel()

	params := tree.Object(field("domain", tree.String("example.com")))
	req := mockRequest(params)

	first, err := wire.Flat.Encode(req)
	require.NoError(t, err)
	second, err := wire.Flat.Encode(req)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, []string{"domain"}, params.Keys())
}

func TestNewTransactionID(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	first := wire.NewTransactionID(now)
	second := wire.NewTransactionID(now)

	require.Len(t, first, ulid.EncodedSize)
	require.NotEqual(t, first, second)

	id, err := ulid.Parse(first)
	require.NoError(t, err)
	require.Equal(t, ulid.Timestamp(now), id.Time())
}
