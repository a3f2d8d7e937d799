package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTrailingData means a flat-object document has data after its top-level value.
var ErrTrailingData = errors.New("trailing data after the top-level value")

func writeQuoted(b *strings.Builder, s string) {
	quoted, _ := json.Marshal(s) // marshaling a string never fails
	b.Write(quoted)
}

func writeFlat(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindString:
		writeQuoted(b, v.text)
	case KindNumber:
		// markup numbers such as "007" are not valid JSON numbers
		if json.Valid([]byte(v.text)) {
			b.WriteString(v.text)
		} else {
			writeQuoted(b, v.text)
		}
	case KindList:
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			writeFlat(b, item)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				b.WriteByte(',')
			}
			writeQuoted(b, f.Key)
			b.WriteByte(':')
			writeFlat(b, f.Value)
		}
		b.WriteByte('}')
	}
}

// MarshalJSON encodes the value in the flat-object format, keeping the order of object keys.
func (v Value) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	writeFlat(&b, v)
	return []byte(b.String()), nil
}

// UnmarshalJSON decodes a flat-object document, keeping the order of object keys and
// the exact text of numbers. Booleans become the string scalars "true" and "false".
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeFlat(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// EncodeFlat encodes the value in the flat-object format.
func EncodeFlat(v Value) []byte {
	var b strings.Builder
	writeFlat(&b, v)
	return []byte(b.String())
}

// DecodeFlat decodes exactly one flat-object document.
func DecodeFlat(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeFlatValue(dec)
	if err != nil {
		return Null(), err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Null(), err
		}
		return Null(), ErrTrailingData
	}

	return v, nil
}

func decodeFlatValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Null(), io.ErrUnexpectedEOF
		}
		return Null(), err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return String(fmt.Sprint(t)), nil
	case json.Delim:
		switch t {
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeFlatValue(dec)
				if err != nil {
					return Null(), err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // ']'
				return Null(), err
			}
			return List(items...), nil

		case '{':
			var fields []Field
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Null(), err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Null(), fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeFlatValue(dec)
				if err != nil {
					return Null(), err
				}
				fields = append(fields, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // '}'
				return Null(), err
			}
			return Object(fields...), nil
		}
	}

	return Null(), fmt.Errorf("unexpected token %v", tok)
}
