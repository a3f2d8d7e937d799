// Package tree implements the uniform value trees exchanged with the registrar.
//
// A [Value] is a scalar (null, string, or number), an ordered list, or an object
// with unique keys kept in insertion order. Values are immutable: every
// constructor and every method returning a [Value] copies what it keeps.
package tree

import (
	"strconv"
	"strings"
)

// Kind is the variant of a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindList
	KindObject
)

// String gives the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Field is one key/value pair of an object.
type Field struct {
	Key   string
	Value Value
}

// Value is a node of a value tree. The zero value is the null scalar.
type Value struct {
	kind   Kind
	text   string  // KindString and KindNumber
	items  []Value // KindList
	fields []Field // KindObject
}

// Null returns the null scalar.
func Null() Value { return Value{} } //nolint:exhaustruct

// String returns a string scalar.
func String(s string) Value { return Value{kind: KindString, text: s} } //nolint:exhaustruct

// Number returns a numeric scalar from its decimal text, which must be a valid JSON number.
func Number(text string) Value { return Value{kind: KindNumber, text: text} } //nolint:exhaustruct

// Int returns a numeric scalar.
func Int(i int64) Value { return Number(strconv.FormatInt(i, 10)) }

// List returns a list of the items, in order.
func List(items ...Value) Value {
	return Value{kind: KindList, items: append([]Value{}, items...)} //nolint:exhaustruct
}

// Object returns an object with the fields, in order. When a key appears more than once,
// the last value wins but the position of the first occurrence is kept.
func Object(fields ...Field) Value {
	kept := make([]Field, 0, len(fields))
	seen := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := seen[f.Key]; ok {
			kept[i].Value = f.Value
			continue
		}
		seen[f.Key] = len(kept)
		kept = append(kept, f)
	}
	return Value{kind: KindObject, fields: kept} //nolint:exhaustruct
}

// Strings returns a list of string scalars.
func Strings(ss ...string) Value {
	items := make([]Value, 0, len(ss))
	for _, s := range ss {
		items = append(items, String(s))
	}
	return Value{kind: KindList, items: items} //nolint:exhaustruct
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull checks whether the value is the null scalar.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsScalar checks whether the value is a null, string, or numeric scalar.
func (v Value) IsScalar() bool {
	return v.kind == KindNull || v.kind == KindString || v.kind == KindNumber
}

// Text returns the text of a string or numeric scalar.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindString, KindNumber:
		return v.text, true
	default:
		return "", false
	}
}

// Int64 returns the integer value of a numeric scalar, or of a string scalar
// that spells an integer.
func (v Value) Int64() (int64, bool) {
	text, ok := v.Text()
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Len returns the number of items of a list or the number of fields of an object.
// It returns 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Items views the value as a list: the items of a list, nothing for null,
// and the value itself for any other value. This absorbs the ambiguity between
// a single occurrence and repeated occurrences of a markup element.
func (v Value) Items() []Value {
	switch v.kind {
	case KindList:
		return append([]Value{}, v.items...)
	case KindNull:
		return nil
	default:
		return []Value{v}
	}
}

// Get looks up a key of an object.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Null(), false
	}
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Null(), false
}

// Lookup follows a path of keys through nested objects.
func (v Value) Lookup(keys ...string) (Value, bool) {
	for _, key := range keys {
		var ok bool
		if v, ok = v.Get(key); !ok {
			return Null(), false
		}
	}
	return v, true
}

// Fields returns a copy of the fields of an object.
func (v Value) Fields() []Field {
	if v.kind != KindObject {
		return nil
	}
	return append([]Field{}, v.fields...)
}

// Keys returns the keys of an object, in order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// With returns a new object with the key set to val. The null value is treated as the
// empty object. It returns the receiver unchanged (and false) for other non-objects.
func (v Value) With(key string, val Value) (Value, bool) {
	switch v.kind {
	case KindNull:
		return Object(Field{Key: key, Value: val}), true
	case KindObject:
		return Object(append(v.Fields(), Field{Key: key, Value: val})...), true
	default:
		return v, false
	}
}

// Equal checks structural equality. Object fields are compared in order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString, KindNumber:
		return v.text == o.text
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for i := range v.fields {
			if v.fields[i].Key != o.fields[i].Key || !v.fields[i].Value.Equal(o.fields[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value in the flat-object notation.
func (v Value) String() string {
	var b strings.Builder
	writeFlat(&b, v)
	return b.String()
}
