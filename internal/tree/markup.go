package tree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	// ErrNoRootElement means a markup document has no element at all.
	ErrNoRootElement = errors.New("no root element")
	// ErrMixedContent means an element has both text and child elements.
	ErrMixedContent = errors.New("text mixed with child elements")
)

// EncodeMarkup writes v as an element named name.
//
// A scalar becomes one leaf element and null becomes an empty leaf element.
// An object becomes an element whose children are its fields, in order.
// A list becomes one sibling element per item, all named name, and an empty list
// produces no elements at all.
func EncodeMarkup(e *xml.Encoder, name string, v Value) error {
	if v.kind == KindList {
		for _, item := range v.items {
			if err := EncodeMarkup(e, name, item); err != nil {
				return err
			}
		}
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Space: "", Local: name}, Attr: nil}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	switch v.kind {
	case KindString, KindNumber:
		if err := e.EncodeToken(xml.CharData(v.text)); err != nil {
			return err
		}
	case KindObject:
		for _, f := range v.fields {
			if err := EncodeMarkup(e, f.Key, f.Value); err != nil {
				return err
			}
		}
	case KindNull, KindList:
	}

	return e.EncodeToken(start.End())
}

// MarshalMarkup encodes v as a complete markup document whose root element is named root.
func MarshalMarkup(root string, v Value) ([]byte, error) {
	var b strings.Builder
	b.WriteString(xml.Header)

	e := xml.NewEncoder(&b)
	if err := EncodeMarkup(e, root, v); err != nil {
		return nil, err
	}
	if err := e.Flush(); err != nil {
		return nil, err
	}

	return []byte(b.String()), nil
}

// DecodeMarkup parses a markup document and returns the name of its root element
// together with its value.
//
// An element without child elements becomes a scalar: its text with surrounding
// whitespace trimmed, coerced to a number when it consists of ASCII digits only.
// An element with child elements becomes an object. When a tag occurs more than
// once among the children, its occurrences are merged into a list in document order.
// Attributes, comments, and processing instructions are ignored. An element with
// both non-blank text and child elements is rejected with [ErrMixedContent].
// Documents declaring an encoding other than UTF-8 are transcoded first.
func DecodeMarkup(r io.Reader) (string, Value, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return "", Null(), ErrNoRootElement
		}
		if err != nil {
			return "", Null(), err
		}

		if start, ok := tok.(xml.StartElement); ok {
			v, err := decodeElement(d, start)
			if err != nil {
				return "", Null(), err
			}
			return start.Name.Local, v, nil
		}
	}
}

// UnmarshalMarkup is [DecodeMarkup] on a byte slice.
func UnmarshalMarkup(data []byte) (string, Value, error) {
	return DecodeMarkup(strings.NewReader(string(data)))
}

// children collects the child elements of one element, grouping repeated tags.
type children struct {
	order  []string
	groups map[string][]Value
}

func (c *children) add(tag string, v Value) {
	if c.groups == nil {
		c.groups = map[string][]Value{}
	}
	if _, seen := c.groups[tag]; !seen {
		c.order = append(c.order, tag)
	}
	c.groups[tag] = append(c.groups[tag], v)
}

func (c *children) value() Value {
	fields := make([]Field, 0, len(c.order))
	for _, tag := range c.order {
		group := c.groups[tag]
		if len(group) == 1 {
			fields = append(fields, Field{Key: tag, Value: group[0]})
		} else {
			fields = append(fields, Field{Key: tag, Value: List(group...)})
		}
	}
	return Object(fields...)
}

func decodeElement(d *xml.Decoder, start xml.StartElement) (Value, error) {
	var (
		text strings.Builder
		kids children
	)

	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Null(), fmt.Errorf("element <%s> is not closed: %w", start.Name.Local, io.ErrUnexpectedEOF)
			}
			return Null(), err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(d, t)
			if err != nil {
				return Null(), err
			}
			kids.add(t.Name.Local, child)

		case xml.CharData:
			text.Write(t)

		case xml.EndElement:
			if len(kids.order) > 0 {
				if strings.TrimSpace(text.String()) != "" {
					return Null(), fmt.Errorf("element <%s>: %w", start.Name.Local, ErrMixedContent)
				}
				return kids.value(), nil
			}
			return leaf(text.String()), nil
		}
	}
}

func leaf(raw string) Value {
	text := strings.TrimSpace(raw)
	if isDigits(text) {
		return Number(text)
	}
	return String(text)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
