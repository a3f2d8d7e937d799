// Package wire encodes requests to and decodes responses from the registrar.
package wire

import (
	"fmt"
	"strings"
)

// Format is a wire format. A client uses exactly one format for its lifetime.
type Format int

const (
	// Flat is the flat-object (JSON) format.
	Flat Format = iota
	// Markup is the markup-tree (XML) format, sent as a single form field.
	Markup
)

// ParseFormat parses the name of a wire format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "json":
		return Flat, nil
	case "markup", "xml":
		return Markup, nil
	default:
		return Flat, fmt.Errorf("unknown wire format %q (expected %q or %q)", s, "flat", "markup")
	}
}

// Describe gives the name of the format.
func (f Format) Describe() string {
	switch f {
	case Flat:
		return "flat"
	case Markup:
		return "markup"
	default:
		return fmt.Sprintf("<unknown format %d>", int(f))
	}
}

// Path is the suffix appended to the endpoint for this format.
func (f Format) Path() string {
	switch f {
	case Markup:
		return "/xml"
	default:
		return "/json"
	}
}

// ContentType is the content type of request bodies in this format.
func (f Format) ContentType() string {
	switch f {
	case Markup:
		return "application/x-www-form-urlencoded"
	default:
		return "application/json"
	}
}

// Accept is the media type expected in the responses.
func (f Format) Accept() string {
	switch f {
	case Markup:
		return "application/xml, text/xml"
	default:
		return "application/json"
	}
}
