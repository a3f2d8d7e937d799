// Package domain parses domain names and nameserver host names.
package domain

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/net/idna"
)

// profileDroppingLeadingDots does C2 in UTS#46 with all checks on + removing leading dots.
// This is the main conversion profile in use.
//
//nolint:gochecknoglobals
var (
	profileDroppingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(true),
	)
	profileKeepingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(false),
	)
)

// FQDN is a fully qualified domain in its ASCII form, without the final dot.
type FQDN string

// DNSNameASCII returns the ASCII form of the FQDN, which is what the registrar expects.
func (f FQDN) DNSNameASCII() string { return string(f) }

// Describe gives a human-readable representation of the FQDN.
func (f FQDN) Describe() string {
	return safelyToUnicode(string(f))
}

// safelyToUnicode takes an ASCII form and returns the Unicode form
// when the round trip gives the same ASCII form back without errors.
// Otherwise, the input ASCII form is returned.
func safelyToUnicode(ascii string) string {
	unicode, errToA := profileKeepingLeadingDots.ToUnicode(ascii)
	roundTrip, errToU := profileKeepingLeadingDots.ToASCII(unicode)
	if errToA != nil || errToU != nil || roundTrip != ascii {
		return ascii
	}

	return unicode
}

// StringToASCII normalizes a domain with best efforts, ignoring errors.
func StringToASCII(domain string) string {
	normalized, _ := profileDroppingLeadingDots.ToASCII(domain)

	// Remove the final dot for consistency
	normalized = strings.TrimRight(normalized, ".")

	return normalized
}

var (
	// ErrNotFQDN means a domain name is not fully qualified.
	ErrNotFQDN = errors.New("not fully qualified")
	// ErrWildcard means a domain name starts with "*", which a registrar cannot register.
	ErrWildcard = errors.New("wildcard domains cannot be registered")
)

// New normalizes a domain to its ASCII form. The normalized form is returned
// even when there is an error so that it can still be shown.
func New(domain string) (FQDN, error) {
	normalized, err := profileDroppingLeadingDots.ToASCII(domain)

	// Remove the final dot for consistency
	normalized = strings.TrimRight(normalized, ".")

	switch {
	case normalized == "*" || strings.HasPrefix(normalized, "*."):
		return FQDN(normalized), ErrWildcard
	case strings.IndexByte(normalized, '.') == -1:
		return FQDN(normalized), ErrNotFQDN
	default:
		return FQDN(normalized), err
	}
}

// SortFQDNs sorts a list of domains according to their ASCII representations.
func SortFQDNs(s []FQDN) {
	slices.Sort(s)
}

// SameSet checks whether two lists contain the same domains, ignoring the order
// and duplicates. Both lists should already be normalized.
func SameSet(s1, s2 []FQDN) bool {
	s1 = slices.Clone(s1)
	s2 = slices.Clone(s2)
	SortFQDNs(s1)
	SortFQDNs(s2)
	return slices.Equal(slices.Compact(s1), slices.Compact(s2))
}
