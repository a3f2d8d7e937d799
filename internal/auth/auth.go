// Package auth computes the per-request authentication tokens.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SaltLayout is the layout of the time-varying salt. Tokens stay valid for one UTC hour.
const SaltLayout = "2006010215"

// Salt returns the time-varying salt for the time t.
func Salt(t time.Time) string {
	return t.UTC().Format(SaltLayout)
}

// Sign returns the lowercase hex SHA-256 digest of the identity, the secret,
// and the salt of the time t, concatenated in this order.
func Sign(identity, secret string, t time.Time) string {
	sum := sha256.Sum256([]byte(identity + secret + Salt(t)))
	return hex.EncodeToString(sum[:])
}

// Credentials holds what is needed to sign requests.
type Credentials struct {
	Identity string
	Secret   string
}

// Token signs a request issued at the time now.
func (c Credentials) Token(now time.Time) string {
	return Sign(c.Identity, c.Secret, now)
}

// IsComplete checks whether both the identity and the secret are set.
func (c Credentials) IsComplete() bool {
	return c.Identity != "" && c.Secret != ""
}

// Describe gives a description of the credentials without revealing the secret.
func (c Credentials) Describe() string {
	if c.Secret == "" {
		return c.Identity + " (no secret)"
	}
	return c.Identity + " (secret set)"
}
