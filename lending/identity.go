package lending

import (
	"math/rand"
)

const identityLength = 6

const identityAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Identity is an opaque random alphanumeric token identifying a member,
// item or contract. Equality and hashing are by value, so it can be used
// directly as a map key. The generator performs no collision detection;
// the store's uniqueness checks cover the cases where it matters.
type Identity struct {
	Value  string
	Length int
}

// NewIdentity generates a fresh token of the default length.
func NewIdentity() Identity {
	return NewIdentityWithLength(identityLength)
}

// NewIdentityWithLength generates a fresh token of n characters.
func NewIdentityWithLength(n int) Identity {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = identityAlphabet[rand.Intn(len(identityAlphabet))]
	}
	return Identity{Value: string(buf), Length: n}
}

// ParseIdentity restores an identity from its display string.
func ParseIdentity(s string) Identity {
	return Identity{Value: s, Length: len(s)}
}

func (id Identity) String() string {
	return id.Value
}

// IsZero reports whether the identity carries no token at all.
func (id Identity) IsZero() bool {
	return id.Value == "" && id.Length == 0
}
