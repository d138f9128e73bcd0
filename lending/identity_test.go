package lending

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNewIdentity(t *testing.T) {
	id := NewIdentity()
	assert.Equal(t, 6, id.Length)
	assert.Len(t, id.Value, 6)
	for _, c := range id.Value {
		assert.True(t, unicode.IsLetter(c) || unicode.IsDigit(c), "identity %q contains %q", id.Value, c)
	}
}

func TestNewIdentityWithLength(t *testing.T) {
	id := NewIdentityWithLength(12)
	assert.Equal(t, 12, id.Length)
	assert.Len(t, id.Value, 12)
}

func TestIdentityEquality(t *testing.T) {
	a := NewIdentity()
	b := ParseIdentity(a.Value)
	assert.Equal(t, a, b)

	// Identities work as map keys by value.
	m := map[Identity]string{a: "hit"}
	assert.Equal(t, "hit", m[b])
}

func TestParseIdentityRoundTrip(t *testing.T) {
	a := NewIdentity()
	assert.Equal(t, a, ParseIdentity(a.String()))
}

func TestIdentityIsZero(t *testing.T) {
	assert.True(t, Identity{}.IsZero())
	assert.False(t, NewIdentity().IsZero())
}
