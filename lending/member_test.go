package lending

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMember(t *testing.T, name, email, phone string, day int) Member {
	t.Helper()
	m, err := NewMember(name, email, phone, day)
	require.NoError(t, err)
	return m
}

func TestNewMember(t *testing.T) {
	allan := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 0)
	assert.Equal(t, "Allan", allan.Name)
	assert.Equal(t, "allan@enigma.com", allan.Email)
	assert.Equal(t, "0123456789", allan.Phone)
	assert.True(t, allan.Credits.IsZero(), "credits start at zero")
	assert.Equal(t, 0, allan.CreatedDay)
	assert.Equal(t, 6, allan.ID.Length)
}

func TestNewMemberInvalidEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "@enigma.com", "allan@", "ALLAN@ENIGMA.COM"} {
		_, err := NewMember("Allan", email, "0123456789", 0)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "email %q should be rejected", email)
		assert.Equal(t, "email", verr.Field)
	}
}

func TestNewMemberInvalidPhone(t *testing.T) {
	for _, phone := range []string{
		"01234a6789",    // non-numeric
		"0123-45678",    // punctuation
		"0123456",       // too short
		"0123456789012", // too long
		"",
	} {
		_, err := NewMember("Allan", "allan@enigma.com", phone, 0)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "phone %q should be rejected", phone)
		assert.Equal(t, "phone", verr.Field)
	}
}

func TestNewMemberPhoneAllowsWhitespace(t *testing.T) {
	_, err := NewMember("Allan", "allan@enigma.com", "012 345 678", 0)
	assert.NoError(t, err)
}

func TestAddCredits(t *testing.T) {
	m := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 0)

	require.NoError(t, m.AddCredits(decimal.NewFromInt(100)))
	assert.True(t, m.Credits.Equal(decimal.NewFromInt(100)))

	err := m.AddCredits(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeCredits)
	assert.True(t, m.Credits.Equal(decimal.NewFromInt(100)), "balance unchanged after rejected add")
}

func TestDeduceCredits(t *testing.T) {
	m := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 0)
	require.NoError(t, m.AddCredits(decimal.NewFromInt(100)))

	require.NoError(t, m.DeduceCredits(decimal.NewFromInt(40)))
	assert.True(t, m.Credits.Equal(decimal.NewFromInt(60)))

	err := m.DeduceCredits(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeCredits)

	err = m.DeduceCredits(decimal.NewFromInt(61))
	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.True(t, m.Credits.Equal(decimal.NewFromInt(60)), "balance unchanged after rejected deduction")
}

func TestMemberMatches(t *testing.T) {
	allan := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 0)

	sameEmail := mustMember(t, "Turing", "allan@enigma.com", "012345678901", 0)
	samePhone := mustMember(t, "Turing", "turing@enigma.com", "0123456789", 0)
	unrelated := mustMember(t, "Turing", "turing2@enigma.com", "9876567890", 0)

	assert.True(t, allan.Matches(sameEmail))
	assert.True(t, allan.Matches(samePhone))
	assert.True(t, allan.Matches(allan))
	assert.False(t, allan.Matches(unrelated))
}
