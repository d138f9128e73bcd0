package lending

import (
	"regexp"
	"strconv"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9 ]{8,12}$`)
	emailPattern = regexp.MustCompile(`^([a-z0-9_+]([a-z0-9_+.]*[a-z0-9_+])?)@([a-z0-9]+([-.][a-z0-9]+)*\.[a-z]{2,6})`)
)

// Member is a person registered with the store. Credits start at zero and
// only ever change through AddCredits and DeduceCredits.
type Member struct {
	Name       string
	Email      string
	Phone      string
	Credits    decimal.Decimal
	CreatedDay int
	ID         Identity
}

// NewMember builds and validates a member. The member is only constructed
// when its identity, phone number and email all pass validation; on
// failure the returned *ValidationError names the rule that failed.
func NewMember(name, email, phone string, createdDay int) (Member, error) {
	m := Member{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Credits:    decimal.Zero,
		CreatedDay: createdDay,
		ID:         NewIdentity(),
	}
	if err := m.Validate(); err != nil {
		return Member{}, err
	}
	return m, nil
}

// Validate checks email, identity and phone number, in that order.
func (m Member) Validate() error {
	if err := m.validateEmail(); err != nil {
		return err
	}
	if err := m.validateID(); err != nil {
		return err
	}
	return m.validatePhone()
}

func (m Member) validateID() error {
	if m.ID.Length != identityLength {
		return &ValidationError{Field: "id", Reason: "token must be " + strconv.Itoa(identityLength) + " characters long"}
	}
	for _, c := range m.ID.Value {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			return &ValidationError{Field: "id", Reason: "token contains non alpha-numeric characters"}
		}
	}
	return nil
}

func (m Member) validatePhone() error {
	for _, c := range m.Phone {
		if !unicode.IsDigit(c) && !unicode.IsSpace(c) {
			return &ValidationError{Field: "phone", Reason: "contains non-numeric characters"}
		}
	}
	if !phonePattern.MatchString(m.Phone) {
		return &ValidationError{Field: "phone", Reason: "doesnt match any valid pattern"}
	}
	if len(m.Phone) < 8 || len(m.Phone) > 12 {
		return &ValidationError{Field: "phone", Reason: "must be between 8 and 12 characters"}
	}
	return nil
}

func (m Member) validateEmail() error {
	if !emailPattern.MatchString(m.Email) {
		return &ValidationError{Field: "email", Reason: "doesnt match any valid pattern"}
	}
	return nil
}

// AddCredits increments the balance. Negative amounts are rejected.
func (m *Member) AddCredits(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeCredits
	}
	m.Credits = m.Credits.Add(amount)
	return nil
}

// DeduceCredits decrements the balance. Negative amounts and deductions
// that would take the balance below zero are rejected and leave the
// balance unchanged.
func (m *Member) DeduceCredits(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeCredits
	}
	if m.Credits.Sub(amount).IsNegative() {
		return ErrInsufficientCredits
	}
	m.Credits = m.Credits.Sub(amount)
	return nil
}

// Matches reports whether other refers to the same person under the loose
// duplicate heuristic: a shared email, phone number or identity.
func (m Member) Matches(other Member) bool {
	return m.Email == other.Email || m.Phone == other.Phone || m.ID == other.ID
}

// Equal compares identity and every field.
func (m Member) Equal(other Member) bool {
	return m.ID == other.ID &&
		m.Name == other.Name &&
		m.Email == other.Email &&
		m.Phone == other.Phone &&
		m.CreatedDay == other.CreatedDay &&
		m.Credits.Equal(other.Credits)
}

// Fields is the ordered field registry backing the console editor.
func (m *Member) Fields() []Field {
	return []Field{
		{Name: "name", Editable: true,
			Get: func() string { return m.Name },
			Set: func(s string) error { m.Name = s; return nil }},
		{Name: "email", Editable: true,
			Get: func() string { return m.Email },
			Set: func(s string) error { m.Email = s; return nil }},
		{Name: "phone", Editable: true,
			Get: func() string { return m.Phone },
			Set: func(s string) error { m.Phone = s; return nil }},
		{Name: "credits",
			Get: func() string { return m.Credits.String() },
			Set: func(s string) error {
				d, err := decimal.NewFromString(s)
				if err != nil {
					return err
				}
				m.Credits = d
				return nil
			}},
		{Name: "created",
			Get: func() string { return strconv.Itoa(m.CreatedDay) },
			Set: func(s string) error {
				day, err := strconv.Atoi(s)
				if err != nil {
					return err
				}
				m.CreatedDay = day
				return nil
			}},
		{Name: "id",
			Get: func() string { return m.ID.String() },
			Set: func(s string) error { m.ID = ParseIdentity(s); return nil }},
	}
}

func (m Member) String() string {
	return EncodeRecord(&m)
}

// MemberFromMap builds a member from a complete key to value mapping.
func MemberFromMap(data map[string]string) (Member, error) {
	var m Member
	m.Credits = decimal.Zero
	if err := applyMap(&m, data, true); err != nil {
		return Member{}, err
	}
	return m, nil
}

// CopyWith returns a copy with the supplied fields replaced; fields absent
// from data keep their prior values.
func (m Member) CopyWith(data map[string]string) (Member, error) {
	out := m
	if err := applyMap(&out, data, false); err != nil {
		return Member{}, err
	}
	return out, nil
}

// ParseMember restores a member from its record string form.
func ParseMember(s string) (Member, error) {
	data, err := DecodeRecord(s)
	if err != nil {
		return Member{}, err
	}
	return MemberFromMap(data)
}
