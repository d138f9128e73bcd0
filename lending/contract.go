package lending

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Status of a contract relative to the logical clock.
type Status int

const (
	StatusFuture Status = iota
	StatusActive
	StatusFinished
	StatusCanceled
	StatusOther
)

func (s Status) String() string {
	switch s {
	case StatusFuture:
		return "Future"
	case StatusActive:
		return "Active"
	case StatusFinished:
		return "Finished"
	case StatusCanceled:
		return "Canceled"
	default:
		return "Other"
	}
}

// StatusFromString parses a status name; unknown names map to Other.
func StatusFromString(s string) Status {
	switch s {
	case "Future":
		return StatusFuture
	case "Active":
		return StatusActive
	case "Finished":
		return StatusFinished
	case "Canceled":
		return StatusCanceled
	default:
		return StatusOther
	}
}

// Contract is a single loan agreement between an owner and a lendee for a
// date range on the logical clock. Owner and lendee are snapshot copies
// taken at creation time, not live references into the store. A contract
// is never mutated after creation except for status assignment; equality
// is by identity only.
type Contract struct {
	Owner    Member
	Lendee   Member
	StartDay int
	EndDay   int
	Length   int
	Credits  decimal.Decimal
	Status   Status
	ID       Identity
}

// NewContract creates a contract starting at startDay and running for
// length days. Credits is the total price, cost per day times length.
func NewContract(owner, lendee Member, startDay, length int, credits decimal.Decimal) Contract {
	return Contract{
		Owner:    owner,
		Lendee:   lendee,
		StartDay: startDay,
		EndDay:   startDay + length,
		Length:   length,
		Credits:  credits,
		Status:   StatusFuture,
		ID:       NewIdentity(),
	}
}

// StatusAt derives the status from the clock. An assigned Canceled or
// Other status wins; there is no transition into either from here.
func (c Contract) StatusAt(day int) Status {
	if c.Status == StatusCanceled || c.Status == StatusOther {
		return c.Status
	}
	switch {
	case c.StartDay <= day && day <= c.EndDay:
		return StatusActive
	case day < c.StartDay:
		return StatusFuture
	default:
		return StatusFinished
	}
}

// SetStatus assigns the status directly. The engine itself never produces
// Canceled or Other; they exist for callers and forward extension.
func (c *Contract) SetStatus(s Status) {
	c.Status = s
}

// DaysLeft returns the remaining days while the contract is running. The
// second return is false when the contract is not currently active.
func (c Contract) DaysLeft(now int) (int, bool) {
	if c.StartDay <= now && now <= c.EndDay {
		return c.EndDay - now, true
	}
	return 0, false
}

// Equal compares by identity only.
func (c Contract) Equal(other Contract) bool {
	return c.ID == other.ID
}

// DeepEqual compares identity and every field.
func (c Contract) DeepEqual(other Contract) bool {
	return c.ID == other.ID &&
		c.Owner.Equal(other.Owner) &&
		c.Lendee.Equal(other.Lendee) &&
		c.StartDay == other.StartDay &&
		c.EndDay == other.EndDay &&
		c.Length == other.Length &&
		c.Credits.Equal(other.Credits) &&
		c.Status == other.Status
}

// Fields is the ordered field registry backing the console editor.
func (c *Contract) Fields() []Field {
	return []Field{
		{Name: "owner",
			Get: func() string { return c.Owner.String() },
			Set: func(s string) error {
				m, err := ParseMember(s)
				if err != nil {
					return err
				}
				c.Owner = m
				return nil
			}},
		{Name: "lendee",
			Get: func() string { return c.Lendee.String() },
			Set: func(s string) error {
				m, err := ParseMember(s)
				if err != nil {
					return err
				}
				c.Lendee = m
				return nil
			}},
		{Name: "start_day",
			Get: func() string { return strconv.Itoa(c.StartDay) },
			Set: func(s string) error {
				day, err := strconv.Atoi(s)
				if err != nil {
					return err
				}
				c.StartDay = day
				return nil
			}},
		{Name: "end_day", Editable: true,
			Get: func() string { return strconv.Itoa(c.EndDay) },
			Set: func(s string) error {
				day, err := strconv.Atoi(s)
				if err != nil {
					return err
				}
				c.EndDay = day
				return nil
			}},
		{Name: "length", Editable: true,
			Get: func() string { return strconv.Itoa(c.Length) },
			Set: func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil {
					return err
				}
				c.Length = n
				return nil
			}},
		{Name: "credits", Editable: true,
			Get: func() string { return c.Credits.String() },
			Set: func(s string) error {
				d, err := decimal.NewFromString(s)
				if err != nil {
					return err
				}
				c.Credits = d
				return nil
			}},
		{Name: "status",
			Get: func() string { return c.Status.String() },
			Set: func(s string) error { c.Status = StatusFromString(s); return nil }},
		{Name: "id",
			Get: func() string { return c.ID.String() },
			Set: func(s string) error { c.ID = ParseIdentity(s); return nil }},
	}
}

func (c Contract) String() string {
	return EncodeRecord(&c)
}

// ContractFromMap builds a contract from a complete key to value mapping.
func ContractFromMap(data map[string]string) (Contract, error) {
	var c Contract
	c.Credits = decimal.Zero
	if err := applyMap(&c, data, true); err != nil {
		return Contract{}, err
	}
	return c, nil
}

// CopyWith returns a copy with the supplied fields replaced.
func (c Contract) CopyWith(data map[string]string) (Contract, error) {
	out := c
	if err := applyMap(&out, data, false); err != nil {
		return Contract{}, err
	}
	return out, nil
}

// ParseContract restores a contract from its record string form.
func ParseContract(s string) (Contract, error) {
	data, err := DecodeRecord(s)
	if err != nil {
		return Contract{}, err
	}
	return ContractFromMap(data)
}
