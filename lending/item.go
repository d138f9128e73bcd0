package lending

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Category of a lendable item.
type Category int

const (
	CategoryTool Category = iota
	CategoryVehicle
	CategoryGame
	CategoryToy
	CategorySport
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryTool:
		return "Tool"
	case CategoryVehicle:
		return "Vehicle"
	case CategoryGame:
		return "Game"
	case CategoryToy:
		return "Toy"
	case CategorySport:
		return "Sport"
	default:
		return "Other"
	}
}

// CategoryFromString parses a category name case-insensitively; anything
// unrecognized maps to Other.
func CategoryFromString(s string) Category {
	switch strings.ToLower(s) {
	case "tool":
		return CategoryTool
	case "vehicle":
		return CategoryVehicle
	case "game":
		return CategoryGame
	case "toy":
		return CategoryToy
	case "sport":
		return CategorySport
	default:
		return CategoryOther
	}
}

// availabilityWindow is the number of days covered by the occupancy
// calendar returned from Availability.
const availabilityWindow = 30

// DayAvailability is one calendar entry: a day label and whether any
// contract occupies that day.
type DayAvailability struct {
	Day    int
	Label  string
	Booked bool
}

// HistoryPartition buckets an item's contracts by their derived status.
// Finished and Canceled contracts land in Past; contracts whose status is
// Other are dropped.
type HistoryPartition struct {
	Past   []Contract
	Active []Contract
	Future []Contract
}

// Item is a lendable object owned by a member. Owner is a snapshot copy
// taken at creation or assignment time; later credit changes to the
// canonical member do not propagate here. The history holds every
// contract ever attached, in insertion order, with no two contracts
// occupying overlapping date ranges.
type Item struct {
	Name        string
	Description string
	Category    Category
	Owner       Member
	CostPerDay  decimal.Decimal
	CreatedDay  int
	Available   bool
	History     []Contract
	ID          Identity
}

// NewItem creates an item with an empty history.
func NewItem(name, description string, category Category, owner Member, costPerDay decimal.Decimal, createdDay int) Item {
	return Item{
		Name:        name,
		Description: description,
		Category:    category,
		Owner:       owner,
		CostPerDay:  costPerDay,
		CreatedDay:  createdDay,
		Available:   true,
		ID:          NewIdentity(),
	}
}

// AddContract appends a contract to the history after checking that its
// period is free. On conflict it returns ErrAlreadyExists and the history
// is left untouched. On success the availability flag is cleared when a
// contract is active at now; the flag is refreshed opportunistically like
// this rather than on every clock tick.
func (i *Item) AddContract(c Contract, now int) error {
	if _, ok := i.ContractInPeriod(c.StartDay, c.EndDay); ok {
		return ErrAlreadyExists
	}
	i.History = append(i.History, c)
	if _, ok := i.ActiveContract(now); ok {
		i.Available = false
	}
	return nil
}

// ActiveContract returns the first contract whose [start, end) range
// contains now. Insertion order decides ties.
func (i *Item) ActiveContract(now int) (Contract, bool) {
	return i.ContractInPeriod(now, now+1)
}

// ContractInPeriod returns the first contract whose range intersects the
// half-open interval [start, end).
func (i *Item) ContractInPeriod(start, end int) (Contract, bool) {
	for _, c := range i.History {
		if c.StartDay < end && start < c.EndDay {
			return c, true
		}
	}
	return Contract{}, false
}

// HistoryMap partitions the history by each contract's status at now.
func (i *Item) HistoryMap(now int) HistoryPartition {
	var part HistoryPartition
	for _, c := range i.History {
		switch c.StatusAt(now) {
		case StatusFinished, StatusCanceled:
			part.Past = append(part.Past, c)
		case StatusActive:
			part.Active = append(part.Active, c)
		case StatusFuture:
			part.Future = append(part.Future, c)
		}
	}
	return part
}

// Availability returns the occupancy calendar for the next thirty days.
// A day counts as booked when any contract's [start, end) contains it.
func (i *Item) Availability(now int) []DayAvailability {
	days := make([]DayAvailability, 0, availabilityWindow)
	for d := now; d < now+availabilityWindow; d++ {
		_, booked := i.ContractInPeriod(d, d+1)
		days = append(days, DayAvailability{
			Day:    d,
			Label:  fmt.Sprintf("Day %d", d),
			Booked: booked,
		})
	}
	return days
}

// Clone returns a deep copy; the history slice is not shared.
func (i Item) Clone() Item {
	out := i
	out.History = append([]Contract(nil), i.History...)
	return out
}

// Equal compares identity and every field, including the full history.
func (i Item) Equal(other Item) bool {
	if i.ID != other.ID ||
		i.Name != other.Name ||
		i.Description != other.Description ||
		i.Category != other.Category ||
		!i.Owner.Equal(other.Owner) ||
		!i.CostPerDay.Equal(other.CostPerDay) ||
		i.CreatedDay != other.CreatedDay ||
		i.Available != other.Available ||
		len(i.History) != len(other.History) {
		return false
	}
	for n := range i.History {
		if !i.History[n].DeepEqual(other.History[n]) {
			return false
		}
	}
	return true
}

// Fields is the ordered field registry backing the console editor.
func (i *Item) Fields() []Field {
	return []Field{
		{Name: "name", Editable: true,
			Get: func() string { return i.Name },
			Set: func(s string) error { i.Name = s; return nil }},
		{Name: "description", Editable: true,
			Get: func() string { return i.Description },
			Set: func(s string) error { i.Description = s; return nil }},
		{Name: "category", Editable: true,
			Get: func() string { return i.Category.String() },
			Set: func(s string) error { i.Category = CategoryFromString(s); return nil }},
		{Name: "owner",
			Get: func() string { return i.Owner.String() },
			Set: func(s string) error {
				m, err := ParseMember(s)
				if err != nil {
					return err
				}
				i.Owner = m
				return nil
			}},
		{Name: "cost_per_day", Editable: true,
			Get: func() string { return i.CostPerDay.String() },
			Set: func(s string) error {
				d, err := decimal.NewFromString(s)
				if err != nil {
					return err
				}
				i.CostPerDay = d
				return nil
			}},
		{Name: "created",
			Get: func() string { return strconv.Itoa(i.CreatedDay) },
			Set: func(s string) error {
				day, err := strconv.Atoi(s)
				if err != nil {
					return err
				}
				i.CreatedDay = day
				return nil
			}},
		{Name: "available",
			Get: func() string { return strconv.FormatBool(i.Available) },
			Set: func(s string) error {
				b, err := strconv.ParseBool(s)
				if err != nil {
					return err
				}
				i.Available = b
				return nil
			}},
		{Name: "history",
			Get: func() string { return encodeContractList(i.History) },
			Set: func(s string) error {
				history, err := parseContractList(s)
				if err != nil {
					return err
				}
				i.History = history
				return nil
			}},
		{Name: "id",
			Get: func() string { return i.ID.String() },
			Set: func(s string) error { i.ID = ParseIdentity(s); return nil }},
	}
}

func (i Item) String() string {
	return EncodeRecord(&i)
}

// ItemFromMap builds an item from a complete key to value mapping.
func ItemFromMap(data map[string]string) (Item, error) {
	var i Item
	i.CostPerDay = decimal.Zero
	if err := applyMap(&i, data, true); err != nil {
		return Item{}, err
	}
	return i, nil
}

// CopyWith returns a copy with the supplied fields replaced.
func (i Item) CopyWith(data map[string]string) (Item, error) {
	out := i.Clone()
	if err := applyMap(&out, data, false); err != nil {
		return Item{}, err
	}
	return out, nil
}

// ParseItem restores an item from its record string form.
func ParseItem(s string) (Item, error) {
	data, err := DecodeRecord(s)
	if err != nil {
		return Item{}, err
	}
	return ItemFromMap(data)
}
