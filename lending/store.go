package lending

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// listingBonus is the credit reward a member earns for listing an item.
var listingBonus = decimal.NewFromInt(100)

// Store is the in-memory repository of members and items and the sole
// mutation gateway of the engine. It owns the two identity-keyed maps and
// the logical day counter; membership in one map implies nothing about
// the other. Every operation runs to completion before returning and a
// failed operation leaves all entities exactly as they were.
type Store struct {
	members map[Identity]Member
	items   map[Identity]Item
	day     int
	log     *slog.Logger
}

// NewStore creates an empty store. A nil logger falls back to the default.
func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		members: make(map[Identity]Member),
		items:   make(map[Identity]Item),
		log:     log,
	}
}

// ------------------ Members ------------------

// Members returns all members.
func (s *Store) Members() []Member {
	out := make([]Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m)
	}
	return out
}

// Member returns the member with the given identity.
func (s *Store) Member(id Identity) (Member, error) {
	m, ok := s.members[id]
	if !ok {
		return Member{}, ErrDoesntExist
	}
	return m, nil
}

// AddMember inserts a member unless a duplicate already exists. Two
// members are duplicates when they share an email, phone number or
// identity.
func (s *Store) AddMember(m Member) error {
	if s.ExistsMember(m) {
		return ErrAlreadyExists
	}
	s.members[m.ID] = m
	s.log.Debug("member added", slog.String("id", m.ID.String()), slog.String("name", m.Name))
	return nil
}

// RemoveMember deletes the member with the given identity.
func (s *Store) RemoveMember(id Identity) error {
	if _, ok := s.members[id]; !ok {
		return ErrDoesntExist
	}
	delete(s.members, id)
	s.log.Debug("member removed", slog.String("id", id.String()))
	return nil
}

// UpdateMember replaces the record stored under old's identity.
func (s *Store) UpdateMember(old Member, updated Member) error {
	if _, ok := s.members[old.ID]; !ok {
		return ErrDoesntExist
	}
	s.members[old.ID] = updated
	s.log.Debug("member updated", slog.String("id", old.ID.String()))
	return nil
}

// ExistsMember reports whether any stored member matches m by email,
// phone number or identity.
func (s *Store) ExistsMember(m Member) bool {
	for _, stored := range s.members {
		if stored.Matches(m) {
			return true
		}
	}
	return false
}

// ------------------ Items ------------------

// Items returns all items.
func (s *Store) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for _, i := range s.items {
		out = append(out, i.Clone())
	}
	return out
}

// ItemsForMember returns the items owned by the given member.
func (s *Store) ItemsForMember(m Member) []Item {
	var out []Item
	for _, i := range s.items {
		if i.Owner.ID == m.ID {
			out = append(out, i.Clone())
		}
	}
	return out
}

// Item returns the item with the given identity.
func (s *Store) Item(id Identity) (Item, error) {
	i, ok := s.items[id]
	if !ok {
		return Item{}, ErrDoesntExist
	}
	return i.Clone(), nil
}

// AddItem inserts an item and credits its owner the listing bonus,
// persisting the updated owner back through UpdateMember. The operation
// is all or nothing: when the owner cannot be resolved or credited the
// item is not inserted and ErrCannotUpdate is returned.
func (s *Store) AddItem(item Item) error {
	if _, ok := s.items[item.ID]; ok {
		return ErrAlreadyExists
	}
	owner, err := s.Member(item.Owner.ID)
	if err != nil {
		return ErrCannotUpdate
	}
	if err := owner.AddCredits(listingBonus); err != nil {
		return ErrCannotUpdate
	}
	if err := s.UpdateMember(owner, owner); err != nil {
		return ErrCannotUpdate
	}
	s.items[item.ID] = item.Clone()
	s.log.Debug("item added",
		slog.String("id", item.ID.String()),
		slog.String("name", item.Name),
		slog.String("owner", owner.Name))
	return nil
}

// RemoveItem deletes the item with the given identity.
func (s *Store) RemoveItem(id Identity) error {
	if _, ok := s.items[id]; !ok {
		return ErrCannotDelete
	}
	delete(s.items, id)
	s.log.Debug("item removed", slog.String("id", id.String()))
	return nil
}

// UpdateItem replaces the stored record with the same identity.
func (s *Store) UpdateItem(item Item) error {
	if _, ok := s.items[item.ID]; !ok {
		return ErrCannotUpdate
	}
	s.items[item.ID] = item.Clone()
	s.log.Debug("item updated", slog.String("id", item.ID.String()))
	return nil
}

// CountItemsForMember counts the items owned by the given member.
func (s *Store) CountItemsForMember(m Member) int {
	count := 0
	for _, i := range s.items {
		if i.Owner.ID == m.ID {
			count++
		}
	}
	return count
}

// ------------------ Contracts ------------------

// Contract finds the stored contract matching ref's identity. There is no
// secondary index; every item's history is scanned linearly.
func (s *Store) Contract(ref Contract) (Contract, error) {
	for _, item := range s.items {
		for _, c := range item.History {
			if c.Equal(ref) {
				return c, nil
			}
		}
	}
	return Contract{}, ErrDoesntExist
}

// ItemForContract finds the item whose history holds the contract
// matching ref's identity.
func (s *Store) ItemForContract(ref Contract) (Item, error) {
	for _, item := range s.items {
		for _, c := range item.History {
			if c.Equal(ref) {
				return item.Clone(), nil
			}
		}
	}
	return Item{}, ErrDoesntExist
}

// ------------------ Time ------------------

// IncrTime advances the logical day counter by one. Contract status is
// derived lazily at read time, so no contract is touched here.
func (s *Store) IncrTime() {
	s.day++
	s.log.Debug("day advanced", slog.Int("day", s.day))
}

// Now returns the current logical day.
func (s *Store) Now() int {
	return s.day
}
