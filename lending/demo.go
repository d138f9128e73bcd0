package lending

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

// InitDemo populates the store with a few members, items and bookings for
// demonstration purposes.
func (s *Store) InitDemo() error {
	allan, err := NewMember("Allan", "allan@enigma.com", "0123456789", s.Now())
	if err != nil {
		return fmt.Errorf("seed member: %w", err)
	}
	tina, err := NewMember("Tina", "tina@somethingelse.com", "01234543210", s.Now())
	if err != nil {
		return fmt.Errorf("seed member: %w", err)
	}
	turing, err := NewMember("Turing", "turing@enigma.com", "9876567890", s.Now())
	if err != nil {
		return fmt.Errorf("seed member: %w", err)
	}
	jeff, err := NewMember("Jeff", "jeff@bezos.com", "0987654321", s.Now())
	if err != nil {
		return fmt.Errorf("seed member: %w", err)
	}
	for _, m := range []Member{allan, tina, turing, jeff} {
		if err := s.AddMember(m); err != nil {
			return fmt.Errorf("seed member %s: %w", m.Name, err)
		}
	}

	monopoly := NewItem("Monopoly", "Family Game", CategoryGame, allan, decimal.NewFromInt(30), s.Now())
	siedler := NewItem("Siedler", "Another Family Game", CategoryGame, allan, decimal.NewFromInt(45), s.Now())
	trex := NewItem("T-Rex", "Dinosaur", CategoryToy, turing, decimal.NewFromInt(10), s.Now())
	hammer := NewItem("Hammer", "A useful tool", CategoryTool, turing, decimal.NewFromInt(150), s.Now())

	bookings := []struct {
		item   *Item
		lendee Member
		start  int
		length int
	}{
		{&trex, tina, s.Now() + 6, 6},
		{&siedler, tina, s.Now() + 12, 9},
		{&hammer, jeff, s.Now(), 10},
	}
	for _, b := range bookings {
		price := b.item.CostPerDay.Mul(decimal.NewFromInt(int64(b.length)))
		c := NewContract(b.item.Owner, b.lendee, b.start, b.length, price)
		if err := b.item.AddContract(c, s.Now()); err != nil {
			return fmt.Errorf("seed booking on %s: %w", b.item.Name, err)
		}
	}

	for _, i := range []Item{monopoly, siedler, trex, hammer} {
		if err := s.AddItem(i); err != nil {
			return fmt.Errorf("seed item %s: %w", i.Name, err)
		}
	}

	s.log.Info("demo data seeded",
		slog.Int("members", len(s.members)),
		slog.Int("items", len(s.items)))
	return nil
}
