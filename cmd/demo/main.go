// Command demo seeds the demonstration data and prints a short
// walkthrough of the tracker: the seeded members and items, then the
// contract statuses as the logical clock advances.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"lending-tracker/lending"

	"github.com/olekukonko/tablewriter"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store := lending.NewStore(log)
	if err := store.InitDemo(); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding demo data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Members:")
	memberTable := tablewriter.NewWriter(os.Stdout)
	memberTable.SetHeader([]string{"ID", "Name", "Email", "Phone", "Credits"})
	for _, m := range store.Members() {
		memberTable.Append([]string{m.ID.String(), m.Name, m.Email, m.Phone, m.Credits.String()})
	}
	memberTable.Render()

	fmt.Println("\nItems:")
	itemTable := tablewriter.NewWriter(os.Stdout)
	itemTable.SetHeader([]string{"ID", "Name", "Category", "Owner", "Cost/Day", "Bookings"})
	for _, i := range store.Items() {
		itemTable.Append([]string{
			i.ID.String(), i.Name, i.Category.String(), i.Owner.Name,
			i.CostPerDay.String(), strconv.Itoa(len(i.History)),
		})
	}
	itemTable.Render()

	// Status is derived at read time, so the same contracts flip from
	// Future to Active to Finished as the clock moves.
	for _, jump := range []int{0, 7, 22} {
		for store.Now() < jump {
			store.IncrTime()
		}
		fmt.Printf("\nContracts on day %d:\n", store.Now())
		contractTable := tablewriter.NewWriter(os.Stdout)
		contractTable.SetHeader([]string{"Item", "Lendee", "Start", "End", "Credits", "Status"})
		for _, i := range store.Items() {
			for _, c := range i.History {
				contractTable.Append([]string{
					i.Name, c.Lendee.Name,
					strconv.Itoa(c.StartDay), strconv.Itoa(c.EndDay),
					c.Credits.String(), c.StatusAt(store.Now()).String(),
				})
			}
		}
		contractTable.Render()
	}
}
