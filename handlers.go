package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"lending-tracker/lending"

	"github.com/shopspring/decimal"
)

// runSession drives the interactive menu until the user quits or input
// runs out. Quitting here is the only way the process terminates.
func runSession(store *lending.Store, log *slog.Logger) error {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the Lending Tracker!")
	fmt.Println("Available commands:")
	fmt.Println("  Members:   add member, list members, view member, edit member, remove member")
	fmt.Println("  Items:     add item, list items, view item, edit item, remove item")
	fmt.Println("  Contracts: book item, view contract")
	fmt.Println("  Time:      advance day, time")
	fmt.Println("  System:    exit")

	log.Info("session started", slog.Int("day", store.Now()))

	for {
		fmt.Printf("\n[day %d] > ", store.Now())
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add member":
			handleAddMember(scanner, store)
		case "list members":
			handleListMembers(store)
		case "view member":
			handleViewMember(scanner, store)
		case "edit member":
			handleEditMember(scanner, store)
		case "remove member":
			handleRemoveMember(scanner, store)
		case "add item":
			handleAddItem(scanner, store)
		case "list items":
			handleListItems(store)
		case "view item":
			handleViewItem(scanner, store)
		case "edit item":
			handleEditItem(scanner, store)
		case "remove item":
			handleRemoveItem(scanner, store)
		case "book item":
			handleBookItem(scanner, store)
		case "view contract":
			handleViewContract(scanner, store)
		case "advance day":
			store.IncrTime()
			fmt.Printf("It is now day %d\n", store.Now())
		case "time":
			fmt.Printf("Current day: %d\n", store.Now())
		case "exit":
			fmt.Println("Goodbye!")
			log.Info("session ended", slog.Int("day", store.Now()))
			return nil
		case "":
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
	return nil
}

func handleAddMember(sc *bufio.Scanner, store *lending.Store) {
	name, ok := promptLine(sc, "Name: ")
	if !ok {
		return
	}
	email, ok := promptLine(sc, "Email: ")
	if !ok {
		return
	}
	phone, ok := promptLine(sc, "Phone: ")
	if !ok {
		return
	}

	member, err := lending.NewMember(name, email, phone, store.Now())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := store.AddMember(member); err != nil {
		fmt.Printf("Error adding member: %v\n", err)
		return
	}
	fmt.Printf("Added member '%s' with ID %s\n", member.Name, member.ID)
}

func handleListMembers(store *lending.Store) {
	members := store.Members()
	if len(members) == 0 {
		fmt.Println("No members registered.")
		return
	}
	records := make([]lending.Record, len(members))
	for i := range members {
		records[i] = &members[i]
	}
	renderRecords(records)
}

func handleViewMember(sc *bufio.Scanner, store *lending.Store) {
	member, ok := promptMember(sc, store)
	if !ok {
		return
	}
	renderRecords([]lending.Record{&member})
	fmt.Printf("Owns %d item(s):\n", store.CountItemsForMember(member))
	handleListItemsFor(store, member)
}

func handleEditMember(sc *bufio.Scanner, store *lending.Store) {
	member, ok := promptMember(sc, store)
	if !ok {
		return
	}
	fmt.Println("Press Enter to keep the current value.")
	changes, ok := editRecord(sc, &member)
	if !ok || len(changes) == 0 {
		fmt.Println("Nothing changed.")
		return
	}
	updated, err := member.CopyWith(changes)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := updated.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := store.UpdateMember(member, updated); err != nil {
		fmt.Printf("Error updating member: %v\n", err)
		return
	}
	fmt.Printf("Member '%s' updated\n", updated.Name)
}

func handleRemoveMember(sc *bufio.Scanner, store *lending.Store) {
	member, ok := promptMember(sc, store)
	if !ok {
		return
	}
	if err := store.RemoveMember(member.ID); err != nil {
		fmt.Printf("Error removing member: %v\n", err)
		return
	}
	fmt.Printf("Member '%s' removed\n", member.Name)
}

func handleAddItem(sc *bufio.Scanner, store *lending.Store) {
	owner, ok := promptMember(sc, store)
	if !ok {
		return
	}
	name, ok := promptLine(sc, "Item name: ")
	if !ok {
		return
	}
	description, ok := promptLine(sc, "Description: ")
	if !ok {
		return
	}
	categoryStr, ok := promptLine(sc, "Category (Tool/Vehicle/Game/Toy/Sport/Other): ")
	if !ok {
		return
	}
	costStr, ok := promptLine(sc, "Cost per day: ")
	if !ok {
		return
	}
	cost, err := decimal.NewFromString(costStr)
	if err != nil {
		fmt.Printf("Invalid cost: %s\n", costStr)
		return
	}

	item := lending.NewItem(name, description, lending.CategoryFromString(categoryStr), owner, cost, store.Now())
	if err := store.AddItem(item); err != nil {
		fmt.Printf("Error adding item: %v\n", err)
		return
	}
	fmt.Printf("Added item '%s' with ID %s. %s earned 100 credits for listing it.\n",
		item.Name, item.ID, owner.Name)
}

func handleListItems(store *lending.Store) {
	items := store.Items()
	if len(items) == 0 {
		fmt.Println("No items listed.")
		return
	}
	renderItems(items)
}

func handleListItemsFor(store *lending.Store, member lending.Member) {
	items := store.ItemsForMember(member)
	if len(items) == 0 {
		fmt.Println("No items listed.")
		return
	}
	renderItems(items)
}

// renderItems shows a compact item table; the full record form with the
// nested owner and history is too wide for a listing.
func renderItems(items []lending.Item) {
	rows := make([][]string, 0, len(items))
	for _, i := range items {
		rows = append(rows, []string{
			i.ID.String(),
			i.Name,
			i.Description,
			i.Category.String(),
			i.Owner.Name,
			i.CostPerDay.String(),
			strconv.FormatBool(i.Available),
			strconv.Itoa(len(i.History)),
		})
	}
	renderTable([]string{"ID", "Name", "Description", "Category", "Owner", "Cost/Day", "Available", "Bookings"}, rows)
}

func handleViewItem(sc *bufio.Scanner, store *lending.Store) {
	item, ok := promptItem(sc, store)
	if !ok {
		return
	}
	renderItems([]lending.Item{item})

	part := item.HistoryMap(store.Now())
	for _, bucket := range []struct {
		label     string
		contracts []lending.Contract
	}{
		{"Past", part.Past},
		{"Active", part.Active},
		{"Future", part.Future},
	} {
		if len(bucket.contracts) == 0 {
			continue
		}
		fmt.Printf("%s contracts:\n", bucket.label)
		renderContracts(bucket.contracts, store.Now())
	}

	fmt.Println("Next 30 days:")
	var calendar string
	for _, day := range item.Availability(store.Now()) {
		mark := "."
		if day.Booked {
			mark = "x"
		}
		calendar += mark
	}
	fmt.Printf("  %s  (. free, x booked, starting day %d)\n", calendar, store.Now())
}

func renderContracts(contracts []lending.Contract, now int) {
	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		daysLeft := "n/a"
		if left, ok := c.DaysLeft(now); ok {
			daysLeft = strconv.Itoa(left)
		}
		rows = append(rows, []string{
			c.ID.String(),
			c.Owner.Name,
			c.Lendee.Name,
			strconv.Itoa(c.StartDay),
			strconv.Itoa(c.EndDay),
			strconv.Itoa(c.Length),
			c.Credits.String(),
			c.StatusAt(now).String(),
			daysLeft,
		})
	}
	renderTable([]string{"ID", "Owner", "Lendee", "Start", "End", "Length", "Credits", "Status", "Days Left"}, rows)
}

func handleEditItem(sc *bufio.Scanner, store *lending.Store) {
	item, ok := promptItem(sc, store)
	if !ok {
		return
	}
	fmt.Println("Press Enter to keep the current value.")
	changes, ok := editRecord(sc, &item)
	if !ok || len(changes) == 0 {
		fmt.Println("Nothing changed.")
		return
	}
	updated, err := item.CopyWith(changes)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := store.UpdateItem(updated); err != nil {
		fmt.Printf("Error updating item: %v\n", err)
		return
	}
	fmt.Printf("Item '%s' updated\n", updated.Name)
}

func handleRemoveItem(sc *bufio.Scanner, store *lending.Store) {
	item, ok := promptItem(sc, store)
	if !ok {
		return
	}
	if err := store.RemoveItem(item.ID); err != nil {
		fmt.Printf("Error removing item: %v\n", err)
		return
	}
	fmt.Printf("Item '%s' removed\n", item.Name)
}

func handleBookItem(sc *bufio.Scanner, store *lending.Store) {
	item, ok := promptItem(sc, store)
	if !ok {
		return
	}
	fmt.Print("Lendee ")
	lendee, ok := promptMember(sc, store)
	if !ok {
		return
	}
	startStr, ok := promptLine(sc, fmt.Sprintf("Start day (today is %d): ", store.Now()))
	if !ok {
		return
	}
	start, err := strconv.Atoi(startStr)
	if err != nil {
		fmt.Printf("Invalid day: %s\n", startStr)
		return
	}
	lengthStr, ok := promptLine(sc, "Length in days: ")
	if !ok {
		return
	}
	length, err := strconv.Atoi(lengthStr)
	if err != nil || length <= 0 {
		fmt.Printf("Invalid length: %s\n", lengthStr)
		return
	}

	price := item.CostPerDay.Mul(decimal.NewFromInt(int64(length)))
	contract := lending.NewContract(item.Owner, lendee, start, length, price)
	if err := item.AddContract(contract, store.Now()); err != nil {
		if errors.Is(err, lending.ErrAlreadyExists) {
			fmt.Println("That period is already booked.")
		} else {
			fmt.Printf("Error booking item: %v\n", err)
		}
		return
	}
	if err := store.UpdateItem(item); err != nil {
		fmt.Printf("Error booking item: %v\n", err)
		return
	}
	fmt.Printf("Booked '%s' for %s, day %d to %d (%s credits). Contract ID %s\n",
		item.Name, lendee.Name, contract.StartDay, contract.EndDay, contract.Credits, contract.ID)
}

func handleViewContract(sc *bufio.Scanner, store *lending.Store) {
	idStr, ok := promptLine(sc, "Contract ID: ")
	if !ok {
		return
	}
	ref := lending.Contract{ID: lending.ParseIdentity(idStr)}
	contract, err := store.Contract(ref)
	if err != nil {
		fmt.Printf("Error: contract %s not found\n", idStr)
		return
	}
	renderContracts([]lending.Contract{contract}, store.Now())
	if item, err := store.ItemForContract(ref); err == nil {
		fmt.Printf("Booked item: %s (%s)\n", item.Name, item.ID)
	}
}

func promptMember(sc *bufio.Scanner, store *lending.Store) (lending.Member, bool) {
	idStr, ok := promptLine(sc, "Member ID: ")
	if !ok {
		return lending.Member{}, false
	}
	member, err := store.Member(lending.ParseIdentity(idStr))
	if err != nil {
		fmt.Printf("Error: member %s not found\n", idStr)
		return lending.Member{}, false
	}
	return member, true
}

func promptItem(sc *bufio.Scanner, store *lending.Store) (lending.Item, bool) {
	idStr, ok := promptLine(sc, "Item ID: ")
	if !ok {
		return lending.Item{}, false
	}
	item, err := store.Item(lending.ParseIdentity(idStr))
	if err != nil {
		fmt.Printf("Error: item %s not found\n", idStr)
		return lending.Item{}, false
	}
	return item, true
}
