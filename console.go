package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"lending-tracker/lending"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

const fallbackTermWidth = 120

// termWidth returns the terminal width, or a fallback when stdout is not
// a terminal (piped output, tests).
func termWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackTermWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackTermWidth
	}
	return width
}

// renderTable prints headers and rows as a bordered table sized to the
// terminal.
func renderTable(headers []string, rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	if cols := len(headers); cols > 0 {
		budget := termWidth()/cols - 3
		if budget < 8 {
			budget = 8
		}
		table.SetColWidth(budget)
		for i, row := range rows {
			for j, cell := range row {
				rows[i][j] = truncateString(cell, budget)
			}
		}
	}
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

// renderRecords prints one row per record using the shared field registry
// head.
func renderRecords(records []lending.Record) {
	if len(records) == 0 {
		return
	}
	headers := lending.Head(records[0])
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, 0, len(headers))
		for _, f := range r.Fields() {
			row = append(row, f.Get())
		}
		rows = append(rows, row)
	}
	renderTable(headers, rows)
}

// promptLine shows a prompt and reads one trimmed line. The second return
// is false when input is exhausted.
func promptLine(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// editRecord walks the record's editable fields and collects the values
// the user supplies. A blank answer keeps the prior value, so the
// returned map only holds the fields to change.
func editRecord(sc *bufio.Scanner, r lending.Record) (map[string]string, bool) {
	changes := make(map[string]string)
	for _, f := range r.Fields() {
		if !f.Editable {
			continue
		}
		answer, ok := promptLine(sc, fmt.Sprintf("%s [%s]: ", f.Name, f.Get()))
		if !ok {
			return nil, false
		}
		if answer != "" {
			changes[f.Name] = answer
		}
	}
	return changes, true
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
