package lending

import (
	"fmt"
	"strings"
)

// Field is one entry in an entity's field registry: a fixed name, a
// display-string getter and setter, and whether the console editor may
// touch it. Non-editable fields are still settable so that a record can
// be rebuilt from its complete map form.
type Field struct {
	Name     string
	Editable bool
	Get      func() string
	Set      func(string) error
}

// Record is implemented by every entity the console can display and edit.
// Fields must return the registry in a fixed order, bound to the receiver.
type Record interface {
	Fields() []Field
}

// Head returns the ordered field names of a record.
func Head(r Record) []string {
	fields := r.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// EditableHead returns the subset of field names the editor may change.
func EditableHead(r Record) []string {
	var names []string
	for _, f := range r.Fields() {
		if f.Editable {
			names = append(names, f.Name)
		}
	}
	return names
}

// ToMap converts a record to its flat key to display-string mapping.
func ToMap(r Record) map[string]string {
	out := make(map[string]string, len(r.Fields()))
	for _, f := range r.Fields() {
		out[f.Name] = f.Get()
	}
	return out
}

// EncodeRecord renders a record in the bracketed key-value grammar:
// [key,value;key,value;...]. Nested records appear bracketed inside their
// value, which is why splitting has to count bracket depth.
func EncodeRecord(r Record) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range r.Fields() {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(f.Name)
		sb.WriteByte(',')
		sb.WriteString(f.Get())
	}
	sb.WriteByte(']')
	return sb.String()
}

// DecodeRecord parses the bracketed grammar back into a key to value map.
// Separators inside nested bracketed values are ignored by tracking the
// open/close depth, so a nested member or contract never mis-splits.
func DecodeRecord(s string) (map[string]string, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("malformed record %q: missing outer brackets", s)
	}
	out := make(map[string]string)
	for _, pair := range splitTopLevel(s[1:len(s)-1], ';') {
		if pair == "" {
			continue
		}
		key, value, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}

// splitTopLevel splits s on sep, ignoring separators nested inside
// brackets.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// splitPair splits "key,value" on the first top-level comma. Everything
// after the comma belongs to the value, so values may contain commas.
func splitPair(pair string) (string, string, error) {
	depth := 0
	for i := 0; i < len(pair); i++ {
		switch pair[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				return pair[:i], pair[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("malformed record entry %q: missing key separator", pair)
}

// applyMap writes values from data into the record through its setters.
// With complete set, every registered field must be present; otherwise
// only supplied keys are applied and the rest keep their prior values.
func applyMap(r Record, data map[string]string, complete bool) error {
	for _, f := range r.Fields() {
		value, ok := data[f.Name]
		if !ok {
			if complete {
				return fmt.Errorf("missing field %q", f.Name)
			}
			continue
		}
		if err := f.Set(value); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return nil
}

// emptyList is the encoding of a list with no entries.
const emptyList = "-"

func encodeContractList(contracts []Contract) string {
	if len(contracts) == 0 {
		return emptyList
	}
	parts := make([]string, len(contracts))
	for i, c := range contracts {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ";") + "]"
}

func parseContractList(s string) ([]Contract, error) {
	if s == emptyList {
		return nil, nil
	}
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("malformed contract list %q", s)
	}
	var out []Contract
	for _, part := range splitTopLevel(s[1:len(s)-1], ';') {
		if part == "" {
			continue
		}
		c, err := ParseContract(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
