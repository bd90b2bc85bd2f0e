package kana

import (
	"fmt"
	"strings"
)

// Rows returns a copy of the syllabary table in traditional order.
func Rows() []Row {
	out := make([]Row, len(table))
	for i, row := range table {
		out[i] = Row{
			Name:       row.Name,
			Alias:      row.Alias,
			Characters: append([]Character(nil), row.Characters...),
		}
	}
	return out
}

func RowNames() []string {
	names := make([]string, len(table))
	for i, row := range table {
		names[i] = row.Name
	}
	return names
}

// Select returns the characters of the named rows in table order. Names
// match either the row label (か行) or its romaji alias (ka). An empty
// selection means every row.
func Select(names []string) ([]Character, error) {
	if len(names) == 0 {
		names = RowNames()
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		row, ok := lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown kana row %q (valid: %s)", name, strings.Join(RowNames(), ", "))
		}
		wanted[row.Name] = true
	}

	out := make([]Character, 0, 46)
	for _, row := range table {
		if wanted[row.Name] {
			out = append(out, row.Characters...)
		}
	}
	return out, nil
}

func lookup(name string) (Row, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, row := range table {
		if key == row.Name || key == row.Alias || key == strings.TrimSuffix(row.Name, "行") {
			return row, true
		}
	}
	return Row{}, false
}
