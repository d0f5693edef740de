// Package filter replaces the legacy -1/"all" sentinel convention with a
// tagged variant consumed uniformly by repository methods.
package filter

import (
	"fmt"
	"strconv"
	"strings"
)

type kind int

const (
	kindNone kind = iota
	kindEquals
	kindOneOf
)

// Filter is one of: no filter, equality on a single id, or an IN set.
type Filter struct {
	k      kind
	value  int
	values []int
}

func None() Filter {
	return Filter{k: kindNone}
}

func Equals(id int) Filter {
	return Filter{k: kindEquals, value: id}
}

func OneOf(ids []int) Filter {
	if len(ids) == 0 {
		return None()
	}
	if len(ids) == 1 {
		return Equals(ids[0])
	}
	return Filter{k: kindOneOf, values: ids}
}

// Parse decodes the wire forms the legacy UI sends: "", "-1" and "all"
// mean no filter; a comma list means an IN set; anything else is an
// equality match.
func Parse(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-1" || strings.EqualFold(s, "all") {
		return None(), nil
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		ids := make([]int, 0, len(parts))
		for _, p := range parts {
			id, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Filter{}, fmt.Errorf("invalid filter value %q", p)
			}
			ids = append(ids, id)
		}
		return OneOf(ids), nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return Filter{}, fmt.Errorf("invalid filter value %q", s)
	}
	return Equals(id), nil
}

// IsNone reports whether the filter matches everything.
func (f Filter) IsNone() bool {
	return f.k == kindNone
}

// Append adds a WHERE fragment for column col to conds/args, numbering
// placeholders from *argIdx. No-op for the none variant.
func (f Filter) Append(col string, conds *[]string, args *[]interface{}, argIdx *int) {
	switch f.k {
	case kindEquals:
		*conds = append(*conds, fmt.Sprintf("%s = $%d", col, *argIdx))
		*args = append(*args, f.value)
		*argIdx++
	case kindOneOf:
		*conds = append(*conds, fmt.Sprintf("%s = ANY($%d)", col, *argIdx))
		*args = append(*args, f.values)
		*argIdx++
	}
}

// Matches applies the filter in memory.
func (f Filter) Matches(id int) bool {
	switch f.k {
	case kindEquals:
		return id == f.value
	case kindOneOf:
		for _, v := range f.values {
			if v == id {
				return true
			}
		}
		return false
	}
	return true
}
