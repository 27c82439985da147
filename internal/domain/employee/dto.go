package employee

import (
	"strings"

	"golang.org/x/text/cases"
)

// RosterFilter narrows a roster for planning views.
type RosterFilter struct {
	Search     string
	Department string
	ActiveOnly bool
}

// Matches applies the case-insensitive name search, the exact department
// match and the active-only flag.
func (f RosterFilter) Matches(e Employee) bool {
	if f.ActiveOnly && !e.Active {
		return false
	}
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	search := strings.TrimSpace(f.Search)
	if search == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(e.FirstName+" "+e.LastName), fold.String(search))
}

// Apply returns the employees matching the filter, preserving order.
func (f RosterFilter) Apply(employees []Employee) []Employee {
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Departments returns the distinct non-empty departments in roster order.
func Departments(employees []Employee) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range employees {
		if e.Department == "" {
			continue
		}
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	return out
}
