package employee

import "strings"

// Employee is a roster entry as exposed by the external backend.
type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Position   string
	Department string
	Role       string
	Active     bool
}

// FullName returns "first last" with surrounding whitespace removed.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
