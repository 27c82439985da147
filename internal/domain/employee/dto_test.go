package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func roster() []Employee {
	return []Employee{
		{ID: "1", FirstName: "Élodie", LastName: "Martin", Department: "Sales", Active: true},
		{ID: "2", FirstName: "Jean", LastName: "Dupont", Department: "IT", Active: true},
		{ID: "3", FirstName: "Marc", LastName: "Straße", Department: "IT", Active: false},
	}
}

func TestRosterFilterSearch(t *testing.T) {
	got := RosterFilter{Search: "élodie mar"}.Apply(roster())
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = RosterFilter{Search: "STRASSE"}.Apply(roster())
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	assert.Len(t, RosterFilter{Search: "  "}.Apply(roster()), 3)
}

func TestRosterFilterDepartmentAndActive(t *testing.T) {
	got := RosterFilter{Department: "IT"}.Apply(roster())
	assert.Len(t, got, 2)

	got = RosterFilter{Department: "IT", ActiveOnly: true}.Apply(roster())
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestDepartments(t *testing.T) {
	assert.Equal(t, []string{"Sales", "IT"}, Departments(roster()))
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jean Dupont", Employee{FirstName: "Jean", LastName: "Dupont"}.FullName())
	assert.Equal(t, "Jean", Employee{FirstName: "Jean"}.FullName())
}
