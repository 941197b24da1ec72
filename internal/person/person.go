package person

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a person index is outside the catalog.
var ErrNotFound = errors.New("person not found")

// Person is one catalog entry. Immutable once loaded.
type Person struct {
	Name      string `json:"name" yaml:"name"`
	FirstName string `json:"first_name" yaml:"-"`
	BirthYear int    `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	Category  string `json:"category" yaml:"-"`
	Book      string `json:"book,omitempty" yaml:"book,omitempty"`
	Company   string `json:"company,omitempty" yaml:"company,omitempty"`
	Country   string `json:"country,omitempty" yaml:"country,omitempty"`
	Field     string `json:"field,omitempty" yaml:"field,omitempty"`
}

// Context returns the single identifying detail shown alongside the name.
// Precedence: company, then country, then field.
func (p Person) Context() string {
	switch {
	case p.Company != "":
		return p.Company
	case p.Country != "":
		return p.Country
	default:
		return p.Field
	}
}

// firstName extracts the leading name token, the session-unique identity key.
func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
