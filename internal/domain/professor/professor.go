// Package professor defines the professor aggregate.
package professor

import "fmt"

// Professor is a professor record (immutable value object).
type Professor struct {
	id       string
	name     string
	email    string
	classIDs []string
}

// New validates and creates a Professor.
func New(id, name, email string, classIDs []string) (Professor, error) {
	if id == "" {
		return Professor{}, fmt.Errorf("professor ID is required")
	}
	if name == "" {
		return Professor{}, fmt.Errorf("professor name is required")
	}
	return Professor{
		id:       id,
		name:     name,
		email:    email,
		classIDs: append([]string(nil), classIDs...),
	}, nil
}

// ID returns the professor identifier.
func (p Professor) ID() string { return p.id }

// Name returns the professor's full name.
func (p Professor) Name() string { return p.name }

// Email returns the contact email.
func (p Professor) Email() string { return p.email }

// ClassIDs returns the identifiers of classes the professor teaches.
func (p Professor) ClassIDs() []string { return p.classIDs }
