// Package class defines the class aggregate.
package class

import "fmt"

// Class is a class record (immutable value object).
type Class struct {
	id           string
	name         string
	semester     int
	division     string
	professorIDs []string
	studentIDs   []string
}

// New validates and creates a Class.
func New(id, name string, semester int, division string, professorIDs, studentIDs []string) (Class, error) {
	if id == "" {
		return Class{}, fmt.Errorf("class ID is required")
	}
	if name == "" {
		return Class{}, fmt.Errorf("class name is required")
	}
	if semester < 0 {
		return Class{}, fmt.Errorf("semester must not be negative")
	}
	return Class{
		id:           id,
		name:         name,
		semester:     semester,
		division:     division,
		professorIDs: append([]string(nil), professorIDs...),
		studentIDs:   append([]string(nil), studentIDs...),
	}, nil
}

// ID returns the class identifier.
func (c Class) ID() string { return c.id }

// Name returns the class name.
func (c Class) Name() string { return c.name }

// Semester returns the semester the class belongs to.
func (c Class) Semester() int { return c.semester }

// Division returns the division label.
func (c Class) Division() string { return c.division }

// ProfessorIDs returns the identifiers of assigned professors.
func (c Class) ProfessorIDs() []string { return c.professorIDs }

// StudentIDs returns the identifiers of enrolled students.
func (c Class) StudentIDs() []string { return c.studentIDs }
