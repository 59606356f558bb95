// Package student defines the student aggregate.
package student

import "fmt"

// Student is a student record (immutable value object).
type Student struct {
	id         string
	name       string
	enrollment string
	semester   int
	division   string
	classIDs   []string
}

// New validates and creates a Student.
func New(id, name, enrollment string, semester int, division string, classIDs []string) (Student, error) {
	if id == "" {
		return Student{}, fmt.Errorf("student ID is required")
	}
	if name == "" {
		return Student{}, fmt.Errorf("student name is required")
	}
	if semester < 0 {
		return Student{}, fmt.Errorf("semester must not be negative")
	}
	return Student{
		id:         id,
		name:       name,
		enrollment: enrollment,
		semester:   semester,
		division:   division,
		classIDs:   append([]string(nil), classIDs...),
	}, nil
}

// ID returns the student identifier.
func (s Student) ID() string { return s.id }

// Name returns the student's full name.
func (s Student) Name() string { return s.name }

// Enrollment returns the enrollment number.
func (s Student) Enrollment() string { return s.enrollment }

// Semester returns the current semester.
func (s Student) Semester() int { return s.semester }

// Division returns the division label.
func (s Student) Division() string { return s.division }

// ClassIDs returns the identifiers of classes the student belongs to.
func (s Student) ClassIDs() []string { return s.classIDs }
