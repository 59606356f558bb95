package hodconsole

import (
	domclass "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/class"
	domhod "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/hod"
	domprof "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/professor"
	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
)

// HOD is the authenticated department head.
type HOD struct {
	ID   string
	Name string
}

// Student is a student record.
type Student struct {
	ID         string
	Name       string
	Enrollment string
	Semester   int
	Division   string
	ClassIDs   []string
}

// Professor is a professor record.
type Professor struct {
	ID       string
	Name     string
	Email    string
	ClassIDs []string
}

// Class is a class record.
type Class struct {
	ID           string
	Name         string
	Semester     int
	Division     string
	ProfessorIDs []string
	StudentIDs   []string
}

func fromInternalHOD(h domhod.HOD) HOD {
	return HOD{ID: h.ID(), Name: h.Name()}
}

func fromInternalStudent(s domstudent.Student) Student {
	return Student{
		ID:         s.ID(),
		Name:       s.Name(),
		Enrollment: s.Enrollment(),
		Semester:   s.Semester(),
		Division:   s.Division(),
		ClassIDs:   s.ClassIDs(),
	}
}

func fromInternalProfessor(p domprof.Professor) Professor {
	return Professor{ID: p.ID(), Name: p.Name(), Email: p.Email(), ClassIDs: p.ClassIDs()}
}

func fromInternalClass(c domclass.Class) Class {
	return Class{
		ID:           c.ID(),
		Name:         c.Name(),
		Semester:     c.Semester(),
		Division:     c.Division(),
		ProfessorIDs: c.ProfessorIDs(),
		StudentIDs:   c.StudentIDs(),
	}
}
