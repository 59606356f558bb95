package update

import (
	"errors"
	"testing"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
)

func TestNew_SemesterCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
		drop  bool
	}{
		{"int", 5, 5, false},
		{"int64", int64(7), 7, false},
		{"integral float", float64(3), 3, false},
		{"numeric string", "5", 5, false},
		{"padded numeric string", " 8 ", 8, false},
		{"fractional float", 3.5, 0, true},
		{"non-numeric string", "abc", 0, true},
		{"zero", 0, 0, true},
		{"negative", -2, 0, true},
		{"bool", true, 0, true},
		{"nil", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(map[string]any{FieldSemester: tt.value, FieldDivision: "A"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.drop {
				if u.Semester() != nil {
					t.Errorf("semester = %d, want dropped", *u.Semester())
				}
				return
			}
			if u.Semester() == nil || *u.Semester() != tt.want {
				t.Errorf("semester = %v, want %d", u.Semester(), tt.want)
			}
		})
	}
}

func TestNew_DivisionCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
		drop  bool
	}{
		{"plain", "A", "A", false},
		{"trimmed", "  B \n", "B", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"non-string", 7, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(map[string]any{FieldDivision: tt.value, FieldSemester: 1})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.drop {
				if u.Division() != nil {
					t.Errorf("division = %q, want dropped", *u.Division())
				}
				return
			}
			if u.Division() == nil || *u.Division() != tt.want {
				t.Errorf("division = %v, want %q", u.Division(), tt.want)
			}
		})
	}
}

func TestNew_UnknownFieldsDropped(t *testing.T) {
	u, err := New(map[string]any{"semester": 5, "division": "A", "name": "x", "role": "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Semester() == nil || *u.Semester() != 5 {
		t.Errorf("semester = %v, want 5", u.Semester())
	}
	if u.Division() == nil || *u.Division() != "A" {
		t.Errorf("division = %v, want A", u.Division())
	}
}

func TestNew_EmptyAfterSanitization(t *testing.T) {
	cases := []map[string]any{
		nil,
		{},
		{"name": "x"},
		{"semester": "abc", "division": "   "},
	}
	for _, fields := range cases {
		if _, err := New(fields); !errors.Is(err, domain.ErrEmptyUpdate) {
			t.Errorf("New(%v) err = %v, want ErrEmptyUpdate", fields, err)
		}
	}
}
