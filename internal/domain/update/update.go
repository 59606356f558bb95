// Package update defines the sanitized payload for batch entity updates.
package update

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
)

// Allow-listed mutable field names.
const (
	FieldSemester = "semester"
	FieldDivision = "division"
)

// Update is a sanitized batch update. Only allow-listed fields survive
// sanitization; nil fields are left unchanged on the entity.
type Update struct {
	semester *int
	division *string
}

// New sanitizes a raw field map into an Update. Unknown fields and fields
// that fail coercion are dropped silently. Returns domain.ErrEmptyUpdate when
// nothing usable remains.
func New(fields map[string]any) (Update, error) {
	var u Update
	for name, val := range fields {
		switch name {
		case FieldSemester:
			if n, ok := coerceSemester(val); ok {
				u.semester = &n
			}
		case FieldDivision:
			if s, ok := coerceDivision(val); ok {
				u.division = &s
			}
		}
	}
	if u.semester == nil && u.division == nil {
		return Update{}, fmt.Errorf("no mutable fields in update: %w", domain.ErrEmptyUpdate)
	}
	return u, nil
}

// Semester returns the new semester, or nil if unchanged.
func (u Update) Semester() *int { return u.semester }

// Division returns the new division, or nil if unchanged.
func (u Update) Division() *string { return u.division }

// coerceSemester accepts ints, integral floats, and numeric strings.
// Semesters are positive.
func coerceSemester(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, v > 0
	case int64:
		return int(v), v > 0
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), v > 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, n > 0
	default:
		return 0, false
	}
}

// coerceDivision accepts non-empty strings after trimming.
func coerceDivision(val any) (string, bool) {
	s, ok := val.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
