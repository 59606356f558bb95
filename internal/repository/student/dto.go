package student

import (
	"encoding/json"
	"fmt"

	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/update"
)

// studentDTO maps the backend's wire shape. Mongo-backed endpoints use
// "_id", a few older ones use "id"; both are accepted.
type studentDTO struct {
	ID         string   `json:"id"`
	MongoID    string   `json:"_id"`
	Name       string   `json:"name"`
	Enrollment string   `json:"enrollmentNumber"`
	Semester   int      `json:"semester"`
	Division   string   `json:"division"`
	ClassIDs   []string `json:"classIds"`
}

func (d studentDTO) toDomain() (domstudent.Student, error) {
	id := d.ID
	if id == "" {
		id = d.MongoID
	}
	s, err := domstudent.New(id, d.Name, d.Enrollment, d.Semester, d.Division, d.ClassIDs)
	if err != nil {
		return domstudent.Student{}, fmt.Errorf("invalid student payload: %w", err)
	}
	return s, nil
}

func parseStudent(raw json.RawMessage) (domstudent.Student, error) {
	var dto studentDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domstudent.Student{}, fmt.Errorf("decode student: %w", err)
	}
	return dto.toDomain()
}

// updatePayload builds the wire body for a sanitized update.
func updatePayload(u update.Update) map[string]any {
	body := make(map[string]any, 2)
	if v := u.Semester(); v != nil {
		body[update.FieldSemester] = *v
	}
	if v := u.Division(); v != nil {
		body[update.FieldDivision] = *v
	}
	return body
}
