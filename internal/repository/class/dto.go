package class

import (
	"encoding/json"
	"fmt"

	domclass "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/class"
)

type classDTO struct {
	ID           string   `json:"id"`
	MongoID      string   `json:"_id"`
	Name         string   `json:"className"`
	AltName      string   `json:"name"`
	Semester     int      `json:"semester"`
	Division     string   `json:"division"`
	ProfessorIDs []string `json:"professorIds"`
	StudentIDs   []string `json:"studentIds"`
}

func (d classDTO) toDomain() (domclass.Class, error) {
	id := d.ID
	if id == "" {
		id = d.MongoID
	}
	name := d.Name
	if name == "" {
		name = d.AltName
	}
	c, err := domclass.New(id, name, d.Semester, d.Division, d.ProfessorIDs, d.StudentIDs)
	if err != nil {
		return domclass.Class{}, fmt.Errorf("invalid class payload: %w", err)
	}
	return c, nil
}

func parseClass(raw json.RawMessage) (domclass.Class, error) {
	var dto classDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domclass.Class{}, fmt.Errorf("decode class: %w", err)
	}
	return dto.toDomain()
}
