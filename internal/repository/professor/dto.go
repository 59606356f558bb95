package professor

import (
	"encoding/json"
	"fmt"

	domprof "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/professor"
)

type professorDTO struct {
	ID       string   `json:"id"`
	MongoID  string   `json:"_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	ClassIDs []string `json:"classIds"`
}

func (d professorDTO) toDomain() (domprof.Professor, error) {
	id := d.ID
	if id == "" {
		id = d.MongoID
	}
	p, err := domprof.New(id, d.Name, d.Email, d.ClassIDs)
	if err != nil {
		return domprof.Professor{}, fmt.Errorf("invalid professor payload: %w", err)
	}
	return p, nil
}

func parseProfessor(raw json.RawMessage) (domprof.Professor, error) {
	var dto professorDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domprof.Professor{}, fmt.Errorf("decode professor: %w", err)
	}
	return dto.toDomain()
}
