// Package model provides domain models and DTOs for student module.
package model

import (
	"strings"

	"github.com/festy23/sportsday/internal/sport"
)

// Student represents a registered student as returned by the API.
type Student struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	RollNumber       string `json:"roll_number"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Cricket          bool   `json:"cricket"`
	Throwball        bool   `json:"throwball"`
	KhoKho           bool   `json:"kho_kho"`
	BadmintonDoubles bool   `json:"badminton_doubles"`
	Relay            bool   `json:"relay"`
	TugOfWar         bool   `json:"tug_of_war"`
}

// Interested reports whether the student registered interest in the named sport.
func (s Student) Interested(name string) bool {
	switch name {
	case sport.Cricket:
		return s.Cricket
	case sport.Throwball:
		return s.Throwball
	case sport.KhoKho:
		return s.KhoKho
	case sport.BadmintonDoubles:
		return s.BadmintonDoubles
	case sport.Relay:
		return s.Relay
	case sport.TugOfWar:
		return s.TugOfWar
	default:
		return false
	}
}

// Sports returns the sports the student is interested in, in catalog order.
func (s Student) Sports() []sport.Sport {
	var out []sport.Sport
	for _, sp := range sport.All() {
		if s.Interested(sp.Name) {
			out = append(out, sp)
		}
	}
	return out
}

// SportLabels returns the labels of Sports joined with ", ".
func (s Student) SportLabels() string {
	sports := s.Sports()
	labels := make([]string, 0, len(sports))
	for _, sp := range sports {
		labels = append(labels, sp.Label)
	}
	return strings.Join(labels, ", ")
}
