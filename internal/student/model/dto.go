package model

import "strings"

// CreateStudentRequest is the registration form and the API create payload.
// Checkbox inputs post "true" so the sport flags bind as booleans.
type CreateStudentRequest struct {
	Name             string `form:"name" json:"name"`
	RollNumber       string `form:"roll_number" json:"roll_number"`
	Email            string `form:"email" json:"email"`
	Phone            string `form:"phone" json:"phone"`
	Cricket          bool   `form:"cricket" json:"cricket"`
	Throwball        bool   `form:"throwball" json:"throwball"`
	KhoKho           bool   `form:"kho_kho" json:"kho_kho"`
	BadmintonDoubles bool   `form:"badminton_doubles" json:"badminton_doubles"`
	Relay            bool   `form:"relay" json:"relay"`
	TugOfWar         bool   `form:"tug_of_war" json:"tug_of_war"`
}

// Normalize trims surrounding whitespace from text fields.
func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RollNumber = strings.TrimSpace(r.RollNumber)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

// Validate checks the required fields.
func (r CreateStudentRequest) Validate() error {
	if r.Name == "" {
		return ErrNameRequired
	}
	if r.RollNumber == "" {
		return ErrRollNumberRequired
	}
	return nil
}
