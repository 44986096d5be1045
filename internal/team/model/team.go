// Package model provides domain models and DTOs for team module.
package model

// Member is a student on a team roster.
type Member struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
}

// Team represents a team formed for one sport.
type Team struct {
	ID       int64    `json:"id"`
	TeamName string   `json:"team_name"`
	Members  []Member `json:"members"`
}

// MemberNames returns member names in roster order.
func (t Team) MemberNames() []string {
	names := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		names = append(names, m.Name)
	}
	return names
}
