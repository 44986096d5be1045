package model

import "strings"

// CreateTeamForm is the team builder form submission.
type CreateTeamForm struct {
	TeamName string  `form:"team_name"`
	Members  []int64 `form:"members"`
}

// CreateTeamRequest is the API payload for creating a team.
type CreateTeamRequest struct {
	TeamName string  `json:"team_name"`
	Sport    string  `json:"sport"`
	Members  []int64 `json:"members"`
}

// NewCreateTeamRequest builds the API payload for sport from a submitted form.
func NewCreateTeamRequest(sport string, form CreateTeamForm) CreateTeamRequest {
	return CreateTeamRequest{
		TeamName: strings.TrimSpace(form.TeamName),
		Sport:    sport,
		Members:  form.Members,
	}
}

// Validate checks that the team has a name and at least one member.
func (r CreateTeamRequest) Validate() error {
	if len(r.Members) == 0 {
		return ErrEmptyMembers
	}
	if r.TeamName == "" {
		return ErrInvalidTeamName
	}
	return nil
}

// RosterMessage is sent by the team builder page over the roster socket.
type RosterMessage struct {
	// Type is "sport" to switch the watched sport or "refresh" to fetch now.
	Type  string `json:"type"`
	Sport string `json:"sport,omitempty"`
}

// RosterStudent is one selectable student pushed to the team builder.
type RosterStudent struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
}

// RosterUpdate is pushed to the team builder on every roster refresh.
type RosterUpdate struct {
	Sport    string          `json:"sport"`
	Students []RosterStudent `json:"students"`
}

// Roster message types.
const (
	RosterMessageSport   = "sport"
	RosterMessageRefresh = "refresh"
)
