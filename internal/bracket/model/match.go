// Package model provides domain models for bracket module.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RoundNumber is a bracket stage; round 1 is the earliest.
// It decodes from a JSON number or a numeric JSON string so that ordering
// never depends on how the transport spelled the value.
type RoundNumber int

// ParseRoundNumber converts a textual round identifier to a RoundNumber.
func ParseRoundNumber(s string) (RoundNumber, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRound, s)
	}
	return RoundNumber(n), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RoundNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := ParseRoundNumber(s)
		if err != nil {
			return err
		}
		*r = n
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRound, data)
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRound, data)
	}
	*r = RoundNumber(v)
	return nil
}

// String returns the decimal form of the round.
func (r RoundNumber) String() string {
	return strconv.Itoa(int(r))
}

// Match is one paired contest of a bracket as returned by the API.
// Team and winner references are nil while undetermined.
type Match struct {
	ID          int64       `json:"id"`
	Round       RoundNumber `json:"round"`
	MatchNumber int         `json:"match_number"`
	Team1ID     *int64      `json:"team1_id"`
	Team2ID     *int64      `json:"team2_id"`
	Team1Name   *string     `json:"team1_name"`
	Team2Name   *string     `json:"team2_name"`
	IsCompleted bool        `json:"is_completed"`
	WinnerID    *int64      `json:"winner_id"`
	WinnerName  *string     `json:"winner_name"`
}

// HasTeam reports whether teamID occupies one of the two slots.
func (m Match) HasTeam(teamID int64) bool {
	return (m.Team1ID != nil && *m.Team1ID == teamID) ||
		(m.Team2ID != nil && *m.Team2ID == teamID)
}

// Winner returns the recorded winner name, or "" when none.
func (m Match) Winner() string {
	if m.WinnerName == nil {
		return ""
	}
	return *m.WinnerName
}

// Consistent reports whether the completion flag agrees with the winner reference:
// a match is completed exactly when its winner is one of its two teams.
func (m Match) Consistent() bool {
	hasWinner := m.WinnerID != nil && m.HasTeam(*m.WinnerID)
	return m.IsCompleted == hasWinner
}

// SetWinnerRequest is the API payload recording a match winner.
type SetWinnerRequest struct {
	WinnerID int64 `json:"winner_id"`
}

// SetWinnerForm is the winner button submission of a match card.
type SetWinnerForm struct {
	WinnerID int64 `form:"winner_id" binding:"required"`
}
