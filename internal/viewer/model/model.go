// Package model provides the read models of the public student view.
package model

import (
	bracketModel "github.com/festy23/sportsday/internal/bracket/model"
	teamModel "github.com/festy23/sportsday/internal/team/model"
)

// SportPage is everything the student page of one sport shows.
type SportPage struct {
	Teams   []teamModel.Team
	Matches []bracketModel.Match
}
