package model

import "errors"

var (
	// ErrInvalidTeamName indicates that the provided team name is empty.
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrEmptyMembers indicates that no student was selected for the team.
	ErrEmptyMembers = errors.New("members list cannot be empty")
	// ErrInvalidTeamID indicates that the team id is not a positive integer.
	ErrInvalidTeamID = errors.New("invalid team id")
	// ErrUnknownSport indicates that the sport is not in the catalog.
	ErrUnknownSport = errors.New("unknown sport")
)
