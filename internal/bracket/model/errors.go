package model

import "errors"

var (
	// ErrInvalidRound indicates a round identifier that is not an integer.
	ErrInvalidRound = errors.New("invalid round number")
	// ErrNotEnoughTeams indicates a bracket cannot be generated yet.
	ErrNotEnoughTeams = errors.New("need at least 2 teams to generate bracket")
	// ErrInvalidMatchID indicates that the match id is not a positive integer.
	ErrInvalidMatchID = errors.New("invalid match id")
	// ErrInvalidWinner indicates that the winner id is not a positive integer.
	ErrInvalidWinner = errors.New("invalid winner id")
	// ErrUnknownSport indicates that the sport is not in the catalog.
	ErrUnknownSport = errors.New("unknown sport")
)
