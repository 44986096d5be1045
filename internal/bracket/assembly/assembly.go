// Package assembly turns the flat match list of a bracket into the
// round-ordered, winner-annotated model the bracket views render.
package assembly

import (
	"sort"

	"github.com/festy23/sportsday/internal/bracket/model"
)

// GroupByRound partitions matches by round. Within a round, matches keep the
// order they had in the input; duplicates are kept as encountered.
func GroupByRound(matches []model.Match) map[model.RoundNumber][]model.Match {
	grouped := make(map[model.RoundNumber][]model.Match)
	for _, m := range matches {
		grouped[m.Round] = append(grouped[m.Round], m)
	}
	return grouped
}

// OrderRounds returns the rounds of grouped in ascending numeric order.
func OrderRounds(grouped map[model.RoundNumber][]model.Match) []model.RoundNumber {
	rounds := make([]model.RoundNumber, 0, len(grouped))
	for r := range grouped {
		rounds = append(rounds, r)
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i] < rounds[j] })
	return rounds
}

// SortRoundKeys orders textual round identifiers numerically, so "10" comes
// after "9". It fails on the first key that is not an integer.
func SortRoundKeys(keys []string) ([]model.RoundNumber, error) {
	rounds := make([]model.RoundNumber, 0, len(keys))
	for _, k := range keys {
		r, err := model.ParseRoundNumber(k)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i] < rounds[j] })
	return rounds, nil
}

// Completion is the tournament status derived from a match list.
type Completion struct {
	Complete bool
	// Champion is the winner name shown when Complete; empty otherwise.
	Champion string
}

// DetectCompletion reports the tournament complete when some completed match
// has no incomplete match in a later round. The champion is the winner of the
// last match in the given order, not necessarily of the highest round: callers
// pass matches exactly as the API returned them.
func DetectCompletion(matches []model.Match) Completion {
	if len(matches) == 0 {
		return Completion{}
	}

	complete := false
	for _, m := range matches {
		if !m.IsCompleted {
			continue
		}
		if !hasPendingAfter(matches, m.Round) {
			complete = true
			break
		}
	}
	if !complete {
		return Completion{}
	}

	return Completion{
		Complete: true,
		Champion: matches[len(matches)-1].Winner(),
	}
}

func hasPendingAfter(matches []model.Match, round model.RoundNumber) bool {
	for _, m := range matches {
		if m.Round > round && !m.IsCompleted {
			return true
		}
	}
	return false
}
