package assembly

import "github.com/festy23/sportsday/internal/bracket/model"

// TBD is shown for a slot whose team is not decided yet.
const TBD = "TBD"

// SlotState is the display state of one side of a match.
type SlotState string

const (
	SlotPending SlotState = ""
	SlotWinner  SlotState = "winner"
	SlotLoser   SlotState = "loser"
)

// Slot is one side of a match card.
type Slot struct {
	TeamID int64
	Name   string
	State  SlotState
	// Selectable is true when an admin may record this team as the winner.
	Selectable bool
}

// MatchView is a match ready for rendering.
type MatchView struct {
	ID          int64
	MatchNumber int
	Team1       Slot
	Team2       Slot
	Completed   bool
	Winner      string
}

// Slots returns both sides in display order.
func (m MatchView) Slots() []Slot {
	return []Slot{m.Team1, m.Team2}
}

// RoundView holds the matches of one round in input order.
type RoundView struct {
	Number  model.RoundNumber
	Matches []MatchView
}

// View is the whole bracket display model.
type View struct {
	Rounds     []RoundView
	Completion Completion
	// Empty is true when the API returned no matches. Callers choose the
	// message: an admin sees a different hint than a student.
	Empty bool
}

// Build assembles the display model from matches in API order.
func Build(matches []model.Match) View {
	if len(matches) == 0 {
		return View{Empty: true}
	}

	grouped := GroupByRound(matches)
	rounds := OrderRounds(grouped)

	view := View{
		Rounds:     make([]RoundView, 0, len(rounds)),
		Completion: DetectCompletion(matches),
	}
	for _, r := range rounds {
		rv := RoundView{Number: r, Matches: make([]MatchView, 0, len(grouped[r]))}
		for _, m := range grouped[r] {
			rv.Matches = append(rv.Matches, newMatchView(m))
		}
		view.Rounds = append(view.Rounds, rv)
	}
	return view
}

func newMatchView(m model.Match) MatchView {
	return MatchView{
		ID:          m.ID,
		MatchNumber: m.MatchNumber,
		Team1:       newSlot(m, m.Team1ID, m.Team1Name),
		Team2:       newSlot(m, m.Team2ID, m.Team2Name),
		Completed:   m.IsCompleted,
		Winner:      m.Winner(),
	}
}

func newSlot(m model.Match, teamID *int64, name *string) Slot {
	s := Slot{Name: TBD}
	if name != nil && *name != "" {
		s.Name = *name
	}
	if teamID != nil {
		s.TeamID = *teamID
		s.Selectable = !m.IsCompleted
	}

	switch {
	case teamID != nil && m.WinnerID != nil && *m.WinnerID == *teamID:
		s.State = SlotWinner
	case m.IsCompleted:
		s.State = SlotLoser
	default:
		s.State = SlotPending
	}
	return s
}
