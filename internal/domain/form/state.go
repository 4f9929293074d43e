// Package form models the matchup form as an explicit state struct with
// pure transition functions, so every submit/success/failure path can be
// tested without a browser or a network.
package form

import "github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"

const (
	// GenericFailureMessage is shown for transport and decoding failures
	// that carry no upstream detail.
	GenericFailureMessage = "Failed to generate gameplan. Please try again."

	msgSelectBoth     = "Select both teams before generating a gameplan."
	msgSelectDistinct = "Pick two different teams."
)

// State holds everything the matchup form renders from. Zero team ids mean
// "not selected". At most one of Error/Result is ever populated.
type State struct {
	TeamAID  int64
	TeamBID  int64
	Season   string
	AsOfDate string
	Window   int

	Loading bool
	Error   string
	Result  *gameplan.Gameplan
}

// NewState returns the initial form state with defaulted season and window.
func NewState() State {
	return State{
		Season: gameplan.Seasons[0],
		Window: gameplan.DefaultWindow,
	}
}

// Submit checks the local preconditions and, when they hold, moves the form
// into its loading state and yields the request to send. When they fail it
// sets a user-facing error and reports that no request may be issued.
func (s State) Submit() (State, gameplan.MatchupRequest, bool) {
	if s.TeamAID <= 0 || s.TeamBID <= 0 {
		s.Loading = false
		s.Error = msgSelectBoth
		s.Result = nil
		return s, gameplan.MatchupRequest{}, false
	}
	if s.TeamAID == s.TeamBID {
		s.Loading = false
		s.Error = msgSelectDistinct
		s.Result = nil
		return s, gameplan.MatchupRequest{}, false
	}

	s.Loading = true
	s.Error = ""
	s.Result = nil

	return s, gameplan.MatchupRequest{
		TeamAID:  s.TeamAID,
		TeamBID:  s.TeamBID,
		Season:   s.Season,
		AsOfDate: s.AsOfDate,
		Window:   s.Window,
	}, true
}

// Succeed finalizes a submission with a decoded gameplan.
func (s State) Succeed(plan gameplan.Gameplan) State {
	s.Loading = false
	s.Error = ""
	s.Result = &plan
	return s
}

// Fail finalizes a submission with an error message; an empty message falls
// back to the generic one.
func (s State) Fail(message string) State {
	if message == "" {
		message = GenericFailureMessage
	}
	s.Loading = false
	s.Error = message
	s.Result = nil
	return s
}
