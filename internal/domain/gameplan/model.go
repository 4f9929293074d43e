package gameplan

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-date wire format for as_of_date.
	DateLayout = "2006-01-02"

	MinWindow     = 1
	MaxWindow     = 82
	DefaultWindow = 10
)

// Seasons is the fixed enumerated set accepted by the upstream service,
// newest first.
var Seasons = []string{"2024-25", "2023-24", "2022-23", "2021-22"}

func KnownSeason(season string) bool {
	for _, s := range Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// MatchupRequest is the payload for one gameplan generation. It is built
// fresh per submission and never mutated after it is sent.
type MatchupRequest struct {
	TeamAID  int64  `json:"team_a_id" validate:"required,gt=0"`
	TeamBID  int64  `json:"team_b_id" validate:"required,gt=0,nefield=TeamAID"`
	Season   string `json:"season" validate:"required"`
	AsOfDate string `json:"as_of_date" validate:"required,datetime=2006-01-02"`
	Window   int    `json:"window" validate:"required,min=1,max=82"`
}

func (r MatchupRequest) Validate() error {
	if r.TeamAID <= 0 || r.TeamBID <= 0 {
		return fmt.Errorf("both teams must be selected")
	}
	if r.TeamAID == r.TeamBID {
		return fmt.Errorf("teams must be distinct")
	}
	if !KnownSeason(r.Season) {
		return fmt.Errorf("unknown season %q", r.Season)
	}
	if _, err := time.Parse(DateLayout, r.AsOfDate); err != nil {
		return fmt.Errorf("invalid as_of_date %q: expected YYYY-MM-DD", r.AsOfDate)
	}
	if r.Window < MinWindow || r.Window > MaxWindow {
		return fmt.Errorf("window must be between %d and %d", MinWindow, MaxWindow)
	}

	return nil
}

// Tip is a single scouting note produced and ranked by the upstream
// service. The gateway treats every field as opaque display text.
type Tip struct {
	Theme    string  `json:"theme"`
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	Evidence string  `json:"evidence"`
}

// TeamPlan is one side of a gameplan. WinProb is expected in [0,1] but is
// passed through to display without clamping; tips keep upstream order.
type TeamPlan struct {
	WinProb float64 `json:"win_prob"`
	Tips    []Tip   `json:"tips"`
}

// Gameplan is the upstream response for one matchup. It lives for a single
// render cycle and is replaced wholesale by the next request.
type Gameplan struct {
	TeamA TeamPlan `json:"team_a"`
	TeamB TeamPlan `json:"team_b"`
}
