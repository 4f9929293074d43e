package web

import (
	"fmt"

	"github.com/hoopsight/gameplan-gateway/internal/domain/form"
	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/domain/team"
)

// TipView is a single numbered scouting note. Index starts at 1 and the
// theme, text and evidence are rendered verbatim.
type TipView struct {
	Index    int
	Theme    string
	Text     string
	Evidence string
}

// PanelView is one team's half of the rendered gameplan.
type PanelView struct {
	TeamName string
	WinProb  string
	Tips     []TipView
}

type pageView struct {
	Teams   []team.Team
	Seasons []string
	Windows []int
	State   form.State
	PanelA  *PanelView
	PanelB  *PanelView
}

// FormatWinProb renders a [0,1] probability as a percentage with one
// decimal, e.g. 0.62 -> "62.0%".
func FormatWinProb(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

func NewPanelView(teamName string, plan gameplan.TeamPlan) PanelView {
	tips := make([]TipView, 0, len(plan.Tips))
	for i, tip := range plan.Tips {
		tips = append(tips, TipView{Index: i + 1, Theme: tip.Theme, Text: tip.Text, Evidence: tip.Evidence})
	}
	return PanelView{
		TeamName: teamName,
		WinProb:  FormatWinProb(plan.WinProb),
		Tips:     tips,
	}
}
