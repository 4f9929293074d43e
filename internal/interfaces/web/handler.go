// Package web serves the server-rendered matchup form. It drives the same
// usecase layer as the JSON API, so the form and the API cannot drift apart.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/hoopsight/gameplan-gateway/internal/domain/form"
	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/platform/logging"
	"github.com/hoopsight/gameplan-gateway/internal/usecase"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type Handler struct {
	teamService     *usecase.TeamService
	gameplanService *usecase.GameplanService
	logger          *logging.Logger
}

func NewHandler(teamService *usecase.TeamService, gameplanService *usecase.GameplanService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:     teamService,
		gameplanService: gameplanService,
		logger:          logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderForm(w, r, form.NewState())
	case http.MethodPost:
		h.handleSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "parse form failed", "error", err)
		h.renderForm(w, r, form.NewState().Fail(""))
		return
	}

	state := stateFromForm(r)
	state, req, ok := state.Submit()
	if !ok {
		h.renderForm(w, r, state)
		return
	}

	plan, err := h.gameplanService.Generate(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "generate gameplan failed",
			"team_a_id", req.TeamAID,
			"team_b_id", req.TeamBID,
			"error", err,
		)
		h.renderForm(w, r, state.Fail(failureMessage(err)))
		return
	}

	h.renderForm(w, r, state.Succeed(plan))
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, state form.State) {
	ctx := r.Context()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view := pageView{
		Teams:   teams,
		Seasons: gameplan.Seasons,
		Windows: []int{5, 10, 15, 20, 41, 82},
		State:   state,
	}
	if state.Result != nil {
		view.PanelA = panelFor(ctx, h, state.TeamAID, state.Result.TeamA)
		view.PanelB = panelFor(ctx, h, state.TeamBID, state.Result.TeamB)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, view); err != nil {
		h.logger.ErrorContext(ctx, "render form failed", "error", err)
	}
}

func panelFor(ctx context.Context, h *Handler, teamID int64, plan gameplan.TeamPlan) *PanelView {
	name := ""
	if item, err := h.teamService.GetTeam(ctx, teamID); err == nil {
		name = item.Name
	}
	view := NewPanelView(name, plan)
	return &view
}

func stateFromForm(r *http.Request) form.State {
	state := form.NewState()
	state.TeamAID = parseID(r.PostFormValue("team_a"))
	state.TeamBID = parseID(r.PostFormValue("team_b"))

	if season := strings.TrimSpace(r.PostFormValue("season")); season != "" {
		state.Season = season
	}
	if date := strings.TrimSpace(r.PostFormValue("as_of_date")); date != "" {
		state.AsOfDate = date
	}
	if window, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("window"))); err == nil && window > 0 {
		state.Window = window
	}

	return state
}

func parseID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// failureMessage keeps the upstream detail when the analytics service
// replied with one; everything else falls back to the generic message.
func failureMessage(err error) string {
	var upstreamErr *gameplan.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Message
	}
	return ""
}
