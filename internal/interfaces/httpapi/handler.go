package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/platform/logging"
	"github.com/hoopsight/gameplan-gateway/internal/usecase"
)

type Handler struct {
	teamService     *usecase.TeamService
	gameplanService *usecase.GameplanService
	sweepService    *usecase.SweepService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	gameplanService *usecase.GameplanService,
	sweepService *usecase.SweepService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:     teamService,
		gameplanService: gameplanService,
		sweepService:    sweepService,
		logger:          logger,
		validator:       validator.New(),
	}
}

// gameplanRequest is the inbound payload for POST /api/gameplan. Optional
// fields are defaulted downstream, so the tags only reject values that are
// present but out of range.
type gameplanRequest struct {
	TeamAID  int64  `json:"team_a_id" validate:"required,gt=0"`
	TeamBID  int64  `json:"team_b_id" validate:"required,gt=0,nefield=TeamAID"`
	Season   string `json:"season" validate:"omitempty"`
	AsOfDate string `json:"as_of_date" validate:"omitempty,datetime=2006-01-02"`
	Window   int    `json:"window" validate:"omitempty,min=1,max=82"`
}

type sweepRequest struct {
	TeamID     int64  `json:"team_id" validate:"required,gt=0"`
	Season     string `json:"season" validate:"omitempty"`
	AsOfDate   string `json:"as_of_date" validate:"omitempty,datetime=2006-01-02"`
	Window     int    `json:"window" validate:"omitempty,min=1,max=82"`
	MaxWorkers int    `json:"max_workers" validate:"omitempty,min=1,max=16"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GenerateGameplan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "Handler.GenerateGameplan")
	defer span.End()

	var req gameplanRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	plan, err := h.gameplanService.Generate(ctx, gameplan.MatchupRequest{
		TeamAID:  req.TeamAID,
		TeamBID:  req.TeamBID,
		Season:   req.Season,
		AsOfDate: req.AsOfDate,
		Window:   req.Window,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "generate gameplan failed",
			"team_a_id", req.TeamAID,
			"team_b_id", req.TeamBID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, plan)
}

func (h *Handler) SweepGameplans(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "Handler.SweepGameplans")
	defer span.End()

	var req sweepRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.sweepService.Run(ctx, usecase.SweepInput{
		TeamID:     req.TeamID,
		Season:     req.Season,
		AsOfDate:   req.AsOfDate,
		Window:     req.Window,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "sweep gameplans failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
