package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/domain/team"
)

// AnalyticsGateway generates matchup gameplans against the upstream
// analytics service. The call is made exactly once per request; failures
// are never retried here.
type AnalyticsGateway interface {
	GenerateGameplan(ctx context.Context, req gameplan.MatchupRequest) (gameplan.Gameplan, error)
}

type GameplanService struct {
	teamRepo  team.Repository
	analytics AnalyticsGateway
	now       func() time.Time
}

func NewGameplanService(teamRepo team.Repository, analytics AnalyticsGateway) *GameplanService {
	return &GameplanService{
		teamRepo:  teamRepo,
		analytics: analytics,
		now:       time.Now,
	}
}

// Generate validates the matchup, fills request defaults and forwards the
// request upstream. Upstream errors pass through untouched so the transport
// layer can preserve the original status and message.
func (s *GameplanService) Generate(ctx context.Context, req gameplan.MatchupRequest) (gameplan.Gameplan, error) {
	ctx, span := startUsecaseSpan(ctx, "GameplanService.Generate")
	defer span.End()

	req = s.applyDefaults(req)
	if err := req.Validate(); err != nil {
		return gameplan.Gameplan{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureCatalogTeam(ctx, "team_a_id", req.TeamAID); err != nil {
		return gameplan.Gameplan{}, err
	}
	if err := s.ensureCatalogTeam(ctx, "team_b_id", req.TeamBID); err != nil {
		return gameplan.Gameplan{}, err
	}

	plan, err := s.analytics.GenerateGameplan(ctx, req)
	if err != nil {
		return gameplan.Gameplan{}, err
	}

	return plan, nil
}

func (s *GameplanService) applyDefaults(req gameplan.MatchupRequest) gameplan.MatchupRequest {
	if req.Season == "" {
		req.Season = gameplan.Seasons[0]
	}
	if req.AsOfDate == "" {
		req.AsOfDate = s.now().UTC().Format(gameplan.DateLayout)
	}
	if req.Window == 0 {
		req.Window = gameplan.DefaultWindow
	}
	return req
}

func (s *GameplanService) ensureCatalogTeam(ctx context.Context, field string, teamID int64) error {
	_, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team id=%d: %w", teamID, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s=%d is not in the catalog", ErrInvalidInput, field, teamID)
	}
	return nil
}
