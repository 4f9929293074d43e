package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/domain/team"
)

const (
	sweepStatusSuccess = "success"
	sweepStatusFailed  = "failed"

	defaultSweepWorkers = 4
	maxSweepWorkers     = 16
)

type SweepInput struct {
	TeamID     int64  `json:"team_id"`
	Season     string `json:"season"`
	AsOfDate   string `json:"as_of_date"`
	Window     int    `json:"window"`
	MaxWorkers int    `json:"max_workers"`
}

type SweepResult struct {
	TeamID        int64            `json:"team_id"`
	TeamName      string           `json:"team_name"`
	OpponentCount int              `json:"opponent_count"`
	SuccessCount  int              `json:"success_count"`
	FailedCount   int              `json:"failed_count"`
	WorkerCount   int              `json:"worker_count"`
	Matchups      []SweepMatchupRow `json:"matchups"`
}

type SweepMatchupRow struct {
	OpponentID   int64   `json:"opponent_id"`
	OpponentName string  `json:"opponent_name"`
	Status       string  `json:"status"`
	WinProb      float64 `json:"win_prob"`
	TipCount     int     `json:"tip_count"`
	DurationMs   int64   `json:"duration_ms"`
	Message      string  `json:"message,omitempty"`
}

// SweepService runs one team against every other catalog team and collects
// the per-opponent win probabilities. Each matchup is an independent
// upstream call, fanned out over a bounded worker pool.
type SweepService struct {
	teamRepo  team.Repository
	gameplans *GameplanService
	workers   int
}

func NewSweepService(teamRepo team.Repository, gameplans *GameplanService, maxWorkers int) *SweepService {
	return &SweepService{
		teamRepo:  teamRepo,
		gameplans: gameplans,
		workers:   maxWorkers,
	}
}

func (s *SweepService) Run(ctx context.Context, input SweepInput) (SweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SweepService.Run")
	defer span.End()

	focus, ok, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return SweepResult{}, fmt.Errorf("get team id=%d: %w", input.TeamID, err)
	}
	if !ok {
		return SweepResult{}, fmt.Errorf("%w: team_id=%d is not in the catalog", ErrInvalidInput, input.TeamID)
	}

	catalog, err := s.teamRepo.List(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list teams: %w", err)
	}

	opponents := make([]team.Team, 0, len(catalog)-1)
	for _, item := range catalog {
		if item.ID != focus.ID {
			opponents = append(opponents, item)
		}
	}

	workerCount := normalizeSweepWorkers(input.MaxWorkers, s.workers, len(opponents))
	result := SweepResult{
		TeamID:        focus.ID,
		TeamName:      focus.Name,
		OpponentCount: len(opponents),
		WorkerCount:   workerCount,
		Matchups:      make([]SweepMatchupRow, 0, len(opponents)),
	}
	if len(opponents) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SweepResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var successCount atomic.Int64
	var failedCount atomic.Int64
	rows := make(chan SweepMatchupRow, len(opponents))

	var workers sync.WaitGroup
	for _, opponent := range opponents {
		opponent := opponent
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := SweepMatchupRow{
				OpponentID:   opponent.ID,
				OpponentName: opponent.Name,
			}

			plan, planErr := s.gameplans.Generate(ctx, gameplan.MatchupRequest{
				TeamAID:  focus.ID,
				TeamBID:  opponent.ID,
				Season:   input.Season,
				AsOfDate: input.AsOfDate,
				Window:   input.Window,
			})
			if planErr != nil {
				row.Status = sweepStatusFailed
				row.Message = planErr.Error()
				failedCount.Add(1)
			} else {
				row.Status = sweepStatusSuccess
				row.WinProb = plan.TeamA.WinProb
				row.TipCount = len(plan.TeamA.Tips)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			rows <- row
		}); err != nil {
			workers.Done()
			return SweepResult{}, fmt.Errorf("submit matchup to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Matchups = append(result.Matchups, row)
	}
	sort.SliceStable(result.Matchups, func(i, j int) bool {
		return result.Matchups[i].OpponentName < result.Matchups[j].OpponentName
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func normalizeSweepWorkers(requested, configured, taskCount int) int {
	workers := requested
	if workers <= 0 {
		workers = configured
	}
	if workers <= 0 {
		workers = defaultSweepWorkers
	}
	if workers > maxSweepWorkers {
		workers = maxSweepWorkers
	}
	if taskCount > 0 && workers > taskCount {
		workers = taskCount
	}
	return workers
}
