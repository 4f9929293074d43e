package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/domain/team"
)

type fakeTeamRepo struct {
	teams []team.Team
}

func newFakeTeamRepo(teams ...team.Team) *fakeTeamRepo {
	return &fakeTeamRepo{teams: teams}
}

func (r *fakeTeamRepo) List(ctx context.Context) ([]team.Team, error) {
	out := make([]team.Team, len(r.teams))
	copy(out, r.teams)
	return out, nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

type fakeAnalytics struct {
	mu       sync.Mutex
	requests []gameplan.MatchupRequest
	plan     gameplan.Gameplan
	err      error
	planFor  func(req gameplan.MatchupRequest) (gameplan.Gameplan, error)
}

func (f *fakeAnalytics) GenerateGameplan(ctx context.Context, req gameplan.MatchupRequest) (gameplan.Gameplan, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.planFor != nil {
		return f.planFor(req)
	}
	if f.err != nil {
		return gameplan.Gameplan{}, f.err
	}
	return f.plan, nil
}

func (f *fakeAnalytics) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func testCatalog() *fakeTeamRepo {
	return newFakeTeamRepo(
		team.Team{ID: 1610612738, Name: "Boston Celtics"},
		team.Team{ID: 1610612744, Name: "Golden State Warriors"},
		team.Team{ID: 1610612747, Name: "Los Angeles Lakers"},
	)
}

func TestGameplanService_GenerateSuccess(t *testing.T) {
	t.Parallel()

	analytics := &fakeAnalytics{plan: gameplan.Gameplan{
		TeamA: gameplan.TeamPlan{WinProb: 0.62, Tips: []gameplan.Tip{{Theme: "pace", Text: "Push tempo"}}},
		TeamB: gameplan.TeamPlan{WinProb: 0.38, Tips: []gameplan.Tip{}},
	}}
	service := NewGameplanService(testCatalog(), analytics)

	plan, err := service.Generate(context.Background(), gameplan.MatchupRequest{
		TeamAID:  1610612747,
		TeamBID:  1610612738,
		Season:   "2023-24",
		AsOfDate: "2024-03-01",
		Window:   10,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if plan.TeamA.WinProb != 0.62 || plan.TeamB.WinProb != 0.38 {
		t.Fatalf("unexpected win probs: %+v", plan)
	}
	if analytics.callCount() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", analytics.callCount())
	}
}

func TestGameplanService_AppliesDefaults(t *testing.T) {
	t.Parallel()

	analytics := &fakeAnalytics{}
	service := NewGameplanService(testCatalog(), analytics)
	service.now = func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}

	_, err := service.Generate(context.Background(), gameplan.MatchupRequest{
		TeamAID: 1610612747,
		TeamBID: 1610612738,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	sent := analytics.requests[0]
	if sent.Season != gameplan.Seasons[0] {
		t.Fatalf("unexpected default season: %q", sent.Season)
	}
	if sent.AsOfDate != "2024-03-15" {
		t.Fatalf("unexpected default as_of_date: %q", sent.AsOfDate)
	}
	if sent.Window != gameplan.DefaultWindow {
		t.Fatalf("unexpected default window: %d", sent.Window)
	}
}

func TestGameplanService_RejectsIdenticalTeams(t *testing.T) {
	t.Parallel()

	analytics := &fakeAnalytics{}
	service := NewGameplanService(testCatalog(), analytics)

	_, err := service.Generate(context.Background(), gameplan.MatchupRequest{
		TeamAID:  1610612747,
		TeamBID:  1610612747,
		Season:   "2023-24",
		AsOfDate: "2024-03-01",
		Window:   10,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if analytics.callCount() != 0 {
		t.Fatalf("validation failures must not reach upstream")
	}
}

func TestGameplanService_RejectsUnknownTeam(t *testing.T) {
	t.Parallel()

	analytics := &fakeAnalytics{}
	service := NewGameplanService(testCatalog(), analytics)

	_, err := service.Generate(context.Background(), gameplan.MatchupRequest{
		TeamAID:  42,
		TeamBID:  1610612738,
		Season:   "2023-24",
		AsOfDate: "2024-03-01",
		Window:   10,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if analytics.callCount() != 0 {
		t.Fatalf("catalog misses must not reach upstream")
	}
}

func TestGameplanService_UpstreamErrorPassesThrough(t *testing.T) {
	t.Parallel()

	upstreamErr := errors.New("analytics status=422 message=invalid window")
	analytics := &fakeAnalytics{err: upstreamErr}
	service := NewGameplanService(testCatalog(), analytics)

	_, err := service.Generate(context.Background(), gameplan.MatchupRequest{
		TeamAID:  1610612747,
		TeamBID:  1610612738,
		Season:   "2023-24",
		AsOfDate: "2024-03-01",
		Window:   10,
	})
	if !errors.Is(err, upstreamErr) {
		t.Fatalf("upstream error must pass through unwrapped, got %v", err)
	}
	if analytics.callCount() != 1 {
		t.Fatalf("expected exactly one upstream attempt, got %d", analytics.callCount())
	}
}
