package analytics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/platform/logging"
	"github.com/hoopsight/gameplan-gateway/internal/platform/resilience"
	"github.com/hoopsight/gameplan-gateway/internal/usecase"
)

func sampleRequest() gameplan.MatchupRequest {
	return gameplan.MatchupRequest{
		TeamAID:  1610612747,
		TeamBID:  1610612738,
		Season:   "2023-24",
		AsOfDate: "2024-03-01",
		Window:   10,
	}
}

func newTestClient(baseURL string, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestGenerateGameplan_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/gameplan" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type: %s", got)
		}

		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request body: %v", err)
		}
		var req gameplan.MatchupRequest
		if err := sonic.Unmarshal(raw, &req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if req.TeamAID != 1610612747 || req.TeamBID != 1610612738 {
			t.Errorf("unexpected matchup: %+v", req)
		}
		if req.Window != 10 {
			t.Errorf("unexpected window: %d", req.Window)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"team_a": {"win_prob": 0.62, "tips": [{"theme": "pace", "text": "Push tempo off rebounds", "score": 0.8, "evidence": "fast break points"}]},
			"team_b": {"win_prob": 0.38, "tips": []}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{})
	plan, err := client.GenerateGameplan(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("generate gameplan: %v", err)
	}
	if plan.TeamA.WinProb != 0.62 {
		t.Fatalf("unexpected team_a win prob: %v", plan.TeamA.WinProb)
	}
	if plan.TeamB.WinProb != 0.38 {
		t.Fatalf("unexpected team_b win prob: %v", plan.TeamB.WinProb)
	}
	if len(plan.TeamA.Tips) != 1 || plan.TeamA.Tips[0].Text != "Push tempo off rebounds" {
		t.Fatalf("unexpected team_a tips: %+v", plan.TeamA.Tips)
	}
}

func TestGenerateGameplan_UpstreamDetailPreserved(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "invalid window"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{})
	_, err := client.GenerateGameplan(context.Background(), sampleRequest())
	if err == nil {
		t.Fatalf("expected error for 422 response")
	}

	var upstreamErr *gameplan.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *gameplan.UpstreamError, got %T: %v", err, err)
	}
	if upstreamErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", upstreamErr.StatusCode)
	}
	if upstreamErr.Message != "invalid window" {
		t.Fatalf("unexpected message: %q", upstreamErr.Message)
	}
}

func TestGenerateGameplan_UpstreamErrorFieldFallback(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error": "analytics backend offline"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{})
	_, err := client.GenerateGameplan(context.Background(), sampleRequest())

	var upstreamErr *gameplan.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *gameplan.UpstreamError, got %T: %v", err, err)
	}
	if upstreamErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", upstreamErr.StatusCode)
	}
	if upstreamErr.Message != "analytics backend offline" {
		t.Fatalf("unexpected message: %q", upstreamErr.Message)
	}
}

func TestGenerateGameplan_GenericMessageForOpaqueBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{})
	_, err := client.GenerateGameplan(context.Background(), sampleRequest())

	var upstreamErr *gameplan.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *gameplan.UpstreamError, got %T: %v", err, err)
	}
	if upstreamErr.Message != "upstream request failed" {
		t.Fatalf("unexpected message: %q", upstreamErr.Message)
	}
}

func TestGenerateGameplan_ConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{})
	_, err := client.GenerateGameplan(context.Background(), sampleRequest())
	if err == nil {
		t.Fatalf("expected transport error")
	}

	var upstreamErr *gameplan.UpstreamError
	if errors.As(err, &upstreamErr) {
		t.Fatalf("transport failures must not carry an upstream status: %v", err)
	}
}

func TestGenerateGameplan_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	})

	for i := 0; i < 2; i++ {
		if _, err := client.GenerateGameplan(context.Background(), sampleRequest()); err == nil {
			t.Fatalf("expected failure on attempt %d", i+1)
		}
	}

	_, err := client.GenerateGameplan(context.Background(), sampleRequest())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable after circuit opened, got %v", err)
	}
}

func TestGenerateGameplan_ClientErrorsDoNotTripCircuit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "invalid window"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	})

	for i := 0; i < 5; i++ {
		_, err := client.GenerateGameplan(context.Background(), sampleRequest())
		var upstreamErr *gameplan.UpstreamError
		if !errors.As(err, &upstreamErr) {
			t.Fatalf("attempt %d: expected *gameplan.UpstreamError, got %v", i+1, err)
		}
		if upstreamErr.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("attempt %d: unexpected status %d", i+1, upstreamErr.StatusCode)
		}
	}
}
