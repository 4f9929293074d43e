package analytics

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/platform/logging"
	"github.com/hoopsight/gameplan-gateway/internal/platform/resilience"
	"github.com/hoopsight/gameplan-gateway/internal/usecase"
)

const (
	defaultBaseURL  = "http://localhost:8000"
	gameplanPath    = "/v1/gameplan"
	defaultTimeout  = 20 * time.Second
	maxErrorBodyLog = 512
)

var errAnalyticsTransient = crerr.New("analytics transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := cfg.CircuitBreaker.Normalized()

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// GenerateGameplan posts the matchup request to the analytics service and
// decodes the dual-panel gameplan. The request is attempted exactly once;
// transport and decode failures surface as ErrDependencyUnavailable while
// non-2xx responses surface as *gameplan.UpstreamError with the status
// preserved.
func (c *Client) GenerateGameplan(ctx context.Context, req gameplan.MatchupRequest) (gameplan.Gameplan, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "analytics circuit breaker rejected request", "state", c.breaker.State())
			return gameplan.Gameplan{}, fmt.Errorf("%w: analytics service is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	plan, err := c.postGameplan(ctx, req)
	if c.circuitEnabled {
		if err != nil && isAnalyticsCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}

	return plan, err
}

func (c *Client) postGameplan(ctx context.Context, req gameplan.MatchupRequest) (gameplan.Gameplan, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(req); err != nil {
		return gameplan.Gameplan{}, fmt.Errorf("encode gameplan request: %w", err)
	}

	fullURL := c.baseURL + gameplanPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return gameplan.Gameplan{}, fmt.Errorf("build gameplan request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "analytics request failed",
			"url", fullURL,
			"error", err,
			"elapsed_ms", time.Since(started).Milliseconds(),
		)
		return gameplan.Gameplan{}, fmt.Errorf("%w: send request: %v", errAnalyticsTransient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return gameplan.Gameplan{}, fmt.Errorf("%w: read response body: %v", errAnalyticsTransient, readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := parseUpstreamMessage(raw)
		c.logger.WarnContext(ctx, "analytics returned error status",
			"url", fullURL,
			"status", resp.StatusCode,
			"body", abbreviateBody(raw),
		)
		upstreamErr := &gameplan.UpstreamError{StatusCode: resp.StatusCode, Message: message}
		if isCircuitFailureStatus(resp.StatusCode) {
			return gameplan.Gameplan{}, fmt.Errorf("%w: %w", errAnalyticsTransient, upstreamErr)
		}
		return gameplan.Gameplan{}, upstreamErr
	}

	var plan gameplan.Gameplan
	if err := sonic.Unmarshal(raw, &plan); err != nil {
		return gameplan.Gameplan{}, fmt.Errorf("%w: decode gameplan payload: %v", errAnalyticsTransient, err)
	}

	c.logger.DebugContext(ctx, "analytics gameplan generated",
		"team_a_id", req.TeamAID,
		"team_b_id", req.TeamBID,
		"elapsed_ms", time.Since(started).Milliseconds(),
	)

	return plan, nil
}

// parseUpstreamMessage extracts a human readable message from an error body.
// It prefers the analytics "detail" field, then a generic "error" field, and
// falls back to a fixed message when neither is present.
func parseUpstreamMessage(raw []byte) string {
	var envelope struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := sonic.Unmarshal(raw, &envelope); err == nil {
		if msg := strings.TrimSpace(envelope.Detail); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(envelope.Error); msg != "" {
			return msg
		}
	}
	return "upstream request failed"
}

func isCircuitFailureStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func isAnalyticsCircuitFailure(err error) bool {
	return crerr.Is(err, errAnalyticsTransient)
}

func abbreviateBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > maxErrorBodyLog {
		return body[:maxErrorBodyLog] + "...(truncated)"
	}
	return body
}
