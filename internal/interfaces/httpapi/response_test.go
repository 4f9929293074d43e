package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/usecase"
)

func decodeErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var envelope errorEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v body=%s", err, rec.Body.String())
	}
	return envelope
}

func TestWriteError_UpstreamStatusPreserved(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := fmt.Errorf("generate: %w", &gameplan.UpstreamError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "invalid window",
	})
	writeError(context.Background(), rec, err)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if envelope := decodeErrorEnvelope(t, rec); envelope.Error != "invalid window" {
		t.Fatalf("unexpected message: %q", envelope.Error)
	}
}

func TestWriteError_InvalidInput(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: teams must be distinct", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if envelope := decodeErrorEnvelope(t, rec); !strings.Contains(envelope.Error, "teams must be distinct") {
		t.Fatalf("unexpected message: %q", envelope.Error)
	}
}

func TestWriteError_NotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: team id=42", usecase.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestWriteError_UnknownFailsClosed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("socket hang up"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Internal Server Error"}` {
		t.Fatalf("internal error body must be exact, got %s", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}
}

func TestWriteError_DependencyUnavailableFailsClosed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: analytics service is temporarily unavailable", usecase.ErrDependencyUnavailable))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Internal Server Error"}` {
		t.Fatalf("internal error body must be exact, got %s", got)
	}
}
