package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/hoopsight/gameplan-gateway/internal/domain/gameplan"
	"github.com/hoopsight/gameplan-gateway/internal/usecase"
)

// internalErrorMessage is the exact body clients rely on when the gateway
// fails closed. Do not reword it.
const internalErrorMessage = "Internal Server Error"

type errorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeError maps a failure to the flat {"error": message} envelope.
// Upstream analytics failures keep their original status and message;
// everything unrecognized fails closed as a 500.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "writeError")
	defer span.End()

	var upstreamErr *gameplan.UpstreamError
	if errors.As(err, &upstreamErr) {
		writeJSON(ctx, w, upstreamErr.StatusCode, errorEnvelope{Error: upstreamErr.Message})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		writeJSON(ctx, w, http.StatusBadRequest, errorEnvelope{Error: err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorEnvelope{Error: err.Error()})
	default:
		writeInternalError(ctx, w)
	}
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{Error: internalErrorMessage})
}
