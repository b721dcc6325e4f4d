package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/itchan-dev/anonboard/backend/internal/service"
	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
	"github.com/itchan-dev/anonboard/shared/logger"
	"github.com/itchan-dev/anonboard/shared/utils"
)

// Literal response bodies existing clients depend on.
const (
	textSuccess           = "success"
	textReported          = "reported"
	textIncorrectPassword = "incorrect password"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// OutcomeRecorder counts finished operations by outcome.
type OutcomeRecorder interface {
	Outcome(operation, outcome string)
}

type Handler struct {
	board   service.BoardService
	health  HealthChecker
	metrics OutcomeRecorder
}

func New(board service.BoardService, health HealthChecker, metrics OutcomeRecorder) *Handler {
	return &Handler{board: board, health: health, metrics: metrics}
}

func (h *Handler) record(operation, outcome string) {
	if h.metrics != nil {
		h.metrics.Outcome(operation, outcome)
	}
}

// writeOutcome answers a mutation with a plain text token.
// A wrong password is a normal 200 answer, never a distinct status code.
func (h *Handler) writeOutcome(w http.ResponseWriter, operation string, err error, okText string) {
	switch {
	case err == nil:
		h.record(operation, "success")
		utils.WriteText(w, okText)
	case errors.Is(err, internal_errors.ErrWrongPassword):
		h.record(operation, "wrong_password")
		utils.WriteText(w, textIncorrectPassword)
	default:
		h.writeError(w, operation, err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, operation string, err error) {
	if internal_errors.IsNotFound(err) {
		h.record(operation, "not_found")
	} else {
		h.record(operation, "error")
		logger.Log.Debug("operation failed", "operation", operation, "error", err)
	}
	utils.WriteErrorAndStatusCode(w, err)
}
