package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/anonboard/shared/logger"
	"github.com/itchan-dev/anonboard/shared/utils"
)

const readyTimeout = 2 * time.Second

// Health answers liveness probes; it never touches the store.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, "ok")
}

// Ready answers readiness probes: 503 while the store cannot be pinged.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("readiness check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	utils.WriteText(w, "ok")
}
