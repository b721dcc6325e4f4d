package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/anonboard/shared/api"
	"github.com/itchan-dev/anonboard/shared/utils"
)

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	threads, err := h.board.ListThreads(r.Context(), board)
	if err != nil {
		h.writeError(w, "list_threads", err)
		return
	}

	h.record("list_threads", "success")
	utils.WriteJSON(w, http.StatusOK, threads)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	var body api.CreateThreadRequest
	if err := utils.DecodeRequest(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.board.CreateThread(r.Context(), board, body.Text, body.DeletePassword)
	if err != nil {
		h.writeError(w, "create_thread", err)
		return
	}

	h.record("create_thread", "success")
	utils.WriteJSON(w, http.StatusOK, thread)
}

func (h *Handler) ReportThread(w http.ResponseWriter, r *http.Request) {
	var body api.ReportThreadRequest
	if err := utils.DecodeRequest(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err := h.board.ReportThread(r.Context(), body.ThreadId)
	h.writeOutcome(w, "report_thread", err, textReported)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteThreadRequest
	if err := utils.DecodeRequest(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err := h.board.DeleteThread(r.Context(), body.ThreadId, body.DeletePassword)
	h.writeOutcome(w, "delete_thread", err, textSuccess)
}
