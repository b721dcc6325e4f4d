package handler

import (
	"net/http"

	"github.com/itchan-dev/anonboard/shared/api"
	"github.com/itchan-dev/anonboard/shared/utils"
)

// GetThread serves a single thread with every reply; the id comes from the query string.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := r.URL.Query().Get("thread_id")
	if threadId == "" {
		http.Error(w, "thread_id is required", http.StatusBadRequest)
		return
	}

	thread, err := h.board.GetThread(r.Context(), threadId)
	if err != nil {
		h.writeError(w, "get_thread", err)
		return
	}

	h.record("get_thread", "success")
	utils.WriteJSON(w, http.StatusOK, thread)
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	var body api.CreateReplyRequest
	if err := utils.DecodeRequest(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.board.CreateReply(r.Context(), body.ThreadId, body.Text, body.DeletePassword)
	if err != nil {
		h.writeError(w, "create_reply", err)
		return
	}

	h.record("create_reply", "success")
	utils.WriteJSON(w, http.StatusOK, thread)
}

func (h *Handler) ReportReply(w http.ResponseWriter, r *http.Request) {
	var body api.ReportReplyRequest
	if err := utils.DecodeRequest(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	replyId, err := parseReplyId(body.ReplyId.String())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err = h.board.ReportReply(r.Context(), body.ThreadId, replyId)
	h.writeOutcome(w, "report_reply", err, textReported)
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteReplyRequest
	if err := utils.DecodeRequest(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	replyId, err := parseReplyId(body.ReplyId.String())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err = h.board.DeleteReply(r.Context(), body.ThreadId, replyId, body.DeletePassword)
	h.writeOutcome(w, "delete_reply", err, textSuccess)
}
