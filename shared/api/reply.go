package api

import (
	"time"

	"github.com/itchan-dev/anonboard/shared/domain"
)

// Request DTOs

type CreateReplyRequest struct {
	ThreadId       string `json:"thread_id" validate:"required"`
	Text           string `json:"text" validate:"required"`
	DeletePassword string `json:"delete_password" validate:"required,max=72"`
}

type ReportReplyRequest struct {
	ThreadId string  `json:"thread_id" validate:"required"`
	ReplyId  IdParam `json:"reply_id" validate:"required,numeric"`
}

type DeleteReplyRequest struct {
	ThreadId       string  `json:"thread_id" validate:"required"`
	ReplyId        IdParam `json:"reply_id" validate:"required,numeric"`
	DeletePassword string  `json:"delete_password"`
}

// Response DTOs

type ReplyView struct {
	Id        domain.ReplyId `json:"_id"`
	Text      string         `json:"text"`
	CreatedOn time.Time      `json:"created_on"`
}

type ReplyFull struct {
	Id             domain.ReplyId `json:"_id"`
	Text           string         `json:"text"`
	DeletePassword string         `json:"delete_password,omitempty"`
	CreatedOn      time.Time      `json:"created_on"`
	Reported       bool           `json:"reported"`
}

func NewReplyView(r domain.Reply) ReplyView {
	return ReplyView{Id: r.Id, Text: r.Text, CreatedOn: r.CreatedOn}
}

func NewReplyFull(r domain.Reply) ReplyFull {
	return ReplyFull{Id: r.Id, Text: r.Text, CreatedOn: r.CreatedOn, Reported: r.Reported}
}
