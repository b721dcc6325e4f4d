package api

import (
	"time"

	"github.com/itchan-dev/anonboard/shared/domain"
)

// Request DTOs. Ids travel as strings so that form and JSON bodies decode alike.

type CreateThreadRequest struct {
	Text           string `json:"text" validate:"required"`
	DeletePassword string `json:"delete_password" validate:"required,max=72"`
}

type ReportThreadRequest struct {
	ThreadId string `json:"thread_id" validate:"required"`
}

// DeleteThreadRequest leaves delete_password optional, an empty one simply fails the comparison.
type DeleteThreadRequest struct {
	ThreadId       string `json:"thread_id" validate:"required"`
	DeletePassword string `json:"delete_password"`
}

// Response DTOs

// ThreadView is the public shape of a thread: no password, no report flag.
type ThreadView struct {
	Id         domain.ThreadId `json:"_id"`
	Board      string          `json:"board"`
	Text       string          `json:"text"`
	CreatedOn  time.Time       `json:"created_on"`
	BumpedOn   time.Time       `json:"bumped_on"`
	Replies    []ReplyView     `json:"replies"`
	ReplyCount int             `json:"replycount"`
}

// ThreadFull is returned to the author right after a mutation.
// DeletePassword is only ever populated with the plaintext the caller just submitted:
// set on create_thread, always empty on create_reply. Only the bcrypt hash of a thread
// password is stored, so a reply response cannot carry it; the new reply carries its own.
type ThreadFull struct {
	Id             domain.ThreadId `json:"_id"`
	Board          string          `json:"board"`
	Text           string          `json:"text"`
	DeletePassword string          `json:"delete_password,omitempty"`
	CreatedOn      time.Time       `json:"created_on"`
	BumpedOn       time.Time       `json:"bumped_on"`
	Reported       bool            `json:"reported"`
	Replies        []ReplyFull     `json:"replies"`
}

// NewThreadView redacts t, keeping the given replies.
func NewThreadView(t domain.Thread, replies []domain.Reply) ThreadView {
	views := make([]ReplyView, len(replies))
	for i, r := range replies {
		views[i] = NewReplyView(r)
	}
	return ThreadView{
		Id:         t.Id,
		Board:      t.Board,
		Text:       t.Text,
		CreatedOn:  t.CreatedOn,
		BumpedOn:   t.BumpedOn,
		Replies:    views,
		ReplyCount: len(t.Replies),
	}
}

// NewThreadFull exposes t including report flags. Stored hashes are never copied.
func NewThreadFull(t domain.Thread) ThreadFull {
	replies := make([]ReplyFull, len(t.Replies))
	for i, r := range t.Replies {
		replies[i] = NewReplyFull(r)
	}
	return ThreadFull{
		Id:        t.Id,
		Board:     t.Board,
		Text:      t.Text,
		CreatedOn: t.CreatedOn,
		BumpedOn:  t.BumpedOn,
		Reported:  t.Reported,
		Replies:   replies,
	}
}
