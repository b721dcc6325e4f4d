package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Id                 ThreadId
	Board              BoardName
	Text               Text
	DeletePasswordHash PasswordHash
	CreatedOn          time.Time
}

// Thread is the stored record. Replies are ordered by Id, which is also insertion order.
type Thread struct {
	Id                 ThreadId
	Board              BoardName
	Text               Text
	DeletePasswordHash PasswordHash
	CreatedOn          time.Time
	BumpedOn           time.Time
	Reported           bool
	Replies            []Reply
}

// LastReplies returns at most n most recent replies.
func (t *Thread) LastReplies(n int) []Reply {
	if n < 0 {
		n = 0
	}
	if len(t.Replies) <= n {
		return t.Replies
	}
	return t.Replies[len(t.Replies)-n:]
}

// FindReply returns the reply with the given id, if the thread has one.
func (t *Thread) FindReply(id ReplyId) (*Reply, bool) {
	for i := range t.Replies {
		if t.Replies[i].Id == id {
			return &t.Replies[i], true
		}
	}
	return nil, false
}
