package domain

import "time"

type ReplyCreationData struct {
	ThreadId           ThreadId
	Text               Text
	DeletePasswordHash PasswordHash
	CreatedOn          time.Time
}

// Reply ids are unique within their thread only.
type Reply struct {
	Id                 ReplyId
	ThreadId           ThreadId
	Text               Text
	DeletePasswordHash PasswordHash
	CreatedOn          time.Time
	Reported           bool
}
