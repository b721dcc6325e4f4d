package domain

import "github.com/google/uuid"

type (
	BoardName = string

	ThreadId = uuid.UUID
	ReplyId  = int64

	Text         = string
	Password     = string
	PasswordHash = string
)
