package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/anonboard/shared/api"
	"github.com/itchan-dev/anonboard/shared/config"
	"github.com/itchan-dev/anonboard/shared/domain"
	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
)

// to mock service in tests
type BoardService interface {
	ListThreads(ctx context.Context, board domain.BoardName) ([]api.ThreadView, error)
	CreateThread(ctx context.Context, board domain.BoardName, text domain.Text, password domain.Password) (api.ThreadFull, error)
	ReportThread(ctx context.Context, threadId string) error
	DeleteThread(ctx context.Context, threadId string, password domain.Password) error
	GetThread(ctx context.Context, threadId string) (api.ThreadView, error)

	CreateReply(ctx context.Context, threadId string, text domain.Text, password domain.Password) (api.ThreadFull, error)
	ReportReply(ctx context.Context, threadId string, replyId domain.ReplyId) error
	DeleteReply(ctx context.Context, threadId string, replyId domain.ReplyId, password domain.Password) error
}

type BoardStorage interface {
	CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.Thread, error)
	ListThreads(ctx context.Context, board domain.BoardName, limit int) ([]domain.Thread, error)
	GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	ReportThread(ctx context.Context, id domain.ThreadId) error
	DeleteThread(ctx context.Context, id domain.ThreadId) error

	CreateReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.Thread, error)
	ReportReply(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId) error
	SetReplyText(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, text domain.Text) error
}

type BoardValidator interface {
	Text(text domain.Text) error
	Password(password domain.Password) error
}

type PasswordHasher interface {
	Hash(password domain.Password) (domain.PasswordHash, error)
	Matches(hash domain.PasswordHash, password domain.Password) (bool, error)
}

var _ BoardService = (*Board)(nil)

type Board struct {
	storage   BoardStorage
	validator BoardValidator
	hasher    PasswordHasher
	cfg       config.Public
	now       func() time.Time
}

func NewBoard(storage BoardStorage, validator BoardValidator, hasher PasswordHasher, cfg config.Public) *Board {
	return &Board{
		storage:   storage,
		validator: validator,
		hasher:    hasher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// parseThreadId maps ids that cannot exist to the same error as missing threads.
func parseThreadId(threadId string) (domain.ThreadId, error) {
	id, err := uuid.Parse(threadId)
	if err != nil {
		return uuid.Nil, internal_errors.NotFound("Thread not found")
	}
	return id, nil
}

func (b *Board) validate(text domain.Text, password domain.Password) error {
	if err := b.validator.Text(text); err != nil {
		return err
	}
	return b.validator.Password(password)
}

// checkPassword returns ErrWrongPassword on mismatch.
func (b *Board) checkPassword(hash domain.PasswordHash, password domain.Password) error {
	ok, err := b.hasher.Matches(hash, password)
	if err != nil {
		return err
	}
	if !ok {
		return internal_errors.ErrWrongPassword
	}
	return nil
}
