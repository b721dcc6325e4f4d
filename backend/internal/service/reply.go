package service

import (
	"context"

	"github.com/itchan-dev/anonboard/shared/api"
	"github.com/itchan-dev/anonboard/shared/domain"
	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
	"github.com/itchan-dev/anonboard/shared/logger"
)

// CreateReply appends a reply and bumps the thread. The full thread is returned;
// only the new reply carries its delete password.
func (b *Board) CreateReply(ctx context.Context, threadId string, text domain.Text, password domain.Password) (api.ThreadFull, error) {
	if err := b.validate(text, password); err != nil {
		return api.ThreadFull{}, err
	}
	id, err := parseThreadId(threadId)
	if err != nil {
		return api.ThreadFull{}, err
	}
	hash, err := b.hasher.Hash(password)
	if err != nil {
		return api.ThreadFull{}, err
	}

	thread, err := b.storage.CreateReply(ctx, domain.ReplyCreationData{
		ThreadId:           id,
		Text:               text,
		DeletePasswordHash: hash,
		CreatedOn:          b.now(),
	})
	if err != nil {
		return api.ThreadFull{}, err
	}

	full := api.NewThreadFull(thread)
	if n := len(full.Replies); n > 0 {
		full.Replies[n-1].DeletePassword = password
		logger.Log.Info("reply created", "thread_id", id, "reply_id", full.Replies[n-1].Id)
	}
	return full, nil
}

// ReportReply flags one reply. Reporting twice is harmless.
func (b *Board) ReportReply(ctx context.Context, threadId string, replyId domain.ReplyId) error {
	id, err := parseThreadId(threadId)
	if err != nil {
		return internal_errors.NotFound("Reply not found")
	}
	if err := b.storage.ReportReply(ctx, id, replyId); err != nil {
		return err
	}
	logger.Log.Info("reply reported", "thread_id", id, "reply_id", replyId)
	return nil
}

// DeleteReply replaces the reply text with the tombstone if password matches.
// The reply itself stays in the thread.
func (b *Board) DeleteReply(ctx context.Context, threadId string, replyId domain.ReplyId, password domain.Password) error {
	id, err := parseThreadId(threadId)
	if err != nil {
		return err
	}
	thread, err := b.storage.GetThread(ctx, id)
	if err != nil {
		return err
	}
	reply, ok := thread.FindReply(replyId)
	if !ok {
		return internal_errors.NotFound("Reply not found")
	}
	if err := b.checkPassword(reply.DeletePasswordHash, password); err != nil {
		return err
	}

	if err := b.storage.SetReplyText(ctx, id, replyId, b.cfg.DeletedReplyText); err != nil {
		return err
	}
	logger.Log.Info("reply deleted", "thread_id", id, "reply_id", replyId)
	return nil
}
