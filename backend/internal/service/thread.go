package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/itchan-dev/anonboard/shared/api"
	"github.com/itchan-dev/anonboard/shared/domain"
	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
	"github.com/itchan-dev/anonboard/shared/logger"
)

// ListThreads returns the most recently bumped threads of board, each with its
// last few replies, without passwords or report flags.
func (b *Board) ListThreads(ctx context.Context, board domain.BoardName) ([]api.ThreadView, error) {
	threads, err := b.storage.ListThreads(ctx, board, b.cfg.ThreadsOnBoard)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].BumpedOn.After(threads[j].BumpedOn)
	})
	if len(threads) > b.cfg.ThreadsOnBoard {
		threads = threads[:b.cfg.ThreadsOnBoard]
	}

	views := make([]api.ThreadView, len(threads))
	for i, t := range threads {
		views[i] = api.NewThreadView(t, t.LastReplies(b.cfg.RepliesInPreview))
	}
	return views, nil
}

// CreateThread stores a new thread. The response is the only place the
// submitted delete password is ever echoed back.
func (b *Board) CreateThread(ctx context.Context, board domain.BoardName, text domain.Text, password domain.Password) (api.ThreadFull, error) {
	if err := b.validate(text, password); err != nil {
		return api.ThreadFull{}, err
	}
	hash, err := b.hasher.Hash(password)
	if err != nil {
		return api.ThreadFull{}, err
	}

	thread, err := b.storage.CreateThread(ctx, domain.ThreadCreationData{
		Id:                 uuid.New(),
		Board:              board,
		Text:               text,
		DeletePasswordHash: hash,
		CreatedOn:          b.now(),
	})
	if err != nil {
		return api.ThreadFull{}, err
	}
	logger.Log.Info("thread created", "board", board, "thread_id", thread.Id)

	full := api.NewThreadFull(thread)
	full.DeletePassword = password
	return full, nil
}

// ReportThread flags the thread. Unknown ids are acknowledged the same way.
func (b *Board) ReportThread(ctx context.Context, threadId string) error {
	id, err := parseThreadId(threadId)
	if err != nil {
		return nil
	}
	if err := b.storage.ReportThread(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("thread reported", "thread_id", id)
	return nil
}

// DeleteThread removes the thread if password matches.
// A missing thread counts as deleted so callers cannot probe for ids.
func (b *Board) DeleteThread(ctx context.Context, threadId string, password domain.Password) error {
	id, err := parseThreadId(threadId)
	if err != nil {
		return nil
	}

	thread, err := b.storage.GetThread(ctx, id)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if err := b.checkPassword(thread.DeletePasswordHash, password); err != nil {
		return err
	}

	if err := b.storage.DeleteThread(ctx, id); err != nil && !internal_errors.IsNotFound(err) {
		return err
	}
	logger.Log.Info("thread deleted", "board", thread.Board, "thread_id", id)
	return nil
}

// GetThread returns the thread with all of its replies, redacted.
func (b *Board) GetThread(ctx context.Context, threadId string) (api.ThreadView, error) {
	id, err := parseThreadId(threadId)
	if err != nil {
		return api.ThreadView{}, err
	}
	thread, err := b.storage.GetThread(ctx, id)
	if err != nil {
		return api.ThreadView{}, err
	}
	return api.NewThreadView(thread, thread.Replies), nil
}
