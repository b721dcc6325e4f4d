package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itchan-dev/anonboard/shared/domain"
	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
	sharedpg "github.com/itchan-dev/anonboard/shared/storage/pg"
)

// CreateReply appends a reply and bumps the thread, returning the updated thread.
// The reply id comes from the thread's own counter, so concurrent appends never collide.
func (s *Storage) CreateReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.Thread, error) {
	createdOn := creationData.CreatedOn.UTC().Round(time.Microsecond)

	var thread domain.Thread
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var id domain.ReplyId
		err := tx.QueryRowContext(ctx, `
            UPDATE threads
            SET reply_seq = reply_seq + 1, bumped_on = GREATEST(bumped_on, $2)
            WHERE id = $1
            RETURNING reply_seq
        `, creationData.ThreadId, createdOn).Scan(&id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Thread not found")
			}
			return fmt.Errorf("failed to bump thread: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
            INSERT INTO replies (thread_id, id, text, delete_password_hash, created_on)
            VALUES ($1, $2, $3, $4, $5)
        `, creationData.ThreadId, id, creationData.Text, creationData.DeletePasswordHash, createdOn)
		if err != nil {
			return fmt.Errorf("failed to insert reply: %w", err)
		}

		thread, err = getThread(ctx, tx, creationData.ThreadId)
		return err
	})
	if err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

// ReportReply flags a single reply row in place.
func (s *Storage) ReportReply(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE replies SET reported = TRUE WHERE thread_id = $1 AND id = $2",
		threadId, replyId,
	)
	if err != nil {
		return fmt.Errorf("failed to report reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Reply not found")
	}
	return nil
}

// SetReplyText overwrites the text of a single reply row in place.
func (s *Storage) SetReplyText(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, text domain.Text) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE replies SET text = $3 WHERE thread_id = $1 AND id = $2",
		threadId, replyId, text,
	)
	if err != nil {
		return fmt.Errorf("failed to update reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Reply not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReply(row rowScanner) (domain.Reply, error) {
	var r domain.Reply
	if err := row.Scan(&r.ThreadId, &r.Id, &r.Text, &r.DeletePasswordHash, &r.CreatedOn, &r.Reported); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to scan reply: %w", err)
	}
	return r, nil
}
