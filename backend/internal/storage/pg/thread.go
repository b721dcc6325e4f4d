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
	"github.com/lib/pq"
)

func (s *Storage) CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.Thread, error) {
	createdOn := creationData.CreatedOn.UTC().Round(time.Microsecond) // database anyway round to microsecond
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO threads (id, board, text, delete_password_hash, created_on, bumped_on)
        VALUES ($1, $2, $3, $4, $5, $5)
    `,
		creationData.Id, creationData.Board, creationData.Text,
		creationData.DeletePasswordHash, createdOn,
	)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return domain.Thread{
		Id:                 creationData.Id,
		Board:              creationData.Board,
		Text:               creationData.Text,
		DeletePasswordHash: creationData.DeletePasswordHash,
		CreatedOn:          createdOn,
		BumpedOn:           createdOn,
		Replies:            []domain.Reply{},
	}, nil
}

// ListThreads returns up to limit threads of board, most recently bumped first,
// each with all of its replies.
func (s *Storage) ListThreads(ctx context.Context, board domain.BoardName, limit int) ([]domain.Thread, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, board, text, delete_password_hash, created_on, bumped_on, reported
        FROM threads
        WHERE board = $1
        ORDER BY bumped_on DESC
        LIMIT $2
    `, board, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.Thread{}
	idx := make(map[domain.ThreadId]int)
	var ids []string
	for rows.Next() {
		var t domain.Thread
		if err := rows.Scan(&t.Id, &t.Board, &t.Text, &t.DeletePasswordHash, &t.CreatedOn, &t.BumpedOn, &t.Reported); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		t.Replies = []domain.Reply{}
		threads = append(threads, t)
		idx[t.Id] = len(threads) - 1
		ids = append(ids, t.Id.String())
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	if len(threads) == 0 {
		return threads, nil
	}

	replyRows, err := s.db.QueryContext(ctx, `
        SELECT thread_id, id, text, delete_password_hash, created_on, reported
        FROM replies
        WHERE thread_id = ANY($1::uuid[])
        ORDER BY thread_id, id
    `, pq.StringArray(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer replyRows.Close()
	for replyRows.Next() {
		reply, err := scanReply(replyRows)
		if err != nil {
			return nil, err
		}
		if i, ok := idx[reply.ThreadId]; ok {
			threads[i].Replies = append(threads[i].Replies, reply)
		}
	}
	if err = replyRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return threads, nil
}

func (s *Storage) GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	return getThread(ctx, s.db, id)
}

func getThread(ctx context.Context, q sharedpg.Querier, id domain.ThreadId) (domain.Thread, error) {
	var t domain.Thread
	err := q.QueryRowContext(ctx, `
        SELECT id, board, text, delete_password_hash, created_on, bumped_on, reported
        FROM threads
        WHERE id = $1
    `, id).Scan(&t.Id, &t.Board, &t.Text, &t.DeletePasswordHash, &t.CreatedOn, &t.BumpedOn, &t.Reported)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}

	rows, err := q.QueryContext(ctx, `
        SELECT thread_id, id, text, delete_password_hash, created_on, reported
        FROM replies
        WHERE thread_id = $1
        ORDER BY id
    `, id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	t.Replies = []domain.Reply{}
	for rows.Next() {
		reply, err := scanReply(rows)
		if err != nil {
			return domain.Thread{}, err
		}
		t.Replies = append(t.Replies, reply)
	}
	if err = rows.Err(); err != nil {
		return domain.Thread{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return t, nil
}

// ReportThread flags the thread. A missing thread is not an error.
func (s *Storage) ReportThread(ctx context.Context, id domain.ThreadId) error {
	if _, err := s.db.ExecContext(ctx, "UPDATE threads SET reported = TRUE WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to report thread: %w", err)
	}
	return nil
}

// DeleteThread removes the thread; its replies go with it via the foreign key.
func (s *Storage) DeleteThread(ctx context.Context, id domain.ThreadId) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Thread not found")
	}
	return nil
}
