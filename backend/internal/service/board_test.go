package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/itchan-dev/anonboard/backend/internal/utils"
	"github.com/itchan-dev/anonboard/shared/config"
	"github.com/itchan-dev/anonboard/shared/domain"
	"golang.org/x/crypto/bcrypt"
)

// --- Mocks ---

// MockBoardStorage mocks the BoardStorage interface.
type MockBoardStorage struct {
	createThreadFunc func(ctx context.Context, creationData domain.ThreadCreationData) (domain.Thread, error)
	listThreadsFunc  func(ctx context.Context, board domain.BoardName, limit int) ([]domain.Thread, error)
	getThreadFunc    func(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	reportThreadFunc func(ctx context.Context, id domain.ThreadId) error
	deleteThreadFunc func(ctx context.Context, id domain.ThreadId) error
	createReplyFunc  func(ctx context.Context, creationData domain.ReplyCreationData) (domain.Thread, error)
	reportReplyFunc  func(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId) error
	setReplyTextFunc func(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, text domain.Text) error

	mu                 sync.Mutex
	deleteThreadCalled bool
	setReplyTextCalled bool
	reportThreadCalled bool
}

func (m *MockBoardStorage) CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.Thread, error) {
	if m.createThreadFunc != nil {
		return m.createThreadFunc(ctx, creationData)
	}
	return domain.Thread{
		Id:                 creationData.Id,
		Board:              creationData.Board,
		Text:               creationData.Text,
		DeletePasswordHash: creationData.DeletePasswordHash,
		CreatedOn:          creationData.CreatedOn,
		BumpedOn:           creationData.CreatedOn,
		Replies:            []domain.Reply{},
	}, nil
}

func (m *MockBoardStorage) ListThreads(ctx context.Context, board domain.BoardName, limit int) ([]domain.Thread, error) {
	if m.listThreadsFunc != nil {
		return m.listThreadsFunc(ctx, board, limit)
	}
	return []domain.Thread{}, nil
}

func (m *MockBoardStorage) GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(ctx, id)
	}
	return domain.Thread{Id: id, Replies: []domain.Reply{}}, nil
}

func (m *MockBoardStorage) ReportThread(ctx context.Context, id domain.ThreadId) error {
	m.mu.Lock()
	m.reportThreadCalled = true
	m.mu.Unlock()
	if m.reportThreadFunc != nil {
		return m.reportThreadFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardStorage) DeleteThread(ctx context.Context, id domain.ThreadId) error {
	m.mu.Lock()
	m.deleteThreadCalled = true
	m.mu.Unlock()
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardStorage) CreateReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.Thread, error) {
	if m.createReplyFunc != nil {
		return m.createReplyFunc(ctx, creationData)
	}
	return domain.Thread{Id: creationData.ThreadId}, nil
}

func (m *MockBoardStorage) ReportReply(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId) error {
	if m.reportReplyFunc != nil {
		return m.reportReplyFunc(ctx, threadId, replyId)
	}
	return nil
}

func (m *MockBoardStorage) SetReplyText(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, text domain.Text) error {
	m.mu.Lock()
	m.setReplyTextCalled = true
	m.mu.Unlock()
	if m.setReplyTextFunc != nil {
		return m.setReplyTextFunc(ctx, threadId, replyId, text)
	}
	return nil
}

// --- Helpers ---

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.Public {
	return config.Public{
		ThreadsOnBoard:   10,
		RepliesInPreview: 3,
		DeletedReplyText: "[deleted]",
	}
}

// newTestBoard wires real validation and a fast bcrypt cost.
func newTestBoard(storage *MockBoardStorage) *Board {
	b := NewBoard(storage, &utils.BoardValidator{}, &utils.BcryptHasher{Cost: bcrypt.MinCost}, testConfig())
	b.now = func() time.Time { return fixedNow }
	return b
}

func mustHash(t *testing.T, password string) domain.PasswordHash {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}
