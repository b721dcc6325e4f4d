package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/anonboard/shared/api"
	"github.com/itchan-dev/anonboard/shared/domain"
)

// --- Mocks ---

type MockBoardService struct {
	MockListThreads  func(ctx context.Context, board domain.BoardName) ([]api.ThreadView, error)
	MockCreateThread func(ctx context.Context, board domain.BoardName, text domain.Text, password domain.Password) (api.ThreadFull, error)
	MockReportThread func(ctx context.Context, threadId string) error
	MockDeleteThread func(ctx context.Context, threadId string, password domain.Password) error
	MockGetThread    func(ctx context.Context, threadId string) (api.ThreadView, error)
	MockCreateReply  func(ctx context.Context, threadId string, text domain.Text, password domain.Password) (api.ThreadFull, error)
	MockReportReply  func(ctx context.Context, threadId string, replyId domain.ReplyId) error
	MockDeleteReply  func(ctx context.Context, threadId string, replyId domain.ReplyId, password domain.Password) error
}

func (m *MockBoardService) ListThreads(ctx context.Context, board domain.BoardName) ([]api.ThreadView, error) {
	if m.MockListThreads != nil {
		return m.MockListThreads(ctx, board)
	}
	return []api.ThreadView{}, nil
}

func (m *MockBoardService) CreateThread(ctx context.Context, board domain.BoardName, text domain.Text, password domain.Password) (api.ThreadFull, error) {
	if m.MockCreateThread != nil {
		return m.MockCreateThread(ctx, board, text, password)
	}
	return api.ThreadFull{}, nil
}

func (m *MockBoardService) ReportThread(ctx context.Context, threadId string) error {
	if m.MockReportThread != nil {
		return m.MockReportThread(ctx, threadId)
	}
	return nil
}

func (m *MockBoardService) DeleteThread(ctx context.Context, threadId string, password domain.Password) error {
	if m.MockDeleteThread != nil {
		return m.MockDeleteThread(ctx, threadId, password)
	}
	return nil
}

func (m *MockBoardService) GetThread(ctx context.Context, threadId string) (api.ThreadView, error) {
	if m.MockGetThread != nil {
		return m.MockGetThread(ctx, threadId)
	}
	return api.ThreadView{}, nil
}

func (m *MockBoardService) CreateReply(ctx context.Context, threadId string, text domain.Text, password domain.Password) (api.ThreadFull, error) {
	if m.MockCreateReply != nil {
		return m.MockCreateReply(ctx, threadId, text, password)
	}
	return api.ThreadFull{}, nil
}

func (m *MockBoardService) ReportReply(ctx context.Context, threadId string, replyId domain.ReplyId) error {
	if m.MockReportReply != nil {
		return m.MockReportReply(ctx, threadId, replyId)
	}
	return nil
}

func (m *MockBoardService) DeleteReply(ctx context.Context, threadId string, replyId domain.ReplyId, password domain.Password) error {
	if m.MockDeleteReply != nil {
		return m.MockDeleteReply(ctx, threadId, replyId, password)
	}
	return nil
}

// MockOutcomeRecorder remembers every recorded outcome.
type MockOutcomeRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *MockOutcomeRecorder) Outcome(operation, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, operation+":"+outcome)
}

func (m *MockOutcomeRecorder) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.outcomes) == 0 {
		return ""
	}
	return m.outcomes[len(m.outcomes)-1]
}

// --- Helpers ---

// newTestRouter mounts h on the same paths the production router uses.
func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/threads/{board}", h.ListThreads)
	r.Post("/api/threads/{board}", h.CreateThread)
	r.Put("/api/threads/{board}", h.ReportThread)
	r.Delete("/api/threads/{board}", h.DeleteThread)

	r.Get("/api/replies/{board}", h.GetThread)
	r.Post("/api/replies/{board}", h.CreateReply)
	r.Put("/api/replies/{board}", h.ReportReply)
	r.Delete("/api/replies/{board}", h.DeleteReply)
	return r
}

func newTestHandler(svc *MockBoardService) (*Handler, *MockOutcomeRecorder) {
	rec := &MockOutcomeRecorder{}
	return New(svc, &MockHealthChecker{}, rec), rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
