package service

import (
	"context"
	"errors"
	"testing"

	"github.com/netops-copilot/backend/internal/model"
)

func newTestChatService(sqlAI, ragAI *fakeCompletion, sqlRepo *fakeSQLRepo, ragRepo *fakeSimilarityRepo) *ChatService {
	embedder := &fakeEmbedder{vector: []float32{0.5}}
	return NewChatService(
		NewSQLAnswerService(sqlRepo, sqlAI),
		NewRAGAnswerService(ragRepo, embedder, ragAI),
	)
}

func TestChatRejectsEmptyQuestion(t *testing.T) {
	svc := newTestChatService(&fakeCompletion{}, &fakeCompletion{}, &fakeSQLRepo{}, &fakeSimilarityRepo{})

	_, err := svc.Chat(context.Background(), model.ChatRequest{Question: "   "})
	if !errors.Is(err, ErrInvalidChatRequest) {
		t.Fatalf("expected ErrInvalidChatRequest, got %v", err)
	}
}

func TestChatRoutesCountQuestionToSQL(t *testing.T) {
	sqlAI := &fakeCompletion{responses: []string{"SELECT COUNT(*) FROM alerts"}}
	ragAI := &fakeCompletion{}
	sqlRepo := &fakeSQLRepo{columns: []string{"count"}, rows: []map[string]any{{"count": int64(7)}}}
	svc := newTestChatService(sqlAI, ragAI, sqlRepo, &fakeSimilarityRepo{})

	resp, err := svc.Chat(context.Background(), model.ChatRequest{Question: "how many alerts today?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != model.AnswerTypeSQL {
		t.Fatalf("expected sql route, got %s", resp.Type)
	}
	if ragAI.calls != 0 {
		t.Fatalf("rag engine must stay idle on sql route")
	}
}

func TestChatRoutesDiagnosticQuestionToRAG(t *testing.T) {
	sqlAI := &fakeCompletion{}
	ragAI := &fakeCompletion{responses: []string{"The switch lost power."}}
	ragRepo := &fakeSimilarityRepo{hits: []model.SimilarAlert{similarHit("5", "Switch-03", 0.88)}}
	svc := newTestChatService(sqlAI, ragAI, &fakeSQLRepo{}, ragRepo)

	resp, err := svc.Chat(context.Background(), model.ChatRequest{Question: "explain the outage on Switch-03"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != model.AnswerTypeRAG {
		t.Fatalf("expected rag route, got %s", resp.Type)
	}
	if sqlAI.calls != 0 {
		t.Fatalf("sql engine must stay idle on rag route")
	}
}
