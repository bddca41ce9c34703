package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/netops-copilot/backend/internal/model"
)

var ErrInvalidChatRequest = errors.New("invalid chat request")

// ChatService - 질문을 분류해 SQL 엔진 또는 RAG 엔진으로 넘기는 오케스트레이터
type ChatService struct {
	sqlEngine *SQLAnswerService
	ragEngine *RAGAnswerService
}

func NewChatService(sqlEngine *SQLAnswerService, ragEngine *RAGAnswerService) *ChatService {
	return &ChatService{
		sqlEngine: sqlEngine,
		ragEngine: ragEngine,
	}
}

// Chat - 질문 검증 → 분류 → 경로별 엔진 호출
func (s *ChatService) Chat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrInvalidChatRequest)
	}

	switch ClassifyQuestion(req.Question) {
	case model.AnswerTypeRAG:
		return s.ragEngine.Answer(ctx, req.Question, req.History)
	default:
		return s.sqlEngine.Answer(ctx, req.Question)
	}
}
