// Retrieval Answering Engine 정의
// 질문 임베딩 → 유사도 검색 → 근거 컨텍스트 조립 → 완성 요청
//
// 처리 흐름:
//  1. 질문을 임베딩해 코사인 유사도 0.7 이상 상위 10건 검색
//  2. 검색 결과가 없으면 고정 안내 답변 반환 (sources 비움)
//  3. 알람마다 라벨 붙은 컨텍스트 블록 생성
//  4. 직전 대화 6턴까지 이어 붙여 완성 요청 (temperature 0.7, 1000 토큰)
//  5. 검색 순위 첫/마지막 유사도로 "Sources: ..." 접미사를 결정적으로 덧붙임
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/netops-copilot/backend/internal/model"
)

const (
	ragSimilarityThreshold = 0.7
	ragTopK                = 10
	ragHistoryTurns        = 6
	ragTemperature         = 0.7
	ragMaxTokens           = 1000
)

// ragNoDataAnswer - 유사한 알람이 하나도 없을 때의 고정 답변
const ragNoDataAnswer = "No relevant alert data found for your question. Upload alert exports first, or try rephrasing the question."

// ragSystemInstruction - 완성 요청의 분석자 역할과 근거 규칙
const ragSystemInstruction = `You are a network operations analyst. Answer questions about network alerts using ONLY the alert context provided in the user message. If the context does not contain the answer, say so plainly. Be specific: reference hosts, alert types, and times from the context. Do not invent alerts or numbers.`

// EmbeddingProvider - 임베딩 벡터 생성 제공자
type EmbeddingProvider interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// SimilarityRepo - 유사도 검색 저장소 연산
type SimilarityRepo interface {
	SimilaritySearch(ctx context.Context, embedding []float32, threshold float64, limit int) ([]model.SimilarAlert, error)
}

type RAGAnswerService struct {
	repo     SimilarityRepo
	embedder EmbeddingProvider
	ai       CompletionClient
}

func NewRAGAnswerService(repo SimilarityRepo, embedder EmbeddingProvider, ai CompletionClient) *RAGAnswerService {
	return &RAGAnswerService{repo: repo, embedder: embedder, ai: ai}
}

// Answer - 질문 하나를 RAG 경로로 처리
func (s *RAGAnswerService) Answer(ctx context.Context, question string, history []model.ChatTurn) (*model.ChatResponse, error) {
	vector, err := s.embedder.EmbedText(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	hits, err := s.repo.SimilaritySearch(ctx, vector, ragSimilarityThreshold, ragTopK)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	if len(hits) == 0 {
		return &model.ChatResponse{
			Status:   "success",
			Answer:   ragNoDataAnswer,
			Type:     model.AnswerTypeRAG,
			Metadata: &model.ChatMetadata{Sources: []model.SourceAlert{}},
		}, nil
	}

	turns := historyTail(history, ragHistoryTurns)
	turns = append(turns, model.ChatTurn{
		Role:    model.RoleUser,
		Content: contextBlock(hits) + "\n\nQuestion: " + question,
	})

	answer, err := s.ai.Complete(ctx, ragSystemInstruction, turns, ragTemperature, ragMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}
	answer += sourcesSuffix(hits)

	return &model.ChatResponse{
		Status:   "success",
		Answer:   answer,
		Type:     model.AnswerTypeRAG,
		Metadata: &model.ChatMetadata{Sources: sourceList(hits)},
	}, nil
}

// historyTail - 직전 n턴만 남김
func historyTail(history []model.ChatTurn, n int) []model.ChatTurn {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	return append([]model.ChatTurn{}, history...)
}

// contextBlock - 검색된 알람을 라벨 붙은 텍스트 블록으로 조립
func contextBlock(hits []model.SimilarAlert) string {
	var b strings.Builder
	b.WriteString("Relevant alerts:\n")
	for i, hit := range hits {
		fmt.Fprintf(&b, "\n[Alert %d] (similarity %.0f%%)\n", i+1, hit.Similarity*100)
		fmt.Fprintf(&b, "Problem ID: %s\n", hit.ProblemID)
		fmt.Fprintf(&b, "Host: %s\n", hit.Host)
		fmt.Fprintf(&b, "Status: %s\n", hit.Status)
		fmt.Fprintf(&b, "Time: %s\n", hit.Timestamp.Format("2006-01-02 15:04:05"))
		if hit.Severity != "" {
			fmt.Fprintf(&b, "Severity: %s\n", hit.Severity)
		}
		if hit.Interface != nil && *hit.Interface != "" {
			fmt.Fprintf(&b, "Interface: %s\n", *hit.Interface)
		}
		if hit.DurationSeconds > 0 {
			fmt.Fprintf(&b, "Duration: %ds\n", hit.DurationSeconds)
		}
		fmt.Fprintf(&b, "Description: %s\n", hit.Description)
	}
	return b.String()
}

// sourcesSuffix - 검색 순위 기준 첫/마지막 유사도로 만드는 결정적 접미사
func sourcesSuffix(hits []model.SimilarAlert) string {
	first := hits[0].Similarity * 100
	last := hits[len(hits)-1].Similarity * 100
	return fmt.Sprintf("\n\nSources: %d alerts analyzed (similarity %.0f%%-%.0f%%)", len(hits), first, last)
}

func sourceList(hits []model.SimilarAlert) []model.SourceAlert {
	sources := make([]model.SourceAlert, 0, len(hits))
	for _, hit := range hits {
		sources = append(sources, model.SourceAlert{
			ProblemID:   hit.ProblemID,
			Host:        hit.Host,
			Timestamp:   hit.Timestamp,
			Description: hit.Description,
			Similarity:  hit.Similarity,
		})
	}
	return sources
}
