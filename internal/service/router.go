// Query Router 정의
// 자연어 질문을 SQL 경로 또는 RAG 경로로 분류
package service

import (
	"strings"

	"github.com/netops-copilot/backend/internal/model"
)

// sqlKeywords - 집계/조회형 질문을 가리키는 키워드
var sqlKeywords = []string{
	"how many", "count", "total", "show", "list", "get", "find",
	"what are", "which", "when", "statistics", "stats", "number of",
	"hosts", "alerts", "last", "recent",
}

// ragKeywords - 분석/설명형 질문을 가리키는 키워드
var ragKeywords = []string{
	"why", "analyze", "recommend", "explain", "pattern", "trend",
	"cause", "reason", "what happened", "diagnose", "investigate",
	"understand", "insight", "suggest",
}

// ClassifyQuestion - 질문 분류
// SQL 키워드를 먼저 확인하므로 양쪽 키워드에 모두 걸리는 질문은 SQL로 간다.
// 어느 쪽에도 걸리지 않으면 SQL이 기본값이다
func ClassifyQuestion(question string) string {
	lower := strings.ToLower(question)
	for _, kw := range sqlKeywords {
		if strings.Contains(lower, kw) {
			return model.AnswerTypeSQL
		}
	}
	for _, kw := range ragKeywords {
		if strings.Contains(lower, kw) {
			return model.AnswerTypeRAG
		}
	}
	return model.AnswerTypeSQL
}
