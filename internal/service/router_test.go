package service

import (
	"testing"

	"github.com/netops-copilot/backend/internal/model"
)

func TestClassifyQuestionSQL(t *testing.T) {
	questions := []string{
		"How many total alerts do we have?",
		"Show the top hosts by alert count",
		"List recent PROBLEM alerts",
		"What are the statistics for last week?",
	}
	for _, q := range questions {
		if got := ClassifyQuestion(q); got != model.AnswerTypeSQL {
			t.Fatalf("%q: expected sql, got %s", q, got)
		}
	}
}

func TestClassifyQuestionRAG(t *testing.T) {
	questions := []string{
		"Why is Router-01 failing?",
		"Analyze the CPU situation on the core switch",
		"Explain what this flapping means",
	}
	for _, q := range questions {
		if got := ClassifyQuestion(q); got != model.AnswerTypeRAG {
			t.Fatalf("%q: expected rag, got %s", q, got)
		}
	}
}

// 양쪽 키워드에 모두 걸리는 질문은 SQL이 이긴다
func TestClassifyQuestionTieBreak(t *testing.T) {
	if got := ClassifyQuestion("why are there so many alerts?"); got != model.AnswerTypeSQL {
		t.Fatalf("expected sql on tie, got %s", got)
	}
}

func TestClassifyQuestionDefault(t *testing.T) {
	if got := ClassifyQuestion("hello there"); got != model.AnswerTypeSQL {
		t.Fatalf("expected sql default, got %s", got)
	}
}
