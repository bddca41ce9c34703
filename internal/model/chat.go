package model

import "time"

// 질의 응답 경로. Query Router가 질문을 분류한 결과이며 응답 metadata에 그대로 노출
const (
	AnswerTypeSQL = "sql"
	AnswerTypeRAG = "rag"
)

// 대화 턴 역할
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn - 대화 이력 한 턴. 서버는 세션을 저장하지 않으며 매 요청마다 호출자가 전달
type ChatTurn struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}

type ChatRequest struct {
	Question string     `json:"question"`
	History  []ChatTurn `json:"history"`
}

type ChatResponse struct {
	Status   string        `json:"status"`
	Answer   string        `json:"answer"`
	Type     string        `json:"type"` // sql, rag
	Metadata *ChatMetadata `json:"metadata,omitempty"`
}

// ChatMetadata - 답변 근거 추적용 메타데이터. 경로에 따라 SQL 또는 RAG 필드만 채워짐
type ChatMetadata struct {
	// SQL 경로: 생성된 쿼리, 전체 행 수, 앞쪽 원본 행
	Query    string           `json:"query,omitempty"`
	RowCount int              `json:"row_count,omitempty"`
	Rows     []map[string]any `json:"rows,omitempty"`

	// RAG 경로: 검색된 근거 알람 목록
	Sources []SourceAlert `json:"sources,omitempty"`
}

// SourceAlert - RAG 답변의 근거가 된 알람 요약
type SourceAlert struct {
	ProblemID   string    `json:"problem_id"`
	Host        string    `json:"host"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Similarity  float64   `json:"similarity"`
}
