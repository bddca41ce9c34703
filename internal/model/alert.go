// 알람 레코드 모델 정의
// parser가 HTML 업로드에서 추출한 알람을 정규화한 형태로,
// service, db, handler 레이어에서 공통으로 사용

package model

import (
	"strings"
	"time"
)

// 알람 상태. 모니터링 시스템 원문의 상태 표기를 정규화한 값
const (
	StatusProblem  = "PROBLEM"
	StatusOK       = "OK"
	StatusResolved = "RESOLVED"
	StatusUnknown  = "UNKNOWN"
)

// 알람 심각도. Zabbix 계열 심각도(Disaster/High/Average/Information)를 4단계로 정규화
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityWarning  = "WARNING"
	SeverityLow      = "LOW"
)

// AlertRecord - 정규화된 알람 한 건
// ProblemID가 중복 제거 키이며, 수락된 레코드에서는 절대 비어 있지 않음
type AlertRecord struct {
	ProblemID       string    `json:"problem_id"`
	Timestamp       time.Time `json:"timestamp"`
	Status          string    `json:"status"`
	Severity        string    `json:"severity"`
	Host            string    `json:"host"`
	Interface       *string   `json:"interface"`
	AlertType       string    `json:"alert_type"`
	Provider        *string   `json:"provider"`
	DurationSeconds int64     `json:"duration_seconds"`
	Description     string    `json:"description"`

	// 임베딩 벡터(1536차원). 인제스트 시점에 계산되며 API 응답에는 포함하지 않음
	Embedding []float32 `json:"-"`
}

// SimilarAlert - 유사도 검색 결과 한 건 (AlertRecord + 코사인 유사도)
type SimilarAlert struct {
	AlertRecord
	Similarity float64 `json:"similarity"`
}

// HostCount - 호스트별 알람 집계 결과
type HostCount struct {
	Host  string `json:"host"`
	Count int64  `json:"count"`
}

// StatusCount - 상태별 알람 집계 결과
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// SeverityCount - 심각도별 알람 집계 결과
type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int64  `json:"count"`
}

// embeddingSeparator - EmbeddingText 필드 연결 구분자. 변경 시 저장된 벡터 전체 재계산 필요
const embeddingSeparator = " | "

// EmbeddingText - 알람 한 건을 임베딩 입력 텍스트로 합성
//
// 인제스트와 재임베딩 스크립트가 반드시 같은 합성을 사용해야 검색 품질이 유지되므로
// 필드 순서(host, alert_type, description, interface, status, severity)와
// 구분자는 여기서만 정의한다. nil/빈 필드는 건너뛴다.
func EmbeddingText(a AlertRecord) string {
	parts := make([]string, 0, 6)

	if a.Host != "" {
		parts = append(parts, a.Host)
	}
	if a.AlertType != "" {
		parts = append(parts, a.AlertType)
	}
	if a.Description != "" {
		parts = append(parts, a.Description)
	}
	if a.Interface != nil && *a.Interface != "" {
		parts = append(parts, *a.Interface)
	}
	if a.Status != "" {
		parts = append(parts, a.Status)
	}
	if a.Severity != "" {
		parts = append(parts, a.Severity)
	}

	return strings.Join(parts, embeddingSeparator)
}
