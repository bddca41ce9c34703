// SQL Answering Engine 정의
// 질문 하나를 GENERATE → EXECUTE → FORMAT 세 단계로 처리
//
// 처리 흐름:
//  1. GENERATE: 스키마 설명 프롬프트로 SELECT 문 생성 (낮은 temperature)
//     - 마크다운 코드 펜스와 끝의 세미콜론 제거
//  2. EXECUTE: 선두 토큰이 SELECT가 아니면 실행하지 않고 거부
//     - 실행 실패 시 최근 알람 100건 조회로 대체 (성능 저하 동작, 데이터 조작 아님)
//  3. FORMAT: 1행 1열이면 값을 그대로 답변, 아니면 제공자가 결과를 서술
//     - 서술 실패 시 템플릿 요약으로 대체
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/netops-copilot/backend/internal/model"
)

// ErrUnsafeQuery - 생성된 문장이 읽기 전용 SELECT가 아닐 때
var ErrUnsafeQuery = errors.New("generated query rejected")

const (
	sqlMaxRows      = 100
	sqlNarrateRows  = 20
	sqlMetadataRows = 10
	sqlPreviewChars = 100
	sqlSummaryRows  = 5

	sqlGenTemperature     = 0.1
	sqlGenMaxTokens       = 500
	sqlNarrateTemperature = 0.3
	sqlNarrateMaxTokens   = 800
)

// CompletionClient - 텍스트 완성 제공자
type CompletionClient interface {
	Complete(ctx context.Context, system string, turns []model.ChatTurn, temperature float32, maxTokens int32) (string, error)
}

// SQLQueryRepo - SQL 엔진이 쓰는 저장소 연산
type SQLQueryRepo interface {
	RunReadOnlyQuery(ctx context.Context, query string, maxRows int) ([]string, []map[string]any, error)
	RecentAlerts(ctx context.Context, limit int) ([]model.AlertRecord, error)
}

type SQLAnswerService struct {
	repo SQLQueryRepo
	ai   CompletionClient
}

func NewSQLAnswerService(repo SQLQueryRepo, ai CompletionClient) *SQLAnswerService {
	return &SQLAnswerService{repo: repo, ai: ai}
}

// sqlSchemaPrompt - 쿼리 생성에 전달하는 고정 스키마 설명
const sqlSchemaPrompt = `You are a PostgreSQL query generator for a network alert database.

Table: alerts
Columns:
  problem_id TEXT PRIMARY KEY
  timestamp TIMESTAMPTZ          -- when the alert fired
  status TEXT                    -- one of: PROBLEM, OK, RESOLVED, UNKNOWN
  severity TEXT                  -- one of: CRITICAL, HIGH, WARNING, LOW
  host TEXT                      -- device name, e.g. Router-01
  interface TEXT                 -- nullable, e.g. GigabitEthernet0/1
  alert_type TEXT                -- e.g. Link down, High CPU utilization
  provider TEXT                  -- nullable vendor name, e.g. Cisco
  duration_seconds BIGINT
  description TEXT

Rules:
- Answer with a single SELECT statement and nothing else.
- Never modify data.
- Limit large result sets to 100 rows.

Examples:
Q: How many total alerts do we have?
SELECT COUNT(*) FROM alerts;

Q: Show the top 5 hosts by alert count.
SELECT host, COUNT(*) AS alert_count FROM alerts GROUP BY host ORDER BY alert_count DESC LIMIT 5;

Q: List recent problem alerts.
SELECT problem_id, host, alert_type, timestamp FROM alerts WHERE status = 'PROBLEM' ORDER BY timestamp DESC LIMIT 20;

Question: %s
SQL:`

// Answer - 질문 하나를 SQL 경로로 처리
func (s *SQLAnswerService) Answer(ctx context.Context, question string) (*model.ChatResponse, error) {
	// 1. GENERATE
	query, err := s.generateQuery(ctx, question)
	if err != nil {
		return nil, err
	}

	// 2. EXECUTE
	columns, rows, err := s.repo.RunReadOnlyQuery(ctx, query, sqlMaxRows)
	if err != nil {
		log.Printf("[SQLAnswer] Query failed, falling back to recent alerts: %v", err)
		columns, rows, err = s.recentAlertRows(ctx)
		if err != nil {
			return nil, err
		}
	}

	// 3. FORMAT
	answer, err := s.formatAnswer(ctx, question, columns, rows)
	if err != nil {
		return nil, err
	}

	return &model.ChatResponse{
		Status: "success",
		Answer: answer,
		Type:   model.AnswerTypeSQL,
		Metadata: &model.ChatMetadata{
			Query:    query,
			RowCount: len(rows),
			Rows:     metadataRows(rows),
		},
	}, nil
}

// generateQuery - 완성 제공자로 SELECT 문을 생성하고 안전성을 검사
// 생성 결과는 신뢰하지 않는 입력으로 다룬다
func (s *SQLAnswerService) generateQuery(ctx context.Context, question string) (string, error) {
	prompt := fmt.Sprintf(sqlSchemaPrompt, question)
	raw, err := s.ai.Complete(ctx, "", []model.ChatTurn{
		{Role: model.RoleUser, Content: prompt},
	}, sqlGenTemperature, sqlGenMaxTokens)
	if err != nil {
		return "", fmt.Errorf("failed to generate query: %w", err)
	}

	query := stripSQLMarkup(raw)
	if !isSelectQuery(query) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeQuery, query)
	}
	return query, nil
}

// stripSQLMarkup - 마크다운 코드 펜스와 끝의 세미콜론 제거
func stripSQLMarkup(raw string) string {
	query := strings.TrimSpace(raw)
	query = strings.TrimPrefix(query, "```sql")
	query = strings.TrimPrefix(query, "```")
	query = strings.TrimSuffix(query, "```")
	query = strings.TrimSpace(query)
	query = strings.TrimSuffix(query, ";")
	return strings.TrimSpace(query)
}

// isSelectQuery - 선두 토큰 검사. 이 검사만이 실행 여부를 결정한다
func isSelectQuery(query string) bool {
	fields := strings.Fields(query)
	return len(fields) > 0 && strings.EqualFold(fields[0], "SELECT")
}

// recentAlertRows - 실행 실패 시의 대체 조회를 행 맵 형태로 변환
func (s *SQLAnswerService) recentAlertRows(ctx context.Context) ([]string, []map[string]any, error) {
	alerts, err := s.repo.RecentAlerts(ctx, sqlMaxRows)
	if err != nil {
		return nil, nil, fmt.Errorf("fallback query failed: %w", err)
	}

	columns := []string{"problem_id", "timestamp", "status", "severity", "host", "alert_type", "description"}
	rows := make([]map[string]any, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, map[string]any{
			"problem_id":  a.ProblemID,
			"timestamp":   a.Timestamp,
			"status":      a.Status,
			"severity":    a.Severity,
			"host":        a.Host,
			"alert_type":  a.AlertType,
			"description": a.Description,
		})
	}
	return columns, rows, nil
}

// formatAnswer - 결과 집합을 자연어 답변으로 변환
func (s *SQLAnswerService) formatAnswer(ctx context.Context, question string, columns []string, rows []map[string]any) (string, error) {
	if len(rows) == 0 {
		return "No matching alerts found.", nil
	}

	// 1행 1열이면 제공자 호출 없이 값을 그대로 답변한다
	if len(rows) == 1 && len(columns) == 1 {
		return fmt.Sprintf("%v", rows[0][columns[0]]), nil
	}

	narration, err := s.narrateRows(ctx, question, rows)
	if err != nil {
		log.Printf("[SQLAnswer] Narration failed, using templated summary: %v", err)
		return templatedSummary(rows), nil
	}
	return narration, nil
}

// narrateRows - 축약한 결과 집합을 제공자가 서술
func (s *SQLAnswerService) narrateRows(ctx context.Context, question string, rows []map[string]any) (string, error) {
	trimmed := trimRows(rows, sqlNarrateRows)
	encoded, err := json.Marshal(trimmed)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"Question: %s\n\nQuery results (%d rows total, showing up to %d):\n%s\n\nAnswer the question in plain prose using only these results. Mention concrete hosts, counts, and times.",
		question, len(rows), len(trimmed), encoded,
	)
	return s.ai.Complete(ctx, "", []model.ChatTurn{
		{Role: model.RoleUser, Content: prompt},
	}, sqlNarrateTemperature, sqlNarrateMaxTokens)
}

// trimRows - 서술용으로 행을 축약: 큰 필드 제거, 설명은 앞부분만
func trimRows(rows []map[string]any, limit int) []map[string]any {
	if len(rows) > limit {
		rows = rows[:limit]
	}
	trimmed := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out := make(map[string]any, len(row))
		for col, val := range row {
			if col == "embedding" {
				continue
			}
			if col == "description" {
				if text, ok := val.(string); ok && len([]rune(text)) > sqlPreviewChars {
					out[col] = string([]rune(text)[:sqlPreviewChars])
					continue
				}
			}
			out[col] = val
		}
		trimmed = append(trimmed, out)
	}
	return trimmed
}

// metadataRows - 응답 metadata에 싣는 원본 행 (임베딩 제외, 최대 10행)
func metadataRows(rows []map[string]any) []map[string]any {
	if len(rows) > sqlMetadataRows {
		rows = rows[:sqlMetadataRows]
	}
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		clean := make(map[string]any, len(row))
		for col, val := range row {
			if col == "embedding" {
				continue
			}
			clean[col] = val
		}
		out = append(out, clean)
	}
	return out
}

// templatedSummary - 서술 실패 시의 고정 형식 요약
func templatedSummary(rows []map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results.", len(rows))
	for i, row := range rows {
		if i >= sqlSummaryRows {
			break
		}
		id := rowValue(row, "problem_id")
		host := rowValue(row, "host")
		switch {
		case id != "" && host != "":
			fmt.Fprintf(&b, "\n- %s (%s)", id, host)
		case id != "":
			fmt.Fprintf(&b, "\n- %s", id)
		case host != "":
			fmt.Fprintf(&b, "\n- %s", host)
		}
	}
	return b.String()
}

// rowValue - 행 맵에서 문자열 값 하나를 꺼냄
func rowValue(row map[string]any, col string) string {
	if val, ok := row[col]; ok && val != nil {
		return fmt.Sprintf("%v", val)
	}
	return ""
}
