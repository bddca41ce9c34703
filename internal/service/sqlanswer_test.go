package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/netops-copilot/backend/internal/model"
)

type fakeCompletion struct {
	responses []string
	errs      []error
	calls     int
	systems   []string
	prompts   []string
}

func (f *fakeCompletion) Complete(ctx context.Context, system string, turns []model.ChatTurn, temperature float32, maxTokens int32) (string, error) {
	idx := f.calls
	f.calls++
	f.systems = append(f.systems, system)
	if len(turns) > 0 {
		f.prompts = append(f.prompts, turns[len(turns)-1].Content)
	}
	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return "", errors.New("no scripted response")
}

type fakeSQLRepo struct {
	columns  []string
	rows     []map[string]any
	queryErr error
	queries  []string
	recent   []model.AlertRecord
}

func (f *fakeSQLRepo) RunReadOnlyQuery(ctx context.Context, query string, maxRows int) ([]string, []map[string]any, error) {
	f.queries = append(f.queries, query)
	if f.queryErr != nil {
		return nil, nil, f.queryErr
	}
	return f.columns, f.rows, nil
}

func (f *fakeSQLRepo) RecentAlerts(ctx context.Context, limit int) ([]model.AlertRecord, error) {
	return f.recent, nil
}

// 1행 1열 결과는 제공자를 다시 부르지 않고 값을 그대로 답한다
func TestSQLAnswerScalarShortcut(t *testing.T) {
	ai := &fakeCompletion{responses: []string{"```sql\nSELECT COUNT(*) FROM alerts;\n```"}}
	repo := &fakeSQLRepo{
		columns: []string{"count"},
		rows:    []map[string]any{{"count": int64(42)}},
	}
	svc := NewSQLAnswerService(repo, ai)

	resp, err := svc.Answer(context.Background(), "How many total alerts do we have?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Answer != "42" {
		t.Fatalf("expected scalar answer 42, got %q", resp.Answer)
	}
	if ai.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", ai.calls)
	}
	if resp.Type != model.AnswerTypeSQL {
		t.Fatalf("expected sql type, got %s", resp.Type)
	}
	if resp.Metadata == nil || resp.Metadata.Query != "SELECT COUNT(*) FROM alerts" {
		t.Fatalf("unexpected metadata query: %+v", resp.Metadata)
	}
	if resp.Metadata.RowCount != 1 {
		t.Fatalf("expected row count 1, got %d", resp.Metadata.RowCount)
	}
	if len(repo.queries) != 1 || repo.queries[0] != "SELECT COUNT(*) FROM alerts" {
		t.Fatalf("unexpected executed query: %v", repo.queries)
	}
}

func TestSQLAnswerRejectsNonSelect(t *testing.T) {
	ai := &fakeCompletion{responses: []string{"DROP TABLE alerts"}}
	repo := &fakeSQLRepo{}
	svc := NewSQLAnswerService(repo, ai)

	resp, err := svc.Answer(context.Background(), "count the alerts")
	if !errors.Is(err, ErrUnsafeQuery) {
		t.Fatalf("expected ErrUnsafeQuery, got %v", err)
	}
	if resp != nil {
		t.Fatalf("expected nil response")
	}
	if len(repo.queries) != 0 {
		t.Fatalf("rejected query must never execute, got %v", repo.queries)
	}
}

func TestSQLAnswerFallbackOnExecFailure(t *testing.T) {
	ai := &fakeCompletion{responses: []string{
		"SELECT bogus FROM alerts",
		"Recent alerts involve Router-01.",
	}}
	repo := &fakeSQLRepo{
		queryErr: errors.New("column does not exist"),
		recent: []model.AlertRecord{
			{ProblemID: "1", Host: "Router-01", Status: model.StatusProblem, Timestamp: time.Now()},
		},
	}
	svc := NewSQLAnswerService(repo, ai)

	resp, err := svc.Answer(context.Background(), "show alerts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Answer != "Recent alerts involve Router-01." {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}
	if ai.calls != 2 {
		t.Fatalf("expected generation + narration calls, got %d", ai.calls)
	}
	if resp.Metadata.RowCount != 1 {
		t.Fatalf("expected fallback row count 1, got %d", resp.Metadata.RowCount)
	}
}

func TestSQLAnswerTemplatedSummaryOnNarrationFailure(t *testing.T) {
	ai := &fakeCompletion{
		responses: []string{"SELECT problem_id, host FROM alerts", ""},
		errs:      []error{nil, errors.New("provider down")},
	}
	repo := &fakeSQLRepo{
		columns: []string{"problem_id", "host"},
		rows: []map[string]any{
			{"problem_id": "9", "host": "R2"},
			{"problem_id": "10", "host": "R3"},
		},
	}
	svc := NewSQLAnswerService(repo, ai)

	resp, err := svc.Answer(context.Background(), "list alerts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(resp.Answer, "Found 2 results.") {
		t.Fatalf("expected templated summary, got %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "9 (R2)") {
		t.Fatalf("expected row identifiers in summary, got %q", resp.Answer)
	}
}

func TestStripSQLMarkup(t *testing.T) {
	if got := stripSQLMarkup("```sql\nSELECT 1;\n```"); got != "SELECT 1" {
		t.Fatalf("unexpected strip result: %q", got)
	}
	if got := stripSQLMarkup("  select * from alerts;  "); got != "select * from alerts" {
		t.Fatalf("unexpected strip result: %q", got)
	}
}

func TestIsSelectQuery(t *testing.T) {
	if !isSelectQuery("  select 1") {
		t.Fatalf("lowercase select must pass")
	}
	if isSelectQuery("DELETE FROM alerts") {
		t.Fatalf("delete must be rejected")
	}
	if isSelectQuery("") {
		t.Fatalf("empty statement must be rejected")
	}
}

func TestMetadataRowsStripEmbedding(t *testing.T) {
	rows := make([]map[string]any, 12)
	for i := range rows {
		rows[i] = map[string]any{"problem_id": "x", "embedding": []float32{0.1}}
	}
	out := metadataRows(rows)
	if len(out) != sqlMetadataRows {
		t.Fatalf("expected %d rows, got %d", sqlMetadataRows, len(out))
	}
	for _, row := range out {
		if _, ok := row["embedding"]; ok {
			t.Fatalf("embedding must be stripped from metadata")
		}
	}
}
