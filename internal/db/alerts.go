package db

import (
	"context"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/netops-copilot/backend/internal/model"
)

// EnsureAlertSchema - alerts / uploads 테이블 생성
func (db *Postgres) EnsureAlertSchema() error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`
		CREATE TABLE IF NOT EXISTS alerts (
			problem_id TEXT PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL DEFAULT 'UNKNOWN',
			severity TEXT NOT NULL DEFAULT 'LOW',
			host TEXT NOT NULL DEFAULT 'UNKNOWN',
			interface TEXT,
			alert_type TEXT NOT NULL DEFAULT 'General Alert',
			provider TEXT,
			duration_seconds BIGINT NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			embedding vector(1536),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS alerts_status_idx ON alerts(status)`,
		`CREATE INDEX IF NOT EXISTS alerts_host_idx ON alerts(host)`,
		`CREATE INDEX IF NOT EXISTS alerts_timestamp_idx ON alerts(timestamp DESC)`,
		`CREATE INDEX IF NOT EXISTS alerts_embedding_idx ON alerts USING hnsw (embedding vector_cosine_ops)`,
		`
		CREATE TABLE IF NOT EXISTS uploads (
			upload_id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			total_alerts INT NOT NULL DEFAULT 0,
			added INT NOT NULL DEFAULT 0,
			skipped INT NOT NULL DEFAULT 0,
			range_start TIMESTAMPTZ,
			range_end TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'completed',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS uploads_created_at_idx ON uploads(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(context.Background(), query); err != nil {
			return err
		}
	}
	return nil
}

// InsertAlerts - 알람 배치 저장
// problem_id 충돌은 중복 입력으로 간주해 건너뛰고, 실제로 들어간 건수를 돌려준다
func (db *Postgres) InsertAlerts(ctx context.Context, alerts []model.AlertRecord) (int, error) {
	query := `
		INSERT INTO alerts (
			problem_id, timestamp, status, severity, host, interface,
			alert_type, provider, duration_seconds, description, embedding
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (problem_id) DO NOTHING
	`

	inserted := 0
	for _, a := range alerts {
		var embedding any
		if len(a.Embedding) > 0 {
			embedding = pgvector.NewVector(a.Embedding)
		}
		tag, err := db.Pool.Exec(ctx, query,
			a.ProblemID,
			a.Timestamp,
			a.Status,
			a.Severity,
			a.Host,
			a.Interface,
			a.AlertType,
			a.Provider,
			a.DurationSeconds,
			a.Description,
			embedding,
		)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// AlertExists - problem_id로 중복 여부 확인
func (db *Postgres) AlertExists(ctx context.Context, problemID string) (bool, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM alerts WHERE problem_id = $1)`, problemID).Scan(&exists)
	return exists, err
}

const alertColumns = `problem_id, timestamp, status, severity, host, interface,
	alert_type, provider, duration_seconds, description`

// RecentAlerts - 최근 알람 목록 조회
func (db *Postgres) RecentAlerts(ctx context.Context, limit int) ([]model.AlertRecord, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		ORDER BY timestamp DESC
		LIMIT $1`

	rows, err := db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.AlertRecord
	for rows.Next() {
		var a model.AlertRecord
		if err := rows.Scan(
			&a.ProblemID, &a.Timestamp, &a.Status, &a.Severity, &a.Host,
			&a.Interface, &a.AlertType, &a.Provider, &a.DurationSeconds, &a.Description,
		); err != nil {
			return nil, err
		}
		list = append(list, a)
	}

	if list == nil {
		list = []model.AlertRecord{}
	}
	return list, nil
}

// CountAlerts - 전체 알람 건수
func (db *Postgres) CountAlerts(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM alerts`).Scan(&count)
	return count, err
}

// CountAlertsSince - 기준 시각 이후의 알람 건수
func (db *Postgres) CountAlertsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM alerts WHERE timestamp >= $1`, since).Scan(&count)
	return count, err
}

// CountAlertsByStatus - 상태별 알람 집계
func (db *Postgres) CountAlertsByStatus(ctx context.Context) ([]model.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM alerts
		GROUP BY status
		ORDER BY COUNT(*) DESC`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.StatusCount
	for rows.Next() {
		var c model.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		list = append(list, c)
	}

	if list == nil {
		list = []model.StatusCount{}
	}
	return list, nil
}

// CountAlertsBySeverity - 심각도별 알람 집계
func (db *Postgres) CountAlertsBySeverity(ctx context.Context) ([]model.SeverityCount, error) {
	query := `
		SELECT severity, COUNT(*)
		FROM alerts
		GROUP BY severity
		ORDER BY COUNT(*) DESC`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.SeverityCount
	for rows.Next() {
		var c model.SeverityCount
		if err := rows.Scan(&c.Severity, &c.Count); err != nil {
			return nil, err
		}
		list = append(list, c)
	}

	if list == nil {
		list = []model.SeverityCount{}
	}
	return list, nil
}

// TopHosts - 알람이 많은 호스트 순위
func (db *Postgres) TopHosts(ctx context.Context, limit int) ([]model.HostCount, error) {
	query := `
		SELECT host, COUNT(*)
		FROM alerts
		GROUP BY host
		ORDER BY COUNT(*) DESC
		LIMIT $1`

	rows, err := db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.HostCount
	for rows.Next() {
		var c model.HostCount
		if err := rows.Scan(&c.Host, &c.Count); err != nil {
			return nil, err
		}
		list = append(list, c)
	}

	if list == nil {
		list = []model.HostCount{}
	}
	return list, nil
}
