package db

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/netops-copilot/backend/internal/model"
)

// SimilaritySearch - 질문 임베딩과 코사인 유사도가 threshold 이상인 알람을 유사한 순으로 조회
func (db *Postgres) SimilaritySearch(ctx context.Context, embedding []float32, threshold float64, limit int) ([]model.SimilarAlert, error) {
	query := `
		SELECT problem_id, timestamp, status, severity, host, interface,
			alert_type, provider, duration_seconds, description,
			1 - (embedding <=> $1) AS similarity
		FROM alerts
		WHERE embedding IS NOT NULL
			AND 1 - (embedding <=> $1) >= $2
		ORDER BY embedding <=> $1
		LIMIT $3`

	rows, err := db.Pool.Query(ctx, query, pgvector.NewVector(embedding), threshold, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.SimilarAlert
	for rows.Next() {
		var a model.SimilarAlert
		if err := rows.Scan(
			&a.ProblemID, &a.Timestamp, &a.Status, &a.Severity, &a.Host,
			&a.Interface, &a.AlertType, &a.Provider, &a.DurationSeconds, &a.Description,
			&a.Similarity,
		); err != nil {
			return nil, err
		}
		list = append(list, a)
	}

	if list == nil {
		list = []model.SimilarAlert{}
	}
	return list, nil
}

// UpdateAlertEmbedding - 알람 하나의 임베딩 벡터 갱신
func (db *Postgres) UpdateAlertEmbedding(ctx context.Context, problemID string, embedding []float32) error {
	query := `
		UPDATE alerts
		SET embedding = $2
		WHERE problem_id = $1
	`
	_, err := db.Pool.Exec(ctx, query, problemID, pgvector.NewVector(embedding))
	return err
}

// AllAlerts - 재임베딩 스크립트용 전체 알람 조회
func (db *Postgres) AllAlerts(ctx context.Context) ([]model.AlertRecord, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		ORDER BY timestamp`

	rows, err := db.Pool.Query(ctx, query)
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
