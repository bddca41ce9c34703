package db

import (
	"context"

	"github.com/netops-copilot/backend/internal/model"
)

// InsertUploadRecord - 업로드 이력 저장
func (db *Postgres) InsertUploadRecord(ctx context.Context, upload model.UploadRecord) error {
	query := `
		INSERT INTO uploads (
			upload_id, filename, total_alerts, added, skipped,
			range_start, range_end, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := db.Pool.Exec(ctx, query,
		upload.UploadID,
		upload.Filename,
		upload.TotalAlerts,
		upload.Added,
		upload.Skipped,
		upload.RangeStart,
		upload.RangeEnd,
		upload.Status,
		upload.CreatedAt,
	)
	return err
}

// GetUploadHistory - 최근 업로드 이력 조회
func (db *Postgres) GetUploadHistory(ctx context.Context, limit int) ([]model.UploadRecord, error) {
	query := `
		SELECT upload_id, filename, total_alerts, added, skipped,
			range_start, range_end, status, created_at
		FROM uploads
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.UploadRecord
	for rows.Next() {
		var u model.UploadRecord
		if err := rows.Scan(
			&u.UploadID, &u.Filename, &u.TotalAlerts, &u.Added, &u.Skipped,
			&u.RangeStart, &u.RangeEnd, &u.Status, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, u)
	}

	if list == nil {
		list = []model.UploadRecord{}
	}
	return list, nil
}
