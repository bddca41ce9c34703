package db

import (
	"context"
)

// RunReadOnlyQuery - 생성된 SELECT 문을 실행해 컬럼 이름 목록과 행 맵 목록을 반환
// 행 수는 스캔 루프에서 maxRows로 제한한다
func (db *Postgres) RunReadOnlyQuery(ctx context.Context, query string, maxRows int) ([]string, []map[string]any, error) {
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	results := []map[string]any{}
	for rows.Next() {
		if len(results) >= maxRows {
			break
		}
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		results = append(results, row)
	}

	return columns, results, rows.Err()
}
