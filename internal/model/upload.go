package model

import "time"

// 업로드 처리 상태
const (
	UploadCompleted = "completed"
	UploadFailed    = "failed"
)

// UploadRecord - 인제스트 1회당 정확히 한 번 생성되는 업로드 이력
// 생성 후 수정하지 않는다
type UploadRecord struct {
	UploadID    string     `json:"upload_id"`
	Filename    string     `json:"filename"`
	TotalAlerts int        `json:"total_alerts"`
	Added       int        `json:"added"`
	Skipped     int        `json:"skipped"`
	RangeStart  *time.Time `json:"range_start"`
	RangeEnd    *time.Time `json:"range_end"`
	Status      string     `json:"status"` // completed, failed
	CreatedAt   time.Time  `json:"created_at"`
}

// UploadFileResult - 요청에 포함된 파일 하나의 처리 결과
// 한 파일이 실패해도 같은 요청의 다른 파일은 계속 처리된다
type UploadFileResult struct {
	Filename    string `json:"filename"`
	TotalAlerts int    `json:"total_alerts"`
	Added       int    `json:"added"`
	Skipped     int    `json:"skipped"`
	Status      string `json:"status"` // completed, failed
	Error       string `json:"error,omitempty"`
}

// DateRange - 배치에 포함된 알람의 시각 범위
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PreviewStats - 인제스트 확정 전 미리보기 통계 (파싱만 수행, 저장 없음)
type PreviewStats struct {
	TotalMessages int        `json:"total_messages"`
	DateRange     *DateRange `json:"date_range"`
	HostsCount    int        `json:"hosts_count"`
	Hosts         []string   `json:"hosts"`
}
