package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type UploadResponse struct {
	Status string             `json:"status"`
	Files  []UploadFileResult `json:"files"`
}

type PreviewResponse struct {
	Status string        `json:"status"`
	Stats  *PreviewStats `json:"stats"`
}

type UploadHistoryResponse struct {
	Status  string         `json:"status"`
	Uploads []UploadRecord `json:"uploads"`
}

type AlertListResponse struct {
	Status string        `json:"status"`
	Alerts []AlertRecord `json:"alerts"`
}

// AlertStatsResponse - 대시보드용 집계 응답
type AlertStatsResponse struct {
	Status     string          `json:"status"`
	Total      int64           `json:"total"`
	Last24h    int64           `json:"last_24h"`
	ByStatus   []StatusCount   `json:"by_status"`
	BySeverity []SeverityCount `json:"by_severity"`
	TopHosts   []HostCount     `json:"top_hosts"`
}
