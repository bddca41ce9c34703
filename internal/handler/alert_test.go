package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/netops-copilot/backend/internal/model"
	"github.com/netops-copilot/backend/internal/service"
)

type statsRepoStub struct {
	recent []model.AlertRecord
}

func (s statsRepoStub) RecentAlerts(ctx context.Context, limit int) ([]model.AlertRecord, error) {
	return s.recent, nil
}

func (s statsRepoStub) CountAlerts(ctx context.Context) (int64, error) { return 0, nil }

func (s statsRepoStub) CountAlertsSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func (s statsRepoStub) CountAlertsByStatus(ctx context.Context) ([]model.StatusCount, error) {
	return nil, nil
}

func (s statsRepoStub) CountAlertsBySeverity(ctx context.Context) ([]model.SeverityCount, error) {
	return nil, nil
}

func (s statsRepoStub) TopHosts(ctx context.Context, limit int) ([]model.HostCount, error) {
	return nil, nil
}

func TestAlertListRejectsInvalidLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/alerts", NewAlertHandler(nil).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?limit=abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAlertListReturnsRecentAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := statsRepoStub{recent: []model.AlertRecord{
		{ProblemID: "1", Host: "Router-01", Status: model.StatusProblem, Timestamp: time.Now()},
		{ProblemID: "2", Host: "Router-02", Status: model.StatusOK, Timestamp: time.Now()},
	}}
	r := gin.New()
	r.GET("/api/v1/alerts", NewAlertHandler(service.NewStatsService(repo)).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp model.AlertListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(resp.Alerts))
	}
}
