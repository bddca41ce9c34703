package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/netops-copilot/backend/internal/model"
	"github.com/netops-copilot/backend/internal/service"
)

type uploadRepoStub struct{}

func (uploadRepoStub) AlertExists(ctx context.Context, problemID string) (bool, error) {
	return false, nil
}

func (uploadRepoStub) InsertAlerts(ctx context.Context, alerts []model.AlertRecord) (int, error) {
	return len(alerts), nil
}

func (uploadRepoStub) InsertUploadRecord(ctx context.Context, upload model.UploadRecord) error {
	return nil
}

func (uploadRepoStub) GetUploadHistory(ctx context.Context, limit int) ([]model.UploadRecord, error) {
	return nil, nil
}

type embedderStub struct{}

func (embedderStub) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to build form: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form: %v", err)
	}
	return body, writer.FormDataContentType()
}

// 지원하지 않는 확장자는 요청 전체를 거부한다
func TestUploadHandlerRejectsUnsupportedExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/uploads", NewUploadHandler(nil).Upload)

	body, contentType := multipartBody(t, "files", "alerts.txt", "not html")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUploadHandlerRejectsEmptyForm(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/uploads", NewUploadHandler(nil).Upload)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUploadHandlerIngestsHTMLFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewIngestService(uploadRepoStub{}, embedderStub{})
	r := gin.New()
	r.POST("/api/v1/uploads", NewUploadHandler(svc).Upload)

	doc := `<table><tr><td>2024-01-22 10:15:32</td><td>Router-01</td><td>PROBLEM #301 Link down</td></tr></table>`
	body, contentType := multipartBody(t, "files", "alerts.html", doc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.UploadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Files) != 1 {
		t.Fatalf("expected 1 file result, got %d", len(resp.Files))
	}
	result := resp.Files[0]
	if result.Status != model.UploadCompleted || result.TotalAlerts != 1 || result.Added != 1 {
		t.Fatalf("unexpected file result: %+v", result)
	}
}

func TestPreviewHandlerRejectsUnsupportedExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/uploads/preview", NewUploadHandler(nil).Preview)

	body, contentType := multipartBody(t, "file", "alerts.json", "{}")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/preview", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
