// 알람 내보내기 파일 업로드를 처리하는 핸들러
//
// 요청 흐름:
//  1. multipart 폼의 files 필드에서 파일 목록을 꺼냄
//  2. 확장자 검증 - 하나라도 지원하지 않으면 요청 전체를 거부 (부분 처리 없음)
//  3. 파일별로 인제스트 실행, 실패한 파일도 결과 목록에 포함
package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/netops-copilot/backend/internal/model"
	"github.com/netops-copilot/backend/internal/service"
)

const uploadHistoryLimit = 50

type UploadHandler struct {
	svc *service.IngestService
}

func NewUploadHandler(svc *service.IngestService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload godoc
// @Summary 알람 내보내기 파일 업로드
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "알람 내보내기 HTML 파일 (.html/.htm, 복수 가능)"
// @Success 200 {object} model.UploadResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "multipart form required"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "no files provided"})
		return
	}

	for _, file := range files {
		if !supportedUploadFile(file.Filename) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{
				Error: fmt.Sprintf("unsupported file type: %s (only .html and .htm are accepted)", file.Filename),
			})
			return
		}
	}

	results := make([]model.UploadFileResult, 0, len(files))
	for _, file := range files {
		content, err := readUploadFile(file)
		if err != nil {
			results = append(results, model.UploadFileResult{
				Filename: file.Filename,
				Status:   model.UploadFailed,
				Error:    err.Error(),
			})
			continue
		}
		results = append(results, h.svc.IngestFile(c.Request.Context(), file.Filename, content))
	}

	c.JSON(http.StatusOK, model.UploadResponse{Status: "success", Files: results})
}

// Preview godoc
// 저장 없이 파일 하나를 파싱해 요약 통계만 돌려준다
// @Summary 업로드 미리보기
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "알람 내보내기 HTML 파일"
// @Success 200 {object} model.PreviewResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /uploads/preview [post]
func (h *UploadHandler) Preview(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "file is required"})
		return
	}
	if !supportedUploadFile(file.Filename) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: fmt.Sprintf("unsupported file type: %s (only .html and .htm are accepted)", file.Filename),
		})
		return
	}

	content, err := readUploadFile(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	stats, err := h.svc.Preview(content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.PreviewResponse{Status: "success", Stats: &stats})
}

// History godoc
// @Summary 업로드 이력
// @Tags uploads
// @Produce json
// @Success 200 {object} model.UploadHistoryResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /uploads [get]
func (h *UploadHandler) History(c *gin.Context) {
	uploads, err := h.svc.UploadHistory(c.Request.Context(), uploadHistoryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.UploadHistoryResponse{Status: "success", Uploads: uploads})
}

func supportedUploadFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}

func readUploadFile(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	return string(data), nil
}
