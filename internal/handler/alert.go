// 알람 조회 엔드포인트 핸들러
//
// 요청 흐름:
//  1. GET /api/v1/alerts - 최근 알람 목록 (limit 쿼리, 기본 50)
//  2. GET /api/v1/alerts/stats - 대시보드용 집계
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/netops-copilot/backend/internal/model"
	"github.com/netops-copilot/backend/internal/service"
)

const (
	defaultAlertLimit = 50
	maxAlertLimit     = 500
)

type AlertHandler struct {
	svc *service.StatsService
}

func NewAlertHandler(svc *service.StatsService) *AlertHandler {
	return &AlertHandler{svc: svc}
}

// List godoc
// @Summary 최근 알람 목록
// @Tags alerts
// @Produce json
// @Param limit query int false "최대 반환 개수 (기본 50)"
// @Success 200 {object} model.AlertListResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	limit := defaultAlertLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > maxAlertLimit {
		limit = maxAlertLimit
	}

	alerts, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.AlertListResponse{Status: "success", Alerts: alerts})
}

// Stats godoc
// @Summary 알람 대시보드 집계
// @Tags alerts
// @Produce json
// @Success 200 {object} model.AlertStatsResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /alerts/stats [get]
func (h *AlertHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
