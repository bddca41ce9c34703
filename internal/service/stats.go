package service

import (
	"context"
	"time"

	"github.com/netops-copilot/backend/internal/model"
)

// StatsRepo - 대시보드 집계와 목록 조회용 저장소 연산
type StatsRepo interface {
	RecentAlerts(ctx context.Context, limit int) ([]model.AlertRecord, error)
	CountAlerts(ctx context.Context) (int64, error)
	CountAlertsSince(ctx context.Context, since time.Time) (int64, error)
	CountAlertsByStatus(ctx context.Context) ([]model.StatusCount, error)
	CountAlertsBySeverity(ctx context.Context) ([]model.SeverityCount, error)
	TopHosts(ctx context.Context, limit int) ([]model.HostCount, error)
}

const statsTopHostLimit = 10

type StatsService struct {
	repo StatsRepo
}

func NewStatsService(repo StatsRepo) *StatsService {
	return &StatsService{repo: repo}
}

// Recent - 최근 알람 목록 조회
func (s *StatsService) Recent(ctx context.Context, limit int) ([]model.AlertRecord, error) {
	return s.repo.RecentAlerts(ctx, limit)
}

// Dashboard - 알람 현황 집계
func (s *StatsService) Dashboard(ctx context.Context) (*model.AlertStatsResponse, error) {
	total, err := s.repo.CountAlerts(ctx)
	if err != nil {
		return nil, err
	}
	last24h, err := s.repo.CountAlertsSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.CountAlertsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	bySeverity, err := s.repo.CountAlertsBySeverity(ctx)
	if err != nil {
		return nil, err
	}
	topHosts, err := s.repo.TopHosts(ctx, statsTopHostLimit)
	if err != nil {
		return nil, err
	}

	return &model.AlertStatsResponse{
		Status:     "success",
		Total:      total,
		Last24h:    last24h,
		ByStatus:   byStatus,
		BySeverity: bySeverity,
		TopHosts:   topHosts,
	}, nil
}
