// 업로드 인제스트 비즈니스 로직 정의
// 문서를 파싱하고 중복을 제거한 뒤 임베딩을 붙여 저장
//
// 처리 흐름:
//  1. 문서 파싱 (형식 자동 감지)
//  2. problem_id로 기존 알람과 중복 확인
//  3. 새 알람만 10건 배치로 임베딩 (배치 사이 대기, 실패한 알람은 벡터 없이 저장)
//  4. 배치 저장 (problem_id 충돌은 건너뜀)
//  5. 파일별 업로드 이력 기록 - 실패한 파일도 기록하고 요청은 계속 진행
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/netops-copilot/backend/internal/model"
	"github.com/netops-copilot/backend/internal/parser"
)

const (
	embedBatchSize  = 10
	embedBatchPause = 500 * time.Millisecond
)

// IngestRepo - 인제스트가 쓰는 저장소 연산
type IngestRepo interface {
	AlertExists(ctx context.Context, problemID string) (bool, error)
	InsertAlerts(ctx context.Context, alerts []model.AlertRecord) (int, error)
	InsertUploadRecord(ctx context.Context, upload model.UploadRecord) error
	GetUploadHistory(ctx context.Context, limit int) ([]model.UploadRecord, error)
}

type IngestService struct {
	repo     IngestRepo
	embedder EmbeddingProvider
}

func NewIngestService(repo IngestRepo, embedder EmbeddingProvider) *IngestService {
	return &IngestService{repo: repo, embedder: embedder}
}

// IngestFile - 파일 하나를 인제스트하고 결과를 보고
// 오류는 파일 단위로 흡수한다. 실패해도 같은 요청의 다른 파일 처리는 계속된다
func (s *IngestService) IngestFile(ctx context.Context, filename, content string) model.UploadFileResult {
	result := model.UploadFileResult{Filename: filename, Status: model.UploadFailed}

	// 1. 파싱
	records, err := parser.ParseDocument(content)
	if err != nil {
		log.Printf("[Ingest] Failed to parse %s: %v", filename, err)
		result.Error = err.Error()
		s.recordUpload(ctx, result, nil)
		return result
	}
	result.TotalAlerts = len(records)

	// 2. 중복 제거
	fresh := make([]model.AlertRecord, 0, len(records))
	for _, r := range records {
		exists, err := s.repo.AlertExists(ctx, r.ProblemID)
		if err != nil {
			log.Printf("[Ingest] Dedup check failed for %s: %v", filename, err)
			result.Error = err.Error()
			s.recordUpload(ctx, result, records)
			return result
		}
		if !exists {
			fresh = append(fresh, r)
		}
	}

	// 3. 새 알람 임베딩
	s.embedRecords(ctx, fresh)

	// 4. 저장
	inserted, err := s.repo.InsertAlerts(ctx, fresh)
	if err != nil {
		log.Printf("[Ingest] Insert failed for %s: %v", filename, err)
		result.Added = inserted
		result.Error = err.Error()
		s.recordUpload(ctx, result, records)
		return result
	}

	result.Added = inserted
	result.Skipped = result.TotalAlerts - inserted
	result.Status = model.UploadCompleted

	// 5. 업로드 이력
	s.recordUpload(ctx, result, records)
	return result
}

// embedRecords - 알람을 배치 단위로 임베딩
// 배치 사이에 잠시 대기해 제공자 호출 속도를 제한한다.
// 취소되면 남은 제공자 호출만 중단한다. 이미 임베딩된 알람은 그대로 저장 단계로 넘어간다
func (s *IngestService) embedRecords(ctx context.Context, records []model.AlertRecord) {
	for i := range records {
		if i > 0 && i%embedBatchSize == 0 {
			select {
			case <-ctx.Done():
				log.Printf("[Ingest] Embedding canceled after %d alerts", i)
				return
			case <-time.After(embedBatchPause):
			}
		}
		if ctx.Err() != nil {
			log.Printf("[Ingest] Embedding canceled after %d alerts", i)
			return
		}

		vector, err := s.embedder.EmbedText(ctx, model.EmbeddingText(records[i]))
		if err != nil {
			// 임베딩에 실패한 알람은 벡터 없이 저장되어 유사도 검색에서만 빠진다
			log.Printf("[Ingest] Failed to embed alert %s: %v", records[i].ProblemID, err)
			continue
		}
		records[i].Embedding = vector
	}
}

// recordUpload - 파일 하나의 업로드 이력을 기록
func (s *IngestService) recordUpload(ctx context.Context, result model.UploadFileResult, records []model.AlertRecord) {
	upload := model.UploadRecord{
		UploadID:    uuid.NewString(),
		Filename:    result.Filename,
		TotalAlerts: result.TotalAlerts,
		Added:       result.Added,
		Skipped:     result.Skipped,
		Status:      result.Status,
		CreatedAt:   time.Now(),
	}
	if stats := parser.Preview(records); stats.DateRange != nil {
		upload.RangeStart = &stats.DateRange.Start
		upload.RangeEnd = &stats.DateRange.End
	}

	if err := s.repo.InsertUploadRecord(ctx, upload); err != nil {
		log.Printf("[Ingest] Failed to record upload %s: %v", result.Filename, err)
	}
}

// Preview - 저장 없이 문서를 파싱해 요약 통계만 계산
func (s *IngestService) Preview(content string) (model.PreviewStats, error) {
	records, err := parser.ParseDocument(content)
	if err != nil {
		return model.PreviewStats{}, err
	}
	return parser.Preview(records), nil
}

// UploadHistory - 최근 업로드 이력 조회
func (s *IngestService) UploadHistory(ctx context.Context, limit int) ([]model.UploadRecord, error) {
	return s.repo.GetUploadHistory(ctx, limit)
}
