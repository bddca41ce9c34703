package parser

import (
	"sort"

	"github.com/netops-copilot/backend/internal/model"
)

// Preview - 파싱된 배치의 사전 확인용 집계 통계 계산
// 순수 집계 함수로 부수 효과가 없다. 빈 배치의 날짜 범위는 nil이다
func Preview(records []model.AlertRecord) model.PreviewStats {
	stats := model.PreviewStats{
		TotalMessages: len(records),
		Hosts:         []string{},
	}

	seen := map[string]struct{}{}
	for _, r := range records {
		if r.Host != "" {
			if _, dup := seen[r.Host]; !dup {
				seen[r.Host] = struct{}{}
				stats.Hosts = append(stats.Hosts, r.Host)
			}
		}
		if stats.DateRange == nil {
			stats.DateRange = &model.DateRange{Start: r.Timestamp, End: r.Timestamp}
			continue
		}
		if r.Timestamp.Before(stats.DateRange.Start) {
			stats.DateRange.Start = r.Timestamp
		}
		if r.Timestamp.After(stats.DateRange.End) {
			stats.DateRange.End = r.Timestamp
		}
	}

	sort.Strings(stats.Hosts)
	stats.HostsCount = len(stats.Hosts)
	return stats
}
