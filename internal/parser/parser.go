// 문서 파싱 진입점 정의
// 문서 형태를 보고 방언을 선택하고, 조각 단위로 추출을 수행
//
// 처리 흐름:
//  1. 테이블 행이 있으면 표 형식으로 파싱
//  2. 없으면 .message 컨테이너를 찾아 메시지 스트림 형식으로 파싱
//  3. 조각 하나의 추출 실패는 로그만 남기고 건너뛴다 (배치는 계속 진행)
package parser

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/netops-copilot/backend/internal/model"
)

// ParseDocument - HTML 문서를 AlertRecord 배치로 변환
func ParseDocument(htmlContent string) ([]model.AlertRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if rows := doc.Find("table tr"); rows.Length() > 0 {
		return parseTable(rows), nil
	}
	if messages := doc.Find(".message"); messages.Length() > 0 {
		return parseMessages(messages), nil
	}
	return []model.AlertRecord{}, nil
}

// parseTable - 표 형식 문서 파싱: 셀이 있는 모든 행을 독립적으로 처리
func parseTable(rows *goquery.Selection) []model.AlertRecord {
	records := []model.AlertRecord{}
	rows.Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			// 헤더 행
			return
		}
		if record, ok := parseRow(i, row, cells); ok {
			records = append(records, record)
		}
	})
	return records
}

// parseRow - 행 하나를 AlertRecord로 변환
// 추출 중 오류가 나도 해당 행만 건너뛰고 배치를 중단하지 않는다
func parseRow(index int, row, cells *goquery.Selection) (record model.AlertRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Parser] Skipping malformed row %d: %v", index, r)
			ok = false
		}
	}()

	record = extractRecord(newRowFragment(row, cells))
	if record.ProblemID == "" || record.Host == "" {
		return model.AlertRecord{}, false
	}
	return record, true
}

// extractRecord - fragment 하나에 모든 필드 추출기를 적용해 레코드 조립
func extractRecord(f fragment) model.AlertRecord {
	ts := extractTimestamp(f)
	status := extractStatus(f)
	host := extractHost(f)
	return model.AlertRecord{
		ProblemID:       extractProblemID(f, host, ts),
		Timestamp:       ts,
		Status:          status,
		Severity:        extractSeverity(f, status),
		Host:            host,
		Interface:       extractInterface(f),
		AlertType:       extractAlertType(f),
		Provider:        extractProvider(f),
		DurationSeconds: extractDuration(f),
		Description:     extractDescription(f),
	}
}

// 메시지 스트림 형식의 라벨 라인 패턴
var (
	problemNamePattern     = regexp.MustCompile(`Problem name:\s*(.+)`)
	messageHostPattern     = regexp.MustCompile(`Host:\s*(.+)`)
	messageSeverityPattern = regexp.MustCompile(`Severity:\s*(.+)`)
	originalIDPattern      = regexp.MustCompile(`Original problem ID:\s*(\S+)`)
)

// parseMessages - 메시지 스트림 문서 파싱: .message 컨테이너를 독립적으로 처리
func parseMessages(messages *goquery.Selection) []model.AlertRecord {
	records := []model.AlertRecord{}
	messages.Each(func(i int, msg *goquery.Selection) {
		if record, ok := parseMessage(i, msg); ok {
			records = append(records, record)
		}
	})
	return records
}

// parseMessage - 메시지 하나를 AlertRecord로 변환
// 라벨 라인을 직접 정규식으로 파싱하며, problem ID가 없으면 버린다
func parseMessage(index int, msg *goquery.Selection) (record model.AlertRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Parser] Skipping malformed message %d: %v", index, r)
			ok = false
		}
	}()

	body := messageText(msg)

	problemID := firstSubmatch(originalIDPattern, body)
	if problemID == "" {
		return model.AlertRecord{}, false
	}

	ts := time.Now()
	if title, exists := msg.Find(".date").First().Attr("title"); exists {
		if parsed, valid := parseTimeString(title); valid {
			ts = parsed
		}
	}

	status := messageStatus(body)

	severity, found := severityFromKeywords(firstSubmatch(messageSeverityPattern, body))
	if !found {
		severity = defaultSeverity(status)
	}

	host := firstSubmatch(messageHostPattern, body)
	if host == "" {
		host = defaultHost
	}

	alertType := firstSubmatch(problemNamePattern, body)
	if alertType == "" {
		alertType = defaultAlertType
	}

	bodyFragment := textFragment(body)
	return model.AlertRecord{
		ProblemID:       problemID,
		Timestamp:       ts,
		Status:          status,
		Severity:        severity,
		Host:            host,
		Interface:       extractInterface(bodyFragment),
		AlertType:       alertType,
		Provider:        extractProvider(bodyFragment),
		DurationSeconds: extractDuration(bodyFragment),
		Description:     extractDescription(bodyFragment),
	}, true
}

// messageText - 메시지 본문 텍스트 추출 (<br>을 줄바꿈으로 변환)
func messageText(msg *goquery.Selection) string {
	target := msg
	if body := msg.Find(".text"); body.Length() > 0 {
		target = body.First()
	}
	clone := target.Clone()
	clone.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithHtml("\n")
	})
	return strings.TrimSpace(clone.Text())
}

// messageStatus - 메시지의 이모지/키워드 마커로 상태 판정
// "Problem name:" 라벨 때문에 problem 키워드는 항상 섞여 있으므로 resolved 마커를 먼저 확인한다
func messageStatus(body string) string {
	lower := strings.ToLower(body)
	if strings.Contains(body, "✅") || strings.Contains(lower, "resolved") {
		return model.StatusResolved
	}
	if strings.Contains(body, "🚨") || strings.Contains(body, "❗") || strings.Contains(lower, "problem") {
		return model.StatusProblem
	}
	return model.StatusUnknown
}

// firstSubmatch - 패턴의 첫 캡처 그룹을 trim해서 반환, 없으면 빈 문자열
func firstSubmatch(p *regexp.Regexp, text string) string {
	if m := p.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
