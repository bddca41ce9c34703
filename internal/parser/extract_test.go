package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/netops-copilot/backend/internal/model"
)

// rowFrag - 테스트용 테이블 행 fragment 생성
func rowFrag(t *testing.T, rowHTML string) fragment {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table>" + rowHTML + "</table>"))
	if err != nil {
		t.Fatalf("failed to build fragment: %v", err)
	}
	row := doc.Find("tr").First()
	return newRowFragment(row, row.Find("td"))
}

func TestExtractTimestampFromFirstCell(t *testing.T) {
	f := rowFrag(t, `<tr><td>2024-01-22 10:15:32</td><td>Router-01</td></tr>`)
	got := extractTimestamp(f)
	want := time.Date(2024, 1, 22, 10, 15, 32, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractTimestampFromClassHint(t *testing.T) {
	f := rowFrag(t, `<tr><td>not a date</td><td class="event-time">22.01.2024 14:05:33</td></tr>`)
	got := extractTimestamp(f)
	want := time.Date(2024, 1, 22, 14, 5, 33, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractTimestampDefaultsToNow(t *testing.T) {
	before := time.Now()
	got := extractTimestamp(textFragment("no date here"))
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Fatalf("expected extraction time default, got %v", got)
	}
}

func TestParseTimeStringStripsUTCOffset(t *testing.T) {
	got, ok := parseTimeString("22.01.2024 14:05:33 UTC+03:00")
	if !ok {
		t.Fatalf("expected parse success")
	}
	want := time.Date(2024, 1, 22, 14, 5, 33, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractStatusKeywordOrder(t *testing.T) {
	// PROBLEM이 다른 키워드보다 먼저 확인된다
	if got := extractStatus(textFragment("Problem resolved")); got != model.StatusProblem {
		t.Fatalf("expected PROBLEM, got %s", got)
	}
	if got := extractStatus(textFragment("All OK now")); got != model.StatusOK {
		t.Fatalf("expected OK, got %s", got)
	}
	if got := extractStatus(textFragment("issue was resolved")); got != model.StatusResolved {
		t.Fatalf("expected RESOLVED, got %s", got)
	}
	if got := extractStatus(textFragment("nothing here")); got != model.StatusUnknown {
		t.Fatalf("expected UNKNOWN, got %s", got)
	}
}

func TestExtractStatusFromRowColor(t *testing.T) {
	red := rowFrag(t, `<tr bgcolor="#ff0000"><td>link failure</td></tr>`)
	if got := extractStatus(red); got != model.StatusProblem {
		t.Fatalf("expected PROBLEM for red row, got %s", got)
	}

	green := rowFrag(t, `<tr><td bgcolor="#00cc00">link failure</td></tr>`)
	if got := extractStatus(green); got != model.StatusOK {
		t.Fatalf("expected OK for green cell, got %s", got)
	}

	named := rowFrag(t, `<tr bgcolor="red"><td>link failure</td></tr>`)
	if got := extractStatus(named); got != model.StatusProblem {
		t.Fatalf("expected PROBLEM for named color, got %s", got)
	}
}

func TestExtractSeverityEscalation(t *testing.T) {
	if got := extractSeverity(textFragment("Disaster: node unreachable"), model.StatusProblem); got != model.SeverityCritical {
		t.Fatalf("expected CRITICAL, got %s", got)
	}
	if got := extractSeverity(textFragment("average load exceeded"), model.StatusProblem); got != model.SeverityWarning {
		t.Fatalf("expected WARNING, got %s", got)
	}
	// 여러 키워드가 있으면 더 높은 단계가 이긴다
	if got := extractSeverity(textFragment("critical issue, low impact"), model.StatusOK); got != model.SeverityCritical {
		t.Fatalf("expected CRITICAL, got %s", got)
	}
}

func TestExtractSeverityDefaultsByStatus(t *testing.T) {
	if got := extractSeverity(textFragment("link went down"), model.StatusProblem); got != model.SeverityWarning {
		t.Fatalf("expected WARNING for PROBLEM status, got %s", got)
	}
	if got := extractSeverity(textFragment("link went down"), model.StatusOK); got != model.SeverityLow {
		t.Fatalf("expected LOW for non-PROBLEM status, got %s", got)
	}
}

func TestExtractHostStrategyOrder(t *testing.T) {
	// class 힌트가 두 번째 셀보다 우선한다
	hinted := rowFrag(t, `<tr><td>2024-01-22 10:15:32</td><td>ignored</td><td class="host-cell">Edge-R1</td></tr>`)
	if got := extractHost(hinted); got != "Edge-R1" {
		t.Fatalf("expected Edge-R1, got %s", got)
	}

	second := rowFrag(t, `<tr><td>2024-01-22 10:15:32</td><td>Core-SW-01</td></tr>`)
	if got := extractHost(second); got != "Core-SW-01" {
		t.Fatalf("expected Core-SW-01, got %s", got)
	}

	labeled := textFragment("alert raised Host: Router-9 just now")
	if got := extractHost(labeled); got != "Router-9" {
		t.Fatalf("expected Router-9, got %s", got)
	}
}

func TestExtractHostRejectsOverlongCandidate(t *testing.T) {
	f := fragment{cells: []string{"2024-01-22", strings.Repeat("a", 120)}}
	if got := extractHost(f); got != defaultHost {
		t.Fatalf("expected %s, got %s", defaultHost, got)
	}
}

func TestExtractInterface(t *testing.T) {
	if got := extractInterface(textFragment("Interface: GigabitEthernet0/1 down")); got == nil || *got != "GigabitEthernet0/1" {
		t.Fatalf("expected GigabitEthernet0/1, got %v", got)
	}
	if got := extractInterface(textFragment("Port: 23 disabled")); got == nil || *got != "23" {
		t.Fatalf("expected 23, got %v", got)
	}
	if got := extractInterface(textFragment("flapping observed on Gi0/1 since midnight")); got == nil || *got != "Gi0/1" {
		t.Fatalf("expected Gi0/1, got %v", got)
	}
	if got := extractInterface(textFragment("memory usage climbing")); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}

func TestExtractAlertType(t *testing.T) {
	// 카탈로그 대조는 대소문자를 무시하고 표준 표기를 돌려준다
	if got := extractAlertType(textFragment("LINK DOWN on uplink")); got != "Link down" {
		t.Fatalf("expected Link down, got %s", got)
	}
	if got := extractAlertType(textFragment("Problem: Fiber cut detected Duration: 5m")); got != "Fiber cut detected" {
		t.Fatalf("expected captured title, got %s", got)
	}
	if got := extractAlertType(textFragment("something odd happened")); got != defaultAlertType {
		t.Fatalf("expected %s, got %s", defaultAlertType, got)
	}
}

func TestExtractProblemIDLadder(t *testing.T) {
	ts := time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)
	if got := extractProblemID(textFragment("Problem ID: 42"), "h", ts); got != "42" {
		t.Fatalf("expected 42, got %s", got)
	}
	if got := extractProblemID(textFragment("ticket ID: abc-7 opened"), "h", ts); got != "abc-7" {
		t.Fatalf("expected abc-7, got %s", got)
	}
	if got := extractProblemID(textFragment("event #1234 occurred"), "h", ts); got != "1234" {
		t.Fatalf("expected 1234, got %s", got)
	}
}

func TestFallbackProblemIDDeterministic(t *testing.T) {
	ts := time.UnixMilli(1705928733000)
	first := FallbackProblemID("R1", ts)
	second := FallbackProblemID("R1", ts)
	if first != second {
		t.Fatalf("expected deterministic id, got %s and %s", first, second)
	}
	if first != "R1-1705928733000" {
		t.Fatalf("unexpected id: %s", first)
	}
	if FallbackProblemID("R1", time.UnixMilli(1705928733001)) == first {
		t.Fatalf("expected different id for different millisecond")
	}
}

func TestFallbackProblemIDTruncated(t *testing.T) {
	id := FallbackProblemID("very-long-hostname-equipment-01", time.UnixMilli(1705928733000))
	if len([]rune(id)) != 20 {
		t.Fatalf("expected 20 chars, got %d (%s)", len([]rune(id)), id)
	}
}

func TestExtractDescription(t *testing.T) {
	f := textFragment("Host: R1\n  Severity:   High\nLink   down")
	if got := extractDescription(f); got != "R1 High Link down" {
		t.Fatalf("unexpected description: %q", got)
	}
}

func TestExtractDescriptionTruncated(t *testing.T) {
	f := textFragment(strings.Repeat("x", 600))
	if got := extractDescription(f); len([]rune(got)) != maxDescription {
		t.Fatalf("expected %d chars, got %d", maxDescription, len([]rune(got)))
	}
}

func TestExtractDuration(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"Duration: 2h 15m", 8100},
		{"Duration: 45m", 2700},
		{"lasted 30s", 30},
		{"down for 3 hours", 10800},
		{"down for 12 minutes", 720},
		{"no duration given", 0},
	}
	for _, c := range cases {
		if got := extractDuration(textFragment(c.text)); got != c.want {
			t.Fatalf("%q: expected %d, got %d", c.text, c.want, got)
		}
	}
}

func TestExtractProvider(t *testing.T) {
	if got := extractProvider(textFragment("Cisco IOS device rebooted")); got == nil || *got != "Cisco" {
		t.Fatalf("expected Cisco, got %v", got)
	}
	if got := extractProvider(textFragment("juniper mx480 alarm")); got == nil || *got != "Juniper" {
		t.Fatalf("expected Juniper, got %v", got)
	}
	if got := extractProvider(textFragment("unbranded switch")); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}
