// 필드 추출기 정의
// 각 추출기는 fragment 하나에서 필드 하나를 복원하는 순수 함수다
//
// 공통 패턴:
//   - 전략 목록을 순서대로 시도하고 검증을 통과하는 첫 결과를 채택
//   - 모든 전략이 실패하면 문서화된 기본값을 반환 (추출기는 실패하지 않는다)
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/netops-copilot/backend/internal/model"
)

const (
	defaultHost      = "UNKNOWN"
	defaultAlertType = "General Alert"
	maxHostLength    = 100
	maxDescription   = 500
)

// strategy - 필드 값 후보를 하나 만들어내는 단일 전략
type strategy func(fragment) string

// firstValid - 전략을 순서대로 적용해 검증을 통과하는 첫 후보를 반환
func firstValid(f fragment, valid func(string) bool, strategies ...strategy) (string, bool) {
	for _, s := range strategies {
		if v := strings.TrimSpace(s(f)); valid(v) {
			return v, true
		}
	}
	return "", false
}

// timeLayouts - 타임스탬프 파싱에 시도하는 형식 목록
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02.01.2006 15:04:05",
	"2006.01.02 15:04:05",
	"02/01/2006 15:04:05",
	"2006-01-02 15:04",
	"02.01.2006 15:04",
	"2006-01-02",
	"02.01.2006",
}

// parseTimeString - 알려진 형식을 순서대로 시도해 타임스탬프를 파싱
// "22.01.2024 14:05:33 UTC+03:00" 같은 UTC 오프셋 접미사는 잘라내고 파싱한다
func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, " UTC"); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// extractTimestamp - 첫 번째 셀 → class에 time/date 힌트가 있는 요소 순으로 시도
// 파싱 가능한 후보가 없으면 추출 시각을 기본값으로 사용
func extractTimestamp(f fragment) time.Time {
	candidates := make([]string, 0, 2)
	if len(f.cells) > 0 {
		candidates = append(candidates, f.cells[0])
	}
	if f.sel != nil {
		if hint := strings.TrimSpace(f.sel.Find(`[class*="time"], [class*="date"]`).First().Text()); hint != "" {
			candidates = append(candidates, hint)
		}
	}
	for _, c := range candidates {
		if ts, ok := parseTimeString(c); ok {
			return ts
		}
	}
	return time.Now()
}

// extractStatus - 조각 텍스트의 상태 키워드를 PROBLEM → OK → RESOLVED 순으로 탐색
// 키워드가 없으면 bgcolor 속성 휴리스틱으로 보완하고, 그래도 없으면 UNKNOWN
func extractStatus(f fragment) string {
	upper := strings.ToUpper(f.text)
	switch {
	case strings.Contains(upper, model.StatusProblem):
		return model.StatusProblem
	case strings.Contains(upper, model.StatusOK):
		return model.StatusOK
	case strings.Contains(upper, model.StatusResolved):
		return model.StatusResolved
	}
	if f.sel != nil {
		if color, ok := f.sel.Attr("bgcolor"); ok {
			if status := statusFromColor(color); status != "" {
				return status
			}
		}
		if color, ok := f.sel.Find("[bgcolor]").First().Attr("bgcolor"); ok {
			if status := statusFromColor(color); status != "" {
				return status
			}
		}
	}
	return model.StatusUnknown
}

// statusFromColor - bgcolor 값에서 상태를 추정 (붉은 계열 → PROBLEM, 녹색 계열 → OK)
func statusFromColor(color string) string {
	c := strings.ToLower(strings.TrimSpace(color))
	if strings.Contains(c, "red") {
		return model.StatusProblem
	}
	if strings.Contains(c, "green") {
		return model.StatusOK
	}
	r, g, b, ok := parseHexColor(c)
	if !ok {
		return ""
	}
	if r > g && r > b {
		return model.StatusProblem
	}
	if g > r && g > b {
		return model.StatusOK
	}
	return ""
}

// parseHexColor - #f00 / #ff0000 형태의 색상값을 RGB 채널로 분해
func parseHexColor(c string) (r, g, b int, ok bool) {
	c = strings.TrimPrefix(c, "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	if len(c) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(c, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// severityKeywords - 심각도 키워드를 높은 단계부터 낮은 단계 순으로 나열
// DISASTER/AVERAGE/INFORMATION은 Zabbix 단계 이름의 별칭이다
var severityKeywords = []struct {
	keyword string
	level   string
}{
	{"DISASTER", model.SeverityCritical},
	{"CRITICAL", model.SeverityCritical},
	{"HIGH", model.SeverityHigh},
	{"AVERAGE", model.SeverityWarning},
	{"WARNING", model.SeverityWarning},
	{"INFORMATION", model.SeverityLow},
	{"LOW", model.SeverityLow},
}

// severityFromKeywords - 텍스트에서 가장 높은 단계의 심각도 키워드를 탐색
func severityFromKeywords(text string) (string, bool) {
	upper := strings.ToUpper(text)
	for _, sk := range severityKeywords {
		if strings.Contains(upper, sk.keyword) {
			return sk.level, true
		}
	}
	return "", false
}

// defaultSeverity - 명시적 심각도가 없을 때 상태 기반 기본값
func defaultSeverity(status string) string {
	if status == model.StatusProblem {
		return model.SeverityWarning
	}
	return model.SeverityLow
}

// extractSeverity - 키워드 탐색 후 실패 시 상태 기반 기본값으로 대체
func extractSeverity(f fragment, status string) string {
	if level, ok := severityFromKeywords(f.text); ok {
		return level
	}
	return defaultSeverity(status)
}

var hostLabelPattern = regexp.MustCompile(`Host:\s*(\S+)`)

// validHost - 호스트 후보 검증: 비어 있지 않고 100자 이하
func validHost(s string) bool {
	return s != "" && len(s) <= maxHostLength
}

// extractHost - class 힌트 요소 → 두 번째 셀 → "Host:" 라벨 순으로 시도
func extractHost(f fragment) string {
	host, ok := firstValid(f, validHost,
		func(f fragment) string {
			if f.sel == nil {
				return ""
			}
			return f.sel.Find(`[class*="host"]`).First().Text()
		},
		func(f fragment) string {
			if len(f.cells) > 1 {
				return f.cells[1]
			}
			return ""
		},
		func(f fragment) string {
			if m := hostLabelPattern.FindStringSubmatch(f.text); m != nil {
				return m[1]
			}
			return ""
		},
	)
	if !ok {
		return defaultHost
	}
	return host
}

// interfacePatterns - 라벨 접두사 또는 장비 인터페이스 이름 형태
var interfacePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Interface:\s*([^\s,;]+)`),
	regexp.MustCompile(`Port:\s*([^\s,;]+)`),
	regexp.MustCompile(`\b((?:TenGigabitEthernet|GigabitEthernet|FastEthernet|Ethernet|Vlan|Gi|Te|Fa|Eth|Po|ge-|xe-|et-)[0-9/.:-]+)`),
}

// extractInterface - 인터페이스 이름 추출, 없으면 nil
func extractInterface(f fragment) *string {
	for _, p := range interfacePatterns {
		if m := p.FindStringSubmatch(f.text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return &v
			}
		}
	}
	return nil
}

// alertTypeCatalog - 알려진 알림 유형 문구 (Zabbix 트리거 이름 기반)
var alertTypeCatalog = []string{
	"Unavailable by ICMP ping",
	"High ICMP ping loss",
	"High ICMP ping response time",
	"Link down",
	"Interface down",
	"Port down",
	"High CPU utilization",
	"High memory utilization",
	"Low free disk space",
	"Power supply failure",
	"Fan failure",
	"Temperature too high",
	"BGP session down",
	"OSPF neighbor down",
	"No SNMP data collection",
	"Device rebooted",
	"Configuration changed",
}

var problemTitlePattern = regexp.MustCompile(`Problem:\s*(.+?)\s*(?:Duration|Time)`)

// extractAlertType - 카탈로그 문구 대조 → "Problem: ..." 제목 캡처 → 기본값 순
func extractAlertType(f fragment) string {
	lower := strings.ToLower(f.text)
	for _, phrase := range alertTypeCatalog {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return phrase
		}
	}
	if m := problemTitlePattern.FindStringSubmatch(f.text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return defaultAlertType
}

// problemIDPatterns - 식별자 라벨을 우선순위 순서로 나열
var problemIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Problem ID:\s*(\S+)`),
	regexp.MustCompile(`\bID:\s*(\S+)`),
	regexp.MustCompile(`#(\d+)`),
	regexp.MustCompile(`Event ID:\s*(\S+)`),
}

// extractProblemID - 라벨 패턴을 순서대로 시도하고 실패하면 합성 ID 생성
func extractProblemID(f fragment, host string, ts time.Time) string {
	for _, p := range problemIDPatterns {
		if m := p.FindStringSubmatch(f.text); m != nil {
			if id := strings.TrimSpace(m[1]); id != "" {
				return id
			}
		}
	}
	return FallbackProblemID(host, ts)
}

// FallbackProblemID - 호스트와 밀리초 타임스탬프로 결정적 대체 ID를 합성
// 같은 호스트가 같은 밀리초에 두 번 등장하면 충돌하며, 이는 허용된 한계다
func FallbackProblemID(host string, ts time.Time) string {
	return truncateRunes(fmt.Sprintf("%s-%d", host, ts.UnixMilli()), 20)
}

var (
	whitespacePattern  = regexp.MustCompile(`\s+`)
	labelPrefixPattern = regexp.MustCompile(`(?:Original problem ID|Problem duration|Problem ID|Problem name|Event ID|Problem|Host|Severity|Status|Duration|Interface|Port|Time):\s*`)
)

// extractDescription - 전체 텍스트를 공백 정리하고 라벨 접두사를 제거한 뒤 500자로 제한
func extractDescription(f fragment) string {
	text := whitespacePattern.ReplaceAllString(f.text, " ")
	text = labelPrefixPattern.ReplaceAllString(text, "")
	return truncateRunes(strings.TrimSpace(text), maxDescription)
}

// durationPatterns - 지속 시간 표기를 우선순위 순서로 나열
var durationPatterns = []struct {
	re      *regexp.Regexp
	seconds func(m []string) int64
}{
	{regexp.MustCompile(`(\d+)h\s*(\d+)m`), func(m []string) int64 { return atoi64(m[1])*3600 + atoi64(m[2])*60 }},
	{regexp.MustCompile(`(\d+)m\b`), func(m []string) int64 { return atoi64(m[1]) * 60 }},
	{regexp.MustCompile(`(\d+)s\b`), func(m []string) int64 { return atoi64(m[1]) }},
	{regexp.MustCompile(`(?i)(\d+)\s*hours?`), func(m []string) int64 { return atoi64(m[1]) * 3600 }},
	{regexp.MustCompile(`(?i)(\d+)\s*minutes?`), func(m []string) int64 { return atoi64(m[1]) * 60 }},
}

// extractDuration - 지속 시간을 초 단위로 환산, 표기가 없으면 0
func extractDuration(f fragment) int64 {
	for _, p := range durationPatterns {
		if m := p.re.FindStringSubmatch(f.text); m != nil {
			return p.seconds(m)
		}
	}
	return 0
}

// vendorCatalog - 장비 제조사 이름 목록
var vendorCatalog = []string{
	"Cisco", "Juniper", "Huawei", "Arista", "MikroTik", "Nokia",
	"HPE", "Aruba", "Fortinet", "Palo Alto", "Dell", "Extreme",
	"ZTE", "D-Link", "TP-Link", "Ubiquiti",
}

// extractProvider - 제조사 이름 대조, 없으면 nil
func extractProvider(f fragment) *string {
	lower := strings.ToLower(f.text)
	for _, vendor := range vendorCatalog {
		if strings.Contains(lower, strings.ToLower(vendor)) {
			v := vendor
			return &v
		}
	}
	return nil
}

func atoi64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// truncateRunes - 멀티바이트 문자를 깨뜨리지 않고 n자로 자름
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
