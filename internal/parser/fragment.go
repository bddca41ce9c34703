// Package parser는 네트워크 모니터링 알림 내보내기 문서를
// model.AlertRecord 배치로 정규화하는 파싱 파이프라인을 제공한다.
//
// 지원하는 문서 형식:
//  1. 표 형식 (Zabbix 스타일 HTML 테이블) - 행마다 필드 추출기를 적용
//  2. 메시지 스트림 형식 (Telegram 내보내기) - 라벨 라인을 직접 파싱
package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fragment - 레코드 하나에 해당하는 원본 조각
// text는 조각 전체 텍스트, cells는 표 형식에서 정렬된 셀 텍스트 목록
type fragment struct {
	text  string
	cells []string
	sel   *goquery.Selection
}

// newRowFragment - 테이블 행 하나에서 fragment 생성
func newRowFragment(row, cells *goquery.Selection) fragment {
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return fragment{
		text:  strings.Join(texts, " "),
		cells: texts,
		sel:   row,
	}
}

// textFragment - 셀 구분이 없는 순수 텍스트 fragment 생성
func textFragment(text string) fragment {
	return fragment{text: text}
}
