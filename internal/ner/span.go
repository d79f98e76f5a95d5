package ner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSpan 片段字段不完整或不一致。携带该错误的片段
// 在合并阶段被跳过，不中断整体流程。
var ErrMalformedSpan = errors.New("实体片段字段不完整")

// 实体标签。外部识别器对同一类实体存在两套命名，
// 英文管线输出 PERSON/ORG/GPE，越南语管线输出 PERSON/ORGANIZATION/LOCATION。
const (
	LabelPerson       = "PERSON"
	LabelOrganization = "ORGANIZATION"
	LabelOrg          = "ORG"
	LabelLocation     = "LOCATION"
	LabelGPE          = "GPE"
)

// Span 外部实体识别器输出的单个标注片段。
// 偏移量基于空白归一化后的原文，按字符计。
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start_char"`
	End   int    `json:"end_char"`
}

// Validate 校验片段字段是否完整一致
func (s Span) Validate() error {
	if strings.TrimSpace(s.Text) == "" {
		return fmt.Errorf("%w: text为空", ErrMalformedSpan)
	}
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("%w: label为空", ErrMalformedSpan)
	}
	if s.Start < 0 || s.End < s.Start {
		return fmt.Errorf("%w: 偏移量非法 [%d,%d)", ErrMalformedSpan, s.Start, s.End)
	}
	return nil
}

// Valid 是 Validate 的布尔形式
func (s Span) Valid() bool {
	return s.Validate() == nil
}

// LabelMatches 判断片段标签是否属于给定的规范标签，
// 兼容两套识别器的命名差异。
func LabelMatches(spanLabel, label string) bool {
	if spanLabel == label {
		return true
	}
	switch label {
	case LabelOrganization, LabelOrg:
		return spanLabel == LabelOrganization || spanLabel == LabelOrg
	case LabelLocation, LabelGPE:
		return spanLabel == LabelLocation || spanLabel == LabelGPE
	}
	return false
}
