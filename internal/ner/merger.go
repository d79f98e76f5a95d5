package ner

import (
	"sort"
	"strings"
	"unicode/utf8"

	"cv-parser-go/internal/logger"
)

// Merge 将相邻的同标签子词片段合并为完整实体短语。
//
// 片段按起始偏移排序后顺序扫描：同标签且原文不以空白开头的片段视为
// 上一片段的延续，拼入当前短语；否则结束当前短语另起新短语；
// 标签不匹配同样会结束当前短语。结果按精确文本去重，
// 丢弃长度不超过1的条目，并按字典序排序。
//
// 片段重叠或结束偏移乱序的情况被有意忽略，排序只看起始偏移。
func Merge(spans []Span, label string) []string {
	sorted := make([]Span, 0, len(spans))
	skipped := 0
	for _, s := range spans {
		if !s.Valid() {
			skipped++
			continue
		}
		sorted = append(sorted, s)
	}
	if skipped > 0 {
		logger.Debug().
			Int("skipped", skipped).
			Str("label", label).
			Msg("跳过字段不完整的实体片段")
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var combined []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			combined = append(combined, strings.TrimSpace(strings.Join(current, " ")))
			current = nil
		}
	}

	for _, s := range sorted {
		if !LabelMatches(s.Label, label) {
			flush()
			continue
		}
		// 去掉子词标记后再裁剪空白；延续性判断看原文是否带前导空白
		word := strings.TrimSpace(strings.ReplaceAll(s.Text, "##", ""))
		if word == "" {
			continue
		}
		if len(current) > 0 && !strings.HasPrefix(s.Text, " ") {
			current = append(current, word)
		} else {
			flush()
			current = []string{word}
		}
	}
	flush()

	seen := make(map[string]struct{}, len(combined))
	result := make([]string, 0, len(combined))
	for _, c := range combined {
		if utf8.RuneCountInString(c) <= 1 {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	sort.Strings(result)
	return result
}
