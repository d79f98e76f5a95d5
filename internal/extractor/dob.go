package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// monthNames 月份名到月份数字的查找表。越南语简历的出生日期
// 基本是纯数字格式，由数字分支覆盖。
var monthNames = map[string]string{
	"january": "01", "jan": "01",
	"february": "02", "feb": "02",
	"march": "03", "mar": "03",
	"april": "04", "apr": "04",
	"may":  "05",
	"june": "06", "jun": "06",
	"july": "07", "jul": "07",
	"august": "08", "aug": "08",
	"september": "09", "sep": "09", "sept": "09",
	"october": "10", "oct": "10",
	"november": "11", "nov": "11",
	"december": "12", "dec": "12",
}

var (
	// ordinalSuffixRe 序数词后缀: 1st, 2nd, 3rd, 4th...
	ordinalSuffixRe = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)`)

	// dobWordPatterns 带月份名的两种顺序: "31 October 1978" 和 "October 31, 1978"
	dobWordPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:ngày\s*sinh|dob|date\s*of\s*birth)?[:\s]*([0-3]?\d[\s/\-.]?[a-zA-Z]+[\s/\-.]?\d{2,4})\b`),
		regexp.MustCompile(`(?i)\b(?:ngày\s*sinh|dob|date\s*of\s*birth)?[:\s]*([a-zA-Z]+[\s/\-.]?[0-3]?\d[,]?[\s/\-.]?\d{2,4})\b`),
	}

	// dobNumericRe 纯数字格式: 31/10/1978, 31-10-78
	dobNumericRe = regexp.MustCompile(`(?i)\b(?:ngày\s*sinh|dob)?[:\s]*([0-3]?\d[/-][01]?\d[/-]\d{2,4})\b`)

	dobSplitRe = regexp.MustCompile(`[\s/\-.]`)
)

// resolveDOB 抽取出生日期并归一化为 DD/MM/YYYY。
// 先去掉序数词后缀，再依次尝试月份名格式和纯数字格式。
func resolveDOB(text string) *string {
	cleaned := ordinalSuffixRe.ReplaceAllString(text, "$1")

	for _, pat := range dobWordPatterns {
		m := pat.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(strings.TrimSpace(m[1]), ",", "")
		parts := splitDateParts(raw)
		if len(parts) != 3 {
			continue
		}

		var day, month, year string
		if mm, ok := monthNames[parts[1]]; ok {
			day, month, year = parts[0], mm, parts[2]
		} else if mm, ok := monthNames[parts[0]]; ok {
			day, month, year = parts[1], mm, parts[2]
		} else {
			continue
		}
		return stringPtr(formatDate(day, month, year))
	}

	if m := dobNumericRe.FindStringSubmatch(cleaned); m != nil {
		parts := splitDateParts(m[1])
		if len(parts) == 3 {
			return stringPtr(formatDate(parts[0], parts[1], parts[2]))
		}
	}

	return nil
}

func splitDateParts(raw string) []string {
	var parts []string
	for _, p := range dobSplitRe.Split(strings.ToLower(raw), -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// formatDate 零填充并展开两位年份：<30 归到2000年代，否则1900年代
func formatDate(day, month, year string) string {
	if len(year) == 2 {
		if n, err := strconv.Atoi(year); err == nil {
			if n < 30 {
				year = "20" + year
			} else {
				year = "19" + year
			}
		}
	}
	return fmt.Sprintf("%s/%s/%s", zeroPad(day), zeroPad(month), year)
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
