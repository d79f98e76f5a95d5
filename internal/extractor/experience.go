package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// directExperienceRe 直接的年限表述: "5 năm kinh nghiệm", "3+ years of experience"
	directExperienceRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(năm|years?|yrs?)\s*(of\s*)?(kinh\s*nghiệm|experience|exp)`)

	// dateRangeRe 工作时间段: "Jan 2020 - Mar 2023", "2019 - Present", "01/2020 ~ 03/2023"
	dateRangeRe = regexp.MustCompile(`(?i)((?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)[ \t.,\-]?\d{4}|\d{1,2}/\d{4}|\d{4})\s*[-–~]\s*(present|nay|\d{1,2}/\d{4}|\d{4}|(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)[ \t.,\-]?\d{4})`)

	yearRe = regexp.MustCompile(`\d{4}`)
)

// resolveExperience 抽取工作年限。
//
// 直接年限表述优先；没有时退到时间段累加：扫描全文的
// (起始年, 结束年|present) 区间，present 解析为配置的参考年份，
// 非正的区间差被丢弃，其余求和。
func resolveExperience(text string, referenceYear int) *int {
	if m := directExperienceRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return intPtr(n)
		}
	}

	total := 0
	found := false
	for _, rng := range dateRangeRe.FindAllString(text, -1) {
		years := yearRe.FindAllString(rng, -1)
		switch {
		case len(years) == 2:
			start, err1 := strconv.Atoi(years[0])
			end, err2 := strconv.Atoi(years[1])
			if err1 != nil || err2 != nil {
				continue
			}
			if diff := end - start; diff > 0 {
				total += diff
				found = true
			}
		case len(years) == 1 && isOpenEnded(rng):
			start, err := strconv.Atoi(years[0])
			if err != nil {
				continue
			}
			if diff := referenceYear - start; diff > 0 {
				total += diff
				found = true
			}
		}
	}
	if found {
		return intPtr(total)
	}
	return nil
}

func isOpenEnded(rng string) bool {
	lower := strings.ToLower(rng)
	return strings.Contains(lower, "present") || strings.Contains(lower, "nay")
}
