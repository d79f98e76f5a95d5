package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"cv-parser-go/internal/constants"
)

var (
	englishLineRe  = regexp.MustCompile(`(tiếng anh|english)`)
	japaneseLineRe = regexp.MustCompile(`(tiếng nhật|japanese)`)

	ieltsRe    = regexp.MustCompile(`ielts\s*(\d+(\.\d+)?)`)
	toeicRe    = regexp.MustCompile(`toeic\s*(\d+)`)
	cefrHighRe = regexp.MustCompile(`\b(c1|c2)\b`)
	cefrLowRe  = regexp.MustCompile(`\b(a1|a2|b1|b2)\b`)

	jlptHighRe = regexp.MustCompile(`\bn1\b|\bn2\b`)
	jlptLowRe  = regexp.MustCompile(`\bn3\b|\bn4\b|\bn5\b`)
)

// ClassifyLanguages 逐行判定英语/日语水平，返回检出水平ID的有序列表。
//
// 行是判定的上下文单位，避免一行的英语分数和另一行的日语分数串线。
// 英语行的规则顺序固定：IELTS分数 → TOEIC分数 → CEFR等级 → 高级关键词
// → 基础关键词，该行首个命中规则生效。后面的行会覆盖前面行对同一语言
// 的结论（最后一行生效）。
//
// 输出采用列表契约：同时检出英日两门时两个ID都保留，
// 不做标量覆盖；一门都没有时返回 [5]。
func ClassifyLanguages(text string, profile *Profile) []int {
	lower := strings.ToLower(text)
	lines := strings.Split(lower, "\n")

	englishLevel := 0
	japaneseLevel := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if englishLineRe.MatchString(line) {
			if level := classifyEnglishLine(line, profile); level != 0 {
				englishLevel = level
			}
		}

		if japaneseLineRe.MatchString(line) {
			if level := classifyJapaneseLine(line, profile); level != 0 {
				japaneseLevel = level
			}
		}
	}

	var result []int
	if englishLevel != 0 {
		result = append(result, englishLevel)
	}
	if japaneseLevel != 0 {
		result = append(result, japaneseLevel)
	}
	if len(result) == 0 {
		result = append(result, LanguageNone)
	}
	sort.Ints(result)
	return result
}

func classifyEnglishLine(line string, profile *Profile) int {
	if m := ieltsRe.FindStringSubmatch(line); m != nil {
		score, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if score >= constants.IELTSAdvancedScore {
				return LanguageEnglish
			}
			return LanguageBasicEnglish
		}
	}
	if m := toeicRe.FindStringSubmatch(line); m != nil {
		score, err := strconv.Atoi(m[1])
		if err == nil {
			if score >= constants.TOEICAdvancedScore {
				return LanguageEnglish
			}
			return LanguageBasicEnglish
		}
	}
	if cefrHighRe.MatchString(line) {
		return LanguageEnglish
	}
	if cefrLowRe.MatchString(line) {
		return LanguageBasicEnglish
	}
	if containsAny(line, profile.AdvancedKeywords) {
		return LanguageEnglish
	}
	if containsAny(line, profile.BasicKeywords) {
		return LanguageBasicEnglish
	}
	return 0
}

func classifyJapaneseLine(line string, profile *Profile) int {
	if jlptHighRe.MatchString(line) || containsAny(line, profile.AdvancedKeywords) {
		return LanguageJapanese
	}
	if jlptLowRe.MatchString(line) || containsAny(line, profile.BasicKeywords) {
		return LanguageBasicJapanese
	}
	return 0
}

func containsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
