package extractor

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cv-parser-go/internal/catalog"
)

var (
	emailRe = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	// phoneRe 越南手机号：+84 或 0 开头，后跟9位数字。匹配前先去掉空格和连字符。
	phoneRe        = regexp.MustCompile(`\b(?:\+?84|0)\d{9}\b`)
	phoneCleaner   = strings.NewReplacer(" ", "", "-", "")
	titleCaser     = cases.Title(language.Und)
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
)

// resolveName 选最优的 PERSON 实体：先比字符长度，再比大写字母数，
// 并列取先出现者。实体缺失时在前两个句号分块里找姓名样式的行。
func resolveName(text string, persons []string, profile *Profile) *string {
	best := ""
	bestLen, bestUpper := 0, 0
	for _, p := range persons {
		l := utf8.RuneCountInString(p)
		u := upperCount(p)
		if l > bestLen || (l == bestLen && u > bestUpper) {
			best, bestLen, bestUpper = p, l, u
		}
	}
	if best != "" {
		return stringPtr(best)
	}

	chunks := strings.SplitN(text, ".", 3)
	if len(chunks) > 2 {
		chunks = chunks[:2]
	}
	for _, chunk := range chunks {
		line := strings.TrimSpace(chunk)
		for _, pat := range profile.NameLinePatterns {
			if m := pat.FindStringSubmatch(line); m != nil {
				return stringPtr(titleCaser.String(m[1]))
			}
		}
	}
	return nil
}

func upperCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			n++
		}
	}
	return n
}

// resolveEmail 抽取第一个邮箱地址
func resolveEmail(text string) *string {
	if m := emailRe.FindString(text); m != "" {
		return stringPtr(m)
	}
	return nil
}

// resolvePhone 抽取第一个越南手机号
func resolvePhone(text string) *string {
	cleaned := phoneCleaner.Replace(text)
	if m := phoneRe.FindString(cleaned); m != "" {
		return stringPtr(m)
	}
	return nil
}

// resolveRegion 依次解析合并后的地名实体，首个命中者生效；
// 实体全部落空后用行政前缀兜底模式再试一次；最终兜底为哨兵地区。
func resolveRegion(ctx context.Context, text string, locations []string, provider *catalog.Provider, profile *Profile) int {
	for _, loc := range locations {
		if id, ok := provider.ResolveLocation(ctx, loc); ok {
			return id
		}
	}

	if m := profile.LocationFallbackPattern.FindString(text); m != "" {
		if id, ok := provider.ResolveLocation(ctx, strings.TrimSpace(m)); ok {
			return id
		}
	}

	return provider.DefaultLocation()
}

// resolveIntroduction 取第一个超过20词的空行分隔段落作为简介
func resolveIntroduction(text string) *string {
	for _, para := range paragraphSplit.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len(strings.Fields(para)) > 20 {
			return stringPtr(para)
		}
	}
	return nil
}
