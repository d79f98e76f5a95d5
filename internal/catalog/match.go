package catalog

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"cv-parser-go/internal/logger"
)

// commonAbbreviations 地区常见缩写到目录规范名的映射，命中即短路
var commonAbbreviations = map[string]string{
	"tp.hcm":      "Hồ Chí Minh",
	"tp. hcm":     "Hồ Chí Minh",
	"hcm":         "Hồ Chí Minh",
	"hcmc":        "Hồ Chí Minh",
	"ho chi minh": "Hồ Chí Minh",
	"tphcm":       "Hồ Chí Minh",
	"tp hcm":      "Hồ Chí Minh",
	"hà nội":      "Hà Nội",
	"hn":          "Hà Nội",
	"tp.hn":       "Hà Nội",
	"tp. hn":      "Hà Nội",
	"hanoi":       "Hà Nội",
	"ha noi":      "Hà Nội",
	"đà nẵng":     "Đà Nẵng",
	"dn":          "Đà Nẵng",
	"danang":      "Đà Nẵng",
	"da nang":     "Đà Nẵng",
}

// locationPrefixRe 地区候选词里的行政前缀（"TP." / "Thành phố" / "City" 等）
var locationPrefixRe = regexp.MustCompile(`(?i)^(tp[.\s]*|thành phố\s*|tỉnh\s*|city\s*|province\s*)+`)

// skillNormalizeRe 技能匹配前的文本清洗：保留字母数字和 /#+.- 这些技能名常见符号
var skillNormalizeRe = regexp.MustCompile(`[^\p{L}\p{N}_\s/#+.\-]`)

// foldChain NFD分解后去掉组合变音符号。越南语的 đ/Đ 不走分解，单独替换。
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var dReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// foldAccents 去除变音符号，用于模糊比较（"Hồ Chí Minh" -> "Ho Chi Minh"）
func foldAccents(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}
	return dReplacer.Replace(folded)
}

// fuzzyKey 模糊比较前的归一化：小写 + 去变音
func fuzzyKey(s string) string {
	return foldAccents(strings.ToLower(strings.TrimSpace(s)))
}

// newSnapshot 构建快照并预编译技能短语匹配器
func newSnapshot(provinces, skills []Entry) *Snapshot {
	snap := &Snapshot{
		Provinces: provinces,
		Skills:    skills,
	}
	for _, skill := range skills {
		name := strings.TrimSpace(strings.ToLower(skill.Name))
		if name == "" {
			continue
		}
		// RE2 不支持环视，用显式的非词字符分支模拟整词边界，
		// 这样 "c++"、"c#" 这类技能名也能正确落边界
		expr := `(?i)(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(name) + `(?:[^\p{L}\p{N}_]|$)`
		pattern, err := regexp.Compile(expr)
		if err != nil {
			logger.Warn().Str("skill", skill.Name).Err(err).Msg("技能匹配模式编译失败，跳过")
			continue
		}
		snap.skillPatterns = append(snap.skillPatterns, skillPattern{id: skill.ID, pattern: pattern})
	}
	return snap
}

// DefaultLocation 返回兜底地区ID（"全部地区"哨兵值）。
// 目录不可用时同样成立，保证 region 字段永不为空。
func (p *Provider) DefaultLocation() int {
	return p.cfg.DefaultRegionID
}

// ResolveLocation 将候选地名解析为目录中的地区ID。
//
// 匹配优先级固定：
//  1. 缩写表精确命中（小写比对），命中即返回；
//  2. 对目录全量做模糊匹配，只接受全局最高分且不低于阈值的结果；
//  3. 若带行政前缀且尚未命中，去掉前缀再做一次模糊匹配；
//  4. 仍无结果返回 false，由调用方套用兜底地区。
func (p *Provider) ResolveLocation(ctx context.Context, candidate string) (int, bool) {
	snap := p.Snapshot(ctx)
	if len(snap.Provinces) == 0 {
		return 0, false
	}

	normalized := strings.ToLower(strings.TrimSpace(candidate))
	if normalized == "" {
		return 0, false
	}

	if official, ok := commonAbbreviations[normalized]; ok {
		for _, province := range snap.Provinces {
			if province.Name == official {
				logger.Debug().
					Str("candidate", candidate).
					Str("official", official).
					Int("id", province.ID).
					Msg("地区缩写表命中")
				return province.ID, true
			}
		}
	}

	threshold := p.cfg.FuzzyThreshold
	if id, ok := bestFuzzyMatch(snap.Provinces, normalized, threshold); ok {
		return id, true
	}

	if stripped := locationPrefixRe.ReplaceAllString(normalized, ""); stripped != normalized {
		stripped = strings.TrimSpace(stripped)
		if stripped != "" {
			if id, ok := bestFuzzyMatch(snap.Provinces, stripped, threshold); ok {
				return id, true
			}
		}
	}

	return 0, false
}

// bestFuzzyMatch 在全部目录条目里找最高相似度，只接受不低于阈值的全局最优
func bestFuzzyMatch(provinces []Entry, candidate string, threshold int) (int, bool) {
	lev := metrics.NewLevenshtein()
	key := fuzzyKey(candidate)

	bestID := 0
	bestScore := 0
	found := false
	for _, province := range provinces {
		score := int(strutil.Similarity(key, fuzzyKey(province.Name), lev) * 100)
		if score >= threshold && score > bestScore {
			bestScore = score
			bestID = province.ID
			found = true
		}
	}
	if found {
		logger.Debug().
			Str("candidate", candidate).
			Int("id", bestID).
			Int("score", bestScore).
			Msg("地区模糊匹配命中")
	}
	return bestID, found
}

// MatchSkills 在文本里扫描目录技能短语，返回命中的技能ID。
// 输出顺序跟随目录迭代顺序，而不是命中位置。
func (p *Provider) MatchSkills(ctx context.Context, text string) []int {
	snap := p.Snapshot(ctx)
	if len(snap.skillPatterns) == 0 {
		return nil
	}

	normalized := skillNormalizeRe.ReplaceAllString(strings.ToLower(text), " ")

	var matched []int
	for _, sp := range snap.skillPatterns {
		if sp.pattern.MatchString(normalized) {
			matched = append(matched, sp.id)
		}
	}
	return matched
}
