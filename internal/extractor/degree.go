package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

// AdjacencyMode 研究生关键词相对大学关键词的排除口径。
// 两种口径在历史版本中并存，这里做成显式配置并用测试钉住行为。
type AdjacencyMode string

const (
	// AdjacencyWord 只排除紧随大学关键词之后（仅隔空白）的研究生关键词
	AdjacencyWord AdjacencyMode = "word"
	// AdjacencySentence 排除同一句内出现的研究生关键词
	AdjacencySentence AdjacencyMode = "sentence"
)

// ParseAdjacencyMode 解析配置中的邻接口径
func ParseAdjacencyMode(s string) (AdjacencyMode, error) {
	switch AdjacencyMode(s) {
	case AdjacencyWord, "":
		return AdjacencyWord, nil
	case AdjacencySentence:
		return AdjacencySentence, nil
	}
	return "", fmt.Errorf("未知的学历邻接口径: %s", s)
}

var (
	// blankLineRe 教育小节的结束边界：空行
	blankLineRe = regexp.MustCompile(`\n[ \t]*\n`)
	// sentenceEndRe 句子结束边界
	sentenceEndRe = regexp.MustCompile(`[.!?\n]`)
)

// DegreeClassifier 把自由文本中的学历描述映射为 1-5 的层级。
//
// 判定阶梯严格固定：全文扫描 → 教育小节扫描 → 机构实体名推断 → 默认5。
// 每个阶段都先查高层级再查低层级，保证包含研究生与大学双关键词的
// 文本永远判为4而不是3。
type DegreeClassifier struct {
	profile   *Profile
	adjacency AdjacencyMode
}

// NewDegreeClassifier 创建学历分级器
func NewDegreeClassifier(profile *Profile, adjacency AdjacencyMode) *DegreeClassifier {
	return &DegreeClassifier{profile: profile, adjacency: adjacency}
}

// Classify 返回学历层级。orgs 为合并后的机构实体名。
func (c *DegreeClassifier) Classify(text string, orgs []string) int {
	// 1. 全文扫描，高层级优先
	for _, tier := range c.profile.DegreeTiers {
		if c.tierMatches(text, tier) {
			return tier.Level
		}
	}

	// 2. 限定在教育小节内重扫
	if section, ok := c.educationSection(text); ok {
		for _, tier := range c.profile.DegreeTiers {
			if c.tierMatches(section, tier) {
				return tier.Level
			}
		}
	}

	// 3. 机构实体名推断。先用高层级关键词扫全部机构，再降级。
	for _, tier := range c.profile.DegreeTiers {
		keywords := c.profile.OrgTierKeywords[tier.Level]
		if len(keywords) == 0 {
			continue
		}
		for _, org := range orgs {
			orgLower := strings.ToLower(org)
			for _, kw := range keywords {
				if strings.Contains(orgLower, kw) {
					return tier.Level
				}
			}
		}
	}

	return DegreeOther
}

// tierMatches 判断某层级的关键词是否命中。
// 大学层级要额外排除紧邻的研究生关键词（"master ... university" 误判防护）。
func (c *DegreeClassifier) tierMatches(text string, tier DegreeTier) bool {
	if tier.Level != DegreeUniversity || c.profile.PostgradPattern == nil {
		return tier.Pattern.MatchString(text)
	}
	for _, loc := range tier.Pattern.FindAllStringIndex(text, -1) {
		if !c.postgradFollows(text, loc[1]) {
			return true
		}
	}
	return false
}

// postgradFollows 按配置口径判断 from 之后是否跟着研究生关键词
func (c *DegreeClassifier) postgradFollows(text string, from int) bool {
	rest := text[from:]
	switch c.adjacency {
	case AdjacencySentence:
		if end := sentenceEndRe.FindStringIndex(rest); end != nil {
			rest = rest[:end[0]]
		}
		return c.profile.PostgradPattern.MatchString(rest)
	default:
		trimmed := strings.TrimLeft(rest, " \t")
		loc := c.profile.PostgradPattern.FindStringIndex(trimmed)
		return loc != nil && loc[0] == 0
	}
}

// educationSection 截取教育小节：标题关键词之后到下一个空行（或文末）
func (c *DegreeClassifier) educationSection(text string) (string, bool) {
	loc := c.profile.EducationHeaderPattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]

	// 标题行带冒号时跳过冒号前的修饰词
	if nl := strings.IndexByte(rest, '\n'); nl != 0 {
		head := rest
		if nl > 0 {
			head = rest[:nl]
		}
		if ci := strings.IndexByte(head, ':'); ci >= 0 {
			rest = rest[ci+1:]
		}
	}

	if end := blankLineRe.FindStringIndex(rest); end != nil {
		rest = rest[:end[0]]
	}
	return rest, true
}
