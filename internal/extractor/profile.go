package extractor

import (
	"fmt"
	"regexp"
)

// DegreeTier 学历层级与其关键词模式，层级越高越先检查
type DegreeTier struct {
	Level   int
	Pattern *regexp.Regexp
}

// Profile 语言画像。越南语、英语和双语管线共用一套代码路径，
// 只有这里的数据表（关键词、短语、模式）随语言变化。
type Profile struct {
	Name string

	// NameLinePatterns 姓名兜底抽取的行模式，子匹配1为姓名
	NameLinePatterns []*regexp.Regexp

	// DegreeTiers 学历关键词模式，按层级从高到低排列
	DegreeTiers []DegreeTier
	// PostgradPattern 研究生关键词，用于大学层级的邻接排除
	PostgradPattern *regexp.Regexp
	// EducationHeaderPattern 教育经历小节的标题关键词
	EducationHeaderPattern *regexp.Regexp
	// OrgTierKeywords 按层级给出的院校机构名关键词（子串匹配）
	OrgTierKeywords map[int][]string

	// LocationFallbackPattern 地区兜底抽取模式（行政前缀 + 地名）
	LocationFallbackPattern *regexp.Regexp

	// AdvancedKeywords / BasicKeywords 外语水平关键词（子串匹配，已小写）
	AdvancedKeywords []string
	BasicKeywords    []string
}

// 学历枚举 1-5，5为未分类默认值
const (
	DegreeHighSchool   = 1
	DegreeCollege      = 2
	DegreeUniversity   = 3
	DegreePostgraduate = 4
	DegreeOther        = 5
)

// 外语水平枚举
const (
	LanguageEnglish       = 1 // 英语流利
	LanguageJapanese      = 2 // 日语流利
	LanguageBasicEnglish  = 3 // 英语基础
	LanguageBasicJapanese = 4 // 日语基础
	LanguageNone          = 5 // 无外语
)

// advancedKeywords 高级水平关键词。两套管线共用同一份表。
// "giao tiếp"（沟通交流）在产品口径里属于流利档。
var advancedKeywords = []string{
	"thành thạo", "bản địa", "nâng cao", "chuyên nghiệp", "thuần thục", "giao tiếp",
	"fluency", "fluent", "native", "professional", "communicate", "advanced", "proficient",
}

// basicKeywords 基础水平关键词
var basicKeywords = []string{
	"cơ bản", "căn bản", "đọc hiểu", "đơn giản", "phổ thông", "tốt", "ổn", "bình thường", "thường",
	"basic", "elementary", "beginner", "intermediate", "standard",
}

var profileVN = &Profile{
	Name: "vi",
	NameLinePatterns: []*regexp.Regexp{
		regexp.MustCompile(`^([A-ZÀ-Ỵ][A-ZÀ-Ỵ\s]{2,})$`),
	},
	DegreeTiers: []DegreeTier{
		{DegreePostgraduate, regexp.MustCompile(`(?i)(thạc sĩ|tiến sĩ|master|phd|doctor)`)},
		{DegreeUniversity, regexp.MustCompile(`(?i)(đại học|đh|học viện|university|bachelor|cử nhân|kỹ sư|academy)`)},
		{DegreeCollege, regexp.MustCompile(`(?i)(cao đẳng|college|trung cấp|vocational)`)},
		{DegreeHighSchool, regexp.MustCompile(`(?i)(trung học|thpt|highschool|high school)`)},
	},
	PostgradPattern:        regexp.MustCompile(`(?i)(thạc sĩ|tiến sĩ)`),
	EducationHeaderPattern: regexp.MustCompile(`(?i)(học vấn|giáo dục|trình độ|bằng cấp|education|bằng)`),
	OrgTierKeywords: map[int][]string{
		DegreeUniversity: {"đại học", "đh", "học viện"},
		DegreeCollege:    {"cao đẳng", "trung cấp"},
		DegreeHighSchool: {"trung học", "thpt"},
	},
	LocationFallbackPattern: regexp.MustCompile(`(?i)(Thành phố|Tỉnh|TP)[^.,\n]+`),
	AdvancedKeywords:        advancedKeywords,
	BasicKeywords:           basicKeywords,
}

var profileEN = &Profile{
	Name: "en",
	NameLinePatterns: []*regexp.Regexp{
		regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)$`),
	},
	DegreeTiers: []DegreeTier{
		{DegreePostgraduate, regexp.MustCompile(`(?i)(master|phd|doctor)`)},
		{DegreeUniversity, regexp.MustCompile(`(?i)(university|uni|bachelor|academy|engineer|bsc|bs)`)},
		{DegreeCollege, regexp.MustCompile(`(?i)(college|vocational)`)},
		{DegreeHighSchool, regexp.MustCompile(`(?i)(highschool|high school)`)},
	},
	PostgradPattern:        regexp.MustCompile(`(?i)(master|phd|doctor)`),
	EducationHeaderPattern: regexp.MustCompile(`(?i)(major|education)`),
	OrgTierKeywords: map[int][]string{
		DegreeUniversity: {"university", "uni", "academy"},
		DegreeCollege:    {"vocational", "college"},
		DegreeHighSchool: {"high school", "highschool"},
	},
	LocationFallbackPattern: regexp.MustCompile(`(?i)(City|Province)[^.,\n]+`),
	AdvancedKeywords:        advancedKeywords,
	BasicKeywords:           basicKeywords,
}

var profileBilingual = &Profile{
	Name: "bilingual",
	NameLinePatterns: []*regexp.Regexp{
		regexp.MustCompile(`^([A-ZÀ-Ỵ][A-ZÀ-Ỵ\s]{2,})$`),
		regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)$`),
	},
	DegreeTiers: []DegreeTier{
		{DegreePostgraduate, regexp.MustCompile(`(?i)(thạc sĩ|tiến sĩ|master|phd|doctor)`)},
		{DegreeUniversity, regexp.MustCompile(`(?i)(đại học|đh|học viện|university|bachelor|cử nhân|kỹ sư|academy|engineer|bsc)`)},
		{DegreeCollege, regexp.MustCompile(`(?i)(cao đẳng|college|trung cấp|vocational)`)},
		{DegreeHighSchool, regexp.MustCompile(`(?i)(trung học|thpt|highschool|high school)`)},
	},
	PostgradPattern:        regexp.MustCompile(`(?i)(thạc sĩ|tiến sĩ|master|phd|doctor)`),
	EducationHeaderPattern: regexp.MustCompile(`(?i)(học vấn|giáo dục|trình độ|bằng cấp|education|bằng|major)`),
	OrgTierKeywords: map[int][]string{
		DegreeUniversity: {"đại học", "đh", "học viện", "university", "uni", "academy"},
		DegreeCollege:    {"cao đẳng", "trung cấp", "vocational", "college"},
		DegreeHighSchool: {"trung học", "thpt", "high school", "highschool"},
	},
	LocationFallbackPattern: regexp.MustCompile(`(?i)(Thành phố|Tỉnh|TP|City|Province)[^.,\n]+`),
	AdvancedKeywords:        advancedKeywords,
	BasicKeywords:           basicKeywords,
}

// ProfileByName 按配置名取语言画像
func ProfileByName(name string) (*Profile, error) {
	switch name {
	case "vi":
		return profileVN, nil
	case "en":
		return profileEN, nil
	case "bilingual", "":
		return profileBilingual, nil
	}
	return nil, fmt.Errorf("未知的语言画像: %s", name)
}
