package constants

import "time"

const (
	// DefaultParserVer 解析器版本，随抽取规则演进
	DefaultParserVer = "1.0"

	// MinDocumentRunes 有效文档的最小字符数，低于该值的文档直接跳过
	MinDocumentRunes = 20

	// DefaultRegionID 未能解析出地区时使用的兜底目录ID（"全部地区"）
	DefaultRegionID = 99

	// FuzzyScoreThreshold 地区模糊匹配的最低接受分数（0-100）
	FuzzyScoreThreshold = 90

	// IELTSAdvancedScore IELTS达到该分数视为高级水平
	IELTSAdvancedScore = 7.0
	// TOEICAdvancedScore TOEIC达到该分数视为高级水平
	TOEICAdvancedScore = 650

	// CatalogFetchTimeout 目录接口单次请求超时，失败不重试
	CatalogFetchTimeout = 10 * time.Second
)
