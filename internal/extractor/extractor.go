package extractor

import (
	"context"
	"fmt"

	"cv-parser-go/internal/catalog"
	"cv-parser-go/internal/config"
	"cv-parser-go/internal/logger"
	"cv-parser-go/internal/ner"
)

// Extractor 把一份简历文本和实体片段解析为 CVRecord。
//
// 单个文档的处理是纯粹的同步变换，唯一可能阻塞的是目录的首次抓取。
// 解析器之间相互独立，任何一个解析器内部出错只降级对应字段为空，
// 不影响其余字段，也不会向调用方抛错。
type Extractor struct {
	profile *Profile
	catalog *catalog.Provider
	degree  *DegreeClassifier
	refYear int
}

// New 创建抽取器。目录提供者由外部传引用，不做进程级单例。
func New(cfg config.PipelineConfig, provider *catalog.Provider) (*Extractor, error) {
	profile, err := ProfileByName(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("创建抽取器失败: %w", err)
	}
	adjacency, err := ParseAdjacencyMode(cfg.DegreeAdjacency)
	if err != nil {
		return nil, fmt.Errorf("创建抽取器失败: %w", err)
	}
	return &Extractor{
		profile: profile,
		catalog: provider,
		degree:  NewDegreeClassifier(profile, adjacency),
		refYear: cfg.ReferenceYear,
	}, nil
}

// Extract 按固定顺序跑完全部字段解析器并组装记录。
// 顺序只影响诊断日志，字段之间没有数据依赖。
func (e *Extractor) Extract(ctx context.Context, docID, text string, spans []ner.Span) CVRecord {
	persons := ner.Merge(spans, ner.LabelPerson)
	orgs := ner.Merge(spans, ner.LabelOrganization)
	locations := ner.Merge(spans, ner.LabelLocation)

	record := CVRecord{
		Region:         e.catalog.DefaultLocation(),
		EducationLevel: DegreeOther,
	}

	e.guard(docID, "name", func() {
		record.FullName = resolveName(text, persons, e.profile)
	})
	e.guard(docID, "dob", func() {
		record.DateOfBirth = resolveDOB(text)
	})
	e.guard(docID, "location", func() {
		record.Region = resolveRegion(ctx, text, locations, e.catalog, e.profile)
	})
	e.guard(docID, "contact", func() {
		record.Email = resolveEmail(text)
		record.Phone = resolvePhone(text)
	})
	e.guard(docID, "experience", func() {
		record.YearsExperience = resolveExperience(text, e.refYear)
	})
	e.guard(docID, "education", func() {
		record.EducationLevel = e.degree.Classify(text, orgs)
	})
	e.guard(docID, "languages", func() {
		record.LanguageProficiency = ClassifyLanguages(text, e.profile)
	})
	e.guard(docID, "skills", func() {
		record.Skills = e.catalog.MatchSkills(ctx, text)
	})
	e.guard(docID, "introduction", func() {
		record.Introduction = resolveIntroduction(text)
	})

	return record
}

// guard 兜住单个解析器的panic，字段降级为零值并记录诊断日志
func (e *Extractor) guard(docID, field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err := NewFieldError(docID, field, fmt.Sprintf("%v", r))
			logger.Warn().
				Err(err).
				Str("document_id", docID).
				Str("field", field).
				Msg("字段解析失败，降级为空值")
		}
	}()
	fn()
}
