package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-parser-go/internal/catalog"
	"cv-parser-go/internal/config"
	"cv-parser-go/internal/ner"
)

const sampleCV = "Nguyen Van A\nEmail: a@x.com\n0912345678\n5 năm kinh nghiệm\nĐại học Bách Khoa 2016-2020\nTiếng Anh giao tiếp tốt"

func newTestExtractor(t *testing.T, provider *catalog.Provider) *Extractor {
	t.Helper()
	ex, err := New(config.PipelineConfig{
		Profile:         "bilingual",
		ReferenceYear:   2024,
		DegreeAdjacency: "word",
		Workers:         1,
	}, provider)
	require.NoError(t, err)
	return ex
}

// TestExtractEndToEnd 一份典型越南语简历的整体抽取
func TestExtractEndToEnd(t *testing.T) {
	provider, _ := newTestProvider(t)
	ex := newTestExtractor(t, provider)

	spans := []ner.Span{
		{Text: "Nguyen Van A", Label: ner.LabelPerson, Start: 0, End: 12},
	}
	record := ex.Extract(context.Background(), "doc-1", sampleCV, spans)

	require.NotNil(t, record.FullName)
	assert.Equal(t, "Nguyen Van A", *record.FullName)
	require.NotNil(t, record.Email)
	assert.Equal(t, "a@x.com", *record.Email)
	require.NotNil(t, record.Phone)
	assert.Equal(t, "0912345678", *record.Phone)
	require.NotNil(t, record.YearsExperience)
	assert.Equal(t, 5, *record.YearsExperience) // 直接表述优先于 2016-2020
	assert.Equal(t, DegreeUniversity, record.EducationLevel)
	assert.Equal(t, []int{LanguageEnglish}, record.LanguageProficiency)
	assert.Equal(t, 99, record.Region)
	assert.Nil(t, record.DateOfBirth)
	assert.Empty(t, record.Skills)
	assert.Nil(t, record.Introduction)
}

// TestExtractCatalogUnavailable 目录接口不可用时整条管线照常出记录
func TestExtractCatalogUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 拿一个保证连不上的地址

	provider := catalog.NewProvider(config.CatalogConfig{
		ProvincesURL:        srv.URL + "/provinces",
		SkillsURL:           srv.URL + "/skills",
		FetchTimeoutSeconds: 1,
		DefaultRegionID:     99,
		FuzzyThreshold:      90,
	}, nil)
	ex := newTestExtractor(t, provider)

	record := ex.Extract(context.Background(), "doc-2", sampleCV, nil)

	assert.Equal(t, 99, record.Region)
	assert.Empty(t, record.Skills)
	require.NotNil(t, record.Email)
	assert.Equal(t, "a@x.com", *record.Email)
	assert.Equal(t, DegreeUniversity, record.EducationLevel)
}

// TestExtractEmptySpans 实体缺失时非实体字段不受影响
func TestExtractEmptySpans(t *testing.T) {
	provider, _ := newTestProvider(t)
	ex := newTestExtractor(t, provider)

	record := ex.Extract(context.Background(), "doc-3", "JOHN SMITH. Backend engineer with Java.\n0912345678", nil)

	require.NotNil(t, record.FullName)
	assert.Equal(t, "John Smith", *record.FullName)
	require.NotNil(t, record.Phone)
	assert.Equal(t, "0912345678", *record.Phone)
}
