package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-parser-go/internal/catalog"
	"cv-parser-go/internal/config"
	"cv-parser-go/internal/extractor"
)

func newTestProcessor(t *testing.T, workers int) *Processor {
	t.Helper()
	provider := catalog.NewProvider(config.CatalogConfig{
		FetchTimeoutSeconds: 1,
		DefaultRegionID:     99,
		FuzzyThreshold:      90,
	}, nil)
	ext, err := extractor.New(config.PipelineConfig{
		Profile:       "bilingual",
		ReferenceYear: 2024,
		Workers:       workers,
	}, provider)
	require.NoError(t, err)
	return NewProcessor(ext, workers)
}

// TestProcessPreservesOrder 并行处理后输出顺序与输入一致
func TestProcessPreservesOrder(t *testing.T) {
	p := newTestProcessor(t, 4)

	docs := make([]Document, 12)
	for i := range docs {
		docs[i] = Document{
			ID:         fmt.Sprintf("doc-%d", i),
			SourceFile: fmt.Sprintf("cv_%d.txt", i),
			Text:       fmt.Sprintf("Ứng viên thứ %d, liên hệ email ung.vien.%d@example.com để trao đổi", i, i),
		}
	}

	records := p.Process(context.Background(), docs)
	require.Len(t, records, len(docs))
	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("cv_%d.txt", i), r.SourceFile)
		require.NotNil(t, r.Email)
		assert.Equal(t, fmt.Sprintf("ung.vien.%d@example.com", i), *r.Email)
	}
}

// TestProcessSkipsShortDocuments 过短文档跳过且不挤占其余文档的位置
func TestProcessSkipsShortDocuments(t *testing.T) {
	p := newTestProcessor(t, 2)

	docs := []Document{
		{ID: "a", SourceFile: "a.txt", Text: "Ứng viên đầu tiên với kinh nghiệm lập trình backend lâu năm"},
		{ID: "b", SourceFile: "b.txt", Text: "quá ngắn"},
		{ID: "c", SourceFile: "c.txt", Text: "   \n\t  "},
		{ID: "d", SourceFile: "d.txt", Text: "Ứng viên cuối cùng với kinh nghiệm kiểm thử phần mềm tự động"},
	}

	records := p.Process(context.Background(), docs)
	require.Len(t, records, 2)
	assert.Equal(t, "a.txt", records[0].SourceFile)
	assert.Equal(t, "d.txt", records[1].SourceFile)
}

// TestProcessEmptyBatch 空批次直接返回空切片
func TestProcessEmptyBatch(t *testing.T) {
	p := newTestProcessor(t, 2)
	records := p.Process(context.Background(), nil)
	assert.Empty(t, records)
}
