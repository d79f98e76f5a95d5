package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"cv-parser-go/internal/constants"
	"cv-parser-go/internal/extractor"
	"cv-parser-go/internal/logger"
	"cv-parser-go/internal/ner"
)

// Document 一份待解析的文档：预清洗后的UTF-8文本加外部识别器的实体片段
type Document struct {
	ID         string     `json:"id"`
	SourceFile string     `json:"source_file"`
	Text       string     `json:"text"`
	Spans      []ner.Span `json:"spans"`
}

// Processor 批处理驱动。单文档处理是纯同步变换，文档之间
// 没有共享可变状态（目录快照只读），用有界协程池并行。
type Processor struct {
	extractor *extractor.Extractor
	workers   int
}

// NewProcessor 创建批处理器
func NewProcessor(ext *extractor.Extractor, workers int) *Processor {
	if workers <= 0 {
		workers = 4
	}
	return &Processor{
		extractor: ext,
		workers:   workers,
	}
}

// Process 解析一批文档，输出顺序与输入一致。
// 文本过短的文档跳过不产出记录；任何文档级失败都只影响该文档。
func (p *Processor) Process(ctx context.Context, docs []Document) []extractor.CVRecord {
	batchID := uuid.New().String()
	start := time.Now()

	results := make([]*extractor.CVRecord, len(docs))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processOne(ctx, docs[i])
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	records := make([]extractor.CVRecord, 0, len(docs))
	skipped := 0
	for _, r := range results {
		if r == nil {
			skipped++
			continue
		}
		records = append(records, *r)
	}

	logger.Info().
		Str("batch_id", batchID).
		Int("processed", len(records)).
		Int("skipped", skipped).
		Dur("duration", time.Since(start)).
		Msg("批处理完成")

	return records
}

// processOne 处理单个文档，文档级前置条件不满足时返回 nil
func (p *Processor) processOne(ctx context.Context, doc Document) *extractor.CVRecord {
	docID := doc.ID
	if docID == "" {
		docID = doc.SourceFile
	}

	text := strings.TrimSpace(doc.Text)
	if utf8.RuneCountInString(text) < constants.MinDocumentRunes {
		err := extractor.NewEmptyDocumentError(docID)
		logger.Debug().
			Err(err).
			Str("document_id", docID).
			Msg("跳过过短或空的文档")
		return nil
	}

	record := p.extractor.Extract(ctx, docID, text, doc.Spans)
	record.SourceFile = doc.SourceFile
	return &record
}
