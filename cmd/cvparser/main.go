package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"cv-parser-go/internal/catalog"
	"cv-parser-go/internal/config"
	"cv-parser-go/internal/constants"
	"cv-parser-go/internal/extractor"
	"cv-parser-go/internal/logger"
	"cv-parser-go/internal/pipeline"
	"cv-parser-go/internal/storage"
)

// 命令行参数定义
var (
	configPath string
	inputPath  string
	outputPath string
	workers    int
)

func main() {
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径，留空时在默认位置查找")
	pflag.StringVarP(&inputPath, "input", "i", "", "输入文档：单个JSON文件或包含*.json的目录 (必填)")
	pflag.StringVarP(&outputPath, "output", "o", "parsed_data/extracted_cv_data.json", "批次结果输出路径")
	pflag.IntVarP(&workers, "workers", "w", 0, "工作协程数，0表示使用配置值")
	pflag.Parse()

	// .env 存在时加载，用于覆盖目录接口地址等
	_ = godotenv.Load()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "错误: 必须通过 --input 指定输入文档")
		pflag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)
	logger.Info().
		Str("parser_version", constants.DefaultParserVer).
		Str("profile", cfg.Pipeline.Profile).
		Msg("解析器启动")

	if err := run(cfg); err != nil {
		logger.Fatal().Err(err).Msg("批处理执行失败")
	}
}

func run(cfg *config.Config) error {
	ctx := logger.WithContext(context.Background())

	// Redis缓存可选，连接失败只降级不中断
	var cache catalog.Cache
	if cfg.Redis.Enabled {
		redisAdapter, err := storage.NewRedisAdapter(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis不可用，目录缓存回退被禁用")
		} else {
			defer redisAdapter.Close()
			cache = redisAdapter
		}
	}

	provider := catalog.NewProvider(cfg.Catalog, cache)

	ext, err := extractor.New(cfg.Pipeline, provider)
	if err != nil {
		return err
	}

	docs, err := loadDocuments(inputPath)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		logger.Warn().Str("input", inputPath).Msg("输入中没有找到文档")
		return nil
	}

	workerCount := workers
	if workerCount <= 0 {
		workerCount = cfg.Pipeline.Workers
	}

	processor := pipeline.NewProcessor(ext, workerCount)
	records := processor.Process(ctx, docs)

	if err := storage.WriteRecordsAtomic(outputPath, records); err != nil {
		return err
	}

	logger.Info().
		Int("records", len(records)).
		Str("output", outputPath).
		Msg("批次结果已写入")
	return nil
}

// loadDocuments 读取输入文档。目录时逐个读取*.json，
// 单文件时兼容文档数组和单个文档两种形态。
func loadDocuments(path string) ([]pipeline.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("访问输入路径失败: %w", err)
	}

	if !info.IsDir() {
		return loadDocumentFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("读取输入目录失败: %w", err)
	}

	var docs []pipeline.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fileDocs, err := loadDocumentFile(filepath.Join(path, entry.Name()))
		if err != nil {
			logger.Error().Err(err).Str("file", entry.Name()).Msg("读取输入文件失败，跳过")
			continue
		}
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

func loadDocumentFile(path string) ([]pipeline.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取输入文件失败: %w", err)
	}

	var docs []pipeline.Document
	if err := json.Unmarshal(data, &docs); err == nil {
		fillSourceFile(docs, path)
		return docs, nil
	}

	var doc pipeline.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析输入文件 %s 失败: %w", path, err)
	}
	docs = []pipeline.Document{doc}
	fillSourceFile(docs, path)
	return docs, nil
}

func fillSourceFile(docs []pipeline.Document, path string) {
	base := filepath.Base(path)
	for i := range docs {
		if docs[i].SourceFile == "" {
			docs[i].SourceFile = base
		}
	}
}
