package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cv-parser-go/internal/constants"
	"cv-parser-go/internal/logger"
)

// CatalogConfig 参考目录（地区/技能）接口配置
type CatalogConfig struct {
	ProvincesURL        string `yaml:"provinces_url"`         // 地区目录接口地址
	SkillsURL           string `yaml:"skills_url"`            // 技能目录接口地址
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"` // 单次请求超时(秒)，失败不重试
	DefaultRegionID     int    `yaml:"default_region_id"`     // 兜底地区ID（"全部地区"）
	FuzzyThreshold      int    `yaml:"fuzzy_threshold"`       // 模糊匹配最低接受分数(0-100)
}

// RedisConfig Redis目录快照缓存配置（可选）
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`  // 未启用时目录接口失败直接降级为空目录
	Address  string `yaml:"address"`  // host:port
	Password string `yaml:"password"` // 可通过 REDIS_PASSWORD 环境变量覆盖
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`      // 连接池大小
	MinIdleConns int `yaml:"min_idle_conns"` // 最小空闲连接数
	// 超时设置
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
}

// PipelineConfig 抽取管线配置
type PipelineConfig struct {
	// Profile 语言画像: vi, en, bilingual。只切换数据表，不切换代码路径。
	Profile string `yaml:"profile"`
	// ReferenceYear 工作年限统计中 "Present/nay" 解析到的年份
	ReferenceYear int `yaml:"reference_year"`
	// DegreeAdjacency 学历分级中研究生关键词的排除口径: word 或 sentence
	DegreeAdjacency string `yaml:"degree_adjacency"`
	// Workers 批处理工作协程数
	Workers int `yaml:"workers"`
}

// Config 应用程序配置
type Config struct {
	Logger   logger.Config  `yaml:"logger"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Redis    RedisConfig    `yaml:"redis"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// LoadConfig 从文件加载配置。路径为空时在常见位置查找，
// 找不到配置文件则返回默认配置而不报错。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".cv-parser", "config.yaml"),
		}
		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths, filepath.Join(execDir, "config.yaml"))
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
		if configPath == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 从环境变量覆盖配置（如果存在）
	if envURL := os.Getenv("CATALOG_PROVINCES_URL"); envURL != "" {
		config.Catalog.ProvincesURL = envURL
	}
	if envURL := os.Getenv("CATALOG_SKILLS_URL"); envURL != "" {
		config.Catalog.SkillsURL = envURL
	}
	if envPass := os.Getenv("REDIS_PASSWORD"); envPass != "" {
		config.Redis.Password = envPass
	}

	config.applyDefaults()
	return &config, nil
}

// DefaultConfig 返回一份可直接运行的默认配置
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults 对未设置的字段补默认值
func (c *Config) applyDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}

	if c.Catalog.FetchTimeoutSeconds <= 0 {
		c.Catalog.FetchTimeoutSeconds = int(constants.CatalogFetchTimeout.Seconds())
	}
	if c.Catalog.DefaultRegionID == 0 {
		c.Catalog.DefaultRegionID = constants.DefaultRegionID
	}
	if c.Catalog.FuzzyThreshold <= 0 {
		c.Catalog.FuzzyThreshold = constants.FuzzyScoreThreshold
	}

	if c.Redis.PoolSize <= 0 {
		c.Redis.PoolSize = 10
	}
	if c.Redis.MinIdleConns <= 0 {
		c.Redis.MinIdleConns = 2
	}
	if c.Redis.DialTimeoutSeconds <= 0 {
		c.Redis.DialTimeoutSeconds = 5
	}
	if c.Redis.ReadTimeoutSeconds <= 0 {
		c.Redis.ReadTimeoutSeconds = 3
	}
	if c.Redis.WriteTimeoutSeconds <= 0 {
		c.Redis.WriteTimeoutSeconds = 3
	}

	if c.Pipeline.Profile == "" {
		c.Pipeline.Profile = "bilingual"
	}
	if c.Pipeline.ReferenceYear <= 0 {
		c.Pipeline.ReferenceYear = 2025
	}
	if c.Pipeline.DegreeAdjacency == "" {
		c.Pipeline.DegreeAdjacency = "word"
	}
	if c.Pipeline.Workers <= 0 {
		c.Pipeline.Workers = 4
	}
}
