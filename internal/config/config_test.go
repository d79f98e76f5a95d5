package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 从yaml文件加载并对未设置的字段补默认值
func TestLoadConfigFromFile(t *testing.T) {
	content := `
logger:
  level: debug
catalog:
  provinces_url: http://localhost:8080/provinces
  skills_url: http://localhost:8080/skills
pipeline:
  profile: vi
  reference_year: 2024
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "http://localhost:8080/provinces", cfg.Catalog.ProvincesURL)
	assert.Equal(t, "vi", cfg.Pipeline.Profile)
	assert.Equal(t, 2024, cfg.Pipeline.ReferenceYear)

	// 未设置的字段补默认值
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 99, cfg.Catalog.DefaultRegionID)
	assert.Equal(t, 90, cfg.Catalog.FuzzyThreshold)
	assert.Equal(t, "word", cfg.Pipeline.DegreeAdjacency)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
}

// TestLoadConfigEnvOverride 环境变量覆盖文件中的目录地址和Redis口令
func TestLoadConfigEnvOverride(t *testing.T) {
	content := `
catalog:
  provinces_url: http://file-value/provinces
redis:
  password: file-secret
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("CATALOG_PROVINCES_URL", "http://env-value/provinces")
	t.Setenv("REDIS_PASSWORD", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env-value/provinces", cfg.Catalog.ProvincesURL)
	assert.Equal(t, "env-secret", cfg.Redis.Password)
}

// TestDefaultConfig 默认配置开箱可用
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "bilingual", cfg.Pipeline.Profile)
	assert.Equal(t, 2025, cfg.Pipeline.ReferenceYear)
	assert.Equal(t, 10, cfg.Catalog.FetchTimeoutSeconds)
	assert.False(t, cfg.Redis.Enabled)
}

// TestLoadConfigBadYaml 配置文件损坏时返回错误
func TestLoadConfigBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [oops"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

// TestLoadConfigMissingFile 显式指定的路径不存在时报错
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
