package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sync"
	"time"

	"cv-parser-go/internal/config"
	"cv-parser-go/internal/constants"
	"cv-parser-go/internal/logger"
)

// ErrCatalogUnavailable 目录接口不可用。调用方降级为空目录继续运行，
// 该错误只用于日志与缓存回退判断，不会穿出本包。
var ErrCatalogUnavailable = errors.New("参考目录接口不可用")

// Entry 目录条目，地区与技能共用同一结构
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// apiResponse 目录接口的响应包装
type apiResponse struct {
	Data []Entry `json:"data"`
}

// skillPattern 预编译的技能短语匹配器
type skillPattern struct {
	id      int
	pattern *regexp.Regexp
}

// Snapshot 一次抓取得到的不可变目录快照。
// 发布后只读，多个文档可并发使用。
type Snapshot struct {
	Provinces []Entry
	Skills    []Entry

	skillPatterns []skillPattern
}

// Cache 目录快照的持久缓存。长驻服务在上游接口故障时
// 回退到最近一次成功抓取的快照。
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Provider 持有惰性初始化的目录快照，并提供显式刷新入口。
// 显式传引用给需要它的解析器，不做进程级单例。
type Provider struct {
	cfg        config.CatalogConfig
	httpClient *http.Client
	cache      Cache

	mu   sync.RWMutex
	snap *Snapshot
}

// NewProvider 创建目录提供者。cache 可以为 nil，表示不启用持久缓存。
func NewProvider(cfg config.CatalogConfig, cache Cache) *Provider {
	return &Provider{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		},
		cache: cache,
	}
}

// Snapshot 返回当前目录快照，首次调用时抓取。
// 抓取失败降级为空目录，整个管线照常运行。
func (p *Provider) Snapshot(ctx context.Context) *Snapshot {
	p.mu.RLock()
	snap := p.snap
	p.mu.RUnlock()
	if snap != nil {
		return snap
	}
	return p.Refresh(ctx)
}

// Refresh 重新抓取两份目录并发布新快照，供长驻服务定期调用。
func (p *Provider) Refresh(ctx context.Context) *Snapshot {
	provinces := p.fetchEntries(ctx, p.cfg.ProvincesURL, constants.KeyCatalogProvinces)
	skills := p.fetchEntries(ctx, p.cfg.SkillsURL, constants.KeyCatalogSkills)

	snap := newSnapshot(provinces, skills)

	p.mu.Lock()
	p.snap = snap
	p.mu.Unlock()

	logger.Info().
		Int("provinces", len(provinces)).
		Int("skills", len(skills)).
		Msg("参考目录快照已发布")
	return snap
}

// fetchEntries 单次请求抓取一份目录。失败时尝试缓存回退，
// 仍失败则返回空列表并记录日志，绝不向上抛错。
func (p *Provider) fetchEntries(ctx context.Context, url, cacheKey string) []Entry {
	entries, err := p.fetchRemote(ctx, url)
	if err == nil {
		p.storeCache(ctx, cacheKey, entries)
		return entries
	}

	logger.Warn().
		Err(fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)).
		Str("url", url).
		Msg("目录抓取失败，尝试缓存回退")

	if cached, ok := p.loadCache(ctx, cacheKey); ok {
		logger.Info().
			Str("key", cacheKey).
			Int("entries", len(cached)).
			Msg("使用缓存的目录快照")
		return cached
	}
	return nil
}

func (p *Provider) fetchRemote(ctx context.Context, url string) ([]Entry, error) {
	if url == "" {
		return nil, fmt.Errorf("目录接口地址未配置")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("构造目录请求失败: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求目录接口失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("目录接口返回状态 %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取目录响应失败: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("解析目录响应失败: %w", err)
	}
	return parsed.Data, nil
}

func (p *Provider) storeCache(ctx context.Context, key string, entries []Entry) {
	if p.cache == nil || len(entries) == 0 {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, key, data, constants.CatalogSnapshotTTL); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("写入目录缓存失败")
	}
}

func (p *Provider) loadCache(ctx context.Context, key string) ([]Entry, bool) {
	if p.cache == nil {
		return nil, false
	}
	data, err := p.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("目录缓存内容损坏，忽略")
		return nil, false
	}
	return entries, true
}
