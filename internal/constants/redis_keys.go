package constants

import "time"

// Redis Key 前缀和格式常量
// 使用统一的命名规范: app:{module}:{entity}
const (
	// AppPrefix 是所有Redis Key的统一应用前缀
	AppPrefix = "app"

	// CatalogModulePrefix 参考目录模块
	CatalogModulePrefix = "catalog"

	// EntitySnapshot 目录快照实体
	EntitySnapshot = "snapshot"

	// KeyCatalogProvinces 地区目录快照缓存 (STRING, JSON)
	// 格式: app:catalog:snapshot:provinces
	KeyCatalogProvinces = AppPrefix + ":" + CatalogModulePrefix + ":" + EntitySnapshot + ":provinces"

	// KeyCatalogSkills 技能目录快照缓存 (STRING, JSON)
	// 格式: app:catalog:snapshot:skills
	KeyCatalogSkills = AppPrefix + ":" + CatalogModulePrefix + ":" + EntitySnapshot + ":skills"

	// CatalogSnapshotTTL 目录快照缓存过期时间
	CatalogSnapshotTTL = 7 * 24 * time.Hour
)
