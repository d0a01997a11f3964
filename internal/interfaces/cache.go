package interfaces

import "time"

// Cache 带过期时间的键值缓存（SportsApiClient 的显式依赖，测试可替换时钟）
type Cache interface {
	// Get 命中且未过期时返回 (value, true)
	Get(key string) (any, bool)
	// Set 写入并在 ttl 后过期
	Set(key string, value any, ttl time.Duration)
}
