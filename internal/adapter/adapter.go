// internal/adapter/adapter.go
package adapter

import (
	"fmt"
	"sort"

	"SportsHub/internal/config"
	"SportsHub/internal/interfaces"
	"SportsHub/internal/sportsapi"

	"github.com/sirupsen/logrus"
)

// Factory 联赛适配器工厂函数签名
// 入参：配置中的联赛 key、联赛配置、共享的 sportsapi 客户端、日志实例
type Factory func(key string, cfg *config.LeagueConfig, client *sportsapi.Client, logger *logrus.Logger) interfaces.LeagueAdapter

// ========== 全局工厂函数注册表 ==========
var factoryRegistry = make(map[string]Factory)

// Register 供各联赛包的 init 函数调用
func Register(key string, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("联赛%s的工厂函数不能为nil", key))
	}
	if _, exists := factoryRegistry[key]; exists {
		logrus.Warnf("联赛%s的适配器已注册，将覆盖原有实现", key)
	}
	factoryRegistry[key] = factory
	logrus.Debugf("联赛%s工厂函数注册成功", key)
}

// GetFactory 获取指定联赛的工厂函数
func GetFactory(key string) (Factory, bool) {
	factory, ok := factoryRegistry[key]
	return factory, ok
}

// ListFactories 列出所有已注册工厂的联赛 key（已排序）
func ListFactories() []string {
	keys := make([]string, 0, len(factoryRegistry))
	for k := range factoryRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// QueryFor 由联赛配置构造 sportsapi 查询；season 为空时使用配置中的默认赛季
func QueryFor(cfg *config.LeagueConfig, endpoint, season string) sportsapi.Query {
	if season == "" {
		season = cfg.Season
	}
	return sportsapi.Query{
		LeagueID: cfg.LeagueID,
		Season:   season,
		BaseURL:  cfg.BaseURL,
		Host:     cfg.Host,
		Endpoint: endpoint,
	}
}
