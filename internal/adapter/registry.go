package adapter

import (
	"fmt"
	"sort"

	"SportsHub/internal/config"
	"SportsHub/internal/interfaces"
	"SportsHub/internal/sportsapi"

	"github.com/sirupsen/logrus"
)

// LeagueRegistry 配置中每个联赛一个适配器实例
type LeagueRegistry struct {
	logger   *logrus.Logger
	adapters map[string]interfaces.LeagueAdapter
}

// NewLeagueRegistry 遍历配置中的联赛，用已注册的工厂创建实例
func NewLeagueRegistry(cfg *config.Config, client *sportsapi.Client, logger *logrus.Logger) *LeagueRegistry {
	r := &LeagueRegistry{
		logger:   logger,
		adapters: make(map[string]interfaces.LeagueAdapter),
	}
	r.logger.WithField("factory_leagues", ListFactories()).Debug("已注册的联赛工厂")

	for key, leagueCfg := range cfg.Leagues {
		factory, ok := GetFactory(key)
		if !ok {
			r.logger.WithField("league", key).Error("未找到对应的工厂函数（init未注册？）")
			continue
		}
		leagueCfg := leagueCfg
		adapterIns := factory(key, &leagueCfg, client, logger)
		if adapterIns == nil {
			r.logger.WithField("league", key).Error("工厂函数返回nil适配器实例")
			continue
		}
		if adapterIns.GetKey() != key {
			r.logger.WithFields(logrus.Fields{
				"config_league":  key,
				"adapter_league": adapterIns.GetKey(),
			}).Error("适配器联赛与配置不匹配")
			continue
		}
		r.adapters[key] = adapterIns
	}

	r.logger.WithField("leagues", r.ListLeagues()).Info("联赛适配器初始化完成")
	return r
}

// ListLeagues 已初始化的联赛 key（已排序）
func (r *LeagueRegistry) ListLeagues() []string {
	keys := make([]string, 0, len(r.adapters))
	for k := range r.adapters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAdapter 获取联赛适配器
func (r *LeagueRegistry) GetAdapter(key string) (interfaces.LeagueAdapter, error) {
	adapterIns, ok := r.adapters[key]
	if !ok {
		return nil, fmt.Errorf("联赛%s未初始化适配器实例（已初始化：%v）", key, r.ListLeagues())
	}
	return adapterIns, nil
}

// GetLeagueCount 已初始化实例的联赛数量
func (r *LeagueRegistry) GetLeagueCount() int {
	return len(r.adapters)
}
