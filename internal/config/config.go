package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig            `mapstructure:"server"`     // 服务器配置
	Storage   StorageConfig           `mapstructure:"storage"`    // 本地 JSON 文件配置
	SportsAPI SportsAPIConfig         `mapstructure:"sports_api"` // api-sports 公共配置
	Leagues   map[string]LeagueConfig `mapstructure:"leagues"`    // 各联赛独立配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int      `mapstructure:"port"`         // 服务端口
	Mode        string   `mapstructure:"mode"`         // Gin运行模式：debug/release/test
	CORSOrigins []string `mapstructure:"cors_origins"` // /api 允许的跨域来源
}

// StorageConfig 本地数据文件路径
type StorageConfig struct {
	ProductsFile string `mapstructure:"products_file"` // 运动/球队
	MatchesFile  string `mapstructure:"matches_file"`  // 本地比赛
	NamesFile    string `mapstructure:"names_file"`    // 球队名称校验表
}

// SportsAPIConfig api-sports 客户端配置
type SportsAPIConfig struct {
	APIKey     string        `mapstructure:"api_key"`     // x-rapidapi-key
	Timeout    int           `mapstructure:"timeout"`     // 请求超时（秒）
	Proxy      string        `mapstructure:"proxy"`       // 代理地址
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`   // 赛季数据缓存时长
	MaxResults int           `mapstructure:"max_results"` // 单次返回条数上限
	// 定时预取间隔，0 表示关闭
	SyncInterval time.Duration `mapstructure:"sync_interval"`
}

// LeagueConfig 单个联赛的上游配置（三个联赛的 base_url 与返回结构互不兼容）
type LeagueConfig struct {
	Name              string `mapstructure:"name"`               // 展示名称
	BaseURL           string `mapstructure:"base_url"`           // API基础地址
	Host              string `mapstructure:"host"`               // x-rapidapi-host
	LeagueID          string `mapstructure:"league_id"`          // 上游联赛 ID
	Season            string `mapstructure:"season"`             // 默认赛季
	GamesEndpoint     string `mapstructure:"games_endpoint"`     // 赛程接口
	StandingsEndpoint string `mapstructure:"standings_endpoint"` // 积分榜接口
}

// LoadConfig 加载配置文件（<dir>/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig(dir string) (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）

	// 2. 读取 config.yaml
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	normalizeLeagues(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("storage.products_file", "data/products.json")
	v.SetDefault("storage.matches_file", "data/matches.json")
	v.SetDefault("storage.names_file", "data/names.json")
	v.SetDefault("sports_api.timeout", 15)
	v.SetDefault("sports_api.cache_ttl", 25*time.Minute)
	v.SetDefault("sports_api.max_results", 100)
	v.SetDefault("sports_api.sync_interval", 0)
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("SPORTS_API_KEY"); v != "" {
		cfg.SportsAPI.APIKey = v
	}
	if v := os.Getenv("SPORTS_API_PROXY"); v != "" {
		cfg.SportsAPI.Proxy = v
	}
	if v := os.Getenv("PRODUCTS_FILE"); v != "" {
		cfg.Storage.ProductsFile = v
	}
	if v := os.Getenv("MATCHES_FILE"); v != "" {
		cfg.Storage.MatchesFile = v
	}
	if v := os.Getenv("NAMES_FILE"); v != "" {
		cfg.Storage.NamesFile = v
	}
}

// normalizeLeagues 联赛 key 统一小写，缺省接口名补齐
func normalizeLeagues(cfg *Config) {
	leagues := make(map[string]LeagueConfig, len(cfg.Leagues))
	for key, l := range cfg.Leagues {
		if l.GamesEndpoint == "" {
			l.GamesEndpoint = "games"
		}
		if l.StandingsEndpoint == "" {
			l.StandingsEndpoint = "standings"
		}
		if l.Name == "" {
			l.Name = strings.ToUpper(key)
		}
		leagues[strings.ToLower(key)] = l
	}
	cfg.Leagues = leagues
}
