package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SportsHub/internal/adapter"
	_ "SportsHub/internal/adapter/epl"
	_ "SportsHub/internal/adapter/nba"
	_ "SportsHub/internal/adapter/nfl"
	"SportsHub/internal/api"
	"SportsHub/internal/cache"
	"SportsHub/internal/config"
	"SportsHub/internal/model"
	"SportsHub/internal/repository"
	"SportsHub/internal/service"
	"SportsHub/internal/sportsapi"
	"SportsHub/internal/utils/httpclient"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 2. 初始化日志
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(logrus.InfoLevel)
	if cfg.Server.Mode == gin.DebugMode {
		logrusLogger.SetLevel(logrus.DebugLevel)
	}
	logrusLogger.Info("配置文件加载成功")
	if cfg.SportsAPI.APIKey == "" {
		logrusLogger.Warn("未配置 SPORTS_API_KEY，联赛数据请求将被上游拒绝")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. 缓存与 api-sports 客户端
	clock := clockwork.NewRealClock()
	memCache := cache.NewMemory(clock)
	memCache.StartJanitor(ctx, time.Minute)

	sportsClient := sportsapi.NewClient(
		cfg.SportsAPI.APIKey,
		httpclient.NewHTTPClient(&cfg.SportsAPI, logrusLogger),
		memCache,
		logrusLogger,
		sportsapi.WithCacheTTL(cfg.SportsAPI.CacheTTL),
		sportsapi.WithMaxResults(cfg.SportsAPI.MaxResults),
	)
	registry := adapter.NewLeagueRegistry(cfg, sportsClient, logrusLogger)

	// 4. 本地 JSON 数据
	products := service.NewProductService(
		repository.NewJSONFile[model.ProductModel](cfg.Storage.ProductsFile, logrusLogger), logrusLogger)
	matches := service.NewMatchService(
		repository.NewJSONFile[model.MatchModel](cfg.Storage.MatchesFile, logrusLogger), logrusLogger)
	teamNames, err := service.NewTeamNameService(cfg.Storage.NamesFile, logrusLogger)
	if err != nil {
		logrusLogger.Fatalf("加载球队名单失败: %v", err)
	}
	if _, err := products.GetAllData(); err != nil {
		logrusLogger.Fatalf("产品数据不可用: %v", err)
	}
	if _, err := matches.GetAllData(); err != nil {
		logrusLogger.Fatalf("比赛数据不可用: %v", err)
	}

	leagues := service.NewLeagueService(registry, logrusLogger)
	syncService := service.NewSyncService(registry, logrusLogger)
	if cfg.SportsAPI.SyncInterval > 0 {
		go runPeriodicSync(ctx, clock, syncService, cfg.SportsAPI.SyncInterval, logrusLogger)
	}

	// 5. 配置Gin运行模式（从配置读取：debug/release）
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	// debug 模式注册 pprof 方便排查性能问题
	if cfg.Server.Mode == gin.DebugMode {
		pprof.Register(r)
	}
	logrusLogger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	// 6. 注册页面与接口路由
	api.SetupRouter(r, &api.Dependencies{
		Config:     cfg,
		Products:   products,
		Matches:    matches,
		TeamNames:  teamNames,
		Comparison: service.NewComparisonService(products, matches, logrusLogger),
		Leagues:    leagues,
		Sync:       syncService,
		Logger:     logrusLogger,
	})

	// 7. 启动服务（从配置读取端口）
	port := cfg.Server.Port
	logrusLogger.Infof("服务启动成功，端口：%d", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		logrusLogger.Fatalf("启动服务失败: %v", err)
	}
}

// runPeriodicSync 按固定间隔预取所有联赛，启动时先执行一次
func runPeriodicSync(ctx context.Context, clock clockwork.Clock, s *service.SyncService, interval time.Duration, logger *logrus.Logger) {
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	s.Run(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("联赛预取任务退出")
			return
		case <-ticker.Chan():
			s.Run(ctx)
		}
	}
}
