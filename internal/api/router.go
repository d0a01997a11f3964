package api

import (
	"embed"
	"html/template"
	"net/http"

	"SportsHub/internal/config"
	"SportsHub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Dependencies 路由需要的全部服务
type Dependencies struct {
	Config     *config.Config
	Products   *service.ProductService
	Matches    *service.MatchService
	TeamNames  *service.TeamNameService
	Comparison *service.ComparisonService
	Leagues    *service.LeagueService
	Sync       *service.SyncService
	Logger     *logrus.Logger
}

// LoadTemplates 解析内嵌页面模板
func LoadTemplates() *template.Template {
	funcs := template.FuncMap{
		"deref": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"))
}

// SetupRouter 注册页面、JSON 接口与运维路由
func SetupRouter(r *gin.Engine, deps *Dependencies) {
	r.SetHTMLTemplate(LoadTemplates())

	home := NewHomeHandler(deps.Products, deps.Leagues, deps.Logger)
	products := NewProductHandler(deps.Products, deps.Matches, deps.TeamNames, deps.Logger)
	matches := NewMatchHandler(deps.Matches, deps.Logger)
	leagues := NewLeagueHandler(deps.Leagues, deps.Logger)
	compare := NewCompareHandler(deps.Comparison, deps.Products, deps.Logger)
	productAPI := NewProductAPIHandler(deps.Products, deps.Logger)
	syncHandler := NewSyncHandler(deps.Sync, deps.Logger)

	r.GET("/", home.Index)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 运动/球队页面
	r.GET("/products", products.List)
	r.GET("/products/new", products.New)
	r.POST("/products", products.Create)
	r.POST("/products/default", products.CreateDefault)
	r.GET("/products/:id", products.Detail)
	r.GET("/products/:id/edit", products.Edit)
	r.POST("/products/:id", products.Update)
	r.POST("/products/:id/delete", products.Delete)
	r.POST("/products/:id/rate", products.Rate)
	r.POST("/products/:id/comments", products.Comment)

	// 本地比赛
	r.GET("/matches", matches.List)
	r.POST("/matches", matches.Create)
	r.GET("/matches/:key/edit", matches.Edit)
	r.POST("/matches/:key", matches.Update)
	r.POST("/matches/:key/delete", matches.Delete)
	r.POST("/matches/:key/swap", matches.Swap)

	// 远程联赛数据
	r.GET("/leagues/:league/games", leagues.Games)
	r.GET("/leagues/:league/standings", leagues.Standings)
	r.POST("/sync/league/:league", syncHandler.SyncLeagueHandler)

	r.GET("/compare", compare.Compare)

	apiGroup := r.Group("/api")
	apiGroup.Use(cors.New(corsConfig(deps.Config)))
	apiGroup.GET("/products", productAPI.List)
	apiGroup.PATCH("/products", productAPI.Rate)
	// 预检请求需要匹配到路由，cors 中间件才会执行
	apiGroup.OPTIONS("/products", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPatch, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}

	var origins []string
	if cfg != nil {
		origins = cfg.Server.CORSOrigins
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

// renderError 统一的错误页
func renderError(c *gin.Context, status int, err error) {
	c.HTML(status, "error.tmpl", gin.H{
		"Title": http.StatusText(status),
		"Error": err.Error(),
	})
}
