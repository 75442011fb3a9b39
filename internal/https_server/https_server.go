// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件、页面模板和路由
package https_server

import (
	"fmt"

	"community_server/internal/config"
	"community_server/internal/handler"
	"community_server/internal/infrastructure/logger"
	"community_server/internal/infrastructure/middleware"
	"community_server/internal/router"
	"community_server/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options 服务器依赖
type Options struct {
	Handlers  *handler.Handlers
	RateLimit gin.HandlerFunc      // 写操作限流，为空时不限流
	Registry  *prometheus.Registry // 指标注册表，为空时不暴露 /metrics
}

// Init 创建并配置 Gin 引擎
// 配置顺序：
//  1. 日志与 Panic 恢复中间件
//  2. CORS 与可选的 HTTPS 重定向
//  3. 请求指标
//  4. 参数校验翻译与页面模板
//  5. 业务路由
func Init(conf config.MainConfig, opts Options) (*gin.Engine, error) {
	if conf.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// 由 Nginx 处理 SSL 时保持关闭
	if conf.TLSRedirect {
		engine.Use(middleware.TlsHandler(conf.Host, conf.Port))
	}

	if opts.Registry != nil {
		engine.Use(middleware.NewMetrics(opts.Registry).Handler())
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	if err := handler.InitTrans(conf.Locale); err != nil {
		return nil, fmt.Errorf("init validator translator: %w", err)
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)

	router.NewRouter(opts.Handlers, opts.RateLimit).RegisterRoutes(engine)
	return engine, nil
}
