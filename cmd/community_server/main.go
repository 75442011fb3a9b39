package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"community_server/internal/config"
	dao "community_server/internal/dao/mysql"
	myredis "community_server/internal/dao/redis"
	"community_server/internal/handler"
	"community_server/internal/https_server"
	"community_server/internal/infrastructure/logger"
	"community_server/internal/infrastructure/middleware"
	"community_server/internal/infrastructure/mq"
	"community_server/internal/service"
	"community_server/pkg/util/jwt"
	"community_server/pkg/util/snowflake"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zap.L().Sync()
	zap.L().Info("日志初始化成功")

	// 3. 初始化 JWT 与雪花算法
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init(conf.SnowflakeConfig.MachineID)

	// 4. 初始化数据库
	repos, err := dao.Init(conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("数据库初始化失败", zap.Error(err))
	}
	zap.L().Info("数据库初始化成功")

	// 5. 初始化 Redis
	cache, err := myredis.Init(conf.RedisConfig)
	if err != nil {
		zap.L().Fatal("Redis 初始化失败", zap.Error(err))
	}
	zap.L().Info("Redis 初始化成功")

	// 6. 初始化活动事件发布者
	publisher := mq.NewPublisher(conf.KafkaConfig.MessageMode, func() mq.Publisher {
		if err := mq.EnsureTopic(conf.KafkaConfig); err != nil {
			zap.L().Warn("创建 Kafka 主题失败，继续使用已有主题", zap.Error(err))
		}
		return mq.NewKafkaPublisher(conf.KafkaConfig)
	})
	zap.L().Info("事件发布者初始化成功", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 7. 初始化 Service 与 Handler 层 (依赖注入)
	services := service.NewServices(repos, cache, publisher)
	handlers := handler.NewHandlers(services)

	// 8. 初始化 HTTP 服务器
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	limiter := middleware.NewIPRateLimiter(conf.RateLimitConfig.RequestsPerSecond, conf.RateLimitConfig.Burst)

	engine, err := https_server.Init(conf.MainConfig, https_server.Options{
		Handlers:  handlers,
		RateLimit: limiter.Handler(),
		Registry:  registry,
	})
	if err != nil {
		zap.L().Fatal("HTTP 服务器初始化失败", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go limiter.Cleanup(ctx, time.Minute, 10*time.Minute)

	// 9. 启动服务
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 等待信号
	<-ctx.Done()
	zap.L().Info("关闭服务器...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP 服务器关闭失败", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		zap.L().Error("关闭事件发布者失败", zap.Error(err))
	}
	if err := cache.Close(); err != nil {
		zap.L().Error("关闭 Redis 连接失败", zap.Error(err))
	}
	if err := repos.Close(); err != nil {
		zap.L().Error("关闭数据库连接失败", zap.Error(err))
	}

	zap.L().Info("服务器已关闭")
}
