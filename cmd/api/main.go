package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
	"github.com/xiebiao/bookshelf/pkg/validator"
)

// @title           Bookshelf API
// @version         1.0
// @description     作者与图书管理服务
// @host            localhost:8080
// @BasePath        /

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("加载配置失败")
	}

	// 2. 日志、指标、链路追踪
	logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	metrics.InitMetrics()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("初始化链路追踪失败")
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				log.Warn().Err(err).Msg("关闭链路追踪失败")
			}
		}()
	}

	// 3. 注册isbn、date校验tag(必须在绑定请求之前)
	if err := validator.RegisterGinValidators(); err != nil {
		log.Fatal().Err(err).Msg("注册校验规则失败")
	}

	// 4. 依赖注入(wire_gen.go)
	engine, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化应用失败")
	}
	defer cleanup()

	// 5. 启动HTTP服务
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("mode", cfg.Server.Mode).
			Bool("cache", cfg.Cache.Enabled).
			Msg("服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("启动服务失败")
		}
	}()

	// 6. 优雅关闭:等待处理中的请求完成
	<-ctx.Done()
	log.Info().Msg("正在关闭服务...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("服务关闭超时")
		return
	}

	log.Info().Msg("服务已关闭")
}
