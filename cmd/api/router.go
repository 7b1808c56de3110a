package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookshelf/docs"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// provideGinEngine 创建Gin引擎并注册路由
// 中间件顺序:RequestID → Tracing → Logger → Recovery → Metrics
// Recovery在Logger之后,panic产生的500也会被记录访问日志
func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Tracing(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(),
	)

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus采集端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档 http://localhost:8080/swagger/index.html
	// 生产环境关闭
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	authorHandler.RegisterRoutes(v1)
	bookHandler.RegisterRoutes(v1)

	return r
}
