//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 修改Provider后重新生成:
//
//	wire gen ./cmd/api
//
// 依赖链:
// *gin.Engine → Handler → author.Service / book.Service → Repository / Cache / TxManager → *gorm.DB / *redis.CacheStore → *config.Config
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
)

// infrastructureSet 基础设施层:数据库连接、详情缓存
var infrastructureSet = wire.NewSet(
	provideDB,
	provideCacheStore,
	provideAuthorCache,
	provideBookCache,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,
	mysql.NewBookRepository,
	mysql.NewTxManager,
	wire.Bind(new(author.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	author.NewService,
	book.NewService,
	provideAuthorReader,
)

// handlerSet HTTP处理器
var handlerSet = wire.NewSet(
	providePaginationDefaults,
	handler.NewAuthorHandler,
	handler.NewBookHandler,
)

// InitializeApp 初始化应用
// 返回的cleanup按创建的逆序释放Redis、MySQL连接
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil, nil
}
