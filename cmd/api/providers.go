package main

import (
	"github.com/rs/zerolog/log"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/pkg/pagination"
)

// ========================================
// 自定义Provider
// ========================================
// 构造函数参数需要从Config中提取,或者需要根据配置返回nil时,
// Wire无法自动推导,在这里手动编写

// provideDB 创建MySQL连接,cleanup时关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideCacheStore 未启用缓存时返回nil,不连接Redis
func provideCacheStore(cfg *config.Config) (*redis.CacheStore, func(), error) {
	if !cfg.Cache.Enabled {
		log.Info().Msg("详情缓存未启用")
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	store := redis.NewCacheStore(client, cfg.Cache.KeyPrefix, cfg.Cache.AuthorTTL, cfg.Cache.BookTTL)
	return store, func() { closeRedis(client) }, nil
}

func closeRedis(client *goredis.Client) {
	if err := client.Close(); err != nil {
		log.Warn().Err(err).Msg("关闭Redis连接失败")
	}
}

// provideAuthorCache 注意:store为nil时必须返回无类型的nil,
// 否则接口值不为nil,服务会调用nil指针的方法
func provideAuthorCache(store *redis.CacheStore) author.Cache {
	if store == nil {
		return nil
	}
	return store
}

func provideBookCache(store *redis.CacheStore) book.Cache {
	if store == nil {
		return nil
	}
	return store
}

// provideAuthorReader 图书服务通过作者服务查询作者(沿用其NotFound和缓存)
func provideAuthorReader(s author.Service) book.AuthorReader {
	return s
}

// providePaginationDefaults 列表接口默认分页
func providePaginationDefaults(cfg *config.Config) pagination.Params {
	return pagination.Params{
		Page:  cfg.Pagination.DefaultPage,
		Limit: cfg.Pagination.DefaultLimit,
	}
}
