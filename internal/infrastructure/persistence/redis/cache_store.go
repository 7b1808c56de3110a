package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// CacheStore 作者/图书详情缓存
//
// 1. Cache-Aside：先查缓存，未命中再查数据库并回填
// 2. 写操作后删除缓存而不是更新缓存，下次查询时重新加载
// 3. 同时实现 author.Cache 和 book.Cache
type CacheStore struct {
	client    *redis.Client
	prefix    string
	authorTTL time.Duration
	bookTTL   time.Duration
}

var (
	_ author.Cache = (*CacheStore)(nil)
	_ book.Cache   = (*CacheStore)(nil)
)

// NewCacheStore 创建缓存存储实例
func NewCacheStore(client *redis.Client, prefix string, authorTTL, bookTTL time.Duration) *CacheStore {
	return &CacheStore{
		client:    client,
		prefix:    prefix,
		authorTTL: authorTTL,
		bookTTL:   bookTTL,
	}
}

// GetAuthor 获取作者详情缓存
func (c *CacheStore) GetAuthor(ctx context.Context, id string) (*author.Author, bool, error) {
	var a author.Author
	ok, err := c.get(ctx, c.authorKey(id), &a)
	if !ok || err != nil {
		return nil, false, err
	}
	return &a, true, nil
}

// SetAuthor 设置作者详情缓存
func (c *CacheStore) SetAuthor(ctx context.Context, a *author.Author) error {
	return c.set(ctx, c.authorKey(a.ID), a, c.authorTTL)
}

// DeleteAuthors 删除作者详情缓存
func (c *CacheStore) DeleteAuthors(ctx context.Context, ids ...string) error {
	return c.del(ctx, c.authorKey, ids)
}

// GetBook 获取图书详情缓存
func (c *CacheStore) GetBook(ctx context.Context, id string) (*book.Book, bool, error) {
	var b book.Book
	ok, err := c.get(ctx, c.bookKey(id), &b)
	if !ok || err != nil {
		return nil, false, err
	}
	return &b, true, nil
}

// SetBook 设置图书详情缓存
func (c *CacheStore) SetBook(ctx context.Context, b *book.Book) error {
	return c.set(ctx, c.bookKey(b.ID), b, c.bookTTL)
}

// DeleteBooks 删除图书详情缓存
func (c *CacheStore) DeleteBooks(ctx context.Context, ids ...string) error {
	return c.del(ctx, c.bookKey, ids)
}

func (c *CacheStore) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// 缓存未命中（调用方需要查询数据库）
			return false, nil
		}
		return false, fmt.Errorf("获取缓存失败: %w", err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("反序列化失败: %w", err)
	}
	return true, nil
}

func (c *CacheStore) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}
	return nil
}

// del 批量删除,使用UNLINK（异步删除，不阻塞）
func (c *CacheStore) del(ctx context.Context, keyFn func(string) string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			keys = append(keys, keyFn(id))
		}
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}
	return nil
}

// authorKey 格式：{prefix}:author:{id}
func (c *CacheStore) authorKey(id string) string {
	return fmt.Sprintf("%s:author:%s", c.prefix, id)
}

// bookKey 格式：{prefix}:book:{id}
func (c *CacheStore) bookKey(id string) string {
	return fmt.Sprintf("%s:book:%s", c.prefix, id)
}
