package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

func TestCacheKeys(t *testing.T) {
	c := NewCacheStore(nil, "bookshelf", time.Minute, time.Minute)

	assert.Equal(t, "bookshelf:author:a1", c.authorKey("a1"))
	assert.Equal(t, "bookshelf:book:b1", c.bookKey("b1"))
}

func TestDeleteEmptyIDs(t *testing.T) {
	// 没有有效ID时不访问Redis
	c := NewCacheStore(nil, "bookshelf", time.Minute, time.Minute)

	assert.NoError(t, c.DeleteAuthors(context.Background()))
	assert.NoError(t, c.DeleteBooks(context.Background(), ""))
}

// 集成测试需要真实Redis,未设置地址时跳过
func newTestStore(t *testing.T) *CacheStore {
	t.Helper()

	addr := os.Getenv("BOOKSHELF_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BOOKSHELF_TEST_REDIS_ADDR未设置,跳过Redis集成测试")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	return NewCacheStore(client, "bookshelf_test", time.Minute, time.Minute)
}

func TestCacheStoreIntegration(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("作者缓存读写与失效", func(t *testing.T) {
		_, ok, err := store.GetAuthor(ctx, "a1")
		require.NoError(t, err)
		assert.False(t, ok)

		bio := "Gopher"
		require.NoError(t, store.SetAuthor(ctx, &author.Author{
			ID: "a1", FirstName: "Rob", LastName: "Pike", Bio: &bio,
			Books: []author.BookSummary{{ID: "b1", Title: "Go"}},
		}))

		a, ok, err := store.GetAuthor(ctx, "a1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Rob", a.FirstName)
		assert.Equal(t, "Gopher", *a.Bio)
		assert.Len(t, a.Books, 1)

		require.NoError(t, store.DeleteAuthors(ctx, "a1"))
		_, ok, err = store.GetAuthor(ctx, "a1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("图书缓存批量失效", func(t *testing.T) {
		require.NoError(t, store.SetBook(ctx, &book.Book{ID: "b1", Title: "One", AuthorID: "a1", Author: &author.Author{ID: "a1"}}))
		require.NoError(t, store.SetBook(ctx, &book.Book{ID: "b2", Title: "Two", AuthorID: "a1"}))

		b, ok, err := store.GetBook(ctx, "b1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "a1", b.Author.ID)

		require.NoError(t, store.DeleteBooks(ctx, "b1", "b2"))
		for _, id := range []string{"b1", "b2"} {
			_, ok, err := store.GetBook(ctx, id)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})
}
