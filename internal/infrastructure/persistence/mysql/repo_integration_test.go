package mysql

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/pagination"
	"github.com/xiebiao/bookshelf/pkg/validator"
)

// 集成测试需要真实MySQL,未设置DSN时跳过
// 示例: BOOKSHELF_TEST_MYSQL_DSN="root:root@tcp(127.0.0.1:3306)/bookshelf_test?charset=utf8mb4&parseTime=true"
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("BOOKSHELF_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("BOOKSHELF_TEST_MYSQL_DSN未设置,跳过MySQL集成测试")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, autoMigrate(db))

	clean := func() {
		db.Exec("DELETE FROM books")
		db.Exec("DELETE FROM authors")
	}
	clean()
	t.Cleanup(clean)

	return db
}

func createAuthor(t *testing.T, repo author.Repository, first, last string) *author.Author {
	t.Helper()
	a := author.NewAuthor(author.CreateAuthorInput{FirstName: first, LastName: last})
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func createBook(t *testing.T, repo book.Repository, owner *author.Author, title, isbn string) *book.Book {
	t.Helper()
	b := book.NewBook(book.CreateBookInput{Title: title, ISBN: isbn, AuthorID: owner.ID}, owner)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestAuthorRepositoryIntegration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	authors := NewAuthorRepository(db)
	books := NewBookRepository(db)

	t.Run("姓名忽略大小写唯一", func(t *testing.T) {
		a := createAuthor(t, authors, "John", "Doe")

		exists, err := authors.ExistsByName(ctx, " JOHN", "doe ", "")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = authors.ExistsByName(ctx, "john", "doe", a.ID)
		require.NoError(t, err)
		assert.False(t, exists, "排除自身")

		dup := author.NewAuthor(author.CreateAuthorInput{FirstName: "JOHN", LastName: "DOE"})
		err = authors.Create(ctx, dup)
		assert.True(t, errors.Is(err, author.ErrDuplicateName), "唯一索引兜底")
	})

	t.Run("分页与搜索", func(t *testing.T) {
		for i := 1; i <= 15; i++ {
			createAuthor(t, authors, fmt.Sprintf("Author%d", i), "Paged")
		}

		list, total, err := authors.List(ctx, author.ListParams{Params: pagination.Params{Page: 1, Limit: 10}, Search: "author"})
		require.NoError(t, err)
		assert.Len(t, list, 10)
		assert.Equal(t, int64(15), total)

		list, _, err = authors.List(ctx, author.ListParams{Params: pagination.Params{Page: 2, Limit: 10}, Search: "Author"})
		require.NoError(t, err)
		assert.Len(t, list, 5)

		list, total, err = authors.List(ctx, author.ListParams{Params: pagination.Params{Page: 1, Limit: 10}, Search: "Author10"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "Author10", list[0].FirstName)

		list, total, err = authors.List(ctx, author.ListParams{Params: pagination.Params{Page: math.MaxInt64, Limit: 4}, Search: "author"})
		require.NoError(t, err)
		assert.Empty(t, list, "超大页码不能回绕成第一页")
		assert.Equal(t, int64(15), total)
	})

	t.Run("出生日期按日历日期存取", func(t *testing.T) {
		s := "1956-01-01"
		birth, err := validator.ParseDate(&s)
		require.NoError(t, err)

		a := author.NewAuthor(author.CreateAuthorInput{FirstName: "Ada", LastName: "Dated", BirthDate: birth})
		require.NoError(t, authors.Create(ctx, a))

		found, err := authors.FindByID(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, found.BirthDate)
		assert.Equal(t, s, found.BirthDate.Format(validator.DateLayout))
	})

	t.Run("有图书时外键阻止删除", func(t *testing.T) {
		a := createAuthor(t, authors, "Rob", "Pike")
		createBook(t, books, a, "The Practice of Programming", "0201615860")

		found, err := authors.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, found.Books, 1)

		err = authors.Delete(ctx, a.ID)
		assert.True(t, errors.Is(err, author.ErrAuthorHasBooks))
	})

	t.Run("删除后查询返回NotFound", func(t *testing.T) {
		a := createAuthor(t, authors, "Ken", "Thompson")
		require.NoError(t, authors.Delete(ctx, a.ID))

		_, err := authors.FindByID(ctx, a.ID)
		assert.True(t, errors.Is(err, author.ErrAuthorNotFound))
	})

	t.Run("任意字符串ID返回NotFound", func(t *testing.T) {
		_, err := authors.FindByID(ctx, "non-existing-id")
		assert.True(t, errors.Is(err, author.ErrAuthorNotFound))
	})
}

func TestBookRepositoryIntegration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	authors := NewAuthorRepository(db)
	books := NewBookRepository(db)

	alice := createAuthor(t, authors, "Alice", "Writer")
	bob := createAuthor(t, authors, "Bob", "Writer")

	createBook(t, books, alice, "Go in Action", "9781617291784")
	createBook(t, books, alice, "Alice 978 Notes", "0306406152")
	createBook(t, books, bob, "Concurrency in Go", "9781491941195")

	t.Run("ISBN唯一", func(t *testing.T) {
		dup := book.NewBook(book.CreateBookInput{Title: "Dup", ISBN: "9781617291784", AuthorID: bob.ID}, bob)
		err := books.Create(ctx, dup)
		assert.True(t, errors.Is(err, book.ErrISBNDuplicate))

		exists, err := books.ExistsByISBN(ctx, "9781617291784")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("search与authorId为AND关系", func(t *testing.T) {
		list, total, err := books.List(ctx, book.ListParams{
			Params:   pagination.Params{Page: 1, Limit: 10},
			Search:   "978",
			AuthorID: alice.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, b := range list {
			assert.Equal(t, alice.ID, b.AuthorID)
			require.NotNil(t, b.Author)
			assert.Equal(t, "Alice", b.Author.FirstName)
		}
	})

	t.Run("只按authorId过滤", func(t *testing.T) {
		_, total, err := books.List(ctx, book.ListParams{Params: pagination.Params{Page: 1, Limit: 10}, AuthorID: bob.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("按ISBN查询含作者", func(t *testing.T) {
		b, err := books.FindByISBN(ctx, "9781491941195")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, b.Author.ID)

		_, err = books.FindByISBN(ctx, "0000000000")
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})

	t.Run("删除后ISBN可重新使用", func(t *testing.T) {
		b := createBook(t, books, bob, "Temp", "080442957X")
		require.NoError(t, books.Delete(ctx, b.ID))
		createBook(t, books, bob, "Temp Again", "080442957X")
	})

	t.Run("事务回滚", func(t *testing.T) {
		tx := NewTxManager(db)
		sentinel := errors.New("rollback")

		err := tx.Transaction(ctx, func(ctx context.Context) error {
			a := author.NewAuthor(author.CreateAuthorInput{FirstName: "Rolled", LastName: "Back"})
			if err := authors.Create(ctx, a); err != nil {
				return err
			}
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)

		exists, err := authors.ExistsByName(ctx, "Rolled", "Back", "")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
