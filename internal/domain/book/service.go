package book

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/pagination"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const tracerName = "bookshelf/book"

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验(作者存在、ISBN唯一)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - 作者必须存在(沿用作者服务的NotFound)
	// - ISBN不能重复
	// 两项检查并发执行,都通过后才持久化
	CreateBook(ctx context.Context, in CreateBookInput) (*Book, error)

	// GetBookByISBN 根据ISBN获取图书
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)

	// GetBooks 分页查询图书,search匹配title或isbn,可按作者过滤
	GetBooks(ctx context.Context, params ListParams) (*pagination.Page[*Book], error)

	// GetBookByID 根据ID获取图书(含作者)
	GetBookByID(ctx context.Context, id string) (*Book, error)

	// UpdateBook 部分更新图书
	// 只有ISBN改为不同值时才重新做唯一性检查
	UpdateBook(ctx context.Context, id string, in UpdateBookInput) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id string) error
}

// service 领域服务实现
type service struct {
	repo    Repository
	authors AuthorReader
	cache   Cache // 可为nil(未启用缓存)
	logger  zerolog.Logger
}

// NewService 创建图书领域服务
func NewService(repo Repository, authors AuthorReader, cache Cache) Service {
	return &service{
		repo:    repo,
		authors: authors,
		cache:   cache,
		logger:  logger.Component("book_service"),
	}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, in CreateBookInput) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.CreateBook")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("book", "CreateBook", err)
	}()

	// 1. 规范化并校验
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, apperrors.InvalidParams(err)
	}

	// 2. 并发检查作者与ISBN
	// 两项检查都会执行完;同时失败时作者错误优先,保证未知作者总是返回NotFound
	var (
		g         errgroup.Group
		owner     *author.Author
		authorErr error
	)
	g.Go(func() error {
		owner, authorErr = s.authors.GetAuthorByID(ctx, in.AuthorID)
		return authorErr
	})
	g.Go(func() error {
		exists, err := s.repo.ExistsByISBN(ctx, in.ISBN)
		if err != nil {
			return err
		}
		if exists {
			return ISBNDuplicate(in.ISBN)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if authorErr != nil {
			return nil, s.fail("CreateBook", authorErr)
		}
		return nil, s.fail("CreateBook", err)
	}

	// 3. 持久化(唯一索引兜底并发创建)
	b = NewBook(in, owner)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, s.fail("CreateBook", err)
	}

	// 作者详情中的图书列表已变化
	s.invalidate(ctx, "", b.AuthorID)
	return b, nil
}

// GetBookByISBN 根据ISBN获取图书
func (s *service) GetBookByISBN(ctx context.Context, isbn string) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.GetBookByISBN")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("book", "GetBookByISBN", err)
	}()

	b, err = s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, s.fail("GetBookByISBN", err)
	}
	return b, nil
}

// GetBooks 分页查询图书
func (s *service) GetBooks(ctx context.Context, params ListParams) (page *pagination.Page[*Book], err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.GetBooks")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("book", "GetBooks", err)
	}()

	params.Params = params.Params.Normalize()

	books, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, s.fail("GetBooks", err)
	}

	return pagination.New(books, total, params.Params), nil
}

// GetBookByID 根据ID获取图书(cache-aside)
func (s *service) GetBookByID(ctx context.Context, id string) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.GetBookByID")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("book", "GetBookByID", err)
	}()

	if cached, ok := s.getCached(ctx, id); ok {
		return cached, nil
	}

	b, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("GetBookByID", err)
	}

	s.setCached(ctx, b)
	return b, nil
}

// UpdateBook 部分更新图书
func (s *service) UpdateBook(ctx context.Context, id string, in UpdateBookInput) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.UpdateBook")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("book", "UpdateBook", err)
	}()

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, apperrors.InvalidParams(err)
	}

	// 1. 查询图书
	b, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("UpdateBook", err)
	}

	// 2. ISBN改为不同值时检查唯一性,改为自身当前值不触发冲突
	if b.ChangesISBN(in) {
		exists, err := s.repo.ExistsByISBN(ctx, *in.ISBN)
		if err != nil {
			return nil, s.fail("UpdateBook", err)
		}
		if exists {
			return nil, ISBNDuplicate(*in.ISBN)
		}
	}

	// 3. 合并字段并持久化
	b.Apply(in)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, s.fail("UpdateBook", err)
	}

	s.invalidate(ctx, b.ID, b.AuthorID)
	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id string) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.DeleteBook")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("book", "DeleteBook", err)
	}()

	// 1. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.fail("DeleteBook", err)
	}

	// 2. 物理删除
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail("DeleteBook", err)
	}

	s.invalidate(ctx, b.ID, b.AuthorID)
	return nil
}

// =========================================
// 辅助函数
// =========================================

// fail 记录非业务错误后原样返回
func (s *service) fail(op string, err error) error {
	if !apperrors.IsDomainError(err) {
		s.logger.Error().Err(err).Str("op", op).Msg("storage operation failed")
	}
	return err
}

func (s *service) getCached(ctx context.Context, id string) (*Book, bool) {
	if s.cache == nil {
		return nil, false
	}
	b, ok, err := s.cache.GetBook(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("book_id", id).Msg("cache get failed")
		metrics.RecordCacheLookup("book", "error")
		return nil, false
	}
	if !ok {
		metrics.RecordCacheLookup("book", "miss")
		return nil, false
	}
	metrics.RecordCacheLookup("book", "hit")
	return b, true
}

func (s *service) setCached(ctx context.Context, b *Book) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetBook(ctx, b); err != nil {
		s.logger.Warn().Err(err).Str("book_id", b.ID).Msg("cache set failed")
	}
}

// invalidate 清除图书详情与所属作者详情缓存,bookID为空时只清作者
func (s *service) invalidate(ctx context.Context, bookID, authorID string) {
	if s.cache == nil {
		return
	}
	if bookID != "" {
		if err := s.cache.DeleteBooks(ctx, bookID); err != nil {
			s.logger.Warn().Err(err).Str("book_id", bookID).Msg("cache invalidate failed")
		}
	}
	if err := s.cache.DeleteAuthors(ctx, authorID); err != nil {
		s.logger.Warn().Err(err).Str("author_id", authorID).Msg("cache invalidate author failed")
	}
}
