package author

import (
	"context"

	"github.com/rs/zerolog"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/pagination"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const tracerName = "bookshelf/author"

// Service 作者领域服务接口
type Service interface {
	// CreateAuthor 创建作者
	// 业务规则:
	// - 姓名去除首尾空格后不能为空,长度不超过50
	// - 同名作者(忽略大小写)已存在时返回Conflict
	CreateAuthor(ctx context.Context, in CreateAuthorInput) (*Author, error)

	// GetAuthors 分页查询作者,search匹配firstName或lastName
	GetAuthors(ctx context.Context, params ListParams) (*pagination.Page[*Author], error)

	// GetAuthorByID 根据ID获取作者,始终附带其图书
	GetAuthorByID(ctx context.Context, id string) (*Author, error)

	// UpdateAuthor 部分更新作者
	// 只有修改了姓名时才重新做重名检查(排除自身)
	UpdateAuthor(ctx context.Context, id string, in UpdateAuthorInput) (*Author, error)

	// DeleteAuthor 删除作者
	// 业务规则:名下仍有图书时返回Conflict
	DeleteAuthor(ctx context.Context, id string) error
}

// service 领域服务实现
type service struct {
	repo   Repository
	cache  Cache // 可为nil(未启用缓存)
	tx     Transactor
	logger zerolog.Logger
}

// NewService 创建作者领域服务
func NewService(repo Repository, cache Cache, tx Transactor) Service {
	return &service{
		repo:   repo,
		cache:  cache,
		tx:     tx,
		logger: logger.Component("author_service"),
	}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, in CreateAuthorInput) (a *Author, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorService.CreateAuthor")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("author", "CreateAuthor", err)
	}()

	// 1. 规范化并校验
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, apperrors.InvalidParams(err)
	}

	// 2. 重名检查
	exists, err := s.repo.ExistsByName(ctx, in.FirstName, in.LastName, "")
	if err != nil {
		return nil, s.fail("CreateAuthor", err)
	}
	if exists {
		return nil, DuplicateName()
	}

	// 3. 持久化(唯一索引兜底并发创建)
	a = NewAuthor(in)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, s.fail("CreateAuthor", err)
	}

	return a, nil
}

// GetAuthors 分页查询作者
func (s *service) GetAuthors(ctx context.Context, params ListParams) (page *pagination.Page[*Author], err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorService.GetAuthors")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("author", "GetAuthors", err)
	}()

	params.Params = params.Params.Normalize()

	authors, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, s.fail("GetAuthors", err)
	}

	return pagination.New(authors, total, params.Params), nil
}

// GetAuthorByID 根据ID获取作者(cache-aside)
func (s *service) GetAuthorByID(ctx context.Context, id string) (a *Author, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorService.GetAuthorByID")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("author", "GetAuthorByID", err)
	}()

	if cached, ok := s.getCached(ctx, id); ok {
		return cached, nil
	}

	a, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("GetAuthorByID", err)
	}

	s.setCached(ctx, a)
	return a, nil
}

// UpdateAuthor 部分更新作者
// 重名检查与更新在同一事务中执行
func (s *service) UpdateAuthor(ctx context.Context, id string, in UpdateAuthorInput) (a *Author, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorService.UpdateAuthor")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("author", "UpdateAuthor", err)
	}()

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, apperrors.InvalidParams(err)
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		// 1. 查询作者
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// 2. 修改了姓名时重新检查重名(排除自身)
		if in.TouchesName() {
			firstName, lastName := current.FirstName, current.LastName
			if in.FirstName != nil {
				firstName = *in.FirstName
			}
			if in.LastName != nil {
				lastName = *in.LastName
			}
			exists, err := s.repo.ExistsByName(ctx, firstName, lastName, id)
			if err != nil {
				return err
			}
			if exists {
				return DuplicateName()
			}
		}

		// 3. 合并字段并持久化
		current.Apply(in)
		if err := s.repo.Update(ctx, current); err != nil {
			return err
		}

		a = current
		return nil
	})
	if err != nil {
		return nil, s.fail("UpdateAuthor", err)
	}

	// 图书详情中嵌入了作者信息,一并失效
	s.invalidate(ctx, a)
	return a, nil
}

// DeleteAuthor 删除作者
func (s *service) DeleteAuthor(ctx context.Context, id string) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorService.DeleteAuthor")
	defer func() {
		tracing.Finish(span, err)
		metrics.RecordOperation("author", "DeleteAuthor", err)
	}()

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		// 1. 查询作者(含图书)
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// 2. 删除保护
		if current.HasBooks() {
			return HasBooks()
		}

		// 3. 物理删除(外键RESTRICT兜底)
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return s.fail("DeleteAuthor", err)
	}

	s.invalidate(ctx, &Author{ID: id})
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

func (s *service) getCached(ctx context.Context, id string) (*Author, bool) {
	if s.cache == nil {
		return nil, false
	}
	a, ok, err := s.cache.GetAuthor(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("author_id", id).Msg("cache get failed")
		metrics.RecordCacheLookup("author", "error")
		return nil, false
	}
	if !ok {
		metrics.RecordCacheLookup("author", "miss")
		return nil, false
	}
	metrics.RecordCacheLookup("author", "hit")
	return a, true
}

func (s *service) setCached(ctx context.Context, a *Author) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetAuthor(ctx, a); err != nil {
		s.logger.Warn().Err(err).Str("author_id", a.ID).Msg("cache set failed")
	}
}

// invalidate 清除作者及其图书的详情缓存
func (s *service) invalidate(ctx context.Context, a *Author) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteAuthors(ctx, a.ID); err != nil {
		s.logger.Warn().Err(err).Str("author_id", a.ID).Msg("cache invalidate failed")
	}
	if len(a.Books) == 0 {
		return
	}
	ids := make([]string, len(a.Books))
	for i, b := range a.Books {
		ids[i] = b.ID
	}
	if err := s.cache.DeleteBooks(ctx, ids...); err != nil {
		s.logger.Warn().Err(err).Str("author_id", a.ID).Msg("cache invalidate books failed")
	}
}
