package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := toBookModel(b)

	// 2. 插入数据库(不级联写入作者)
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		// isbn唯一索引冲突(并发创建相同ISBN)
		if isDuplicateError(err) {
			return book.ISBNDuplicate(b.ISBN)
		}
		// 作者在存在性检查之后被删除
		if isNoReferencedRowError(err) {
			return author.NotFound(b.AuthorID)
		}
		return dbError(err, "failed to create book")
	}

	// 3. 回填时间戳
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).Preload("Author").Where("id = ?", id).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.NotFound(id)
		}
		return nil, dbError(err, "failed to query book")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).Preload("Author").Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.NotFoundByISBN(isbn)
		}
		return nil, dbError(err, "failed to query book")
	}

	return toBookEntity(&model), nil
}

// ExistsByISBN ISBN是否已被使用
func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&BookModel{}).Where("isbn = ?", isbn).Count(&count).Error
	if err != nil {
		return false, dbError(err, "failed to query book")
	}
	return count > 0, nil
}

// List 分页查询图书列表
// search按title或isbn做忽略大小写的子串匹配,与authorId为AND关系
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	query := dbFromContext(ctx, r.db).Model(&BookModel{}).Scopes(bookFilter(params))

	// 查询总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, dbError(err, "failed to count books")
	}
	if params.Beyond(total) {
		return []*book.Book{}, total, nil
	}

	// 分页查询(预加载作者)
	var models []BookModel
	err := query.
		Preload("Author").
		Scopes(paginate(params.Params)).
		Find(&models).Error
	if err != nil {
		return nil, 0, dbError(err, "failed to list books")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// bookFilter search匹配title或isbn,authorId精确过滤,两者为AND关系
func bookFilter(params book.ListParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.Search != "" {
			pattern := likePattern(params.Search)
			db = db.Where("LOWER(title) LIKE ? OR LOWER(isbn) LIKE ?", pattern, pattern)
		}
		if params.AuthorID != "" {
			db = db.Where("author_id = ?", params.AuthorID)
		}
		return db
	}
}

// Update 更新图书信息
// 显式列出更新列,nil指针字段写入NULL
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := dbFromContext(ctx, r.db).
		Model(model).
		Omit(clause.Associations).
		Select("title", "isbn", "published_date", "genre", "updated_at").
		Updates(model).Error
	if err != nil {
		if isDuplicateError(err) {
			return book.ISBNDuplicate(b.ISBN)
		}
		return dbError(err, "failed to update book")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 物理删除图书
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&BookModel{})

	if result.Error != nil {
		return dbError(result.Error, "failed to delete book")
	}

	if result.RowsAffected == 0 {
		return book.NotFound(id)
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		ISBN:          b.ISBN,
		PublishedDate: newDate(b.PublishedDate),
		Genre:         b.Genre,
		AuthorID:      b.AuthorID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		ISBN:          model.ISBN,
		PublishedDate: model.PublishedDate.Time(),
		Genre:         model.Genre,
		AuthorID:      model.AuthorID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
	if model.Author != nil {
		b.Author = toAuthorEntity(model.Author)
	}
	return b
}
