package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// authorRepository 作者仓储实现(MySQL)
// 1. 实现domain/author/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 将唯一索引冲突、外键约束错误转换为业务错误
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		// name_key唯一索引冲突(并发创建同名作者)
		if isDuplicateError(err) {
			return author.DuplicateName()
		}
		return dbError(err, "failed to create author")
	}

	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找作者,并加载其图书
func (r *authorRepository) FindByID(ctx context.Context, id string) (*author.Author, error) {
	db := dbFromContext(ctx, r.db)

	var model AuthorModel
	// 注意:ID是字符串,必须用Where而不是First(&model, id)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.NotFound(id)
		}
		return nil, dbError(err, "failed to query author")
	}

	var books []BookModel
	if err := db.Where("author_id = ?", id).Order("created_at ASC").Find(&books).Error; err != nil {
		return nil, dbError(err, "failed to query author books")
	}

	a := toAuthorEntity(&model)
	a.Books = make([]author.BookSummary, len(books))
	for i := range books {
		a.Books[i] = toBookSummary(&books[i])
	}
	return a, nil
}

// ExistsByName 是否存在同名作者(去空格、忽略大小写)
func (r *authorRepository) ExistsByName(ctx context.Context, firstName, lastName, excludeID string) (bool, error) {
	query := dbFromContext(ctx, r.db).
		Model(&AuthorModel{}).
		Where("name_key = ?", author.NameKey(firstName, lastName))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, dbError(err, "failed to query author")
	}
	return count > 0, nil
}

// List 分页查询作者列表
// search按firstName或lastName做忽略大小写的子串匹配
func (r *authorRepository) List(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	query := dbFromContext(ctx, r.db).Model(&AuthorModel{}).Scopes(authorFilter(params))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, dbError(err, "failed to count authors")
	}
	if params.Beyond(total) {
		return []*author.Author{}, total, nil
	}

	var models []AuthorModel
	if err := query.Scopes(paginate(params.Params)).Find(&models).Error; err != nil {
		return nil, 0, dbError(err, "failed to list authors")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, total, nil
}

// authorFilter search按firstName或lastName匹配
func authorFilter(params author.ListParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.Search != "" {
			pattern := likePattern(params.Search)
			db = db.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
		}
		return db
	}
}

// Update 更新作者基本信息
// 显式列出更新列,nil指针字段写入NULL
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)

	err := dbFromContext(ctx, r.db).
		Model(model).
		Select("first_name", "last_name", "name_key", "bio", "birth_date", "updated_at").
		Updates(model).Error
	if err != nil {
		if isDuplicateError(err) {
			return author.DuplicateName()
		}
		return dbError(err, "failed to update author")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 物理删除作者
func (r *authorRepository) Delete(ctx context.Context, id string) error {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&AuthorModel{})

	if result.Error != nil {
		// 外键RESTRICT:删除前检查之后又插入了图书
		if isRowReferencedError(result.Error) {
			return author.HasBooks()
		}
		return dbError(result.Error, "failed to delete author")
	}

	if result.RowsAffected == 0 {
		return author.NotFound(id)
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		NameKey:   author.NameKey(a.FirstName, a.LastName),
		Bio:       a.Bio,
		BirthDate: newDate(a.BirthDate),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// toAuthorEntity GORM模型 → 领域实体(不含Books)
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Bio:       model.Bio,
		BirthDate: model.BirthDate.Time(),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toBookSummary(model *BookModel) author.BookSummary {
	return author.BookSummary{
		ID:            model.ID,
		Title:         model.Title,
		ISBN:          model.ISBN,
		PublishedDate: model.PublishedDate.Time(),
		Genre:         model.Genre,
	}
}
