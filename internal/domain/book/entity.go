package book

import (
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. ISBN作为业务唯一标识(数据库唯一索引保证)
// 2. 每本书必须属于一个作者,Author为非拥有引用
// 3. 删除为物理删除,删除后ISBN可以重新使用
type Book struct {
	ID            string
	Title         string
	ISBN          string
	PublishedDate *time.Time
	Genre         *string
	AuthorID      string
	Author        *author.Author // 查询时填充,不含作者的Books
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书(工厂方法)
// owner必须是已确认存在的作者
func NewBook(in CreateBookInput, owner *author.Author) *Book {
	now := time.Now()
	return &Book{
		ID:            uuid.NewString(),
		Title:         in.Title,
		ISBN:          in.ISBN,
		PublishedDate: in.PublishedDate,
		Genre:         in.Genre,
		AuthorID:      owner.ID,
		Author:        withoutBooks(owner),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Apply 合并部分更新,nil字段保持原值
func (b *Book) Apply(in UpdateBookInput) {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.ISBN != nil {
		b.ISBN = *in.ISBN
	}
	if in.PublishedDate != nil {
		b.PublishedDate = in.PublishedDate
	}
	if in.Genre != nil {
		b.Genre = in.Genre
	}
	b.UpdatedAt = time.Now()
}

// ChangesISBN 是否修改为不同的ISBN(需要重新做唯一性检查)
func (b *Book) ChangesISBN(in UpdateBookInput) bool {
	return in.ISBN != nil && *in.ISBN != b.ISBN
}

// withoutBooks 复制作者并去掉图书列表,避免 book → author → books 循环展开
func withoutBooks(a *author.Author) *author.Author {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Books = nil
	return &cp
}
