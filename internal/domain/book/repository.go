package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	// ISBN唯一索引冲突时返回 ISBNDuplicate(isbn)
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书(预加载Author)
	FindByID(ctx context.Context, id string) (*Book, error)

	// FindByISBN 根据ISBN查找图书(预加载Author)
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// ExistsByISBN ISBN是否已被使用
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// List 分页查询图书列表(预加载Author)
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Update 更新图书
	Update(ctx context.Context, book *Book) error

	// Delete 物理删除图书
	Delete(ctx context.Context, id string) error
}

// AuthorReader 作者查询(由author.Service实现)
// 创建图书时校验作者存在,并沿用其NotFound错误
type AuthorReader interface {
	GetAuthorByID(ctx context.Context, id string) (*author.Author, error)
}

// Cache 详情缓存(cache-aside)
type Cache interface {
	// GetBook 命中返回(book, true, nil),未命中返回(nil, false, nil)
	GetBook(ctx context.Context, id string) (*Book, bool, error)
	SetBook(ctx context.Context, book *Book) error
	DeleteBooks(ctx context.Context, ids ...string) error
	// DeleteAuthors 图书增删改会改变作者详情中的图书列表
	DeleteAuthors(ctx context.Context, ids ...string) error
}
