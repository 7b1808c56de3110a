package author

import (
	"context"
)

// Repository 作者仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层(gorm/MySQL)实现
type Repository interface {
	// Create 创建作者
	// 姓名唯一索引冲突时返回 DuplicateName()
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者(预加载Books)
	// 不存在时返回 NotFound(id)
	FindByID(ctx context.Context, id string) (*Author, error)

	// ExistsByName 是否存在同名作者(去空格、忽略大小写)
	// excludeID非空时排除该作者自身(更新场景)
	ExistsByName(ctx context.Context, firstName, lastName, excludeID string) (bool, error)

	// List 分页查询作者列表,返回当前页数据与总数
	List(ctx context.Context, params ListParams) ([]*Author, int64, error)

	// Update 更新作者(不级联更新Books)
	Update(ctx context.Context, author *Author) error

	// Delete 物理删除作者
	// 仍有关联图书(外键约束)时返回 HasBooks()
	Delete(ctx context.Context, id string) error
}

// Cache 详情缓存(cache-aside)
// 实现方出错时由Service记录日志后忽略,缓存不可用不影响主流程
type Cache interface {
	// GetAuthor 命中返回(author, true, nil),未命中返回(nil, false, nil)
	GetAuthor(ctx context.Context, id string) (*Author, bool, error)
	SetAuthor(ctx context.Context, author *Author) error
	DeleteAuthors(ctx context.Context, ids ...string) error
	// DeleteBooks 作者改名后,其图书详情中嵌入的作者信息也需失效
	DeleteBooks(ctx context.Context, ids ...string) error
}

// Transactor 事务管理
// fn内使用传入的ctx调用仓储方法,即可在同一事务中执行
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
