package author

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Author 作者实体(聚合根)
// 设计说明:
// 1. ID使用UUID字符串,对外不暴露自增主键
// 2. (FirstName, LastName) 去空格后忽略大小写唯一,由NameKey在存储层建唯一索引
// 3. Books只在按ID查询时加载,用于展示和删除保护
type Author struct {
	ID        string
	FirstName string
	LastName  string
	Bio       *string
	BirthDate *time.Time
	Books     []BookSummary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookSummary 作者名下的图书摘要
// author包不能依赖book包(book依赖author),因此使用独立的只读视图
type BookSummary struct {
	ID            string
	Title         string
	ISBN          string
	PublishedDate *time.Time
	Genre         *string
}

// NewAuthor 创建新作者(工厂方法)
// 调用方需先执行 in.Normalize() 和 in.Validate()
func NewAuthor(in CreateAuthorInput) *Author {
	now := time.Now()
	return &Author{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
		BirthDate: in.BirthDate,
		Books:     []BookSummary{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply 合并部分更新,nil字段保持原值
func (a *Author) Apply(in UpdateAuthorInput) {
	if in.FirstName != nil {
		a.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		a.LastName = *in.LastName
	}
	if in.Bio != nil {
		a.Bio = in.Bio
	}
	if in.BirthDate != nil {
		a.BirthDate = in.BirthDate
	}
	a.UpdatedAt = time.Now()
}

// HasBooks 名下是否还有图书
func (a *Author) HasBooks() bool {
	return len(a.Books) > 0
}

// NameKey 作者姓名唯一键: lower(trim(first)) + "\x1f" + lower(trim(last))
// \x1f(单元分隔符)不会出现在正常姓名中,避免 "ab"+"c" 与 "a"+"bc" 冲突
func NameKey(firstName, lastName string) string {
	return strings.ToLower(strings.TrimSpace(firstName)) + "\x1f" + strings.ToLower(strings.TrimSpace(lastName))
}
