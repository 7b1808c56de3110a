package dto

import (
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/pkg/validator"
)

// CreateAuthorRequest HTTP创建作者请求
// validator tag说明:
// - required: 必填字段
// - date: 自定义日期格式校验 YYYY-MM-DD(在pkg/validator中注册)
type CreateAuthorRequest struct {
	FirstName string  `json:"firstName" binding:"required,max=50" example:"Rob"`
	LastName  string  `json:"lastName" binding:"required,max=50" example:"Pike"`
	Bio       *string `json:"bio" example:"Co-creator of Go"`
	BirthDate *string `json:"birthDate" binding:"omitempty,date" example:"1956-01-01"`
}

// ToInput 转换为领域输入
func (r CreateAuthorRequest) ToInput() (author.CreateAuthorInput, error) {
	birthDate, err := validator.ParseDate(r.BirthDate)
	if err != nil {
		return author.CreateAuthorInput{}, err
	}
	return author.CreateAuthorInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
		BirthDate: birthDate,
	}, nil
}

// UpdateAuthorRequest HTTP部分更新作者请求
// 字段缺省(null)表示不修改
type UpdateAuthorRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=50" example:"Robert"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50" example:"Pike"`
	Bio       *string `json:"bio"`
	BirthDate *string `json:"birthDate" binding:"omitempty,date" example:"1956-01-01"`
}

// ToInput 转换为领域输入
func (r UpdateAuthorRequest) ToInput() (author.UpdateAuthorInput, error) {
	birthDate, err := validator.ParseDate(r.BirthDate)
	if err != nil {
		return author.UpdateAuthorInput{}, err
	}
	return author.UpdateAuthorInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
		BirthDate: birthDate,
	}, nil
}

// ListAuthorsQuery 作者列表查询参数
// search匹配firstName或lastName(忽略大小写)
type ListAuthorsQuery struct {
	PageQuery
}

// AuthorResponse 作者响应(列表项、图书内嵌的作者)
type AuthorResponse struct {
	ID        string    `json:"id" example:"0b8c5f6e-3c1f-4a57-9d0e-2f0c4f1e9a11"`
	FirstName string    `json:"firstName" example:"Rob"`
	LastName  string    `json:"lastName" example:"Pike"`
	Bio       *string   `json:"bio"`
	BirthDate *string   `json:"birthDate" example:"1956-01-01"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthorDetailResponse 作者详情,始终包含books(可能为空数组)
type AuthorDetailResponse struct {
	AuthorResponse
	Books []AuthorBookResponse `json:"books"`
}

// AuthorBookResponse 作者详情中的图书摘要
type AuthorBookResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title" example:"The Go Programming Language"`
	ISBN          string  `json:"isbn" example:"9780134190440"`
	PublishedDate *string `json:"publishedDate" example:"2015-10-26"`
	Genre         *string `json:"genre" example:"Programming"`
}

// NewAuthorResponse 领域实体 → 响应
func NewAuthorResponse(a *author.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
		BirthDate: formatDate(a.BirthDate),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// NewAuthorDetailResponse 领域实体 → 详情响应
func NewAuthorDetailResponse(a *author.Author) *AuthorDetailResponse {
	books := make([]AuthorBookResponse, len(a.Books))
	for i, b := range a.Books {
		books[i] = AuthorBookResponse{
			ID:            b.ID,
			Title:         b.Title,
			ISBN:          b.ISBN,
			PublishedDate: formatDate(b.PublishedDate),
			Genre:         b.Genre,
		}
	}
	return &AuthorDetailResponse{
		AuthorResponse: NewAuthorResponse(a),
		Books:          books,
	}
}
