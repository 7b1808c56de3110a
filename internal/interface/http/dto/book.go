package dto

import (
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/validator"
)

// CreateBookRequest HTTP创建图书请求
// validator tag说明:
// - isbn: 自定义ISBN-10/13校验(含校验位,允许连字符和空格)
// - date: 自定义日期格式校验 YYYY-MM-DD
type CreateBookRequest struct {
	Title         string  `json:"title" binding:"required,max=255" example:"The Go Programming Language"`
	ISBN          string  `json:"isbn" binding:"required,max=17,isbn" example:"978-0-13-419044-0"`
	PublishedDate *string `json:"publishedDate" binding:"omitempty,date" example:"2015-10-26"`
	Genre         *string `json:"genre" binding:"omitempty,max=50" example:"Programming"`
	AuthorID      string  `json:"authorId" binding:"required" example:"0b8c5f6e-3c1f-4a57-9d0e-2f0c4f1e9a11"`
}

// ToInput 转换为领域输入
func (r CreateBookRequest) ToInput() (book.CreateBookInput, error) {
	publishedDate, err := validator.ParseDate(r.PublishedDate)
	if err != nil {
		return book.CreateBookInput{}, err
	}
	return book.CreateBookInput{
		Title:         r.Title,
		ISBN:          r.ISBN,
		PublishedDate: publishedDate,
		Genre:         r.Genre,
		AuthorID:      r.AuthorID,
	}, nil
}

// UpdateBookRequest HTTP部分更新图书请求
// 不支持修改作者
type UpdateBookRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=255" example:"The Go Programming Language (2nd)"`
	ISBN          *string `json:"isbn" binding:"omitempty,max=17,isbn" example:"9780134190440"`
	PublishedDate *string `json:"publishedDate" binding:"omitempty,date" example:"2015-10-26"`
	Genre         *string `json:"genre" binding:"omitempty,max=50" example:"Programming"`
}

// ToInput 转换为领域输入
func (r UpdateBookRequest) ToInput() (book.UpdateBookInput, error) {
	publishedDate, err := validator.ParseDate(r.PublishedDate)
	if err != nil {
		return book.UpdateBookInput{}, err
	}
	return book.UpdateBookInput{
		Title:         r.Title,
		ISBN:          r.ISBN,
		PublishedDate: publishedDate,
		Genre:         r.Genre,
	}, nil
}

// ListBooksQuery 图书列表查询参数
// search匹配title或isbn;authorId与search同时存在时为AND关系
type ListBooksQuery struct {
	PageQuery
	AuthorID string `form:"authorId" example:"0b8c5f6e-3c1f-4a57-9d0e-2f0c4f1e9a11"`
}

// BookResponse HTTP图书响应
// 列表和详情共用,author始终填充
type BookResponse struct {
	ID            string          `json:"id" example:"5d7e0c1a-8f3b-4b61-a0d2-6a3f9e2c7b44"`
	Title         string          `json:"title" example:"The Go Programming Language"`
	ISBN          string          `json:"isbn" example:"9780134190440"`
	PublishedDate *string         `json:"publishedDate" example:"2015-10-26"`
	Genre         *string         `json:"genre" example:"Programming"`
	AuthorID      string          `json:"authorId"`
	Author        *AuthorResponse `json:"author,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewBookResponse 领域实体 → 响应
func NewBookResponse(b *book.Book) *BookResponse {
	resp := &BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		ISBN:          b.ISBN,
		PublishedDate: formatDate(b.PublishedDate),
		Genre:         b.Genre,
		AuthorID:      b.AuthorID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.Author != nil {
		a := NewAuthorResponse(b.Author)
		resp.Author = &a
	}
	return resp
}
