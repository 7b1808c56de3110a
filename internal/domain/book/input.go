package book

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xiebiao/bookshelf/pkg/pagination"
	"github.com/xiebiao/bookshelf/pkg/validator"
)

const (
	maxTitleLength = 255
	maxISBNLength  = 17
	maxGenreLength = 50
)

// CreateBookInput 创建图书参数
type CreateBookInput struct {
	Title         string
	ISBN          string
	PublishedDate *time.Time
	Genre         *string
	AuthorID      string
}

// Normalize 去除首尾空格
func (in *CreateBookInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.AuthorID = strings.TrimSpace(in.AuthorID)
}

func (in CreateBookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&in.ISBN, validation.Required, validation.Length(1, maxISBNLength), validator.ISBN),
		validation.Field(&in.Genre, validation.RuneLength(0, maxGenreLength)),
		validation.Field(&in.AuthorID, validation.Required),
	)
}

// UpdateBookInput 部分更新参数,nil表示不修改
type UpdateBookInput struct {
	Title         *string
	ISBN          *string
	PublishedDate *time.Time
	Genre         *string
}

// Normalize 去除首尾空格
func (in *UpdateBookInput) Normalize() {
	if in.Title != nil {
		v := strings.TrimSpace(*in.Title)
		in.Title = &v
	}
	if in.ISBN != nil {
		v := strings.TrimSpace(*in.ISBN)
		in.ISBN = &v
	}
}

func (in UpdateBookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validator.NotBlank, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&in.ISBN, validator.NotBlank, validation.Length(1, maxISBNLength), validator.ISBN),
		validation.Field(&in.Genre, validation.RuneLength(0, maxGenreLength)),
	)
}

// ListParams 图书列表查询参数
// Search匹配title或isbn(忽略大小写);AuthorID非空时与Search为AND关系
type ListParams struct {
	pagination.Params
	Search   string
	AuthorID string
}
