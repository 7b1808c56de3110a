package author

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xiebiao/bookshelf/pkg/pagination"
	"github.com/xiebiao/bookshelf/pkg/validator"
)

const maxNameLength = 50

// CreateAuthorInput 创建作者参数
type CreateAuthorInput struct {
	FirstName string
	LastName  string
	Bio       *string
	BirthDate *time.Time
}

// Normalize 去除姓名首尾空格
func (in *CreateAuthorInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
}

func (in CreateAuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName, validation.Required, validation.RuneLength(1, maxNameLength)),
		validation.Field(&in.LastName, validation.Required, validation.RuneLength(1, maxNameLength)),
	)
}

// UpdateAuthorInput 部分更新参数,nil表示不修改
type UpdateAuthorInput struct {
	FirstName *string
	LastName  *string
	Bio       *string
	BirthDate *time.Time
}

// Normalize 去除姓名首尾空格
func (in *UpdateAuthorInput) Normalize() {
	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		in.FirstName = &v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		in.LastName = &v
	}
}

func (in UpdateAuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName, validator.NotBlank, validation.RuneLength(1, maxNameLength)),
		validation.Field(&in.LastName, validator.NotBlank, validation.RuneLength(1, maxNameLength)),
	)
}

// TouchesName 是否修改了姓名(需要重新做重名检查)
func (in UpdateAuthorInput) TouchesName() bool {
	return in.FirstName != nil || in.LastName != nil
}

// ListParams 作者列表查询参数
type ListParams struct {
	pagination.Params
	Search string // 按 firstName 或 lastName 模糊匹配(忽略大小写)
}
