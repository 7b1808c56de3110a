package dto

import (
	"time"

	"github.com/xiebiao/bookshelf/pkg/validator"
)

// PageQuery 列表分页查询参数
// page/limit传入时必须>=1,未传时由handler补默认值
type PageQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1" example:"10"`
	Search string `form:"search" binding:"omitempty,max=255" example:"go"`
}

// formatDate 日期 → YYYY-MM-DD
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validator.DateLayout)
	return &s
}
