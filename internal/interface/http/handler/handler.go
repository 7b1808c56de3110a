package handler

import (
	"errors"

	playground "github.com/go-playground/validator/v10"

	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/pagination"
)

// bindError 请求绑定错误 → 业务错误
// 校验失败返回40000,JSON格式错误等返回40001
func bindError(err error) error {
	var verrs playground.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.InvalidParams(err)
	}
	return apperrors.New(apperrors.ErrCodeBindError, "malformed request: "+err.Error())
}

// pageParams 未传入的分页参数使用配置的默认值
func pageParams(q dto.PageQuery, defaults pagination.Params) pagination.Params {
	p := pagination.Params{Page: q.Page, Limit: q.Limit}
	if p.Page == 0 {
		p.Page = defaults.Page
	}
	if p.Limit == 0 {
		p.Limit = defaults.Limit
	}
	return p
}
