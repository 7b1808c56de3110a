package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/pagination"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	service  author.Service
	defaults pagination.Params
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(service author.Service, defaults pagination.Params) *AuthorHandler {
	return &AuthorHandler{
		service:  service,
		defaults: defaults,
	}
}

// RegisterRoutes 注册作者路由
func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/authors")
	{
		authors.POST("", h.CreateAuthor)
		authors.GET("", h.GetAuthors)
		authors.GET("/:id", h.GetAuthorByID)
		authors.PATCH("/:id", h.UpdateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Description  姓名去除首尾空格后忽略大小写唯一
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=dto.AuthorDetailResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "同名作者已存在"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		response.Error(c, apperrors.InvalidParams(err))
		return
	}

	// 2. 调用领域服务
	a, err := h.service.CreateAuthor(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewAuthorDetailResponse(a))
}

// GetAuthors 作者列表
// @Summary      作者列表
// @Description  分页查询,search按firstName或lastName模糊匹配(忽略大小写)
// @Tags         作者
// @Produce      json
// @Param        page   query int    false "页码" default(1)
// @Param        limit  query int    false "每页数量" default(10)
// @Param        search query string false "搜索关键字"
// @Success      200 {object} response.Response{data=pagination.Page[dto.AuthorResponse]}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) GetAuthors(c *gin.Context) {
	var q dto.ListAuthorsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	page, err := h.service.GetAuthors(c.Request.Context(), author.ListParams{
		Params: pageParams(q.PageQuery, h.defaults),
		Search: q.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pagination.Map(page, func(a *author.Author) dto.AuthorResponse {
		return dto.NewAuthorResponse(a)
	}))
}

// GetAuthorByID 作者详情
// @Summary      作者详情
// @Description  包含作者名下的图书
// @Tags         作者
// @Produce      json
// @Param        id path string true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorDetailResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	a, err := h.service.GetAuthorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorDetailResponse(a))
}

// UpdateAuthor 部分更新作者
// @Summary      更新作者
// @Description  只修改传入的字段;修改姓名时重新检查重名
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id      path string                  true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "需要修改的字段"
// @Success      200 {object} response.Response{data=dto.AuthorDetailResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      409 {object} response.Response "同名作者已存在"
// @Router       /api/v1/authors/{id} [patch]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		response.Error(c, apperrors.InvalidParams(err))
		return
	}

	a, err := h.service.UpdateAuthor(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorDetailResponse(a))
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  名下仍有图书时拒绝删除
// @Tags         作者
// @Produce      json
// @Param        id path string true "作者ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      409 {object} response.Response "作者名下仍有图书"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	if err := h.service.DeleteAuthor(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
