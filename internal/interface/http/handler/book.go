package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/pagination"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	service  book.Service
	defaults pagination.Params
}

// NewBookHandler 创建图书处理器
func NewBookHandler(service book.Service, defaults pagination.Params) *BookHandler {
	return &BookHandler{
		service:  service,
		defaults: defaults,
	}
}

// RegisterRoutes 注册图书路由
// /books/isbn/:isbn 与 /books/:id 不冲突(静态段优先)
func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.GetBooks)
		books.GET("/isbn/:isbn", h.GetBookByISBN)
		books.GET("/:id", h.GetBookByID)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  作者必须存在,ISBN全局唯一
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateBookRequest
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
	b, err := h.service.CreateBook(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookResponse(b))
}

// GetBooks 图书列表
// @Summary      图书列表
// @Description  分页查询,search按title或isbn模糊匹配,可按authorId过滤
// @Tags         图书
// @Produce      json
// @Param        page     query int    false "页码" default(1)
// @Param        limit    query int    false "每页数量" default(10)
// @Param        search   query string false "搜索关键字"
// @Param        authorId query string false "作者ID"
// @Success      200 {object} response.Response{data=pagination.Page[dto.BookResponse]}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) GetBooks(c *gin.Context) {
	var q dto.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	page, err := h.service.GetBooks(c.Request.Context(), book.ListParams{
		Params:   pageParams(q.PageQuery, h.defaults),
		Search:   q.Search,
		AuthorID: q.AuthorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pagination.Map(page, dto.NewBookResponse))
}

// GetBookByISBN 按ISBN查询图书
// @Summary      按ISBN查询图书
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/isbn/{isbn} [get]
func (h *BookHandler) GetBookByISBN(c *gin.Context) {
	b, err := h.service.GetBookByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// GetBookByID 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	b, err := h.service.GetBookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// UpdateBook 部分更新图书
// @Summary      更新图书
// @Description  只修改传入的字段;ISBN改为不同值时重新检查唯一性
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path string                true "图书ID"
// @Param        request body dto.UpdateBookRequest true "需要修改的字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		response.Error(c, apperrors.InvalidParams(err))
		return
	}

	b, err := h.service.UpdateBook(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.service.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
