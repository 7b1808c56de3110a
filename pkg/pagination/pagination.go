// Package pagination 分页参数与分页响应封装
//
// 所有列表接口统一返回 {data, total, page, limit, totalPages}。
// 页码从1开始,不设上限;超出范围的页码返回空data,total仍为真实总数。
package pagination

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params 分页参数
type Params struct {
	Page  int // 页码(从1开始)
	Limit int // 每页数量
}

// Normalize 补齐默认值(page<1→1, limit<1→10)
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset 计算偏移量 (page-1)*limit
// 乘积溢出时截断为 math.MaxInt,仍然越过全部数据
func (p Params) Offset() int {
	if p.Limit > 0 && p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Beyond 偏移量是否已越过total,越过时该页必然为空
func (p Params) Beyond(total int64) bool {
	return int64(p.Offset()) >= total
}

// Page 分页结果
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// New 创建分页结果
// data为nil时替换为空切片,保证JSON输出为[]而非null
func New[T any](data []T, total int64, p Params) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}

// TotalPages 向上取整 ceil(total/limit)
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// Map 转换分页数据的元素类型(如领域实体 → 响应DTO)
func Map[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	out := make([]U, len(p.Data))
	for i, item := range p.Data {
		out[i] = fn(item)
	}
	return &Page[U]{
		Data:       out,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}
