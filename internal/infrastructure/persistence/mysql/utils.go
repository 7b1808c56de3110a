package mysql

import (
	"context"
	"errors"
	"strings"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/pagination"
)

// MySQL错误码
const (
	errDuplicateEntry  = 1062 // Duplicate entry 'xxx' for key 'yyy'
	errRowIsReferenced = 1451 // 删除父表记录时仍被子表外键引用
	errNoReferencedRow = 1452 // 插入子表记录时父表记录不存在
)

// isDuplicateError 判断是否为唯一索引冲突错误
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return mysqlErrorNumber(err) == errDuplicateEntry
}

// isRowReferencedError 判断是否为外键约束阻止删除
func isRowReferencedError(err error) bool {
	return mysqlErrorNumber(err) == errRowIsReferenced
}

// isNoReferencedRowError 判断是否为外键引用的父记录不存在
func isNoReferencedRowError(err error) bool {
	return mysqlErrorNumber(err) == errNoReferencedRow
}

func mysqlErrorNumber(err error) uint16 {
	var myErr *driver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}
	return 0
}

// likePattern 构造忽略大小写的子串匹配参数 %term%
// 转义LIKE通配符,搜索 "50%" 只匹配字面量
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}

// txKey 事务DB在context中的key
type txKey struct{}

// dbFromContext 从context获取事务DB,如果没有则使用默认DB
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// dbError 包装数据库错误,隐藏SQL细节
func dbError(err error, message string) error {
	return &apperrors.AppError{
		Code:    apperrors.ErrCodeDatabaseError,
		Message: message,
		Err:     err,
	}
}

// paginate 列表统一排序(新建在前,id兜底保证稳定)并分页
func paginate(p pagination.Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id").Limit(p.Limit).Offset(p.Offset())
	}
}
