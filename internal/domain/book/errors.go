package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
// 消息中带ID/ISBN,每次构造新实例;errors.Is 按错误码匹配下列哨兵
var (
	// ErrBookNotFound 图书不存在(按ID或ISBN)
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "isbn already exists")
)

// NotFound 按ID查询不存在
func NotFound(id string) error {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "Book with ID %s not found", id)
}

// NotFoundByISBN 按ISBN查询不存在
func NotFoundByISBN(isbn string) error {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "Book with ISBN %s not found", isbn)
}

// ISBNDuplicate ISBN冲突
func ISBNDuplicate(isbn string) error {
	return apperrors.Newf(apperrors.ErrCodeISBNDuplicate, "Book with ISBN %s already exists", isbn)
}
