package author

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 作者领域错误定义
// 消息中带ID,因此每次构造新实例;errors.Is 按错误码匹配下列哨兵
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "author not found")

	// ErrDuplicateName 作者姓名已存在
	ErrDuplicateName = apperrors.New(apperrors.ErrCodeAuthorDuplicate, "An author with this name already exists")

	// ErrAuthorHasBooks 作者名下仍有图书,不能删除
	ErrAuthorHasBooks = apperrors.New(apperrors.ErrCodeAuthorHasBooks, "Cannot delete author with associated books")
)

// NotFound 构造带ID的作者不存在错误
func NotFound(id string) error {
	return apperrors.Newf(apperrors.ErrCodeAuthorNotFound, "Author with ID %s not found", id)
}

// DuplicateName 作者重名错误
func DuplicateName() error {
	return apperrors.New(apperrors.ErrCodeAuthorDuplicate, ErrDuplicateName.Message)
}

// HasBooks 删除保护错误
func HasBooks() error {
	return apperrors.New(apperrors.ErrCodeAuthorHasBooks, ErrAuthorHasBooks.Message)
}
