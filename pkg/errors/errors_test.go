package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{ErrCodeInvalidParams, http.StatusBadRequest},
		{ErrCodeBindError, http.StatusBadRequest},
		{ErrCodeAuthorNotFound, http.StatusNotFound},
		{ErrCodeBookNotFound, http.StatusNotFound},
		{ErrCodeAuthorDuplicate, http.StatusConflict},
		{ErrCodeAuthorHasBooks, http.StatusConflict},
		{ErrCodeDatabaseError, http.StatusInternalServerError},
		{12345, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.code))
		})
	}
}

func TestIsComparesCode(t *testing.T) {
	sentinel := New(ErrCodeBookNotFound, "book not found")
	err := Newf(ErrCodeBookNotFound, "Book with ID %s not found", "b-1")

	assert.True(t, errors.Is(err, sentinel), "消息不同但错误码相同")
	assert.False(t, errors.Is(err, New(ErrCodeAuthorNotFound, "author not found")))

	wrapped := fmt.Errorf("query: %w", err)
	assert.True(t, errors.Is(wrapped, sentinel))
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to query author")

	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(fmt.Errorf("ctx: %w", New(ErrCodeISBNDuplicate, "dup")))
	assert.Equal(t, ErrCodeISBNDuplicate, appErr.Code)

	plain := GetAppError(errors.New("boom"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.HTTPStatus())
}

func TestClassification(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeAuthorNotFound, "x")))
	assert.True(t, IsConflict(New(ErrCodeISBNDuplicate, "x")))
	assert.True(t, IsDomainError(InvalidParams(errors.New("bad"))))
	assert.False(t, IsDomainError(New(ErrCodeDatabaseError, "database error")))
	assert.False(t, IsDomainError(errors.New("plain")))
	assert.True(t, IsAppError(ErrInternal))
}
