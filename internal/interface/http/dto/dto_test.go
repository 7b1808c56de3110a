package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

func strPtr(s string) *string { return &s }

func TestCreateAuthorRequestToInput(t *testing.T) {
	in, err := CreateAuthorRequest{FirstName: "Rob", LastName: "Pike", BirthDate: strPtr("1956-01-01")}.ToInput()
	require.NoError(t, err)
	require.NotNil(t, in.BirthDate)
	assert.Equal(t, time.Date(1956, 1, 1, 0, 0, 0, 0, time.UTC), *in.BirthDate)

	_, err = CreateAuthorRequest{FirstName: "Rob", LastName: "Pike", BirthDate: strPtr("1956-13-01")}.ToInput()
	assert.Error(t, err)
}

func TestUpdateBookRequestToInput(t *testing.T) {
	in, err := UpdateBookRequest{ISBN: strPtr("0306406152")}.ToInput()
	require.NoError(t, err)
	assert.Nil(t, in.Title)
	assert.Nil(t, in.PublishedDate)
	assert.Equal(t, "0306406152", *in.ISBN)
}

func TestNewAuthorDetailResponse(t *testing.T) {
	published := time.Date(2015, 10, 26, 0, 0, 0, 0, time.UTC)
	a := &author.Author{
		ID:        "a-1",
		FirstName: "Alan",
		LastName:  "Donovan",
		Books: []author.BookSummary{
			{ID: "b-1", Title: "The Go Programming Language", ISBN: "9780134190440", PublishedDate: &published},
		},
	}

	resp := NewAuthorDetailResponse(a)
	assert.Nil(t, resp.BirthDate)
	require.Len(t, resp.Books, 1)
	assert.Equal(t, "2015-10-26", *resp.Books[0].PublishedDate)

	empty := NewAuthorDetailResponse(&author.Author{ID: "a-2"})
	assert.NotNil(t, empty.Books, "books序列化为[]而不是null")
}

func TestNewBookResponse(t *testing.T) {
	b := &book.Book{ID: "b-1", AuthorID: "a-1", Author: &author.Author{ID: "a-1", FirstName: "Alan"}}
	resp := NewBookResponse(b)
	require.NotNil(t, resp.Author)
	assert.Equal(t, "Alan", resp.Author.FirstName)

	resp = NewBookResponse(&book.Book{ID: "b-2", AuthorID: "a-1"})
	assert.Nil(t, resp.Author)
}
