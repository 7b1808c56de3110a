package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/t", handler)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := serve(func(c *gin.Context) { Success(c, gin.H{"id": "1"}) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["code"])
	assert.Equal(t, "success", body["message"])
	assert.NotNil(t, body["data"])
}

func TestCreated(t *testing.T) {
	w, _ := serve(func(c *gin.Context) { Created(c, gin.H{"id": "1"}) })
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSuccessNilDataOmitted(t *testing.T) {
	_, body := serve(func(c *gin.Context) { Success(c, nil) })
	_, ok := body["data"]
	assert.False(t, ok)
}

func TestError(t *testing.T) {
	t.Run("业务错误", func(t *testing.T) {
		w, body := serve(func(c *gin.Context) {
			Error(c, apperrors.New(apperrors.ErrCodeAuthorHasBooks, "Cannot delete author with associated books"))
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, float64(apperrors.ErrCodeAuthorHasBooks), body["code"])
		assert.Equal(t, "Cannot delete author with associated books", body["message"])
	})

	t.Run("未知错误不泄露细节", func(t *testing.T) {
		w, body := serve(func(c *gin.Context) {
			Error(c, errors.New("Error 1045: Access denied for user 'root'"))
		})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, body["message"], "root")
	})
}

func TestErrorWithCode(t *testing.T) {
	w, body := serve(func(c *gin.Context) {
		ErrorWithCode(c, apperrors.ErrCodeBookNotFound, "Book with ID x not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book with ID x not found", body["message"])
}

func TestAbortWithError(t *testing.T) {
	called := false
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/t", func(c *gin.Context) {
		AbortWithError(c, apperrors.InvalidParams(errors.New("limit must be positive")))
	}, func(c *gin.Context) {
		called = true
	})
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}
