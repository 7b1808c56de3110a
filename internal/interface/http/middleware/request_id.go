package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID 请求ID响应头
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID gin.Context中的请求ID
	ContextKeyRequestID = "request_id"
)

// RequestID 为每个请求分配ID,客户端传入时沿用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
