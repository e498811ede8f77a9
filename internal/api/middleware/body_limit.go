package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bienstar/backend/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// Content-Length 超限时直接拒绝；未知长度时由 MaxBytesReader 在读取阶段截断，
// 绑定失败的 *http.MaxBytesError 由 Handler 映射为 413
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Cuerpo de la solicitud demasiado grande")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
