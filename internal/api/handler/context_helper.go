package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bienstar/backend/internal/api/middleware"
	pkgerrors "bienstar/backend/pkg/errors"
	"bienstar/backend/pkg/response"
)

// ParseIDParam 解析正整数路径参数，非法时写入 400 响应
// 调用方应在 ok=false 时直接 return
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "El parámetro "+name+" debe ser un número entero positivo")
		return 0, false
	}
	return id, true
}

// MustGetToken 从 Gin 上下文中提取 JWT ID 与过期时间
func MustGetToken(c *gin.Context) (string, time.Time, bool) {
	jti := c.GetString(middleware.ContextTokenJTI)
	if jti == "" {
		response.Unauthorized(c, 10002, "No autenticado")
		return "", time.Time{}, false
	}
	exp := c.GetTime(middleware.ContextTokenExp)
	return jti, exp, true
}

// bindFailed 请求体绑定失败：超出大小限制返回 413，其余返回 400
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Cuerpo de la solicitud demasiado grande")
		return
	}
	response.BadRequest(c, 10001, "Parámetros inválidos")
}

// handleCommonError 按错误类别兜底映射
func handleCommonError(c *gin.Context, err error) {
	switch {
	case pkgerrors.IsValidation(err):
		response.BadRequest(c, 10001, "Parámetros inválidos")
	case pkgerrors.IsNotFound(err):
		response.NotFound(c, 10404, "Recurso no encontrado")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
