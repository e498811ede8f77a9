package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bienstar/backend/pkg/response"
)

// TokenRevoker Token 吊销集合
type TokenRevoker interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
}

// SessionHandler 会话 HTTP 处理器
type SessionHandler struct {
	revoker TokenRevoker
	now     func() time.Time
}

// NewSessionHandler 创建 SessionHandler
func NewSessionHandler(revoker TokenRevoker) *SessionHandler {
	return &SessionHandler{revoker: revoker, now: time.Now}
}

// Logout 吊销当前 Access Token，TTL 为其剩余有效期
// POST /cerrar-sesion
func (h *SessionHandler) Logout(c *gin.Context) {
	jti, exp, ok := MustGetToken(c)
	if !ok {
		return
	}
	if h.revoker == nil {
		response.Error(c, http.StatusServiceUnavailable, 50301, "Servicio de sesiones no disponible")
		return
	}

	if err := h.revoker.RevokeToken(c.Request.Context(), jti, exp.Sub(h.now())); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, "Sesión cerrada exitosamente", nil)
}
