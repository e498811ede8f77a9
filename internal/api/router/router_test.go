package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bienstar/backend/config"
	"bienstar/backend/internal/api/handler"
	"bienstar/backend/internal/repository"
	"bienstar/backend/internal/service"
	"bienstar/backend/pkg/jwt"
	"bienstar/backend/pkg/translate"
)

func newTestConfig(authEnabled bool) *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{Port: 4000, MaxBodyBytes: 1 << 20},
		Auth:       config.AuthConfig{Enabled: authEnabled, JWTSecret: "0123456789abcdef", Issuer: "bienstar", AccessTokenTTL: time.Minute},
		Translate:  config.TranslateConfig{Concurrency: 2},
		Evaluation: config.EvaluationConfig{Timezone: "UTC"},
	}
}

func newTestEngine(cfg *config.Config) (http.Handler, *jwt.Manager) {
	logger := zap.NewNop()
	svc := service.NewService(cfg, &repository.Repository{}, translate.Noop{}, logger)
	jwtMgr := jwt.NewManager(&cfg.Auth)
	return Setup(cfg, handler.NewHandler(svc, nil), jwtMgr, nil, nil, logger), jwtMgr
}

func TestHealth(t *testing.T) {
	engine, _ := newTestEngine(newTestConfig(false))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuthEnabled_RequiresToken(t *testing.T) {
	engine, jwtMgr := newTestEngine(newTestConfig(true))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/semana", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 健康检查不需要认证
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// 无 Redis 时登出返回 503
	token, err := jwtMgr.GenerateAccessToken(7)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/cerrar-sesion", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAuthDisabled_NoLogoutRoute(t *testing.T) {
	engine, _ := newTestEngine(newTestConfig(false))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cerrar-sesion", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidIDRejectedBeforeService(t *testing.T) {
	engine, _ := newTestEngine(newTestConfig(false))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/actividad/uno", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
