package errors

import "errors"

// ── 错误类别 ──
// 业务层的哨兵错误通过 %w 包装其中之一，Handler 层据此映射 HTTP 状态码

var (
	// ErrValidation 必填字段缺失或格式非法（400）
	ErrValidation = errors.New("参数校验失败")
	// ErrNotFound 目标记录不存在（404）
	ErrNotFound = errors.New("记录不存在")
	// ErrStore 存储层查询或连接失败（500），不自动重试
	ErrStore = errors.New("存储层错误")
	// ErrTranslationDegraded 翻译失败已回退原文，仅记录日志，不中断请求
	ErrTranslationDegraded = errors.New("翻译降级")
)

// IsValidation 判断错误是否属于参数校验类别
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound 判断错误是否属于记录不存在类别
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
