package service

import (
	"fmt"

	pkgerrors "bienstar/backend/pkg/errors"
)

// ── 参数校验类 ──

var (
	ErrMissingField      = fmt.Errorf("%w: 缺少必填字段", pkgerrors.ErrValidation)
	ErrInvalidDate       = fmt.Errorf("%w: 日期格式非法", pkgerrors.ErrValidation)
	ErrInvalidTime       = fmt.Errorf("%w: 时间格式非法", pkgerrors.ErrValidation)
	ErrWeekdaysRequired  = fmt.Errorf("%w: 至少选择一个星期", pkgerrors.ErrValidation)
	ErrWeekdayOutOfRange = fmt.Errorf("%w: 星期编码超出范围", pkgerrors.ErrValidation)
	ErrGoalTemplateRef   = fmt.Errorf("%w: 目标模板不存在", pkgerrors.ErrValidation)
	ErrEvaluationRef     = fmt.Errorf("%w: 活动或评估结果不存在", pkgerrors.ErrValidation)
	ErrCalendarEmpty     = fmt.Errorf("%w: 活动在截止日期前没有可发生的实例，无法生成日历", pkgerrors.ErrValidation)
)

// ── 记录不存在类 ──

var (
	ErrActivityNotFound     = fmt.Errorf("%w: 活动不存在", pkgerrors.ErrNotFound)
	ErrActivitiesNotFound   = fmt.Errorf("%w: 该用户在此分类下没有活动", pkgerrors.ErrNotFound)
	ErrHorarioNotFound      = fmt.Errorf("%w: 时间段不存在", pkgerrors.ErrNotFound)
	ErrMetasNotFound        = fmt.Errorf("%w: 该分类下没有目标", pkgerrors.ErrNotFound)
	ErrObjetivosNotFound    = fmt.Errorf("%w: 该目标下没有具体目标", pkgerrors.ErrNotFound)
	ErrMetaNotFound         = fmt.Errorf("%w: 目标不存在", pkgerrors.ErrNotFound)
	ErrObjetivoNotFound     = fmt.Errorf("%w: 具体目标不存在", pkgerrors.ErrNotFound)
	ErrGoalTemplateNotFound = fmt.Errorf("%w: 目标模板不存在", pkgerrors.ErrNotFound)
)

// ── 导出类 ──

var (
	ErrExportGenerateFail = fmt.Errorf("%w: 导出文件生成失败", pkgerrors.ErrStore)
)

// storeError 包装存储层错误，Handler 统一映射为 500
func storeError(err error) error {
	return fmt.Errorf("%w: %w", pkgerrors.ErrStore, err)
}
