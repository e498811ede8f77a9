package service

import (
	"sort"
	"strings"
	"time"

	"bienstar/backend/internal/model"
)

// parseRequiredDate 解析必填日期
func parseRequiredDate(s string) (model.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Date{}, ErrMissingField
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, ErrInvalidDate
	}
	return d, nil
}

// normalizeClock 校验 "HH:MM" / "HH:MM:SS"，统一输出 "HH:MM:SS"
func normalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingField
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", ErrInvalidTime
}

// strictWeekdays 创建活动：非空、全部在 1..8 内，去重后升序
func strictWeekdays(ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, ErrWeekdaysRequired
	}
	for _, id := range ids {
		if !model.IsValidWeekday(id) {
			return nil, ErrWeekdayOutOfRange
		}
	}
	return dedupeSorted(ids), nil
}

// lenientWeekdays 更新活动：丢弃非法编码，去重后升序，结果为空时报错
func lenientWeekdays(ids []int) ([]int, error) {
	valid := make([]int, 0, len(ids))
	for _, id := range ids {
		if model.IsValidWeekday(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, ErrWeekdaysRequired
	}
	return dedupeSorted(valid), nil
}

func dedupeSorted(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// optionalComment 空白备注按 NULL 存储
func optionalComment(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
