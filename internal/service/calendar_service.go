package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bienstar/backend/internal/model"
	"bienstar/backend/internal/repository"
)

// ── ICS 生成器 ──────────────────────────────────────────────
//
// 每个时间段生成一个按周重复的 VEVENT：
//   - BYDAY 来自活动的星期集合，编码 8 展开为周一到周日
//   - DTSTART 为创建日期当天或之后第一个命中的星期
//   - 截止日期晚于创建日期时设置 UNTIL（截止日当天结束）
// ─────────────────────────────────────────────────────────────

const icsProductID = "-//BienStar//Actividades//ES"

// byDayCodes 星期编码 → RRULE BYDAY
var byDayCodes = map[int]string{
	1: "MO", 2: "TU", 3: "WE", 4: "TH", 5: "FR", 6: "SA", 7: "SU",
}

// CalendarService 活动日历导出业务接口
type CalendarService interface {
	ExportActivity(ctx context.Context, activityID int64) ([]byte, string, error)
}

type calendarService struct {
	repo   *repository.Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarService{repo: repo, loc: loc, now: time.Now, logger: logger}
}

func (s *calendarService) ExportActivity(ctx context.Context, activityID int64) ([]byte, string, error) {
	activity, err := s.repo.Activity.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrActivityNotFound
		}
		s.logger.Error("查询活动失败", zap.Int64("id_actividad", activityID), zap.Error(err))
		return nil, "", storeError(err)
	}

	weekdays := expandWeekdays(activity.WeekdayIDs())
	if len(activity.Horarios) == 0 || len(weekdays) == 0 {
		return nil, "", ErrCalendarEmpty
	}

	summary := fmt.Sprintf("Actividad %d", activity.IDActividad)
	var description string
	if mo := activity.MetaObjetivo; mo != nil && mo.Meta != nil {
		summary = mo.Meta.Descripcion
		if mo.Objetivo != nil {
			description = mo.Objetivo.Descripcion
		}
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	firstDay := firstMatchingDay(activity.FechaCreacion, weekdays)
	// 截止日期之前没有任何选中的星期，不存在可发生的实例
	if activity.FechaTerminado.After(activity.FechaCreacion.Time) && firstDay.After(activity.FechaTerminado.Time) {
		return nil, "", ErrCalendarEmpty
	}
	rrule := buildRRule(weekdays, activity, s.loc)
	stamp := s.now().UTC()

	for _, h := range activity.Horarios {
		start, end, err := windowOn(firstDay, h, s.loc)
		if err != nil {
			s.logger.Warn("时间段格式异常，跳过", zap.Int64("id_horario", h.IDHorario), zap.Error(err))
			continue
		}

		event := cal.AddEvent(uuid.NewString())
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(summary)
		if description != "" {
			event.SetDescription(description)
		}
		event.SetProperty(ics.ComponentPropertyRrule, rrule)
	}

	filename := fmt.Sprintf("actividad_%d.ics", activity.IDActividad)
	return []byte(cal.Serialize()), filename, nil
}

// ── 内部辅助方法 ──

// expandWeekdays 去重并展开“每天”编码，返回 1..7 升序
func expandWeekdays(ids []int) []int {
	set := make(map[int]bool, 7)
	for _, id := range ids {
		if id == model.WeekdayEveryDay {
			for d := 1; d <= 7; d++ {
				set[d] = true
			}
			continue
		}
		if _, ok := byDayCodes[id]; ok {
			set[id] = true
		}
	}
	out := make([]int, 0, len(set))
	for d := 1; d <= 7; d++ {
		if set[d] {
			out = append(out, d)
		}
	}
	return out
}

// isoWeekday time.Weekday → 1(周一)..7(周日)
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// firstMatchingDay 从 from 起（含）第一个属于 weekdays 的日期
func firstMatchingDay(from model.Date, weekdays []int) model.Date {
	for i := 0; i < 7; i++ {
		d := from.AddDays(i)
		for _, wd := range weekdays {
			if isoWeekday(d.Time) == wd {
				return d
			}
		}
	}
	return from
}

func buildRRule(weekdays []int, activity *model.Actividad, loc *time.Location) string {
	codes := make([]string, 0, len(weekdays))
	for _, d := range weekdays {
		codes = append(codes, byDayCodes[d])
	}
	rule := "FREQ=WEEKLY;BYDAY=" + strings.Join(codes, ",")

	if activity.FechaTerminado.After(activity.FechaCreacion.Time) {
		y, m, d := activity.FechaTerminado.Date()
		until := time.Date(y, m, d, 23, 59, 59, 0, loc).UTC()
		rule += ";UNTIL=" + until.Format("20060102T150405Z")
	}
	return rule
}

// windowOn 将时间段落到具体日期；结束不晚于开始时视为跨天
func windowOn(day model.Date, h model.Horario, loc *time.Location) (time.Time, time.Time, error) {
	start, err := clockOn(day, h.HoraInicio, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := clockOn(day, h.HoraFin, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end, nil
}

func clockOn(day model.Date, clockText string, loc *time.Location) (time.Time, error) {
	normalized, err := normalizeClock(clockText)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse("15:04:05", normalized)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}
