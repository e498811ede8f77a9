package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bienstar/backend/internal/dto"
	"bienstar/backend/internal/model"
	"bienstar/backend/internal/repository"
	"bienstar/backend/pkg/translate"
)

// ViewService 活动聚合视图业务接口
type ViewService interface {
	ListActivities(ctx context.Context, userID, categoryID int64, languageID string) ([]dto.ActivityView, error)
	GetActivity(ctx context.Context, id int64) (*dto.ActivityDetail, error)
	ListWeekdays(ctx context.Context, languageID string) ([]dto.WeekdayView, error)
}

type viewService struct {
	repo       *repository.Repository
	translator *textTranslator
	logger     *zap.Logger
}

// NewViewService 创建 ViewService 实例
func NewViewService(repo *repository.Repository, tt *textTranslator, logger *zap.Logger) ViewService {
	return &viewService{repo: repo, translator: tt, logger: logger}
}

// ────────────────────── ListActivities ──────────────────────

func (s *viewService) ListActivities(ctx context.Context, userID, categoryID int64, languageID string) ([]dto.ActivityView, error) {
	rows, err := s.repo.Activity.ListSummaries(ctx, userID, categoryID)
	if err != nil {
		s.logger.Error("查询活动列表失败",
			zap.Int64("id_usuario", userID),
			zap.Int64("id_categoria", categoryID),
			zap.Error(err),
		)
		return nil, storeError(err)
	}
	if len(rows) == 0 {
		return nil, ErrActivitiesNotFound
	}

	views := make([]dto.ActivityView, 0, len(rows))
	for i := range rows {
		views = append(views, toActivityView(&rows[i]))
	}

	// 目标、具体目标与每一行星期各自独立翻译
	b := s.translator.batch(translate.ResolveLanguageID(languageID))
	for i := range views {
		b.Add(&views[i].MetaDescripcion)
		b.Add(&views[i].ObjetivoDescripcion)
		b.AddLines(&views[i].DiasSemana)
	}
	b.Run(ctx)

	return views, nil
}

// ────────────────────── GetActivity ──────────────────────

func (s *viewService) GetActivity(ctx context.Context, id int64) (*dto.ActivityDetail, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("查询活动失败", zap.Int64("id_actividad", id), zap.Error(err))
		return nil, storeError(err)
	}

	detail := &dto.ActivityDetail{
		IDActividad:    activity.IDActividad,
		IDMetaObjetivo: activity.IDMetaObjetivo,
		IDUsuario:      activity.IDUsuario,
		FechaCreacion:  activity.FechaCreacion.String(),
		FechaTerminado: activity.FechaTerminado.String(),
		DiasSemana:     dedupeSorted(activity.WeekdayIDs()),
		Horarios:       make([]dto.HorarioResponse, 0, len(activity.Horarios)),
	}
	if mo := activity.MetaObjetivo; mo != nil {
		detail.IDCategoria = mo.IDCategoria
		detail.IDMeta = mo.IDMeta
		detail.IDObjetivo = mo.IDObjetivo
		if mo.Meta != nil {
			detail.MetaDescripcion = mo.Meta.Descripcion
		}
		if mo.Objetivo != nil {
			detail.ObjetivoDescripcion = mo.Objetivo.Descripcion
		}
	}
	for i := range activity.Horarios {
		detail.Horarios = append(detail.Horarios, *toHorarioResponse(&activity.Horarios[i]))
	}

	return detail, nil
}

// ────────────────────── ListWeekdays ──────────────────────

func (s *viewService) ListWeekdays(ctx context.Context, languageID string) ([]dto.WeekdayView, error) {
	semanas, err := s.repo.Weekday.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询星期枚举失败", zap.Error(err))
		return nil, storeError(err)
	}

	views := make([]dto.WeekdayView, 0, len(semanas))
	for _, d := range semanas {
		views = append(views, dto.WeekdayView{IDSemana: d.IDSemana, Descripcion: d.Descripcion})
	}

	b := s.translator.batch(translate.ResolveLanguageID(languageID))
	for i := range views {
		b.Add(&views[i].Descripcion)
	}
	b.Run(ctx)

	return views, nil
}

// ── 内部辅助方法 ──

func toActivityView(r *model.ActividadResumen) dto.ActivityView {
	v := dto.ActivityView{
		IDActividad:          r.IDActividad,
		IDUsuario:            r.IDUsuario,
		FechaCreacion:        r.FechaCreacion.String(),
		FechaTerminado:       r.FechaTerminado.String(),
		IDCategoria:          r.IDCategoria,
		CategoriaDescripcion: r.Categoria,
		MetaDescripcion:      r.Meta,
		ObjetivoDescripcion:  r.Objetivo,
		Horarios:             derefString(r.Horarios),
		DiasSemana:           derefString(r.DiasSemana),
		EvaluacionRespuesta:  r.Respuesta,
		EvaluacionComentario: r.Comentario,
	}
	if r.FechaEvaluacion != nil && !r.FechaEvaluacion.IsZero() {
		fecha := r.FechaEvaluacion.String()
		v.FechaEvaluacion = &fecha
	}
	return v
}
