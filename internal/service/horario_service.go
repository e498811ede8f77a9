package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bienstar/backend/internal/dto"
	"bienstar/backend/internal/model"
	"bienstar/backend/internal/repository"
)

// HorarioService 活动时间段业务接口
// 不校验同一活动内时间段是否重叠
type HorarioService interface {
	Create(ctx context.Context, req *dto.CreateHorarioRequest) (*dto.HorarioResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateHorarioRequest) (*dto.HorarioResponse, error)
	Delete(ctx context.Context, id int64) error
}

type horarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHorarioService 创建 HorarioService 实例
func NewHorarioService(repo *repository.Repository, logger *zap.Logger) HorarioService {
	return &horarioService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *horarioService) Create(ctx context.Context, req *dto.CreateHorarioRequest) (*dto.HorarioResponse, error) {
	if req.IDActividad == nil || *req.IDActividad <= 0 {
		return nil, ErrMissingField
	}
	inicio, err := normalizeClock(req.HoraInicio)
	if err != nil {
		return nil, err
	}
	fin, err := normalizeClock(req.HoraFin)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Activity.Exists(ctx, *req.IDActividad)
	if err != nil {
		s.logger.Error("查询活动失败", zap.Int64("id_actividad", *req.IDActividad), zap.Error(err))
		return nil, storeError(err)
	}
	if !exists {
		return nil, ErrActivityNotFound
	}

	horario := &model.Horario{IDActividad: *req.IDActividad, HoraInicio: inicio, HoraFin: fin}
	if err := s.repo.Horario.Create(ctx, horario); err != nil {
		// 校验与写入之间活动被删除
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("创建时间段失败", zap.Int64("id_actividad", *req.IDActividad), zap.Error(err))
		return nil, storeError(err)
	}

	return toHorarioResponse(horario), nil
}

// ────────────────────── Update ──────────────────────

func (s *horarioService) Update(ctx context.Context, id int64, req *dto.UpdateHorarioRequest) (*dto.HorarioResponse, error) {
	if req.HoraInicio == nil && req.HoraFin == nil {
		return nil, ErrMissingField
	}

	horario, err := s.repo.Horario.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHorarioNotFound
		}
		s.logger.Error("查询时间段失败", zap.Int64("id_horario", id), zap.Error(err))
		return nil, storeError(err)
	}

	if req.HoraInicio != nil {
		if horario.HoraInicio, err = normalizeClock(*req.HoraInicio); err != nil {
			return nil, err
		}
	}
	if req.HoraFin != nil {
		if horario.HoraFin, err = normalizeClock(*req.HoraFin); err != nil {
			return nil, err
		}
	}

	rows, err := s.repo.Horario.Update(ctx, id, horario.HoraInicio, horario.HoraFin)
	if err != nil {
		s.logger.Error("更新时间段失败", zap.Int64("id_horario", id), zap.Error(err))
		return nil, storeError(err)
	}
	if rows == 0 {
		return nil, ErrHorarioNotFound
	}

	return toHorarioResponse(horario), nil
}

// ────────────────────── Delete ──────────────────────

func (s *horarioService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Horario.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除时间段失败", zap.Int64("id_horario", id), zap.Error(err))
		return storeError(err)
	}
	if rows == 0 {
		return ErrHorarioNotFound
	}
	return nil
}

// ── 内部辅助方法 ──

func toHorarioResponse(h *model.Horario) *dto.HorarioResponse {
	return &dto.HorarioResponse{
		IDHorario:   h.IDHorario,
		IDActividad: h.IDActividad,
		HoraInicio:  h.HoraInicio,
		HoraFin:     h.HoraFin,
	}
}
