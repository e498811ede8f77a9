package repository

import (
	"context"

	"gorm.io/gorm"

	"bienstar/backend/internal/model"
)

// HorarioRepository 时间段数据访问接口
type HorarioRepository interface {
	Create(ctx context.Context, horario *model.Horario) error
	CreateBatch(ctx context.Context, horarios []model.Horario) error
	GetByID(ctx context.Context, id int64) (*model.Horario, error)
	ListByActivity(ctx context.Context, activityID int64) ([]model.Horario, error)
	Update(ctx context.Context, id int64, horaInicio, horaFin string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByActivity(ctx context.Context, activityID int64) error
}

type horarioRepo struct {
	db *gorm.DB
}

// NewHorarioRepo 创建 HorarioRepository 实例
func NewHorarioRepo(db *gorm.DB) HorarioRepository {
	return &horarioRepo{db: db}
}

func (r *horarioRepo) Create(ctx context.Context, horario *model.Horario) error {
	return translateError(r.db.WithContext(ctx).Create(horario).Error)
}

func (r *horarioRepo) CreateBatch(ctx context.Context, horarios []model.Horario) error {
	if len(horarios) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Create(&horarios).Error)
}

func (r *horarioRepo) GetByID(ctx context.Context, id int64) (*model.Horario, error) {
	var horario model.Horario
	err := r.db.WithContext(ctx).
		Where("id_horario = ?", id).
		First(&horario).Error
	if err != nil {
		return nil, err
	}
	return &horario, nil
}

func (r *horarioRepo) ListByActivity(ctx context.Context, activityID int64) ([]model.Horario, error) {
	var horarios []model.Horario
	err := r.db.WithContext(ctx).
		Where("id_actividad = ?", activityID).
		Order("id_horario ASC").
		Find(&horarios).Error
	return horarios, err
}

func (r *horarioRepo) Update(ctx context.Context, id int64, horaInicio, horaFin string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Horario{}).
		Where("id_horario = ?", id).
		Updates(map[string]interface{}{
			"hora_inicio": horaInicio,
			"hora_fin":    horaFin,
		})
	return result.RowsAffected, result.Error
}

func (r *horarioRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id_horario = ?", id).
		Delete(&model.Horario{})
	return result.RowsAffected, result.Error
}

func (r *horarioRepo) DeleteByActivity(ctx context.Context, activityID int64) error {
	return r.db.WithContext(ctx).
		Where("id_actividad = ?", activityID).
		Delete(&model.Horario{}).Error
}
