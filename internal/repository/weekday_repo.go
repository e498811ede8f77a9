package repository

import (
	"context"

	"gorm.io/gorm"

	"bienstar/backend/internal/model"
)

// WeekdayRepository 星期枚举与活动星期选择的数据访问接口
type WeekdayRepository interface {
	ListAll(ctx context.Context) ([]model.Semana, error)
	ListByActivity(ctx context.Context, activityID int64) ([]int, error)
	// ReplaceForActivity 删除活动的全部星期选择后批量写入 ids（调用方负责事务）
	ReplaceForActivity(ctx context.Context, activityID int64, ids []int) error
	DeleteByActivity(ctx context.Context, activityID int64) error
}

type weekdayRepo struct {
	db *gorm.DB
}

// NewWeekdayRepo 创建 WeekdayRepository 实例
func NewWeekdayRepo(db *gorm.DB) WeekdayRepository {
	return &weekdayRepo{db: db}
}

func (r *weekdayRepo) ListAll(ctx context.Context) ([]model.Semana, error) {
	var semanas []model.Semana
	err := r.db.WithContext(ctx).Order("id_semana ASC").Find(&semanas).Error
	return semanas, err
}

func (r *weekdayRepo) ListByActivity(ctx context.Context, activityID int64) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).
		Model(&model.ActividadSemana{}).
		Where("id_actividad = ?", activityID).
		Order("id_semana ASC").
		Pluck("id_semana", &ids).Error
	return ids, err
}

func (r *weekdayRepo) ReplaceForActivity(ctx context.Context, activityID int64, ids []int) error {
	if err := r.DeleteByActivity(ctx, activityID); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	rows := make([]model.ActividadSemana, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.ActividadSemana{IDActividad: activityID, IDSemana: id})
	}
	return translateError(r.db.WithContext(ctx).Create(&rows).Error)
}

func (r *weekdayRepo) DeleteByActivity(ctx context.Context, activityID int64) error {
	return r.db.WithContext(ctx).
		Where("id_actividad = ?", activityID).
		Delete(&model.ActividadSemana{}).Error
}
