package repository

import (
	"context"

	"gorm.io/gorm"

	"bienstar/backend/internal/model"
)

// CatalogRepository 目标模板目录（分类 / 目标 / 具体目标）只读访问接口
type CatalogRepository interface {
	ListMetasByCategory(ctx context.Context, categoryID int64) ([]model.Meta, error)
	ListObjetivosByMeta(ctx context.Context, metaID int64) ([]model.Objetivo, error)
	GetMetaByActivity(ctx context.Context, activityID int64) (*model.Meta, error)
	GetObjetivoByActivity(ctx context.Context, activityID int64) (*model.Objetivo, error)
	FindMetaObjetivo(ctx context.Context, metaID, objetivoID int64) (*model.MetaObjetivo, error)
}

type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepo 创建 CatalogRepository 实例
func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListMetasByCategory(ctx context.Context, categoryID int64) ([]model.Meta, error) {
	var metas []model.Meta
	err := r.db.WithContext(ctx).
		Distinct("meta.id_meta", "meta.descripcion").
		Joins("JOIN meta_objetivo mo ON mo.id_meta = meta.id_meta").
		Where("mo.id_categoria = ?", categoryID).
		Order("meta.id_meta ASC").
		Find(&metas).Error
	return metas, err
}

func (r *catalogRepo) ListObjetivosByMeta(ctx context.Context, metaID int64) ([]model.Objetivo, error) {
	var objetivos []model.Objetivo
	err := r.db.WithContext(ctx).
		Distinct("objetivo.id_objetivo", "objetivo.descripcion").
		Joins("JOIN meta_objetivo mo ON mo.id_objetivo = objetivo.id_objetivo").
		Where("mo.id_meta = ?", metaID).
		Order("objetivo.id_objetivo ASC").
		Find(&objetivos).Error
	return objetivos, err
}

func (r *catalogRepo) GetMetaByActivity(ctx context.Context, activityID int64) (*model.Meta, error) {
	var meta model.Meta
	err := r.db.WithContext(ctx).
		Joins("JOIN meta_objetivo mo ON mo.id_meta = meta.id_meta").
		Joins("JOIN actividad a ON a.id_meta_objetivo = mo.id_meta_objetivo").
		Where("a.id_actividad = ?", activityID).
		First(&meta).Error
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

func (r *catalogRepo) GetObjetivoByActivity(ctx context.Context, activityID int64) (*model.Objetivo, error) {
	var objetivo model.Objetivo
	err := r.db.WithContext(ctx).
		Joins("JOIN meta_objetivo mo ON mo.id_objetivo = objetivo.id_objetivo").
		Joins("JOIN actividad a ON a.id_meta_objetivo = mo.id_meta_objetivo").
		Where("a.id_actividad = ?", activityID).
		First(&objetivo).Error
	if err != nil {
		return nil, err
	}
	return &objetivo, nil
}

func (r *catalogRepo) FindMetaObjetivo(ctx context.Context, metaID, objetivoID int64) (*model.MetaObjetivo, error) {
	var mo model.MetaObjetivo
	err := r.db.WithContext(ctx).
		Where("id_meta = ? AND id_objetivo = ?", metaID, objetivoID).
		Order("id_meta_objetivo ASC").
		First(&mo).Error
	if err != nil {
		return nil, err
	}
	return &mo, nil
}
