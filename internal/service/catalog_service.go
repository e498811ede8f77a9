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

// CatalogService 目标模板目录业务接口（只读）
type CatalogService interface {
	ListMetas(ctx context.Context, categoryID int64, languageID string) ([]dto.MetaView, error)
	ListObjetivos(ctx context.Context, metaID int64, languageID string) ([]dto.ObjetivoView, error)
	GetMetaByActivity(ctx context.Context, activityID int64) (*model.Meta, error)
	GetObjetivoByActivity(ctx context.Context, activityID int64) (*model.Objetivo, error)
	FindGoalTemplate(ctx context.Context, metaID, objetivoID int64) (*dto.MetaObjetivoID, error)
}

type catalogService struct {
	repo       *repository.Repository
	translator *textTranslator
	logger     *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(repo *repository.Repository, tt *textTranslator, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, translator: tt, logger: logger}
}

func (s *catalogService) ListMetas(ctx context.Context, categoryID int64, languageID string) ([]dto.MetaView, error) {
	metas, err := s.repo.Catalog.ListMetasByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("查询目标列表失败", zap.Int64("id_categoria", categoryID), zap.Error(err))
		return nil, storeError(err)
	}
	if len(metas) == 0 {
		return nil, ErrMetasNotFound
	}

	views := make([]dto.MetaView, 0, len(metas))
	for _, m := range metas {
		views = append(views, dto.MetaView{IDMeta: m.IDMeta, Descripcion: m.Descripcion, Idioma: languageID})
	}

	b := s.translator.batch(translate.ResolveLanguageID(languageID))
	for i := range views {
		b.Add(&views[i].Descripcion)
	}
	b.Run(ctx)

	return views, nil
}

func (s *catalogService) ListObjetivos(ctx context.Context, metaID int64, languageID string) ([]dto.ObjetivoView, error) {
	objetivos, err := s.repo.Catalog.ListObjetivosByMeta(ctx, metaID)
	if err != nil {
		s.logger.Error("查询具体目标列表失败", zap.Int64("id_meta", metaID), zap.Error(err))
		return nil, storeError(err)
	}
	if len(objetivos) == 0 {
		return nil, ErrObjetivosNotFound
	}

	views := make([]dto.ObjetivoView, 0, len(objetivos))
	for _, o := range objetivos {
		views = append(views, dto.ObjetivoView{IDObjetivo: o.IDObjetivo, Descripcion: o.Descripcion, Idioma: languageID})
	}

	b := s.translator.batch(translate.ResolveLanguageID(languageID))
	for i := range views {
		b.Add(&views[i].Descripcion)
	}
	b.Run(ctx)

	return views, nil
}

func (s *catalogService) GetMetaByActivity(ctx context.Context, activityID int64) (*model.Meta, error) {
	meta, err := s.repo.Catalog.GetMetaByActivity(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMetaNotFound
		}
		s.logger.Error("查询活动目标失败", zap.Int64("id_actividad", activityID), zap.Error(err))
		return nil, storeError(err)
	}
	return meta, nil
}

func (s *catalogService) GetObjetivoByActivity(ctx context.Context, activityID int64) (*model.Objetivo, error) {
	objetivo, err := s.repo.Catalog.GetObjetivoByActivity(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrObjetivoNotFound
		}
		s.logger.Error("查询活动具体目标失败", zap.Int64("id_actividad", activityID), zap.Error(err))
		return nil, storeError(err)
	}
	return objetivo, nil
}

func (s *catalogService) FindGoalTemplate(ctx context.Context, metaID, objetivoID int64) (*dto.MetaObjetivoID, error) {
	mo, err := s.repo.Catalog.FindMetaObjetivo(ctx, metaID, objetivoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalTemplateNotFound
		}
		s.logger.Error("查询目标模板失败",
			zap.Int64("id_meta", metaID),
			zap.Int64("id_objetivo", objetivoID),
			zap.Error(err),
		)
		return nil, storeError(err)
	}
	return &dto.MetaObjetivoID{IDMetaObjetivo: mo.IDMetaObjetivo}, nil
}
