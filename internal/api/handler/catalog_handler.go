package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bienstar/backend/internal/service"
	"bienstar/backend/pkg/response"
)

// CatalogHandler 目标目录 HTTP 处理器（只读）
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListMetas 分类下的目标
// GET /metas/:categoryId/:languageId
func (h *CatalogHandler) ListMetas(c *gin.Context) {
	categoryID, ok := ParseIDParam(c, "categoryId")
	if !ok {
		return
	}

	metas, err := h.catalogSvc.ListMetas(c.Request.Context(), categoryID, c.Param("languageId"))
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, "Metas obtenidas exitosamente", metas)
}

// ListObjetivos 目标下的具体目标
// GET /objetivos/:metaId/:languageId
func (h *CatalogHandler) ListObjetivos(c *gin.Context) {
	metaID, ok := ParseIDParam(c, "metaId")
	if !ok {
		return
	}

	objetivos, err := h.catalogSvc.ListObjetivos(c.Request.Context(), metaID, c.Param("languageId"))
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, "Objetivos obtenidos exitosamente", objetivos)
}

// GetMeta 活动所属目标
// GET /meta/:id
func (h *CatalogHandler) GetMeta(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	meta, err := h.catalogSvc.GetMetaByActivity(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, "Meta obtenida exitosamente", meta)
}

// GetObjetivo 活动所属具体目标
// GET /objetivo/:id
func (h *CatalogHandler) GetObjetivo(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	objetivo, err := h.catalogSvc.GetObjetivoByActivity(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, "Objetivo obtenido exitosamente", objetivo)
}

// FindGoalTemplate 由目标与具体目标定位目标模板
// GET /metaobjetivo/:metaId/:objetivoId
func (h *CatalogHandler) FindGoalTemplate(c *gin.Context) {
	metaID, ok := ParseIDParam(c, "metaId")
	if !ok {
		return
	}
	objetivoID, ok := ParseIDParam(c, "objetivoId")
	if !ok {
		return
	}

	result, err := h.catalogSvc.FindGoalTemplate(c.Request.Context(), metaID, objetivoID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, "Meta-objetivo obtenido exitosamente", result)
}

func (h *CatalogHandler) handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMetasNotFound):
		response.NotFound(c, 15001, "No se encontraron metas para esta categoría")
	case errors.Is(err, service.ErrObjetivosNotFound):
		response.NotFound(c, 15002, "No se encontraron objetivos para esta meta")
	case errors.Is(err, service.ErrMetaNotFound):
		response.NotFound(c, 15003, "Meta no encontrada")
	case errors.Is(err, service.ErrObjetivoNotFound):
		response.NotFound(c, 15004, "Objetivo no encontrado")
	case errors.Is(err, service.ErrGoalTemplateNotFound):
		response.NotFound(c, 15005, "Combinación de meta y objetivo no encontrada")
	default:
		handleCommonError(c, err)
	}
}
