package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bienstar/backend/internal/dto"
	"bienstar/backend/internal/service"
	"bienstar/backend/pkg/response"
)

// EvaluationHandler 评估模块 HTTP 处理器
type EvaluationHandler struct {
	evalSvc service.EvaluationService
}

// NewEvaluationHandler 创建 EvaluationHandler
func NewEvaluationHandler(evalSvc service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evalSvc: evalSvc}
}

// ListPending 今天待评估的活动（已翻译）
// GET /evaluaciones/:id?idioma=
func (h *EvaluationHandler) ListPending(c *gin.Context) {
	userID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.evalSvc.ListPending(c.Request.Context(), userID, c.Query("idioma"))
	if err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	response.OK(c, "Evaluaciones pendientes obtenidas exitosamente", items)
}

// HasPending 是否存在待评估活动
// GET /evaluaciones/pendientes/:id
func (h *EvaluationHandler) HasPending(c *gin.Context) {
	userID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	status, err := h.evalSvc.HasPending(c.Request.Context(), userID)
	if err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	response.OK(c, "ok", status)
}

// RecordEvaluation 记录评估，同一活动同一天重复提交不会产生新记录
// POST /evaluacion
func (h *EvaluationHandler) RecordEvaluation(c *gin.Context) {
	var req dto.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.evalSvc.Record(c.Request.Context(), &req)
	if err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	if !result.Creada {
		response.OK(c, "La evaluación de este día ya estaba registrada", result)
		return
	}
	response.Created(c, "Evaluación registrada exitosamente", result)
}

// ListHistory 评估历史（分页，已翻译）
// GET /evaluaciones-historial/:id/:languageId?pagina=&limite=
func (h *EvaluationHandler) ListHistory(c *gin.Context) {
	userID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "Parámetros de paginación inválidos")
		return
	}

	page, err := h.evalSvc.History(c.Request.Context(), userID, c.Param("languageId"), q.Pagina, q.Limite)
	if err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	response.OKPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

func (h *EvaluationHandler) handleEvaluationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEvaluationRef):
		response.BadRequest(c, 14001, "La actividad o la respuesta no existe")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "Formato de fecha inválido, use AAAA-MM-DD")
	case errors.Is(err, service.ErrMissingField):
		response.BadRequest(c, 10001, "Faltan campos obligatorios")
	default:
		handleCommonError(c, err)
	}
}
