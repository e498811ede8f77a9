package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bienstar/backend/internal/dto"
	"bienstar/backend/internal/service"
	"bienstar/backend/pkg/response"
)

// ActivityHandler 活动模块 HTTP 处理器
type ActivityHandler struct {
	activitySvc service.ActivityService
	viewSvc     service.ViewService
}

// NewActivityHandler 创建 ActivityHandler
func NewActivityHandler(activitySvc service.ActivityService, viewSvc service.ViewService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc, viewSvc: viewSvc}
}

// ListActivities 用户在某分类下的活动汇总（已翻译）
// GET /actividad/:id/:categoryId/:languageId
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	categoryID, ok := ParseIDParam(c, "categoryId")
	if !ok {
		return
	}

	views, err := h.viewSvc.ListActivities(c.Request.Context(), userID, categoryID, c.Param("languageId"))
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, "Actividades obtenidas exitosamente", views)
}

// GetActivity 活动详情
// GET /actividad/:id
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.viewSvc.GetActivity(c.Request.Context(), id)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, "Actividad obtenida exitosamente", detail)
}

// CreateActivity 创建活动（含星期与时间段）
// POST /actividad
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.activitySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.Created(c, "Actividad creada exitosamente", result)
}

// UpdateActivity 更新活动并整体替换星期选择
// PUT /actividad/:id
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.activitySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, "Actividad actualizada exitosamente", result)
}

// DeleteActivity 删除活动及其评估、时间段与星期选择
// DELETE /actividad/:id
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.activitySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, "Actividad eliminada exitosamente", nil)
}

// ListWeekdays 星期枚举（已翻译）
// GET /semana?id_idioma=
func (h *ActivityHandler) ListWeekdays(c *gin.Context) {
	days, err := h.viewSvc.ListWeekdays(c.Request.Context(), c.Query("id_idioma"))
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, "Días de la semana obtenidos exitosamente", days)
}

func (h *ActivityHandler) handleActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 12001, "Actividad no encontrada")
	case errors.Is(err, service.ErrActivitiesNotFound):
		response.NotFound(c, 12002, "No se encontraron actividades para este usuario y categoría")
	case errors.Is(err, service.ErrWeekdaysRequired):
		response.BadRequest(c, 12003, "Debe seleccionar al menos un día de la semana")
	case errors.Is(err, service.ErrWeekdayOutOfRange):
		response.BadRequest(c, 12004, "Día de la semana inválido")
	case errors.Is(err, service.ErrGoalTemplateRef):
		response.BadRequest(c, 12005, "La combinación de meta y objetivo no existe")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "Formato de fecha inválido, use AAAA-MM-DD")
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 10001, "Formato de hora inválido, use HH:MM")
	case errors.Is(err, service.ErrMissingField):
		response.BadRequest(c, 10001, "Faltan campos obligatorios")
	default:
		handleCommonError(c, err)
	}
}
