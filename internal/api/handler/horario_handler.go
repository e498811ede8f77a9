package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bienstar/backend/internal/dto"
	"bienstar/backend/internal/service"
	"bienstar/backend/pkg/response"
)

// HorarioHandler 时间段模块 HTTP 处理器
type HorarioHandler struct {
	horarioSvc service.HorarioService
}

// NewHorarioHandler 创建 HorarioHandler
func NewHorarioHandler(horarioSvc service.HorarioService) *HorarioHandler {
	return &HorarioHandler{horarioSvc: horarioSvc}
}

// CreateHorario 为活动新增时间段
// POST /horario
func (h *HorarioHandler) CreateHorario(c *gin.Context) {
	var req dto.CreateHorarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.horarioSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleHorarioError(c, err)
		return
	}

	response.Created(c, "Horario agregado exitosamente", result)
}

// UpdateHorario 修改时间段
// PUT /horario/:id
func (h *HorarioHandler) UpdateHorario(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateHorarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.horarioSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHorarioError(c, err)
		return
	}

	response.OK(c, "Horario actualizado exitosamente", result)
}

// DeleteHorario 删除时间段
// DELETE /horario/:id
func (h *HorarioHandler) DeleteHorario(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.horarioSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleHorarioError(c, err)
		return
	}

	response.OK(c, "Horario eliminado exitosamente", nil)
}

func (h *HorarioHandler) handleHorarioError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 12001, "Actividad no encontrada")
	case errors.Is(err, service.ErrHorarioNotFound):
		response.NotFound(c, 13001, "Horario no encontrado")
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 10001, "Formato de hora inválido, use HH:MM")
	case errors.Is(err, service.ErrMissingField):
		response.BadRequest(c, 10001, "Faltan campos obligatorios")
	default:
		handleCommonError(c, err)
	}
}
