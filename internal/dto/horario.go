package dto

// ── 时间段模块 DTO ──

// CreateHorarioRequest 新增时间段请求
type CreateHorarioRequest struct {
	IDActividad *int64 `json:"id_actividad" binding:"required"`
	HoraInicio  string `json:"hora_inicio"  binding:"required"`
	HoraFin     string `json:"hora_fin"     binding:"required"`
}

// UpdateHorarioRequest 更新时间段请求，未提供的字段保持不变
type UpdateHorarioRequest struct {
	HoraInicio *string `json:"hora_inicio"`
	HoraFin    *string `json:"hora_fin"`
}

// HorarioResponse 时间段响应
type HorarioResponse struct {
	IDHorario   int64  `json:"id_horario"`
	IDActividad int64  `json:"id_actividad"`
	HoraInicio  string `json:"hora_inicio"`
	HoraFin     string `json:"hora_fin"`
}
