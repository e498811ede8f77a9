package dto

// ── 评估模块 DTO ──

// CreateEvaluationRequest 记录评估请求
type CreateEvaluationRequest struct {
	IDActividad     *int64  `json:"id_actividad"     binding:"required"`
	IDRespuesta     *int    `json:"id_respuesta"     binding:"required"`
	Comentario      *string `json:"comentario"`
	FechaEvaluacion string  `json:"fecha_evaluacion" binding:"required"` // "2026-01-31"
}

// CreateEvaluationResponse 记录评估响应；同一天重复提交时 creada=false
type CreateEvaluationResponse struct {
	IDActividad     int64  `json:"id_actividad"`
	FechaEvaluacion string `json:"fecha_evaluacion"`
	Creada          bool   `json:"creada"`
}

// PendingEvaluation 待评估活动（已翻译）
type PendingEvaluation struct {
	IDActividad         int64  `json:"id_actividad"`
	DescripcionMeta     string `json:"descripcion_meta"`
	DescripcionObjetivo string `json:"descripcion_objetivo"`
	FechaCreacion       string `json:"fecha_creacion"`
	FechaTerminado      string `json:"fecha_terminado"`
}

// PendingStatus 是否存在待评估活动
type PendingStatus struct {
	Pendientes bool `json:"pendientes"`
}

// HistoryQuery 评估历史分页参数
type HistoryQuery struct {
	Pagina int `form:"pagina" binding:"omitempty,min=1"`
	Limite int `form:"limite" binding:"omitempty,min=1"`
}

// HistoryItem 评估历史项（已翻译）
type HistoryItem struct {
	IDEvaluacion   int64   `json:"id_evaluacion"`
	IDActividad    int64   `json:"id_actividad"`
	DesMeta        string  `json:"des_meta"`
	DesObjetivo    string  `json:"des_objetivo"`
	FechaInicio    string  `json:"fecha_inicio"` // 评估日期
	FechaFin       string  `json:"fecha_fin"`    // 评估日期 + 1 天
	FechaCreacion  string  `json:"fecha_creacion"`
	FechaTerminado string  `json:"fecha_terminado"`
	IDRespuesta    int     `json:"id_respuesta"`
	Respuesta      string  `json:"respuesta"`
	Comentario     *string `json:"comentario"`
}

// HistoryPage 评估历史分页结果，总页数由 response.OKPage 计算
type HistoryPage struct {
	Items    []HistoryItem
	Total    int64
	Page     int
	PageSize int
}
