package dto

// ── 活动模块 DTO ──

// HorarioInput 时间段输入，时间格式 "HH:MM" 或 "HH:MM:SS"
type HorarioInput struct {
	HoraInicio string `json:"hora_inicio" binding:"required"`
	HoraFin    string `json:"hora_fin"    binding:"required"`
}

// CreateActivityRequest 创建活动请求
type CreateActivityRequest struct {
	IDMetaObjetivo    *int64         `json:"id_meta_objetivo"  binding:"required"`
	IDUsuario         *int64         `json:"id_usuario"        binding:"required"`
	FechaCreacion     string         `json:"fecha_creacion"    binding:"required"` // "2026-01-31"
	FechaTerminado    string         `json:"fecha_terminado"   binding:"required"`
	DiasSeleccionados []int          `json:"diasSeleccionados" binding:"required"`
	Horarios          []HorarioInput `json:"horarios"          binding:"omitempty,dive"`
}

// UpdateActivityRequest 更新活动请求（星期集合整体替换）
type UpdateActivityRequest struct {
	IDMetaObjetivo    *int64 `json:"id_meta_objetivo"  binding:"required"`
	FechaTerminado    string `json:"fecha_terminado"   binding:"required"`
	DiasSeleccionados []int  `json:"diasSeleccionados" binding:"required"`
}

// CreateActivityResponse 创建活动响应
type CreateActivityResponse struct {
	IDActividad int64 `json:"id_actividad"`
}

// UpdateActivityResponse 更新活动响应
type UpdateActivityResponse struct {
	IDActividad       int64 `json:"id_actividad"`
	DiasSeleccionados []int `json:"diasSeleccionados"`
}

// ActivityView 活动汇总视图（已翻译）
type ActivityView struct {
	IDActividad          int64   `json:"id_actividad"`
	IDUsuario            int64   `json:"id_usuario"`
	FechaCreacion        string  `json:"fecha_creacion"`
	FechaTerminado       string  `json:"fecha_terminado"`
	IDCategoria          int64   `json:"id_categoria"`
	CategoriaDescripcion string  `json:"categoria_descripcion"`
	MetaDescripcion      string  `json:"meta_descripcion"`
	ObjetivoDescripcion  string  `json:"objetivo_descripcion"`
	Horarios             string  `json:"horarios"`    // "inicio - fin"，换行分隔
	DiasSemana           string  `json:"dias_semana"` // 换行分隔
	FechaEvaluacion      *string `json:"fecha_evaluacion"`
	EvaluacionRespuesta  *string `json:"evaluacion_respuesta"`
	EvaluacionComentario *string `json:"evaluacion_comentario"`
}

// ActivityDetail 活动详情（编辑表单使用，不翻译）
type ActivityDetail struct {
	IDActividad         int64             `json:"id_actividad"`
	IDMetaObjetivo      int64             `json:"id_meta_objetivo"`
	IDUsuario           int64             `json:"id_usuario"`
	FechaCreacion       string            `json:"fecha_creacion"`
	FechaTerminado      string            `json:"fecha_terminado"`
	IDCategoria         int64             `json:"id_categoria"`
	IDMeta              int64             `json:"id_meta"`
	MetaDescripcion     string            `json:"meta_descripcion"`
	IDObjetivo          int64             `json:"id_objetivo"`
	ObjetivoDescripcion string            `json:"objetivo_descripcion"`
	DiasSemana          []int             `json:"dias_semana"`
	Horarios            []HorarioResponse `json:"horarios"`
}

// WeekdayView 星期枚举项（已翻译）
type WeekdayView struct {
	IDSemana    int    `json:"id_semana"`
	Descripcion string `json:"descripcion"`
}
