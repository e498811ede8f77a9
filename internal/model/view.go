package model

// 以下为聚合查询的读模型，不对应单表

// ActividadResumen 用户在某分类下的活动汇总行
type ActividadResumen struct {
	IDActividad     int64   `gorm:"column:id_actividad"`
	IDMetaObjetivo  int64   `gorm:"column:id_meta_objetivo"`
	IDUsuario       int64   `gorm:"column:id_usuario"`
	IDCategoria     int64   `gorm:"column:id_categoria"`
	Categoria       string  `gorm:"column:categoria"`
	FechaCreacion   Date    `gorm:"column:fecha_creacion"`
	FechaTerminado  Date    `gorm:"column:fecha_terminado"`
	Meta            string  `gorm:"column:meta"`
	Objetivo        string  `gorm:"column:objetivo"`
	Horarios        *string `gorm:"column:horarios"`    // "inicio - fin" 按 id_horario 升序，换行分隔
	DiasSemana      *string `gorm:"column:dias_semana"` // 星期描述按 id_semana 升序，换行分隔
	FechaEvaluacion *Date   `gorm:"column:fecha_evaluacion"`
	Respuesta       *string `gorm:"column:respuesta"`
	Comentario      *string `gorm:"column:comentario"`
}

// EvaluacionPendiente 今日待评估的活动
type EvaluacionPendiente struct {
	IDActividad    int64  `gorm:"column:id_actividad"`
	FechaCreacion  Date   `gorm:"column:fecha_creacion"`
	FechaTerminado Date   `gorm:"column:fecha_terminado"`
	Meta           string `gorm:"column:meta"`
	Objetivo       string `gorm:"column:objetivo"`
}

// EvaluacionHistorial 评估历史行
type EvaluacionHistorial struct {
	IDEvaluacion    int64   `gorm:"column:id_evaluacion"`
	IDActividad     int64   `gorm:"column:id_actividad"`
	FechaCreacion   Date    `gorm:"column:fecha_creacion"`
	FechaTerminado  Date    `gorm:"column:fecha_terminado"`
	Meta            string  `gorm:"column:meta"`
	Objetivo        string  `gorm:"column:objetivo"`
	IDRespuesta     int     `gorm:"column:id_respuesta"`
	Respuesta       string  `gorm:"column:respuesta"`
	Comentario      *string `gorm:"column:comentario"`
	FechaEvaluacion Date    `gorm:"column:fecha_evaluacion"`
}
