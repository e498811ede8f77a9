package model

// Evaluacion 活动评估记录，同一活动同一天至多一条，对应表 evaluacion
type Evaluacion struct {
	IDEvaluacion    int64   `gorm:"column:id_evaluacion;primaryKey;autoIncrement" json:"id_evaluacion"`
	IDActividad     int64   `gorm:"column:id_actividad;not null"                  json:"id_actividad"`
	IDRespuesta     int     `gorm:"column:id_respuesta;not null"                  json:"id_respuesta"`
	Comentario      *string `gorm:"column:comentario"                             json:"comentario"`
	FechaEvaluacion Date    `gorm:"column:fecha_evaluacion;type:date;not null"    json:"fecha_evaluacion"`
}

// TableName 指定表名
func (Evaluacion) TableName() string { return "evaluacion" }
