package model

// Categoria 分类，对应表 categoria
type Categoria struct {
	IDCategoria int64  `gorm:"column:id_categoria;primaryKey" json:"id_categoria"`
	Descripcion string `gorm:"column:descripcion;not null"    json:"descripcion"`
}

func (Categoria) TableName() string { return "categoria" }

// Meta 目标，对应表 meta
type Meta struct {
	IDMeta      int64  `gorm:"column:id_meta;primaryKey"   json:"id_meta"`
	Descripcion string `gorm:"column:descripcion;not null" json:"descripcion"`
}

func (Meta) TableName() string { return "meta" }

// Objetivo 具体目标，对应表 objetivo
type Objetivo struct {
	IDObjetivo  int64  `gorm:"column:id_objetivo;primaryKey" json:"id_objetivo"`
	Descripcion string `gorm:"column:descripcion;not null"   json:"descripcion"`
}

func (Objetivo) TableName() string { return "objetivo" }

// MetaObjetivo 目标模板（分类 + 目标 + 具体目标），创建后不可变，对应表 meta_objetivo
type MetaObjetivo struct {
	IDMetaObjetivo int64 `gorm:"column:id_meta_objetivo;primaryKey" json:"id_meta_objetivo"`
	IDCategoria    int64 `gorm:"column:id_categoria;not null"       json:"id_categoria"`
	IDMeta         int64 `gorm:"column:id_meta;not null"            json:"id_meta"`
	IDObjetivo     int64 `gorm:"column:id_objetivo;not null"        json:"id_objetivo"`

	// 关联
	Meta     *Meta     `gorm:"foreignKey:IDMeta;references:IDMeta"         json:"meta,omitempty"`
	Objetivo *Objetivo `gorm:"foreignKey:IDObjetivo;references:IDObjetivo" json:"objetivo,omitempty"`
}

func (MetaObjetivo) TableName() string { return "meta_objetivo" }

// Semana 星期枚举，对应表 semana
type Semana struct {
	IDSemana    int    `gorm:"column:id_semana;primaryKey" json:"id_semana"`
	Descripcion string `gorm:"column:descripcion;not null" json:"descripcion"`
}

func (Semana) TableName() string { return "semana" }

// 星期编码：1..7 为周一..周日，8 为“每天”
const (
	WeekdayMin      = 1
	WeekdayMax      = 8
	WeekdayEveryDay = 8
)

// IsValidWeekday 是否为合法星期编码
func IsValidWeekday(id int) bool {
	return id >= WeekdayMin && id <= WeekdayMax
}

// Respuesta 评估结果枚举，对应表 respuesta
type Respuesta struct {
	IDRespuesta int    `gorm:"column:id_respuesta;primaryKey" json:"id_respuesta"`
	Descripcion string `gorm:"column:descripcion;not null"    json:"descripcion"`
}

func (Respuesta) TableName() string { return "respuesta" }
