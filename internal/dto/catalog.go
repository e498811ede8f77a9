package dto

// ── 目标目录 DTO ──

// MetaView 目标（已翻译）
type MetaView struct {
	IDMeta      int64  `json:"id_meta"`
	Descripcion string `json:"descripcion"`
	Idioma      string `json:"idioma"`
}

// ObjetivoView 具体目标（已翻译）
type ObjetivoView struct {
	IDObjetivo  int64  `json:"id_objetivo"`
	Descripcion string `json:"descripcion"`
	Idioma      string `json:"idioma"`
}

// MetaObjetivoID 目标模板 ID
type MetaObjetivoID struct {
	IDMetaObjetivo int64 `json:"id_meta_objetivo"`
}
