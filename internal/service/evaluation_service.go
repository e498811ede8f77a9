package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"bienstar/backend/internal/dto"
	"bienstar/backend/internal/model"
	"bienstar/backend/internal/repository"
	"bienstar/backend/pkg/translate"
)

// 分页默认值与上限
const (
	defaultPage     = 1
	defaultPageSize = 5
	maxPageSize     = 100
)

// EvaluationService 评估业务接口
//
// 待评估判定：截止日期不晚于今天，且今天尚无该活动的评估。
// “今天”按 evaluation.timezone 计算，评估后当天不再待评估，次日重新进入待评估。
type EvaluationService interface {
	ListPending(ctx context.Context, userID int64, idioma string) ([]dto.PendingEvaluation, error)
	HasPending(ctx context.Context, userID int64) (*dto.PendingStatus, error)
	Record(ctx context.Context, req *dto.CreateEvaluationRequest) (*dto.CreateEvaluationResponse, error)
	History(ctx context.Context, userID int64, languageID string, page, pageSize int) (*dto.HistoryPage, error)
}

type evaluationService struct {
	repo       *repository.Repository
	translator *textTranslator
	clock      clock
	logger     *zap.Logger
}

// NewEvaluationService 创建 EvaluationService 实例
func NewEvaluationService(repo *repository.Repository, tt *textTranslator, loc *time.Location, logger *zap.Logger) EvaluationService {
	return &evaluationService{
		repo:       repo,
		translator: tt,
		clock:      newClock(loc),
		logger:     logger,
	}
}

// ────────────────────── Pending ──────────────────────

func (s *evaluationService) ListPending(ctx context.Context, userID int64, idioma string) ([]dto.PendingEvaluation, error) {
	today := s.clock.today().String()
	rows, err := s.repo.Evaluation.ListPending(ctx, userID, today)
	if err != nil {
		s.logger.Error("查询待评估活动失败", zap.Int64("id_usuario", userID), zap.Error(err))
		return nil, storeError(err)
	}

	items := make([]dto.PendingEvaluation, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.PendingEvaluation{
			IDActividad:         r.IDActividad,
			DescripcionMeta:     r.Meta,
			DescripcionObjetivo: r.Objetivo,
			FechaCreacion:       r.FechaCreacion.String(),
			FechaTerminado:      r.FechaTerminado.String(),
		})
	}

	b := s.translator.batch(translate.ResolveLanguage(idioma))
	for i := range items {
		b.Add(&items[i].DescripcionMeta)
		b.Add(&items[i].DescripcionObjetivo)
	}
	b.Run(ctx)

	return items, nil
}

func (s *evaluationService) HasPending(ctx context.Context, userID int64) (*dto.PendingStatus, error) {
	count, err := s.repo.Evaluation.CountPending(ctx, userID, s.clock.today().String())
	if err != nil {
		s.logger.Error("统计待评估活动失败", zap.Int64("id_usuario", userID), zap.Error(err))
		return nil, storeError(err)
	}
	return &dto.PendingStatus{Pendientes: count > 0}, nil
}

// ────────────────────── Record ──────────────────────

func (s *evaluationService) Record(ctx context.Context, req *dto.CreateEvaluationRequest) (*dto.CreateEvaluationResponse, error) {
	if req.IDActividad == nil || req.IDRespuesta == nil || *req.IDActividad <= 0 || *req.IDRespuesta <= 0 {
		return nil, ErrMissingField
	}
	fecha, err := parseRequiredDate(req.FechaEvaluacion)
	if err != nil {
		return nil, err
	}

	evaluation := &model.Evaluacion{
		IDActividad:     *req.IDActividad,
		IDRespuesta:     *req.IDRespuesta,
		Comentario:      optionalComment(req.Comentario),
		FechaEvaluacion: fecha,
	}

	created, err := s.repo.Evaluation.Insert(ctx, evaluation)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrEvaluationRef
		}
		s.logger.Error("保存评估失败", zap.Int64("id_actividad", evaluation.IDActividad), zap.Error(err))
		return nil, storeError(err)
	}
	if !created {
		s.logger.Info("当日评估已存在，忽略重复提交",
			zap.Int64("id_actividad", evaluation.IDActividad),
			zap.String("fecha", fecha.String()),
		)
	}

	return &dto.CreateEvaluationResponse{
		IDActividad:     evaluation.IDActividad,
		FechaEvaluacion: fecha.String(),
		Creada:          created,
	}, nil
}

// ────────────────────── History ──────────────────────

func (s *evaluationService) History(ctx context.Context, userID int64, languageID string, page, pageSize int) (*dto.HistoryPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	total, err := s.repo.Evaluation.CountHistory(ctx, userID)
	if err != nil {
		s.logger.Error("统计评估历史失败", zap.Int64("id_usuario", userID), zap.Error(err))
		return nil, storeError(err)
	}

	var rows []model.EvaluacionHistorial
	if int64(offset) < total {
		rows, err = s.repo.Evaluation.ListHistory(ctx, userID, pageSize, offset)
		if err != nil {
			s.logger.Error("查询评估历史失败", zap.Int64("id_usuario", userID), zap.Error(err))
			return nil, storeError(err)
		}
	}

	items := toHistoryItems(rows)
	translateHistory(ctx, s.translator, items, translate.ResolveLanguageID(languageID))

	return &dto.HistoryPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ── 内部辅助方法 ──

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func toHistoryItems(rows []model.EvaluacionHistorial) []dto.HistoryItem {
	items := make([]dto.HistoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.HistoryItem{
			IDEvaluacion:   r.IDEvaluacion,
			IDActividad:    r.IDActividad,
			DesMeta:        r.Meta,
			DesObjetivo:    r.Objetivo,
			FechaInicio:    r.FechaEvaluacion.String(),
			FechaFin:       r.FechaEvaluacion.AddDays(1).String(),
			FechaCreacion:  r.FechaCreacion.String(),
			FechaTerminado: r.FechaTerminado.String(),
			IDRespuesta:    r.IDRespuesta,
			Respuesta:      r.Respuesta,
			Comentario:     r.Comentario,
		})
	}
	return items
}

// translateHistory 翻译目标与具体目标描述
func translateHistory(ctx context.Context, tt *textTranslator, items []dto.HistoryItem, target language.Tag) {
	b := tt.batch(target)
	for i := range items {
		b.Add(&items[i].DesMeta)
		b.Add(&items[i].DesObjetivo)
	}
	b.Run(ctx)
}
