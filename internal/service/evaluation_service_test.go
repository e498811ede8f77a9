package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"bienstar/backend/internal/dto"
	"bienstar/backend/pkg/translate"
)

// ── 测试辅助 ──

func setupTestEvaluationService(now time.Time) (*evaluationService, *memStore, *fakeTranslator) {
	store := newMemStore()
	tr := newFakeTranslator()
	logger := zap.NewNop()
	svc := NewEvaluationService(newTestRepo(store), newTextTranslator(tr, 4, logger), time.UTC, logger).(*evaluationService)
	svc.clock.now = func() time.Time { return now }
	return svc, store, tr
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ── Pending 测试 ──

func TestEvaluationService_PendingLifecycle(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-03-10 09:00"))
	id := store.addActivity(7, 1, "2026-03-01", "2026-03-10", []int{8})
	ctx := context.Background()

	items, err := svc.ListPending(ctx, 7, "es")
	if err != nil {
		t.Fatalf("ListPending 应成功: %v", err)
	}
	if len(items) != 1 || items[0].IDActividad != id {
		t.Fatalf("截止日为今天的活动应待评估，实际=%+v", items)
	}
	status, _ := svc.HasPending(ctx, 7)
	if !status.Pendientes {
		t.Error("期望 pendientes=true")
	}

	// 今天评估后不再待评估
	if _, err := svc.Record(ctx, &dto.CreateEvaluationRequest{
		IDActividad:     ptr(id),
		IDRespuesta:     ptr(1),
		FechaEvaluacion: "2026-03-10",
	}); err != nil {
		t.Fatalf("Record 应成功: %v", err)
	}
	items, _ = svc.ListPending(ctx, 7, "es")
	if len(items) != 0 {
		t.Errorf("评估后当天不应待评估，实际=%d", len(items))
	}
	status, _ = svc.HasPending(ctx, 7)
	if status.Pendientes {
		t.Error("期望 pendientes=false")
	}

	// 次日重新进入待评估
	svc.clock.now = func() time.Time { return day("2026-03-11 08:00") }
	items, _ = svc.ListPending(ctx, 7, "es")
	if len(items) != 1 {
		t.Errorf("次日应重新待评估，实际=%d", len(items))
	}
}

func TestEvaluationService_Pending_FutureDueDate(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-03-10 09:00"))
	store.addActivity(7, 1, "2026-03-01", "2026-03-11", []int{1})

	items, err := svc.ListPending(context.Background(), 7, "es")
	if err != nil {
		t.Fatalf("ListPending 应成功: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("截止日在未来的活动不应待评估，实际=%d", len(items))
	}
}

func TestEvaluationService_Pending_UsesConfiguredTimezone(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-03-11 03:00")) // UTC 次日凌晨
	loc := time.FixedZone("UTC-6", -6*3600)
	svc.clock.loc = loc
	store.addActivity(7, 1, "2026-03-01", "2026-03-11", []int{1})

	items, _ := svc.ListPending(context.Background(), 7, "es")
	if len(items) != 0 {
		t.Errorf("按 UTC-6 今天仍为 03-10，不应待评估，实际=%d", len(items))
	}
}

func TestEvaluationService_Pending_Translated(t *testing.T) {
	svc, store, tr := setupTestEvaluationService(day("2026-03-10 09:00"))
	store.addActivity(7, 1, "2026-03-01", "2026-03-05", []int{1})

	items, err := svc.ListPending(context.Background(), 7, "en")
	if err != nil {
		t.Fatalf("ListPending 应成功: %v", err)
	}
	if items[0].DescripcionMeta != "[en]Dormir mejor" {
		t.Errorf("期望翻译后的目标，实际=%s", items[0].DescripcionMeta)
	}
	if tr.callCount() != 2 {
		t.Errorf("期望 2 次翻译调用，实际=%d", tr.callCount())
	}
}

// ── Record 测试 ──

func TestEvaluationService_Record_Idempotent(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-03-10 09:00"))
	id := store.addActivity(7, 1, "2026-03-01", "2026-03-10", []int{1})
	ctx := context.Background()
	req := &dto.CreateEvaluationRequest{IDActividad: ptr(id), IDRespuesta: ptr(2), FechaEvaluacion: "2026-03-10"}

	first, err := svc.Record(ctx, req)
	if err != nil || !first.Creada {
		t.Fatalf("首次提交应创建: %+v, %v", first, err)
	}
	second, err := svc.Record(ctx, req)
	if err != nil {
		t.Fatalf("重复提交不应报错: %v", err)
	}
	if second.Creada {
		t.Error("重复提交应返回 creada=false")
	}
	if store.evaluationCount(id) != 1 {
		t.Errorf("同一天只应保存 1 条评估，实际=%d", store.evaluationCount(id))
	}
}

func TestEvaluationService_Record_BlankCommentStoredAsNull(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-03-10 09:00"))
	id := store.addActivity(7, 1, "2026-03-01", "2026-03-10", []int{1})

	_, err := svc.Record(context.Background(), &dto.CreateEvaluationRequest{
		IDActividad: ptr(id), IDRespuesta: ptr(1), Comentario: ptr("   "), FechaEvaluacion: "2026-03-10",
	})
	if err != nil {
		t.Fatalf("Record 应成功: %v", err)
	}
	if store.evaluations[0].Comentario != nil {
		t.Errorf("空白备注应存为 NULL，实际=%q", *store.evaluations[0].Comentario)
	}
}

func TestEvaluationService_Record_Errors(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-03-10 09:00"))
	id := store.addActivity(7, 1, "2026-03-01", "2026-03-10", []int{1})

	tests := []struct {
		name string
		req  *dto.CreateEvaluationRequest
		want error
	}{
		{"缺少活动", &dto.CreateEvaluationRequest{IDRespuesta: ptr(1), FechaEvaluacion: "2026-03-10"}, ErrMissingField},
		{"日期非法", &dto.CreateEvaluationRequest{IDActividad: ptr(id), IDRespuesta: ptr(1), FechaEvaluacion: "ayer"}, ErrInvalidDate},
		{"活动不存在", &dto.CreateEvaluationRequest{IDActividad: ptr(int64(4040)), IDRespuesta: ptr(1), FechaEvaluacion: "2026-03-10"}, ErrEvaluationRef},
		{"结果不存在", &dto.CreateEvaluationRequest{IDActividad: ptr(id), IDRespuesta: ptr(9), FechaEvaluacion: "2026-03-10"}, ErrEvaluationRef},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("期望 %v，实际: %v", tt.want, err)
			}
		})
	}
}

// ── History 测试 ──

func seedHistory(store *memStore, n int) int64 {
	id := store.addActivity(7, 1, "2026-01-01", "2026-01-31", []int{8})
	for i := 1; i <= n; i++ {
		store.addEvaluation(id, 1, fmt.Sprintf("2026-01-%02d", i), nil)
	}
	return id
}

func TestEvaluationService_History_Pagination(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-02-01 09:00"))
	seedHistory(store, 12)
	ctx := context.Background()

	page, err := svc.History(ctx, 7, translate.LanguageIDSpanish, 1, 5)
	if err != nil {
		t.Fatalf("History 应成功: %v", err)
	}
	if len(page.Items) != 5 || page.Total != 12 {
		t.Errorf("期望 5 条/共 12 条，实际=%d/%d", len(page.Items), page.Total)
	}
	if page.Items[0].FechaInicio != "2026-01-12" {
		t.Errorf("应按评估日期倒序，实际首条=%s", page.Items[0].FechaInicio)
	}
	if page.Items[0].FechaFin != "2026-01-13" {
		t.Errorf("fecha_fin 应为评估日期+1，实际=%s", page.Items[0].FechaFin)
	}

	last, _ := svc.History(ctx, 7, translate.LanguageIDSpanish, 3, 5)
	if len(last.Items) != 2 {
		t.Errorf("第 3 页应有 2 条，实际=%d", len(last.Items))
	}

	beyond, _ := svc.History(ctx, 7, translate.LanguageIDSpanish, 4, 5)
	if len(beyond.Items) != 0 || beyond.Total != 12 {
		t.Errorf("超出范围的页应为空但 total 不变，实际=%d/%d", len(beyond.Items), beyond.Total)
	}
}

func TestEvaluationService_History_Defaults(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-02-01 09:00"))
	seedHistory(store, 7)

	page, err := svc.History(context.Background(), 7, "", 0, 0)
	if err != nil {
		t.Fatalf("History 应成功: %v", err)
	}
	if page.Page != 1 || page.PageSize != 5 || len(page.Items) != 5 {
		t.Errorf("期望默认 page=1 size=5，实际=%d/%d/%d", page.Page, page.PageSize, len(page.Items))
	}

	capped, _ := svc.History(context.Background(), 7, "", 1, 1000)
	if capped.PageSize != maxPageSize {
		t.Errorf("pageSize 应被限制为 %d，实际=%d", maxPageSize, capped.PageSize)
	}
}

func TestEvaluationService_History_Empty(t *testing.T) {
	svc, _, _ := setupTestEvaluationService(day("2026-02-01 09:00"))

	page, err := svc.History(context.Background(), 7, "", 1, 5)
	if err != nil {
		t.Fatalf("History 应成功: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 0 {
		t.Errorf("期望空结果，实际=%+v", page)
	}
}

func TestEvaluationService_History_English(t *testing.T) {
	svc, store, _ := setupTestEvaluationService(day("2026-02-01 09:00"))
	seedHistory(store, 1)

	page, _ := svc.History(context.Background(), 7, translate.LanguageIDEnglish, 1, 5)
	if page.Items[0].DesObjetivo != "[en]Acostarse temprano" {
		t.Errorf("期望英文翻译，实际=%s", page.Items[0].DesObjetivo)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, 5},
		{-3, 10, 1, 10},
		{2, 101, 2, 100},
		{4, 7, 4, 7},
	}
	for _, tt := range tests {
		p, s := normalizePage(tt.page, tt.size)
		if p != tt.wantPage || s != tt.wantSize {
			t.Errorf("normalizePage(%d,%d) = %d,%d，期望 %d,%d", tt.page, tt.size, p, s, tt.wantPage, tt.wantSize)
		}
	}
}
