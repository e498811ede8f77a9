package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	pkgerrors "bienstar/backend/pkg/errors"
	"bienstar/backend/pkg/translate"
)

// sourceLanguage 目录数据以西班牙语维护
var sourceLanguage = language.Spanish

// textTranslator 在单个请求内并发翻译多个文本
// 单个调用失败时回退原文，不影响其他调用
type textTranslator struct {
	tr     translate.Translator
	limit  int
	logger *zap.Logger
}

func newTextTranslator(tr translate.Translator, limit int, logger *zap.Logger) *textTranslator {
	if limit <= 0 {
		limit = 1
	}
	return &textTranslator{tr: tr, limit: limit, logger: logger}
}

// batch 创建一次翻译批次
func (t *textTranslator) batch(target language.Tag) *translationBatch {
	return &translationBatch{t: t, target: target}
}

func (t *textTranslator) translate(ctx context.Context, text, target string) string {
	out, err := t.tr.Translate(ctx, text, target)
	if err != nil {
		t.logger.Warn("翻译失败，回退原文",
			zap.String("target", target),
			zap.Error(fmt.Errorf("%w: %w", pkgerrors.ErrTranslationDegraded, err)),
		)
		return text
	}
	return out
}

// translationBatch 收集待翻译字段，Run 时原地写回
type translationBatch struct {
	t      *textTranslator
	target language.Tag
	fields []*string
	joins  []lineGroup
}

type lineGroup struct {
	dst   *string
	lines []string
}

// Add 登记一个待翻译字段
func (b *translationBatch) Add(s *string) {
	if s == nil || *s == "" {
		return
	}
	b.fields = append(b.fields, s)
}

// AddLines 登记换行分隔的多行文本，逐行翻译后按原顺序重新拼接
func (b *translationBatch) AddLines(s *string) {
	if s == nil || *s == "" {
		return
	}
	g := lineGroup{dst: s, lines: strings.Split(*s, "\n")}
	b.joins = append(b.joins, g)
	for i := range g.lines {
		b.Add(&g.lines[i])
	}
}

// Run 并发翻译所有字段，并发上限为 translate.concurrency
// 目标语言与数据源语言相同时不发起调用
func (b *translationBatch) Run(ctx context.Context) {
	if b.target == sourceLanguage || len(b.fields) == 0 {
		return
	}

	code := translate.Code(b.target)
	var g errgroup.Group
	g.SetLimit(b.t.limit)
	for _, f := range b.fields {
		f := f
		g.Go(func() error {
			*f = b.t.translate(ctx, *f, code)
			return nil
		})
	}
	_ = g.Wait()

	for _, j := range b.joins {
		*j.dst = strings.Join(j.lines, "\n")
	}
}
