package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// slowTranslator 记录最大并发数
type slowTranslator struct {
	active  atomic.Int32
	maxSeen atomic.Int32
	mu      sync.Mutex
}

func (s *slowTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	n := s.active.Add(1)
	defer s.active.Add(-1)
	s.mu.Lock()
	if n > s.maxSeen.Load() {
		s.maxSeen.Store(n)
	}
	s.mu.Unlock()
	time.Sleep(5 * time.Millisecond)
	return text + "!", nil
}

func TestTranslationBatch_RespectsConcurrencyLimit(t *testing.T) {
	tr := &slowTranslator{}
	tt := newTextTranslator(tr, 2, zap.NewNop())

	texts := make([]string, 10)
	b := tt.batch(language.English)
	for i := range texts {
		texts[i] = "texto"
		b.Add(&texts[i])
	}
	b.Run(context.Background())

	for i, s := range texts {
		if s != "texto!" {
			t.Errorf("第 %d 项未翻译: %s", i, s)
		}
	}
	if got := tr.maxSeen.Load(); got > 2 {
		t.Errorf("并发数不应超过 2，实际=%d", got)
	}
}

func TestTranslationBatch_SpanishTargetSkipsCalls(t *testing.T) {
	tr := newFakeTranslator()
	tt := newTextTranslator(tr, 4, zap.NewNop())

	s := "Lunes"
	b := tt.batch(language.Spanish)
	b.Add(&s)
	b.Run(context.Background())

	if s != "Lunes" || tr.callCount() != 0 {
		t.Errorf("西班牙语目标不应调用翻译: %s, calls=%d", s, tr.callCount())
	}
}

func TestTranslationBatch_AddLines(t *testing.T) {
	tr := newFakeTranslator()
	tr.fail["Martes"] = true
	tt := newTextTranslator(tr, 4, zap.NewNop())

	s := "Lunes\nMartes\n\nJueves"
	empty := ""
	b := tt.batch(language.English)
	b.AddLines(&s)
	b.AddLines(&empty)
	b.Add(nil)
	b.Run(context.Background())

	want := "[en]Lunes\nMartes\n\n[en]Jueves"
	if s != want {
		t.Errorf("逐行翻译结果错误:\n期望=%q\n实际=%q", want, s)
	}
	if tr.callCount() != 3 {
		t.Errorf("空行不应翻译，期望 3 次调用，实际=%d", tr.callCount())
	}
}
