package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"bienstar/backend/internal/model"
	"bienstar/backend/internal/repository"
)

// ── 内存存储：所有 mock repo 共享同一份数据 ──

type memStore struct {
	mu          sync.Mutex
	nextID      int64
	activities  map[int64]*model.Actividad
	horarios    map[int64]*model.Horario
	weekdays    map[int64][]int
	evaluations []model.Evaluacion
	categorias  map[int64]string
	metas       map[int64]string
	objetivos   map[int64]string
	templates   map[int64]*model.MetaObjetivo
	semanas     []model.Semana
	respuestas  map[int]string

	// failWith 非空时所有读写返回该错误
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		nextID:     100,
		activities: make(map[int64]*model.Actividad),
		horarios:   make(map[int64]*model.Horario),
		weekdays:   make(map[int64][]int),
		categorias: map[int64]string{1: "Salud"},
		metas:      map[int64]string{10: "Dormir mejor", 11: "Hacer ejercicio"},
		objetivos:  map[int64]string{20: "Acostarse temprano", 21: "Correr 5 km"},
		templates: map[int64]*model.MetaObjetivo{
			1: {IDMetaObjetivo: 1, IDCategoria: 1, IDMeta: 10, IDObjetivo: 20},
			2: {IDMetaObjetivo: 2, IDCategoria: 1, IDMeta: 11, IDObjetivo: 21},
		},
		semanas: []model.Semana{
			{IDSemana: 1, Descripcion: "Lunes"},
			{IDSemana: 2, Descripcion: "Martes"},
			{IDSemana: 3, Descripcion: "Miércoles"},
			{IDSemana: 4, Descripcion: "Jueves"},
			{IDSemana: 5, Descripcion: "Viernes"},
			{IDSemana: 6, Descripcion: "Sábado"},
			{IDSemana: 7, Descripcion: "Domingo"},
			{IDSemana: 8, Descripcion: "Todos los días"},
		},
		respuestas: map[int]string{1: "Completado", 2: "No completado", 3: "Parcialmente completado"},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) semana(id int) string {
	for _, d := range s.semanas {
		if d.IDSemana == id {
			return d.Descripcion
		}
	}
	return ""
}

// addActivity 直接写入一条活动，供测试准备数据
func (s *memStore) addActivity(userID, templateID int64, created, due string, weekdays []int, windows ...[2]string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, _ := model.ParseDate(created)
	d, _ := model.ParseDate(due)
	id := s.id()
	s.activities[id] = &model.Actividad{IDActividad: id, IDMetaObjetivo: templateID, IDUsuario: userID, FechaCreacion: c, FechaTerminado: d}
	s.weekdays[id] = append([]int(nil), weekdays...)
	for _, w := range windows {
		hid := s.id()
		s.horarios[hid] = &model.Horario{IDHorario: hid, IDActividad: id, HoraInicio: w[0], HoraFin: w[1]}
	}
	return id
}

func (s *memStore) addEvaluation(activityID int64, respuesta int, fecha string, comentario *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, _ := model.ParseDate(fecha)
	s.evaluations = append(s.evaluations, model.Evaluacion{
		IDEvaluacion: s.id(), IDActividad: activityID, IDRespuesta: respuesta, Comentario: comentario, FechaEvaluacion: f,
	})
}

func (s *memStore) horariosOf(activityID int64) []model.Horario {
	var hs []model.Horario
	for _, h := range s.horarios {
		if h.IDActividad == activityID {
			hs = append(hs, *h)
		}
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i].IDHorario < hs[j].IDHorario })
	return hs
}

func (s *memStore) evaluationCount(activityID int64) int {
	n := 0
	for _, e := range s.evaluations {
		if e.IDActividad == activityID {
			n++
		}
	}
	return n
}

// newTestRepo 组装未绑定数据库的 Repository 聚合
func newTestRepo(s *memStore) *repository.Repository {
	return &repository.Repository{
		Activity:   &mockActivityRepo{s: s},
		Horario:    &mockHorarioRepo{s: s},
		Weekday:    &mockWeekdayRepo{s: s},
		Evaluation: &mockEvaluationRepo{s: s},
		Catalog:    &mockCatalogRepo{s: s},
	}
}

// ── Mock ActivityRepository ──

type mockActivityRepo struct{ s *memStore }

func (m *mockActivityRepo) Create(_ context.Context, a *model.Actividad) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	if _, ok := m.s.templates[a.IDMetaObjetivo]; !ok {
		return repository.ErrForeignKeyViolation
	}
	a.IDActividad = m.s.id()
	cp := *a
	m.s.activities[a.IDActividad] = &cp
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id int64) (*model.Actividad, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	a, ok := m.s.activities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	if mo, ok := m.s.templates[a.IDMetaObjetivo]; ok {
		t := *mo
		t.Meta = &model.Meta{IDMeta: mo.IDMeta, Descripcion: m.s.metas[mo.IDMeta]}
		t.Objetivo = &model.Objetivo{IDObjetivo: mo.IDObjetivo, Descripcion: m.s.objetivos[mo.IDObjetivo]}
		cp.MetaObjetivo = &t
	}
	cp.Horarios = m.s.horariosOf(id)
	ids := append([]int(nil), m.s.weekdays[id]...)
	sort.Ints(ids)
	for _, wd := range ids {
		cp.Semanas = append(cp.Semanas, model.ActividadSemana{IDActividad: id, IDSemana: wd})
	}
	return &cp, nil
}

func (m *mockActivityRepo) Exists(_ context.Context, id int64) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return false, m.s.failWith
	}
	_, ok := m.s.activities[id]
	return ok, nil
}

func (m *mockActivityRepo) Update(_ context.Context, id, metaObjetivoID int64, fechaTerminado model.Date) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	a, ok := m.s.activities[id]
	if !ok {
		return 0, nil
	}
	if _, ok := m.s.templates[metaObjetivoID]; !ok {
		return 0, repository.ErrForeignKeyViolation
	}
	a.IDMetaObjetivo = metaObjetivoID
	a.FechaTerminado = fechaTerminado
	return 1, nil
}

func (m *mockActivityRepo) Delete(_ context.Context, id int64) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	if _, ok := m.s.activities[id]; !ok {
		return 0, nil
	}
	delete(m.s.activities, id)
	return 1, nil
}

func (m *mockActivityRepo) ListSummaries(_ context.Context, userID, categoryID int64) ([]model.ActividadResumen, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}

	var rows []model.ActividadResumen
	for _, a := range m.s.activities {
		mo := m.s.templates[a.IDMetaObjetivo]
		if a.IDUsuario != userID || mo == nil || mo.IDCategoria != categoryID {
			continue
		}
		r := model.ActividadResumen{
			IDActividad:    a.IDActividad,
			IDMetaObjetivo: a.IDMetaObjetivo,
			IDUsuario:      a.IDUsuario,
			IDCategoria:    mo.IDCategoria,
			Categoria:      m.s.categorias[mo.IDCategoria],
			FechaCreacion:  a.FechaCreacion,
			FechaTerminado: a.FechaTerminado,
			Meta:           m.s.metas[mo.IDMeta],
			Objetivo:       m.s.objetivos[mo.IDObjetivo],
		}

		if hs := m.s.horariosOf(a.IDActividad); len(hs) > 0 {
			parts := make([]string, 0, len(hs))
			for _, h := range hs {
				parts = append(parts, h.HoraInicio+" - "+h.HoraFin)
			}
			joined := strings.Join(parts, "\n")
			r.Horarios = &joined
		}

		if ids := append([]int(nil), m.s.weekdays[a.IDActividad]...); len(ids) > 0 {
			sort.Ints(ids)
			parts := make([]string, 0, len(ids))
			for _, id := range ids {
				parts = append(parts, m.s.semana(id))
			}
			joined := strings.Join(parts, "\n")
			r.DiasSemana = &joined
		}

		var latest *model.Evaluacion
		for i := range m.s.evaluations {
			e := &m.s.evaluations[i]
			if e.IDActividad != a.IDActividad {
				continue
			}
			if latest == nil || e.FechaEvaluacion.After(latest.FechaEvaluacion.Time) ||
				(e.FechaEvaluacion.Equal(latest.FechaEvaluacion.Time) && e.IDEvaluacion > latest.IDEvaluacion) {
				latest = e
			}
		}
		if latest != nil {
			f := latest.FechaEvaluacion
			resp := m.s.respuestas[latest.IDRespuesta]
			r.FechaEvaluacion = &f
			r.Respuesta = &resp
			r.Comentario = latest.Comentario
		}
		rows = append(rows, r)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].FechaCreacion.Equal(rows[j].FechaCreacion.Time) {
			return rows[i].FechaCreacion.After(rows[j].FechaCreacion.Time)
		}
		return rows[i].IDActividad > rows[j].IDActividad
	})
	return rows, nil
}

// ── Mock HorarioRepository ──

type mockHorarioRepo struct{ s *memStore }

func (m *mockHorarioRepo) Create(_ context.Context, h *model.Horario) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	if _, ok := m.s.activities[h.IDActividad]; !ok {
		return repository.ErrForeignKeyViolation
	}
	h.IDHorario = m.s.id()
	cp := *h
	m.s.horarios[h.IDHorario] = &cp
	return nil
}

func (m *mockHorarioRepo) CreateBatch(ctx context.Context, hs []model.Horario) error {
	for i := range hs {
		if err := m.Create(ctx, &hs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockHorarioRepo) GetByID(_ context.Context, id int64) (*model.Horario, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	h, ok := m.s.horarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *mockHorarioRepo) ListByActivity(_ context.Context, activityID int64) ([]model.Horario, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.horariosOf(activityID), nil
}

func (m *mockHorarioRepo) Update(_ context.Context, id int64, inicio, fin string) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	h, ok := m.s.horarios[id]
	if !ok {
		return 0, nil
	}
	h.HoraInicio, h.HoraFin = inicio, fin
	return 1, nil
}

func (m *mockHorarioRepo) Delete(_ context.Context, id int64) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	if _, ok := m.s.horarios[id]; !ok {
		return 0, nil
	}
	delete(m.s.horarios, id)
	return 1, nil
}

func (m *mockHorarioRepo) DeleteByActivity(_ context.Context, activityID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	for id, h := range m.s.horarios {
		if h.IDActividad == activityID {
			delete(m.s.horarios, id)
		}
	}
	return nil
}

// ── Mock WeekdayRepository ──

type mockWeekdayRepo struct{ s *memStore }

func (m *mockWeekdayRepo) ListAll(_ context.Context) ([]model.Semana, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	return append([]model.Semana(nil), m.s.semanas...), nil
}

func (m *mockWeekdayRepo) ListByActivity(_ context.Context, activityID int64) ([]int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	ids := append([]int(nil), m.s.weekdays[activityID]...)
	sort.Ints(ids)
	return ids, nil
}

func (m *mockWeekdayRepo) ReplaceForActivity(_ context.Context, activityID int64, ids []int) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	seen := make(map[int]bool)
	for _, id := range ids {
		if m.s.semana(id) == "" {
			return repository.ErrForeignKeyViolation
		}
		if seen[id] {
			return fmt.Errorf("duplicate key (id_actividad, id_semana)=(%d, %d)", activityID, id)
		}
		seen[id] = true
	}
	m.s.weekdays[activityID] = append([]int(nil), ids...)
	return nil
}

func (m *mockWeekdayRepo) DeleteByActivity(_ context.Context, activityID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	delete(m.s.weekdays, activityID)
	return nil
}

// ── Mock EvaluationRepository ──

type mockEvaluationRepo struct{ s *memStore }

func (m *mockEvaluationRepo) Insert(_ context.Context, e *model.Evaluacion) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return false, m.s.failWith
	}
	if _, ok := m.s.activities[e.IDActividad]; !ok {
		return false, repository.ErrForeignKeyViolation
	}
	if _, ok := m.s.respuestas[e.IDRespuesta]; !ok {
		return false, repository.ErrForeignKeyViolation
	}
	for _, existing := range m.s.evaluations {
		if existing.IDActividad == e.IDActividad && existing.FechaEvaluacion.Equal(e.FechaEvaluacion.Time) {
			return false, nil
		}
	}
	e.IDEvaluacion = m.s.id()
	m.s.evaluations = append(m.s.evaluations, *e)
	return true, nil
}

func (m *mockEvaluationRepo) DeleteByActivity(_ context.Context, activityID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	kept := m.s.evaluations[:0]
	for _, e := range m.s.evaluations {
		if e.IDActividad != activityID {
			kept = append(kept, e)
		}
	}
	m.s.evaluations = kept
	return nil
}

func (m *mockEvaluationRepo) pending(userID int64, today string) []model.EvaluacionPendiente {
	var rows []model.EvaluacionPendiente
	for _, a := range m.s.activities {
		if a.IDUsuario != userID || a.FechaTerminado.String() > today {
			continue
		}
		done := false
		for _, e := range m.s.evaluations {
			if e.IDActividad == a.IDActividad && e.FechaEvaluacion.String() == today {
				done = true
				break
			}
		}
		if done {
			continue
		}
		mo := m.s.templates[a.IDMetaObjetivo]
		rows = append(rows, model.EvaluacionPendiente{
			IDActividad:    a.IDActividad,
			FechaCreacion:  a.FechaCreacion,
			FechaTerminado: a.FechaTerminado,
			Meta:           m.s.metas[mo.IDMeta],
			Objetivo:       m.s.objetivos[mo.IDObjetivo],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].IDActividad < rows[j].IDActividad })
	return rows
}

func (m *mockEvaluationRepo) ListPending(_ context.Context, userID int64, today string) ([]model.EvaluacionPendiente, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	return m.pending(userID, today), nil
}

func (m *mockEvaluationRepo) CountPending(_ context.Context, userID int64, today string) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	return int64(len(m.pending(userID, today))), nil
}

func (m *mockEvaluationRepo) history(userID int64) []model.EvaluacionHistorial {
	var rows []model.EvaluacionHistorial
	for _, e := range m.s.evaluations {
		a, ok := m.s.activities[e.IDActividad]
		if !ok || a.IDUsuario != userID {
			continue
		}
		mo := m.s.templates[a.IDMetaObjetivo]
		rows = append(rows, model.EvaluacionHistorial{
			IDEvaluacion:    e.IDEvaluacion,
			IDActividad:     e.IDActividad,
			FechaCreacion:   a.FechaCreacion,
			FechaTerminado:  a.FechaTerminado,
			Meta:            m.s.metas[mo.IDMeta],
			Objetivo:        m.s.objetivos[mo.IDObjetivo],
			IDRespuesta:     e.IDRespuesta,
			Respuesta:       m.s.respuestas[e.IDRespuesta],
			Comentario:      e.Comentario,
			FechaEvaluacion: e.FechaEvaluacion,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].FechaEvaluacion.Equal(rows[j].FechaEvaluacion.Time) {
			return rows[i].FechaEvaluacion.After(rows[j].FechaEvaluacion.Time)
		}
		return rows[i].IDEvaluacion > rows[j].IDEvaluacion
	})
	return rows
}

func (m *mockEvaluationRepo) ListHistory(_ context.Context, userID int64, limit, offset int) ([]model.EvaluacionHistorial, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	rows := m.history(userID)
	if limit <= 0 {
		return rows, nil
	}
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (m *mockEvaluationRepo) CountHistory(_ context.Context, userID int64) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	return int64(len(m.history(userID))), nil
}

// ── Mock CatalogRepository ──

type mockCatalogRepo struct{ s *memStore }

func (m *mockCatalogRepo) ListMetasByCategory(_ context.Context, categoryID int64) ([]model.Meta, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	seen := make(map[int64]bool)
	var metas []model.Meta
	for _, mo := range m.s.templates {
		if mo.IDCategoria == categoryID && !seen[mo.IDMeta] {
			seen[mo.IDMeta] = true
			metas = append(metas, model.Meta{IDMeta: mo.IDMeta, Descripcion: m.s.metas[mo.IDMeta]})
		}
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].IDMeta < metas[j].IDMeta })
	return metas, nil
}

func (m *mockCatalogRepo) ListObjetivosByMeta(_ context.Context, metaID int64) ([]model.Objetivo, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	seen := make(map[int64]bool)
	var objetivos []model.Objetivo
	for _, mo := range m.s.templates {
		if mo.IDMeta == metaID && !seen[mo.IDObjetivo] {
			seen[mo.IDObjetivo] = true
			objetivos = append(objetivos, model.Objetivo{IDObjetivo: mo.IDObjetivo, Descripcion: m.s.objetivos[mo.IDObjetivo]})
		}
	}
	sort.Slice(objetivos, func(i, j int) bool { return objetivos[i].IDObjetivo < objetivos[j].IDObjetivo })
	return objetivos, nil
}

func (m *mockCatalogRepo) template(activityID int64) (*model.MetaObjetivo, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	a, ok := m.s.activities[activityID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	mo, ok := m.s.templates[a.IDMetaObjetivo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return mo, nil
}

func (m *mockCatalogRepo) GetMetaByActivity(_ context.Context, activityID int64) (*model.Meta, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	mo, err := m.template(activityID)
	if err != nil {
		return nil, err
	}
	return &model.Meta{IDMeta: mo.IDMeta, Descripcion: m.s.metas[mo.IDMeta]}, nil
}

func (m *mockCatalogRepo) GetObjetivoByActivity(_ context.Context, activityID int64) (*model.Objetivo, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	mo, err := m.template(activityID)
	if err != nil {
		return nil, err
	}
	return &model.Objetivo{IDObjetivo: mo.IDObjetivo, Descripcion: m.s.objetivos[mo.IDObjetivo]}, nil
}

func (m *mockCatalogRepo) FindMetaObjetivo(_ context.Context, metaID, objetivoID int64) (*model.MetaObjetivo, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	for _, mo := range m.s.templates {
		if mo.IDMeta == metaID && mo.IDObjetivo == objetivoID {
			cp := *mo
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Fake Translator ──

type fakeTranslator struct {
	mu    sync.Mutex
	calls int
	fail  map[string]bool
}

func newFakeTranslator() *fakeTranslator {
	return &fakeTranslator{fail: make(map[string]bool)}
}

func (f *fakeTranslator) Translate(_ context.Context, text, target string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail[text] {
		return "", errors.New("translate: 非预期状态码 503")
	}
	return "[" + target + "]" + text, nil
}

func (f *fakeTranslator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
