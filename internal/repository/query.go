package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// builder 使用 ? 占位符，由 GORM 在执行时转换为 $n
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// 时间段聚合：按 id_horario 升序拼接 "inicio - fin"，换行分隔
const horariosAggregate = `(SELECT STRING_AGG(h.hora_inicio::text || ' - ' || h.hora_fin::text, E'\n' ORDER BY h.id_horario)
	FROM horario h WHERE h.id_actividad = a.id_actividad) AS horarios`

// 星期聚合：按 id_semana 升序拼接描述，主键保证不重复
const diasSemanaAggregate = `(SELECT STRING_AGG(s.descripcion, E'\n' ORDER BY s.id_semana)
	FROM actividad_semana acs JOIN semana s ON s.id_semana = acs.id_semana
	WHERE acs.id_actividad = a.id_actividad) AS dias_semana`

// 最近一次评估：取单行，保证日期、结果、备注来自同一条记录
const latestEvaluationJoin = `LATERAL (SELECT e.fecha_evaluacion, r.descripcion AS respuesta, e.comentario
	FROM evaluacion e JOIN respuesta r ON r.id_respuesta = e.id_respuesta
	WHERE e.id_actividad = a.id_actividad
	ORDER BY e.fecha_evaluacion DESC, e.id_evaluacion DESC
	LIMIT 1) ev ON TRUE`

// activitySummaryQuery 用户在某分类下的活动汇总
func activitySummaryQuery(userID, categoryID int64) sq.SelectBuilder {
	return builder.
		Select(
			"a.id_actividad",
			"a.id_meta_objetivo",
			"a.id_usuario",
			"mo.id_categoria",
			"c.descripcion AS categoria",
			"a.fecha_creacion",
			"a.fecha_terminado",
			"m.descripcion AS meta",
			"o.descripcion AS objetivo",
			horariosAggregate,
			diasSemanaAggregate,
			"ev.fecha_evaluacion",
			"ev.respuesta",
			"ev.comentario",
		).
		From("actividad a").
		Join("meta_objetivo mo ON mo.id_meta_objetivo = a.id_meta_objetivo").
		Join("categoria c ON c.id_categoria = mo.id_categoria").
		Join("meta m ON m.id_meta = mo.id_meta").
		Join("objetivo o ON o.id_objetivo = mo.id_objetivo").
		LeftJoin(latestEvaluationJoin).
		Where(sq.Eq{"a.id_usuario": userID, "mo.id_categoria": categoryID}).
		OrderBy("a.fecha_creacion DESC", "a.id_actividad DESC")
}

// pendingFilter 待评估判定：截止日期不晚于今天，且今天尚无评估
func pendingFilter(b sq.SelectBuilder, userID int64, today string) sq.SelectBuilder {
	return b.
		Where(sq.Eq{"a.id_usuario": userID}).
		Where(sq.LtOrEq{"a.fecha_terminado": today}).
		Where(sq.Expr(
			"NOT EXISTS (SELECT 1 FROM evaluacion e WHERE e.id_actividad = a.id_actividad AND e.fecha_evaluacion = ?)",
			today,
		))
}

// pendingQuery 今日待评估的活动列表
func pendingQuery(userID int64, today string) sq.SelectBuilder {
	b := builder.
		Select(
			"a.id_actividad",
			"a.fecha_creacion",
			"a.fecha_terminado",
			"m.descripcion AS meta",
			"o.descripcion AS objetivo",
		).
		From("actividad a").
		Join("meta_objetivo mo ON mo.id_meta_objetivo = a.id_meta_objetivo").
		Join("meta m ON m.id_meta = mo.id_meta").
		Join("objetivo o ON o.id_objetivo = mo.id_objetivo")
	return pendingFilter(b, userID, today).OrderBy("a.fecha_terminado ASC", "a.id_actividad ASC")
}

// pendingCountQuery 待评估数量
func pendingCountQuery(userID int64, today string) sq.SelectBuilder {
	return pendingFilter(builder.Select("COUNT(*)").From("actividad a"), userID, today)
}

// historyQuery 评估历史；limit 为 0 时不分页
func historyQuery(userID int64, limit, offset uint64) sq.SelectBuilder {
	b := builder.
		Select(
			"e.id_evaluacion",
			"e.id_actividad",
			"a.fecha_creacion",
			"a.fecha_terminado",
			"m.descripcion AS meta",
			"o.descripcion AS objetivo",
			"e.id_respuesta",
			"r.descripcion AS respuesta",
			"e.comentario",
			"e.fecha_evaluacion",
		).
		From("evaluacion e").
		Join("actividad a ON a.id_actividad = e.id_actividad").
		Join("meta_objetivo mo ON mo.id_meta_objetivo = a.id_meta_objetivo").
		Join("meta m ON m.id_meta = mo.id_meta").
		Join("objetivo o ON o.id_objetivo = mo.id_objetivo").
		Join("respuesta r ON r.id_respuesta = e.id_respuesta").
		Where(sq.Eq{"a.id_usuario": userID}).
		OrderBy("e.fecha_evaluacion DESC", "e.id_evaluacion DESC")
	if limit > 0 {
		b = b.Limit(limit).Offset(offset)
	}
	return b
}

// historyCountQuery 评估历史总数
func historyCountQuery(userID int64) sq.SelectBuilder {
	return builder.
		Select("COUNT(*)").
		From("evaluacion e").
		Join("actividad a ON a.id_actividad = e.id_actividad").
		Where(sq.Eq{"a.id_usuario": userID})
}

// scanRaw 执行 squirrel 构建的查询并扫描结果
func scanRaw(ctx context.Context, db *gorm.DB, q sq.Sqlizer, dest interface{}) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("构建查询失败: %w", err)
	}
	return db.WithContext(ctx).Raw(query, args...).Scan(dest).Error
}
