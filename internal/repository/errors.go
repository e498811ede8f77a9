package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrForeignKeyViolation 引用的父记录不存在（SQLSTATE 23503）
var ErrForeignKeyViolation = errors.New("外键约束冲突")

const pgForeignKeyViolation = "23503"

// translateError 将驱动错误转换为仓储层哨兵错误，其余原样返回
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return errors.Join(ErrForeignKeyViolation, err)
	}
	return err
}
