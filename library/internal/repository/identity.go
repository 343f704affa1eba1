package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/pkg/auth"
)

// accountTable maps a role to its table and natural key column.
func accountTable(role auth.Role) (table, idColumn string, err error) {
	switch role {
	case auth.RoleStudent:
		return studentsTableName, "student_id", nil
	case auth.RoleStaff:
		return staffTableName, "employee_id", nil
	}
	return "", "", errors.Errorf("unknown role %q", role)
}

func (r *repository) CreateAccount(ctx context.Context, acc model.Account) error {
	table, idColumn, err := accountTable(acc.Role)
	if err != nil {
		return err
	}
	query, args, err := r.qb.Insert(table).
		Columns(idColumn, "name", "password_hash").
		Values(acc.ID, acc.Name, acc.PasswordHash).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrDuplicateKey
		}
		r.log.Error("CreateAccount", zap.String("q", query), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetAccount(ctx context.Context, role auth.Role, id string) (model.Account, error) {
	table, idColumn, err := accountTable(role)
	if err != nil {
		return model.Account{}, err
	}
	query, args, err := r.qb.Select(idColumn+" AS account_id", "name", "password_hash").
		From(table).
		Where(sq.Eq{idColumn: id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Account{}, err
	}

	var acc model.Account
	if err := r.db.GetContext(ctx, &acc, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, errs.ErrNotFound
		}
		return model.Account{}, err
	}
	acc.Role = role
	return acc, nil
}

func (r *repository) ListStudents(ctx context.Context) ([]model.Student, error) {
	query, args, err := r.qb.Select("student_id", "name").
		From(studentsTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	students := make([]model.Student, 0)
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, err
	}
	return students, nil
}
