package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
)

// IssueLoan writes a new outstanding loan dated day and returns the book title.
// With strict set a book that already has an outstanding loan is rejected.
func (r *repository) IssueLoan(ctx context.Context, studentID string, bookID int, day model.Date, strict bool) (model.IssueResponse, error) {
	resp := model.IssueResponse{BookID: bookID}
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := r.bookTitleQuery(bookID).ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &resp.Title, q, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}

		if strict {
			q, args, err = r.qb.Select("COUNT(*)").
				From(loansTableName).
				Where(sq.Eq{"book_id": bookID, "return_date": nil}).
				ToSql()
			if err != nil {
				return err
			}
			var outstanding int
			if err := tx.GetContext(ctx, &outstanding, q, args...); err != nil {
				return err
			}
			if outstanding > 0 {
				return errs.ErrConflict
			}
		}

		q, args, err = r.qb.Insert(loansTableName).
			Columns("student_id", "book_id", "loan_date", "return_date").
			Values(studentID, bookID, day.String(), nil).
			Suffix("RETURNING loan_id").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &resp.LoanID, q, args...); err != nil {
			r.log.Error("IssueLoan", zap.String("q", q), zap.Any("args", args), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return model.IssueResponse{}, err
	}
	return resp, nil
}

// bookTitleQuery locks the book row on postgres so that concurrent strict
// issues of the same book serialize on it. sqlite transactions already
// run one writer at a time.
func (r *repository) bookTitleQuery(bookID int) sq.SelectBuilder {
	q := r.qb.Select("title").
		From(booksTableName).
		Where(sq.Eq{"id": bookID})
	if r.rowLocks {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

// ReturnLoan stamps return_date with day. Unknown and already returned loans
// are not an error, a second return only moves the date.
func (r *repository) ReturnLoan(ctx context.Context, loanID int, day model.Date) error {
	q, args, err := r.qb.Update(loansTableName).
		Set("return_date", day.String()).
		Where(sq.Eq{"loan_id": loanID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.log.Debug("ReturnLoan: no such loan", zap.Int("loan_id", loanID))
	}
	return nil
}

func (r *repository) GetLoan(ctx context.Context, loanID int) (model.Loan, error) {
	q, args, err := r.qb.Select("loan_id", "student_id", "book_id", "loan_date", "return_date").
		From(loansTableName).
		Where(sq.Eq{"loan_id": loanID}).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

// ListLoans lists the loans of studentID, or every loan with its student when
// studentID is empty.
func (r *repository) ListLoans(ctx context.Context, studentID string) ([]model.LoanView, error) {
	columns := []string{"bl.loan_id", "b.title", "b.authors", "bl.loan_date", "bl.return_date"}
	if studentID == "" {
		columns = append(columns, "bl.student_id")
	}
	q := r.qb.Select(columns...).
		From(loansTableName + " bl").
		Join(fmt.Sprintf("%s b ON bl.book_id = b.id", booksTableName)).
		OrderBy("bl.loan_id")
	if studentID != "" {
		q = q.Where(sq.Eq{"bl.student_id": studentID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	loans := make([]model.LoanView, 0)
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) ListReturns(ctx context.Context) ([]model.ReturnView, error) {
	query, args, err := r.qb.Select("bl.loan_id", "bl.student_id", "s.name AS student_name", "bl.book_id", "b.title", "bl.loan_date", "bl.return_date").
		From(loansTableName + " bl").
		Join(fmt.Sprintf("%s s ON bl.student_id = s.student_id", studentsTableName)).
		Join(fmt.Sprintf("%s b ON bl.book_id = b.id", booksTableName)).
		Where(sq.NotEq{"bl.return_date": nil}).
		OrderBy("bl.loan_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	returns := make([]model.ReturnView, 0)
	if err := r.db.SelectContext(ctx, &returns, query, args...); err != nil {
		return nil, err
	}
	return returns, nil
}

// Availability derives the status of every book from its outstanding loans.
func (r *repository) Availability(ctx context.Context) ([]model.BookAvailability, error) {
	const q = `
select b.id, b.title, b.authors,
       case when exists(select 1 from book_loans bl where bl.book_id = b.id and bl.return_date is null)
           then 'Loaned Out' else 'Available' end as status
from books b
order by b.id`

	items := make([]model.BookAvailability, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}
