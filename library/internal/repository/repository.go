package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/pkg/auth"
)

type Repository interface {
	// catalog
	ReplaceBooks(ctx context.Context, books []model.Book) (int, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	SearchBooks(ctx context.Context, field model.SearchField, keyword string) ([]model.Book, error)
	PopularBooks(ctx context.Context, n int) ([]model.Book, error)
	RandomBooks(ctx context.Context, n int) ([]model.Book, error)

	// identity
	CreateAccount(ctx context.Context, acc model.Account) error
	GetAccount(ctx context.Context, role auth.Role, id string) (model.Account, error)
	ListStudents(ctx context.Context) ([]model.Student, error)

	// loans
	IssueLoan(ctx context.Context, studentID string, bookID int, day model.Date, strict bool) (model.IssueResponse, error)
	ReturnLoan(ctx context.Context, loanID int, day model.Date) error
	GetLoan(ctx context.Context, loanID int) (model.Loan, error)
	ListLoans(ctx context.Context, studentID string) ([]model.LoanView, error)
	ListReturns(ctx context.Context) ([]model.ReturnView, error)
	Availability(ctx context.Context) ([]model.BookAvailability, error)

	// stats
	LoansByDate(ctx context.Context) ([]model.DateCount, error)
	ReturnsByDate(ctx context.Context) ([]model.DateCount, error)
}

type repository struct {
	db       *sqlx.DB
	qb       sq.StatementBuilderType
	rowLocks bool
	log      *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	placeholder := sq.PlaceholderFormat(sq.Question)
	postgres := sqlx.BindType(db.DriverName()) == sqlx.DOLLAR
	if postgres {
		placeholder = sq.Dollar
	}
	return &repository{
		db:       db,
		qb:       sq.StatementBuilder.PlaceholderFormat(placeholder),
		rowLocks: postgres,
		log:      log.Named("repo"),
	}, nil
}

const (
	booksTableName    = `books`
	studentsTableName = `students`
	staffTableName    = `library_staff`
	loansTableName    = `book_loans`
)

// isUniqueViolation covers both supported drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit")
}
