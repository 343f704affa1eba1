package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/library/migrations"
	"github.com/Astemirdum/library-engine/pkg/auth"
	"github.com/Astemirdum/library-engine/pkg/database"
)

func newTestRepo(t *testing.T) *repository {
	t.Helper()
	cfg := &database.DB{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.NewDB(context.Background(), cfg, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(db, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func day(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

var testBooks = []model.Book{
	{Title: "Harry Potter and the Half-Blood Prince", Authors: "J.K. Rowling/Mary GrandPré", AverageRating: 4.57, LanguageCode: "eng", RatingsCount: 2095690, Publisher: "Scholastic Inc."},
	{Title: "The Hitchhiker's Guide to the Galaxy", Authors: "Douglas Adams", AverageRating: 4.22, LanguageCode: "eng", RatingsCount: 4930, Publisher: "Random House"},
	{Title: "Perfect Book", Authors: "Nobody", AverageRating: 5, LanguageCode: "eng", RatingsCount: 1, Publisher: "Vanity Press"},
}

func seedBooks(t *testing.T, r *repository) []model.Book {
	t.Helper()
	n, err := r.ReplaceBooks(context.Background(), testBooks)
	require.NoError(t, err)
	require.Equal(t, len(testBooks), n)
	books, err := r.ListBooks(context.Background())
	require.NoError(t, err)
	return books
}

func TestRepository_Accounts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	alice := model.Account{ID: "S001", Name: "Alice", PasswordHash: "h1", Role: auth.RoleStudent}
	require.NoError(t, r.CreateAccount(ctx, alice))

	dup := model.Account{ID: "S001", Name: "Mallory", PasswordHash: "h2", Role: auth.RoleStudent}
	require.ErrorIs(t, r.CreateAccount(ctx, dup), errs.ErrDuplicateKey)

	got, err := r.GetAccount(ctx, auth.RoleStudent, "S001")
	require.NoError(t, err)
	require.Equal(t, alice, got)

	// staff ids live in their own namespace
	require.NoError(t, r.CreateAccount(ctx, model.Account{ID: "S001", Name: "Max", PasswordHash: "h3", Role: auth.RoleStaff}))
	staff, err := r.GetAccount(ctx, auth.RoleStaff, "S001")
	require.NoError(t, err)
	require.Equal(t, "Max", staff.Name)
	require.Equal(t, auth.RoleStaff, staff.Role)

	_, err = r.GetAccount(ctx, auth.RoleStaff, "E404")
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.Error(t, r.CreateAccount(ctx, model.Account{ID: "X"}))

	students, err := r.ListStudents(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Student{{StudentID: "S001", Name: "Alice"}}, students)
}

func TestRepository_Catalog(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	books := seedBooks(t, r)
	require.Len(t, books, 3)
	for i := 1; i < len(books); i++ {
		require.Less(t, books[i-1].ID, books[i].ID)
	}
	require.Equal(t, testBooks[1].Title, books[1].Title)

	b, err := r.GetBook(ctx, books[0].ID)
	require.NoError(t, err)
	require.Equal(t, books[0], b)
	_, err = r.GetBook(ctx, 100500)
	require.ErrorIs(t, err, errs.ErrNotFound)

	// a reload discards the previous rows
	_, err = r.ReplaceBooks(ctx, testBooks[:1])
	require.NoError(t, err)
	after, err := r.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	_, err = r.GetBook(ctx, books[1].ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_SearchBooks(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedBooks(t, r)

	tests := []struct {
		name    string
		field   model.SearchField
		keyword string
		want    []string
		wantErr error
	}{
		{name: "authors case-insensitive", field: model.SearchByAuthors, keyword: "rowling", want: []string{testBooks[0].Title}},
		{name: "publisher", field: model.SearchByPublisher, keyword: "HOUSE", want: []string{testBooks[1].Title}},
		{name: "rating substring", field: model.SearchByAverageRating, keyword: "4.2", want: []string{testBooks[1].Title}},
		{name: "no match", field: model.SearchByAuthors, keyword: "tolkien", want: []string{}},
		{name: "underscore is literal", field: model.SearchByAuthors, keyword: "_", want: []string{}},
		{name: "percent is literal", field: model.SearchByPublisher, keyword: "%", want: []string{}},
		{name: "dot is literal", field: model.SearchByAuthors, keyword: "j.k.", want: []string{testBooks[0].Title}},
		{name: "field not allowed", field: model.SearchField("title; drop table books"), keyword: "x", wantErr: errs.ErrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.SearchBooks(ctx, tt.field, tt.keyword)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			titles := make([]string, 0, len(got))
			for _, b := range got {
				titles = append(titles, b.Title)
			}
			require.Equal(t, tt.want, titles)
		})
	}
}

func TestRepository_Recommendations(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedBooks(t, r)

	popular, err := r.PopularBooks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	for _, b := range popular {
		require.Less(t, b.AverageRating, 5.0)
	}

	popular, err = r.PopularBooks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)

	random, err := r.RandomBooks(ctx, 2)
	require.NoError(t, err)
	require.Len(t, random, 2)
	require.NotEqual(t, random[0].ID, random[1].ID)

	random, err = r.RandomBooks(ctx, 20)
	require.NoError(t, err)
	require.Len(t, random, 3)
}

func TestRepository_IssueLoan(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	books := seedBooks(t, r)
	today := model.NewDate(time.Now())

	_, err := r.IssueLoan(ctx, "S001", 100500, today, false)
	require.ErrorIs(t, err, errs.ErrNotFound)
	loans, err := r.ListLoans(ctx, "")
	require.NoError(t, err)
	require.Empty(t, loans)

	resp, err := r.IssueLoan(ctx, "S001", books[0].ID, today, true)
	require.NoError(t, err)
	require.Equal(t, books[0].Title, resp.Title)
	require.Equal(t, books[0].ID, resp.BookID)

	loan, err := r.GetLoan(ctx, resp.LoanID)
	require.NoError(t, err)
	require.True(t, loan.Outstanding())
	require.Equal(t, today, loan.LoanDate)
	require.Equal(t, "S001", loan.StudentID)

	_, err = r.IssueLoan(ctx, "S002", books[0].ID, today, true)
	require.ErrorIs(t, err, errs.ErrConflict)

	// permissive mode keeps the original behaviour
	_, err = r.IssueLoan(ctx, "S002", books[0].ID, today, false)
	require.NoError(t, err)

	loans, err = r.ListLoans(ctx, "")
	require.NoError(t, err)
	require.Len(t, loans, 2)

	mine, err := r.ListLoans(ctx, "S002")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, books[0].Authors, mine[0].Authors)
	require.Nil(t, mine[0].ReturnDate)
	require.Empty(t, mine[0].StudentID)
	require.Equal(t, "S001", loans[0].StudentID)
	require.Equal(t, "S002", loans[1].StudentID)
}

func TestRepository_BookTitleQuery(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		want   string
	}{
		{name: "postgres locks the row", driver: database.DriverPostgres, want: "SELECT title FROM books WHERE id = $1 FOR UPDATE"},
		{name: "sqlite", driver: database.DriverSQLite, want: "SELECT title FROM books WHERE id = ?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRepository(sqlx.NewDb(nil, tt.driver), zap.NewNop())
			require.NoError(t, err)
			q, args, err := r.bookTitleQuery(7).ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.want, q)
			require.Equal(t, []interface{}{7}, args)
		})
	}
}

func TestRepository_ReturnLoan(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	books := seedBooks(t, r)
	require.NoError(t, r.CreateAccount(ctx, model.Account{ID: "S001", Name: "Alice", PasswordHash: "h", Role: auth.RoleStudent}))

	resp, err := r.IssueLoan(ctx, "S001", books[1].ID, day("2024-01-01"), true)
	require.NoError(t, err)

	require.NoError(t, r.ReturnLoan(ctx, resp.LoanID, day("2024-01-05")))
	loan, err := r.GetLoan(ctx, resp.LoanID)
	require.NoError(t, err)
	require.Equal(t, day("2024-01-01"), loan.LoanDate)
	require.NotNil(t, loan.ReturnDate)
	require.Equal(t, day("2024-01-05"), *loan.ReturnDate)

	// returning again overwrites the date, unknown loans are ignored
	require.NoError(t, r.ReturnLoan(ctx, resp.LoanID, day("2024-01-07")))
	require.NoError(t, r.ReturnLoan(ctx, 100500, day("2024-01-07")))
	loan, err = r.GetLoan(ctx, resp.LoanID)
	require.NoError(t, err)
	require.Equal(t, day("2024-01-07"), *loan.ReturnDate)

	returns, err := r.ListReturns(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.ReturnView{{
		LoanID:      resp.LoanID,
		StudentID:   "S001",
		StudentName: "Alice",
		BookID:      books[1].ID,
		Title:       books[1].Title,
		LoanDate:    day("2024-01-01"),
		ReturnDate:  day("2024-01-07"),
	}}, returns)
}

func TestRepository_Availability(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	books := seedBooks(t, r)

	// books[0]: no loans, books[1]: outstanding, books[2]: returned
	_, err := r.IssueLoan(ctx, "S001", books[1].ID, day("2024-01-01"), false)
	require.NoError(t, err)
	_, err = r.IssueLoan(ctx, "S002", books[1].ID, day("2024-01-01"), false)
	require.NoError(t, err)
	returned, err := r.IssueLoan(ctx, "S001", books[2].ID, day("2024-01-01"), false)
	require.NoError(t, err)
	require.NoError(t, r.ReturnLoan(ctx, returned.LoanID, day("2024-01-02")))

	got, err := r.Availability(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, model.StatusAvailable, got[0].Status)
	require.Equal(t, model.StatusLoanedOut, got[1].Status)
	require.Equal(t, model.StatusAvailable, got[2].Status)
	require.Equal(t, books[1].Title, got[1].Title)
}

func TestRepository_CountByDate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	loans, err := r.LoansByDate(ctx)
	require.NoError(t, err)
	require.Empty(t, loans)
	returns, err := r.ReturnsByDate(ctx)
	require.NoError(t, err)
	require.Empty(t, returns)

	books := seedBooks(t, r)
	for _, d := range []string{"2024-01-02", "2024-01-01", "2024-01-01"} {
		_, err := r.IssueLoan(ctx, "S001", books[0].ID, day(d), false)
		require.NoError(t, err)
	}
	require.NoError(t, r.ReturnLoan(ctx, 1, day("2024-01-03")))

	loans, err = r.LoansByDate(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.DateCount{
		{Date: day("2024-01-01"), Count: 2},
		{Date: day("2024-01-02"), Count: 1},
	}, loans)

	returns, err = r.ReturnsByDate(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.DateCount{{Date: day("2024-01-03"), Count: 1}}, returns)
}
