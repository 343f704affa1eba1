package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
)

var bookColumns = []string{"id", "title", "authors", "average_rating", "language_code", "ratings_count", "publisher"}

// insertChunk keeps the bound parameter count under the sqlite limit.
const insertChunk = 500

// ReplaceBooks swaps the whole catalog in one transaction.
func (r *repository) ReplaceBooks(ctx context.Context, books []model.Book) (int, error) {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+booksTableName); err != nil {
			return errors.Wrap(err, "clear books")
		}
		for start := 0; start < len(books); start += insertChunk {
			end := start + insertChunk
			if end > len(books) {
				end = len(books)
			}
			q := r.qb.Insert(booksTableName).
				Columns("title", "authors", "average_rating", "language_code", "ratings_count", "publisher")
			for _, b := range books[start:end] {
				q = q.Values(b.Title, b.Authors, b.AverageRating, b.LanguageCode, b.RatingsCount, b.Publisher)
			}
			query, args, err := q.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrapf(err, "insert books [%d:%d]", start, end)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(books), nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	return r.selectBooks(ctx, r.qb.Select(bookColumns...).From(booksTableName).OrderBy("id"))
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := r.qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// likeEscaper makes LIKE wildcards in a keyword match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchBooks matches keyword as a case-insensitive substring of field.
// field must already be checked against the allow-list.
func (r *repository) SearchBooks(ctx context.Context, field model.SearchField, keyword string) ([]model.Book, error) {
	if !field.Valid() {
		return nil, errs.ErrInvalidField
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
	q := r.qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Expr(fmt.Sprintf(`LOWER(CAST(%s AS TEXT)) LIKE ? ESCAPE '\'`, field), pattern)).
		OrderBy("id")
	return r.selectBooks(ctx, q)
}

// PopularBooks returns up to n books rated below 5 in random order.
func (r *repository) PopularBooks(ctx context.Context, n int) ([]model.Book, error) {
	q := r.qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Lt{"average_rating": 5}).
		OrderBy("RANDOM()").
		Limit(uint64(n))
	return r.selectBooks(ctx, q)
}

func (r *repository) RandomBooks(ctx context.Context, n int) ([]model.Book, error) {
	q := r.qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("RANDOM()").
		Limit(uint64(n))
	return r.selectBooks(ctx, q)
}

func (r *repository) selectBooks(ctx context.Context, q sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("selectBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}
