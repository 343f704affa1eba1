package service

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/pkg/auth"
	"github.com/Astemirdum/library-engine/pkg/kafka"
)

var requiredColumns = []string{"title", "authors", "average_rating", "language_code", "ratings_count", "publisher"}

// ParseCatalog reads books from CSV with a header row. Rows that do not parse
// are skipped and counted; a source without a usable header fails with
// errs.ErrMalformedSource.
func ParseCatalog(r io.Reader) (books []model.Book, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, errors.Wrap(errs.ErrMalformedSource, "empty source")
		}
		return nil, 0, errors.Wrapf(errs.ErrMalformedSource, "read header: %v", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	cols := make([]int, len(requiredColumns))
	for i, name := range requiredColumns {
		pos, ok := index[name]
		if !ok {
			return nil, 0, errors.Wrapf(errs.ErrMalformedSource, "missing column %q", name)
		}
		cols[i] = pos
	}

	books = make([]model.Book, 0)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, 0, errors.Wrapf(errs.ErrMalformedSource, "line %d: %v", line, err)
		}
		if len(record) != len(header) {
			skipped++
			continue
		}
		book, err := parseBook(record, cols)
		if err != nil {
			skipped++
			continue
		}
		books = append(books, book)
	}
	return books, skipped, nil
}

func parseBook(record []string, cols []int) (model.Book, error) {
	field := func(i int) string { return strings.TrimSpace(record[cols[i]]) }

	title := field(0)
	if title == "" {
		return model.Book{}, errors.Wrap(errs.ErrMalformedInput, "empty title")
	}
	rating, err := strconv.ParseFloat(field(2), 64)
	if err != nil {
		return model.Book{}, errors.Wrapf(errs.ErrMalformedInput, "average_rating: %v", err)
	}
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return model.Book{}, errors.Wrapf(errs.ErrMalformedInput, "average_rating %q", field(2))
	}
	count, err := strconv.Atoi(field(4))
	if err != nil || count < 0 {
		return model.Book{}, errors.Wrapf(errs.ErrMalformedInput, "ratings_count %q", field(4))
	}
	return model.Book{
		Title:         title,
		Authors:       field(1),
		AverageRating: rating,
		LanguageCode:  field(3),
		RatingsCount:  count,
		Publisher:     field(5),
	}, nil
}

// ReloadCatalog replaces the catalog with the books read from src. The source
// is parsed completely before the store is touched and the swap is
// transactional, so a failed reload keeps the previous catalog.
func (s *Service) ReloadCatalog(ctx context.Context, sess auth.Session, src io.Reader) (model.ReloadResult, error) {
	if !sess.IsStaff() {
		return model.ReloadResult{}, errs.ErrForbidden
	}
	books, skipped, err := ParseCatalog(src)
	if err != nil {
		return model.ReloadResult{}, err
	}
	loaded, err := s.repo.ReplaceBooks(ctx, books)
	if err != nil {
		return model.ReloadResult{}, err
	}
	s.log.Info("catalog reloaded",
		zap.String("by", sess.ID), zap.Int("loaded", loaded), zap.Int("skipped", skipped))
	s.publish(kafka.Event{Type: kafka.EventCatalogReloaded, Loaded: loaded, Skipped: skipped})
	return model.ReloadResult{Loaded: loaded, Skipped: skipped}, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) SearchBooks(ctx context.Context, keyword string, field model.SearchField) ([]model.Book, error) {
	if !field.Valid() {
		return nil, errs.ErrInvalidField
	}
	return s.repo.SearchBooks(ctx, field, keyword)
}

// PopularityRecommendations returns up to n books rated below 5, shuffled on
// every call.
func (s *Service) PopularityRecommendations(ctx context.Context, n int) ([]model.Book, error) {
	if n <= 0 {
		return []model.Book{}, nil
	}
	return s.repo.PopularBooks(ctx, n)
}

// RandomRecommendations samples n books uniformly. The session is only
// logged: nothing about the reader's history is taken into account.
func (s *Service) RandomRecommendations(ctx context.Context, sess auth.Session, n int) ([]model.Book, error) {
	if n <= 0 {
		return []model.Book{}, nil
	}
	s.log.Debug("random recommendations", zap.String("for", sess.ID), zap.Int("n", n))
	return s.repo.RandomBooks(ctx, n)
}

func (s *Service) Availability(ctx context.Context) ([]model.BookAvailability, error) {
	return s.repo.Availability(ctx)
}
