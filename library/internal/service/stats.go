package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/pkg/auth"
)

func (s *Service) LoansByDate(ctx context.Context, sess auth.Session) ([]model.DateCount, error) {
	if !sess.IsStaff() {
		return nil, errs.ErrForbidden
	}
	return s.repo.LoansByDate(ctx)
}

func (s *Service) ReturnsByDate(ctx context.Context, sess auth.Session) ([]model.DateCount, error) {
	if !sess.IsStaff() {
		return nil, errs.ErrForbidden
	}
	return s.repo.ReturnsByDate(ctx)
}

// ActivityByDate merges the loan and return series on date. A day present
// in only one series gets 0 for the other.
func (s *Service) ActivityByDate(ctx context.Context, sess auth.Session) ([]model.Activity, error) {
	if !sess.IsStaff() {
		return nil, errs.ErrForbidden
	}
	var loans, returns []model.DateCount
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		loans, err = s.repo.LoansByDate(gCtx)
		return err
	})
	g.Go(func() (err error) {
		returns, err = s.repo.ReturnsByDate(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mergeActivity(loans, returns), nil
}

func mergeActivity(loans, returns []model.DateCount) []model.Activity {
	byDay := make(map[string]*model.Activity, len(loans)+len(returns))
	get := func(d model.Date) *model.Activity {
		a, ok := byDay[d.String()]
		if !ok {
			a = &model.Activity{Date: d}
			byDay[d.String()] = a
		}
		return a
	}
	for _, l := range loans {
		get(l.Date).Loaned += l.Count
	}
	for _, r := range returns {
		get(r.Date).Returned += r.Count
	}

	out := make([]model.Activity, 0, len(byDay))
	for _, a := range byDay {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out
}
