package repository

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-engine/library/internal/model"
)

func (r *repository) LoansByDate(ctx context.Context) ([]model.DateCount, error) {
	return r.countByDate(ctx, "loan_date")
}

func (r *repository) ReturnsByDate(ctx context.Context) ([]model.DateCount, error) {
	return r.countByDate(ctx, "return_date")
}

// countByDate groups loans by the given date column, skipping nulls,
// oldest day first.
func (r *repository) countByDate(ctx context.Context, column string) ([]model.DateCount, error) {
	q := fmt.Sprintf(`
select %[1]s as day, count(*) as cnt
from %[2]s
where %[1]s is not null
group by %[1]s
order by %[1]s`, column, loansTableName)

	series := make([]model.DateCount, 0)
	if err := r.db.SelectContext(ctx, &series, q); err != nil {
		return nil, errors.Wrapf(err, "count by %s", column)
	}
	return series, nil
}
