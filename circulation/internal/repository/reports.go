package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mycompany/circulation-service/circulation/internal/model"
)

// TopBorrowedBooks counts borrows per book, most borrowed first. Ties break
// on ascending book id so the cut at the limit is deterministic.
func (r *repository) TopBorrowedBooks(ctx context.Context, limit int) ([]model.BookBorrowCount, error) {
	q, args, err := qb.Select("bk.id as book_id", "bk.title", "bk.author", "count(b.id)::int as total_borrowed").
		From(borrowTableName + " b").
		Join(fmt.Sprintf("%s bk on b.book_id = bk.id", bookTableName)).
		GroupBy("bk.id", "bk.title", "bk.author").
		OrderBy("total_borrowed desc", "book_id asc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("TopBorrowedBooks", zap.String("query", q))

	items := make([]model.BookBorrowCount, 0, limit)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) BorrowsPerYear(ctx context.Context) ([]model.YearBorrowCount, error) {
	q := `
	select extract(year from borrow_date)::int as year, count(*)::int as total
	from borrow
	group by year
	order by year asc
`
	items := make([]model.YearBorrowCount, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FrequentMembers(ctx context.Context, minBorrows int) ([]model.MemberBorrowCount, error) {
	q := `
	select m.id as member_id, m.name, count(b.id)::int as total_borrowed
	from member m
	join borrow b on m.id = b.member_id
	group by m.id, m.name
	having count(b.id) > $1
	order by total_borrowed desc, member_id asc
`
	items := make([]model.MemberBorrowCount, 0)
	if err := r.db.SelectContext(ctx, &items, q, minBorrows); err != nil {
		return nil, err
	}
	return items, nil
}

// UnreturnedBooks projects who holds which book since when; no entity graphs,
// just the report columns.
func (r *repository) UnreturnedBooks(ctx context.Context) ([]model.UnreturnedBook, error) {
	q := `
	select m.id as member_id, m.name as member_name, m.email, bk.title as book_title, b.borrow_date
	from borrow b
	join member m on b.member_id = m.id
	join book bk on b.book_id = bk.id
	where b.return_date is null
	order by b.borrow_date asc
`
	items := make([]model.UnreturnedBook, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// PurgeReturnedBefore drops closed borrows returned before the cutoff.
// Maintenance only, never part of request handling.
func (r *repository) PurgeReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `delete from borrow where return_date < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
