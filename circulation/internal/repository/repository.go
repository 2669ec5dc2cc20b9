package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mycompany/circulation-service/circulation/internal/errs"
	"github.com/mycompany/circulation-service/circulation/internal/model"
	"github.com/mycompany/circulation-service/pkg/kafka"
)

type Repository interface {
	CreateBorrow(ctx context.Context, memberID, bookID int64) (model.Borrow, error)
	ReturnBorrow(ctx context.Context, id int64) (model.Borrow, error)
	UpdateBorrow(ctx context.Context, borrow model.Borrow) (model.Borrow, error)
	PatchBorrow(ctx context.Context, patch model.BorrowPatch) (model.Borrow, error)
	DeleteBorrow(ctx context.Context, id int64) error
	GetBorrow(ctx context.Context, id int64) (model.Borrow, error)
	ListBorrows(ctx context.Context, page, size int) (model.ListBorrows, error)
	StreamBorrows(ctx context.Context, fn func(model.Borrow) error) error

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, page, size int) ([]model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error)
	GetMember(ctx context.Context, id int64) (model.Member, error)
	ListMembers(ctx context.Context, page, size int) ([]model.Member, error)
	UpdateMember(ctx context.Context, member model.Member) (model.Member, error)
	DeleteMember(ctx context.Context, id int64) error

	TopBorrowedBooks(ctx context.Context, limit int) ([]model.BookBorrowCount, error)
	BorrowsPerYear(ctx context.Context) ([]model.YearBorrowCount, error)
	FrequentMembers(ctx context.Context, minBorrows int) ([]model.MemberBorrowCount, error)
	UnreturnedBooks(ctx context.Context) ([]model.UnreturnedBook, error)
	PurgeReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	RecordEvent(ctx context.Context, event kafka.EventCirculation) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookTableName   = `book`
	memberTableName = `member`
	borrowTableName = `borrow`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// withTx commits on success and rolls back on every other exit path, error
// or panic alike.
func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// CreateBorrow inserts the borrow and flips the book unavailable in one
// transaction. The flip is conditional on the book still being available, so
// of two concurrent borrows of the same book exactly one commits.
func (r *repository) CreateBorrow(ctx context.Context, memberID, bookID int64) (model.Borrow, error) {
	var borrow model.Borrow
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(borrowTableName).
			Columns("borrow_date", "return_date", "member_id", "book_id").
			Values(time.Now().UTC(), nil, memberID, bookID).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &borrow, q, args...); err != nil {
			if isFKViolation(err) {
				return errs.ErrNotFound
			}
			r.log.Error("CreateBorrow", zap.String("q", q), zap.Any("args", args))
			return err
		}

		res, err := tx.ExecContext(ctx,
			`update book set available = false where id = $1 and coalesce(available, true)`, bookID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			var exists bool
			if err := tx.GetContext(ctx, &exists,
				`select exists (select 1 from book where id = $1)`, bookID); err != nil {
				return err
			}
			if !exists {
				return errs.ErrNotFound
			}
			return errs.ErrConflict
		}
		return nil
	})
	if err != nil {
		return model.Borrow{}, err
	}
	return borrow, nil
}

// ReturnBorrow closes an open borrow and makes the book available again once
// no open borrow references it.
func (r *repository) ReturnBorrow(ctx context.Context, id int64) (model.Borrow, error) {
	var borrow model.Borrow
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q := `update borrow set return_date = $2
		where id = $1 and return_date is null
		returning *`
		if err := tx.GetContext(ctx, &borrow, q, id, time.Now().UTC()); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			var exists bool
			if err := tx.GetContext(ctx, &exists,
				`select exists (select 1 from borrow where id = $1)`, id); err != nil {
				return err
			}
			if !exists {
				return errs.ErrNotFound
			}
			return errs.ErrConflict
		}

		if borrow.BookID == nil {
			return nil
		}
		_, err := tx.ExecContext(ctx, `update book set available = true
		where id = $1
		  and not exists (select 1 from borrow where book_id = $1 and return_date is null)`,
			*borrow.BookID)
		return err
	})
	if err != nil {
		return model.Borrow{}, err
	}
	return borrow, nil
}

// UpdateBorrow is a full replace of all mutable fields.
func (r *repository) UpdateBorrow(ctx context.Context, borrow model.Borrow) (model.Borrow, error) {
	q, args, err := qb.Update(borrowTableName).
		Set("borrow_date", borrow.BorrowDate).
		Set("return_date", borrow.ReturnDate).
		Set("member_id", borrow.MemberID).
		Set("book_id", borrow.BookID).
		Where(sq.Eq{"id": borrow.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Borrow{}, err
	}

	var updated model.Borrow
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrow{}, errs.ErrNotFound
		}
		if isFKViolation(err) {
			return model.Borrow{}, errs.ErrNotFound
		}
		return model.Borrow{}, err
	}
	return updated, nil
}

// PatchBorrow merges non-nil patch fields into the stored row. The row is
// locked for the read-merge-write so concurrent patches serialize.
func (r *repository) PatchBorrow(ctx context.Context, patch model.BorrowPatch) (model.Borrow, error) {
	if patch.ID == nil {
		return model.Borrow{}, errs.ErrInvalid
	}
	var merged model.Borrow
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var stored model.Borrow
		if err := tx.GetContext(ctx, &stored,
			`select * from borrow where id = $1 for update`, *patch.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}

		merged = patch.Apply(stored)

		q, args, err := qb.Update(borrowTableName).
			Set("borrow_date", merged.BorrowDate).
			Set("return_date", merged.ReturnDate).
			Set("member_id", merged.MemberID).
			Set("book_id", merged.BookID).
			Where(sq.Eq{"id": merged.ID}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			if isFKViolation(err) {
				return errs.ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.Borrow{}, err
	}
	return merged, nil
}

// DeleteBorrow removes the record; deleting an absent id is a no-op. If the
// deleted borrow was still open its book becomes available again, keeping the
// availability flag consistent.
func (r *repository) DeleteBorrow(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		var bookID *int64
		err := tx.GetContext(ctx, &bookID,
			`delete from borrow where id = $1 returning book_id`, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}
		if bookID == nil {
			return nil
		}
		_, err = tx.ExecContext(ctx, `update book set available = true
		where id = $1
		  and not exists (select 1 from borrow where book_id = $1 and return_date is null)`,
			*bookID)
		return err
	})
}

func (r *repository) GetBorrow(ctx context.Context, id int64) (model.Borrow, error) {
	query, args, err := borrowJoinQuery().
		Where(sq.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Borrow{}, err
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return model.Borrow{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Borrow{}, err
		}
		return model.Borrow{}, errs.ErrNotFound
	}
	row := map[string]any{}
	if err := rows.MapScan(row); err != nil {
		return model.Borrow{}, err
	}
	return scanBorrowRow(row)
}

func (r *repository) ListBorrows(ctx context.Context, page, size int) (model.ListBorrows, error) {
	q := borrowJoinQuery()
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBorrows{}, err
	}
	r.log.Debug("ListBorrows", zap.String("query", query), zap.Any("args", args))

	items := make([]model.Borrow, 0)
	if err := r.forEachBorrowRow(ctx, query, args, func(b model.Borrow) error {
		items = append(items, b)
		return nil
	}); err != nil {
		return model.ListBorrows{}, err
	}

	return model.ListBorrows{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

// StreamBorrows hands borrows to fn one by one as rows arrive, without
// materializing the whole result. The reconstruction path is the same as for
// ListBorrows.
func (r *repository) StreamBorrows(ctx context.Context, fn func(model.Borrow) error) error {
	query, args, err := borrowJoinQuery().ToSql()
	if err != nil {
		return err
	}
	return r.forEachBorrowRow(ctx, query, args, fn)
}

func (r *repository) forEachBorrowRow(ctx context.Context, query string, args []any, fn func(model.Borrow) error) error {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return err
		}
		borrow, err := scanBorrowRow(row)
		if err != nil {
			return err
		}
		if err := fn(borrow); err != nil {
			return err
		}
	}
	return rows.Err()
}
