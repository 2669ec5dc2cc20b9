package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mycompany/circulation-service/circulation/internal/errs"
	"github.com/mycompany/circulation-service/circulation/internal/model"
)

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	q, args, err := qb.Insert(bookTableName).
		Columns("title", "author", "published_year", "price", "available").
		Values(req.Title, req.Author, req.PublishedYear, req.Price, req.Available).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "published_year", "price", "available").
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, page, size int) ([]model.Book, error) {
	q := qb.Select("id", "title", "author", "published_year", "price", "available").
		From(bookTableName).
		OrderBy("id")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Update(bookTableName).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("published_year", book.PublishedYear).
		Set("price", book.Price).
		Set("available", book.Available).
		Where(sq.Eq{"id": book.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var updated model.Book
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return updated, nil
}

// DeleteBook refuses to remove a book that an open borrow still references.
func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `delete from book
	where id = $1
	  and not exists (select 1 from borrow where book_id = $1 and return_date is null)`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			`select exists (select 1 from book where id = $1)`, id); err != nil {
			return err
		}
		if exists {
			return errs.ErrConflict
		}
	}
	return nil
}

func (r *repository) CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error) {
	q, args, err := qb.Insert(memberTableName).
		Columns("name", "email", "join_date").
		Values(req.Name, req.Email, req.JoinDate).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, q, args...); err != nil {
		r.log.Error("CreateMember", zap.String("q", q), zap.Any("args", args))
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) GetMember(ctx context.Context, id int64) (model.Member, error) {
	q, args, err := qb.Select("id", "name", "email", "join_date").
		From(memberTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) ListMembers(ctx context.Context, page, size int) ([]model.Member, error) {
	q := qb.Select("id", "name", "email", "join_date").
		From(memberTableName).
		OrderBy("id")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, 0)
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) UpdateMember(ctx context.Context, member model.Member) (model.Member, error) {
	q, args, err := qb.Update(memberTableName).
		Set("name", member.Name).
		Set("email", member.Email).
		Set("join_date", member.JoinDate).
		Where(sq.Eq{"id": member.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var updated model.Member
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}
	return updated, nil
}

// DeleteMember refuses while the member still holds a book.
func (r *repository) DeleteMember(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `delete from member
	where id = $1
	  and not exists (select 1 from borrow where member_id = $1 and return_date is null)`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			`select exists (select 1 from member where id = $1)`, id); err != nil {
			return err
		}
		if exists {
			return errs.ErrConflict
		}
	}
	return nil
}
