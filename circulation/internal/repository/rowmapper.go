package repository

import (
	"fmt"
	"time"

	"github.com/mycompany/circulation-service/circulation/internal/errs"
	"github.com/mycompany/circulation-service/circulation/internal/model"
)

// Column prefixes used by the join builder. Every aliased column is named
// <prefix>_<field>; the decoders below read the same names back. Changing a
// prefix on one side only makes the reads come back null, so both sides are
// pinned here.
const (
	borrowPrefix = "borrow"
	memberPrefix = "member"
	bookPrefix   = "book"
)

func colValue(row map[string]any, name string) (any, error) {
	v, ok := row[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", errs.ErrDecode, name)
	}
	return v, nil
}

func int64Col(row map[string]any, name string) (*int64, error) {
	v, err := colValue(row, name)
	if err != nil || v == nil {
		return nil, err
	}
	n, ok := v.(int64)
	if !ok {
		return nil, fmt.Errorf("%w: column %q is %T, want int64", errs.ErrDecode, name, v)
	}
	return &n, nil
}

func intCol(row map[string]any, name string) (*int, error) {
	n, err := int64Col(row, name)
	if err != nil || n == nil {
		return nil, err
	}
	i := int(*n)
	return &i, nil
}

func float64Col(row map[string]any, name string) (*float64, error) {
	v, err := colValue(row, name)
	if err != nil || v == nil {
		return nil, err
	}
	f, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: column %q is %T, want float64", errs.ErrDecode, name, v)
	}
	return &f, nil
}

func boolCol(row map[string]any, name string) (*bool, error) {
	v, err := colValue(row, name)
	if err != nil || v == nil {
		return nil, err
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: column %q is %T, want bool", errs.ErrDecode, name, v)
	}
	return &b, nil
}

func stringCol(row map[string]any, name string) (*string, error) {
	v, err := colValue(row, name)
	if err != nil || v == nil {
		return nil, err
	}
	switch s := v.(type) {
	case string:
		return &s, nil
	case []byte:
		str := string(s)
		return &str, nil
	default:
		return nil, fmt.Errorf("%w: column %q is %T, want string", errs.ErrDecode, name, v)
	}
}

func timeCol(row map[string]any, name string) (*time.Time, error) {
	v, err := colValue(row, name)
	if err != nil || v == nil {
		return nil, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("%w: column %q is %T, want time.Time", errs.ErrDecode, name, v)
	}
	return &t, nil
}

func requiredInt64(row map[string]any, name string) (int64, error) {
	n, err := int64Col(row, name)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, fmt.Errorf("%w: column %q is null", errs.ErrDecode, name)
	}
	return *n, nil
}

func requiredString(row map[string]any, name string) (string, error) {
	s, err := stringCol(row, name)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", fmt.Errorf("%w: column %q is null", errs.ErrDecode, name)
	}
	return *s, nil
}

func requiredTime(row map[string]any, name string) (time.Time, error) {
	t, err := timeCol(row, name)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, fmt.Errorf("%w: column %q is null", errs.ErrDecode, name)
	}
	return *t, nil
}

// borrowFromRow extracts one Borrow from prefixed columns. Pure: no I/O, the
// projections stay nil.
func borrowFromRow(row map[string]any, prefix string) (model.Borrow, error) {
	var b model.Borrow
	var err error
	if b.ID, err = requiredInt64(row, prefix+"_id"); err != nil {
		return model.Borrow{}, err
	}
	if b.BorrowDate, err = requiredTime(row, prefix+"_borrow_date"); err != nil {
		return model.Borrow{}, err
	}
	if b.ReturnDate, err = timeCol(row, prefix+"_return_date"); err != nil {
		return model.Borrow{}, err
	}
	if b.MemberID, err = int64Col(row, prefix+"_member_id"); err != nil {
		return model.Borrow{}, err
	}
	if b.BookID, err = int64Col(row, prefix+"_book_id"); err != nil {
		return model.Borrow{}, err
	}
	return b, nil
}

func memberFromRow(row map[string]any, prefix string) (model.Member, error) {
	var m model.Member
	var err error
	if m.ID, err = requiredInt64(row, prefix+"_id"); err != nil {
		return model.Member{}, err
	}
	if m.Name, err = requiredString(row, prefix+"_name"); err != nil {
		return model.Member{}, err
	}
	if m.Email, err = requiredString(row, prefix+"_email"); err != nil {
		return model.Member{}, err
	}
	if m.JoinDate, err = requiredTime(row, prefix+"_join_date"); err != nil {
		return model.Member{}, err
	}
	return m, nil
}

func bookFromRow(row map[string]any, prefix string) (model.Book, error) {
	var b model.Book
	var err error
	if b.ID, err = requiredInt64(row, prefix+"_id"); err != nil {
		return model.Book{}, err
	}
	if b.Title, err = requiredString(row, prefix+"_title"); err != nil {
		return model.Book{}, err
	}
	if b.Author, err = requiredString(row, prefix+"_author"); err != nil {
		return model.Book{}, err
	}
	if b.PublishedYear, err = intCol(row, prefix+"_published_year"); err != nil {
		return model.Book{}, err
	}
	if b.Price, err = float64Col(row, prefix+"_price"); err != nil {
		return model.Book{}, err
	}
	if b.Available, err = boolCol(row, prefix+"_available"); err != nil {
		return model.Book{}, err
	}
	return b, nil
}
