package repository

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mycompany/circulation-service/circulation/internal/model"
)

var (
	borrowColumns = []string{"id", "borrow_date", "return_date", "member_id", "book_id"}
	memberColumns = []string{"id", "name", "email", "join_date"}
	bookColumns   = []string{"id", "title", "author", "published_year", "price", "available"}
)

// prefixedColumns aliases every column as <prefix>_<col> so one flat row can
// carry all three entities side by side.
func prefixedColumns(alias, prefix string, cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		out = append(out, fmt.Sprintf("%s.%s as %s_%s", alias, col, prefix, col))
	}
	return out
}

// borrowJoinQuery selects every column needed to rebuild a Borrow together
// with its Member and Book. Left joins keep rows whose foreign keys are null.
func borrowJoinQuery() sq.SelectBuilder {
	cols := prefixedColumns("b", borrowPrefix, borrowColumns)
	cols = append(cols, prefixedColumns("m", memberPrefix, memberColumns)...)
	cols = append(cols, prefixedColumns("bk", bookPrefix, bookColumns)...)

	return qb.Select(cols...).
		From(borrowTableName + " b").
		LeftJoin(memberTableName + " m on b.member_id = m.id").
		LeftJoin(bookTableName + " bk on b.book_id = bk.id").
		OrderBy("b.id")
}

// scanBorrowRow rebuilds the Borrow graph from one flat row: the Borrow
// itself first, then the Member and Book projections. A sub-object whose id
// column is null was not joined, so the reference stays absent rather than
// becoming a zero-valued entity.
func scanBorrowRow(row map[string]any) (model.Borrow, error) {
	borrow, err := borrowFromRow(row, borrowPrefix)
	if err != nil {
		return model.Borrow{}, err
	}

	if row[memberPrefix+"_id"] != nil {
		member, err := memberFromRow(row, memberPrefix)
		if err != nil {
			return model.Borrow{}, err
		}
		borrow.Member = &member
	}
	if row[bookPrefix+"_id"] != nil {
		book, err := bookFromRow(row, bookPrefix)
		if err != nil {
			return model.Borrow{}, err
		}
		borrow.Book = &book
	}
	return borrow, nil
}
