package repository

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"
)

const joinSelect = "SELECT " +
	"b.id as borrow_id, b.borrow_date as borrow_borrow_date, b.return_date as borrow_return_date, " +
	"b.member_id as borrow_member_id, b.book_id as borrow_book_id, " +
	"m.id as member_id, m.name as member_name, m.email as member_email, m.join_date as member_join_date, " +
	"bk.id as book_id, bk.title as book_title, bk.author as book_author, " +
	"bk.published_year as book_published_year, bk.price as book_price, bk.available as book_available " +
	"FROM borrow b " +
	"LEFT JOIN member m on b.member_id = m.id " +
	"LEFT JOIN book bk on b.book_id = bk.id"

func Test_borrowJoinQuery_List(t *testing.T) {
	t.Parallel()

	query, args, err := borrowJoinQuery().ToSql()
	require.NoError(t, err)
	require.Empty(t, args)
	require.Equal(t, joinSelect+" ORDER BY b.id", query)
}

func Test_borrowJoinQuery_PointLookup(t *testing.T) {
	t.Parallel()

	query, args, err := borrowJoinQuery().
		Where(sq.Eq{"b.id": int64(42)}).
		Limit(1).
		ToSql()
	require.NoError(t, err)
	require.Equal(t, []interface{}{int64(42)}, args)
	require.Equal(t, joinSelect+" WHERE b.id = $1 ORDER BY b.id LIMIT 1", query)
}

func Test_prefixedColumns(t *testing.T) {
	t.Parallel()

	got := prefixedColumns("bk", "book", []string{"id", "title"})
	require.Equal(t, []string{"bk.id as book_id", "bk.title as book_title"}, got)
}
