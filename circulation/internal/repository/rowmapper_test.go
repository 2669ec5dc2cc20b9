package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mycompany/circulation-service/circulation/internal/errs"
)

// fullJoinRow fabricates one result row exactly as the join builder aliases
// it: <prefix>_<field> for each of the three entities.
func fullJoinRow() map[string]any {
	return map[string]any{
		"borrow_id":          int64(42),
		"borrow_borrow_date": time.Date(2021, 3, 14, 10, 0, 0, 0, time.UTC),
		"borrow_return_date": nil,
		"borrow_member_id":   int64(7),
		"borrow_book_id":     int64(3),

		"member_id":        int64(7),
		"member_name":      "Ada Lovelace",
		"member_email":     "ada@example.com",
		"member_join_date": time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),

		"book_id":             int64(3),
		"book_title":          "The Analytical Engine",
		"book_author":         "Charles Babbage",
		"book_published_year": int64(1843),
		"book_price":          99.5,
		"book_available":      false,
	}
}

func Test_scanBorrowRow_RoundTrip(t *testing.T) {
	t.Parallel()

	borrow, err := scanBorrowRow(fullJoinRow())
	require.NoError(t, err)

	require.EqualValues(t, 42, borrow.ID)
	require.Equal(t, time.Date(2021, 3, 14, 10, 0, 0, 0, time.UTC), borrow.BorrowDate)
	require.Nil(t, borrow.ReturnDate)
	require.NotNil(t, borrow.MemberID)
	require.EqualValues(t, 7, *borrow.MemberID)
	require.NotNil(t, borrow.BookID)
	require.EqualValues(t, 3, *borrow.BookID)

	require.NotNil(t, borrow.Member)
	require.EqualValues(t, 7, borrow.Member.ID)
	require.Equal(t, "Ada Lovelace", borrow.Member.Name)
	require.Equal(t, "ada@example.com", borrow.Member.Email)

	require.NotNil(t, borrow.Book)
	require.EqualValues(t, 3, borrow.Book.ID)
	require.Equal(t, "The Analytical Engine", borrow.Book.Title)
	require.NotNil(t, borrow.Book.PublishedYear)
	require.Equal(t, 1843, *borrow.Book.PublishedYear)
	require.NotNil(t, borrow.Book.Price)
	require.Equal(t, 99.5, *borrow.Book.Price)
	require.NotNil(t, borrow.Book.Available)
	require.False(t, *borrow.Book.Available)
}

func Test_scanBorrowRow_AbsentAssociations(t *testing.T) {
	t.Parallel()

	row := fullJoinRow()
	// unassigned foreign keys: left join yields all-null member/book columns
	row["borrow_member_id"] = nil
	row["borrow_book_id"] = nil
	for _, col := range []string{"member_id", "member_name", "member_email", "member_join_date",
		"book_id", "book_title", "book_author", "book_published_year", "book_price", "book_available"} {
		row[col] = nil
	}

	borrow, err := scanBorrowRow(row)
	require.NoError(t, err)
	require.Nil(t, borrow.MemberID)
	require.Nil(t, borrow.BookID)
	require.Nil(t, borrow.Member, "absent member must stay nil, not zero-valued")
	require.Nil(t, borrow.Book, "absent book must stay nil, not zero-valued")
}

func Test_scanBorrowRow_DecodeFailures(t *testing.T) {
	t.Parallel()

	t.Run("missing column", func(t *testing.T) {
		t.Parallel()
		row := fullJoinRow()
		delete(row, "borrow_borrow_date")
		_, err := scanBorrowRow(row)
		require.ErrorIs(t, err, errs.ErrDecode)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()
		row := fullJoinRow()
		row["book_price"] = "not a number"
		_, err := scanBorrowRow(row)
		require.ErrorIs(t, err, errs.ErrDecode)
	})

	t.Run("null required field", func(t *testing.T) {
		t.Parallel()
		row := fullJoinRow()
		row["member_name"] = nil
		_, err := scanBorrowRow(row)
		require.ErrorIs(t, err, errs.ErrDecode)
	})
}

func Test_bookFromRow_ByteSlicesAndNulls(t *testing.T) {
	t.Parallel()

	row := map[string]any{
		"book_id":             int64(1),
		"book_title":          []byte("bytes title"),
		"book_author":         "a",
		"book_published_year": nil,
		"book_price":          nil,
		"book_available":      nil,
	}
	book, err := bookFromRow(row, bookPrefix)
	require.NoError(t, err)
	require.Equal(t, "bytes title", book.Title)
	require.Nil(t, book.PublishedYear)
	require.Nil(t, book.Price)
	require.Nil(t, book.Available)
	require.True(t, book.IsAvailable())
}
