package model

import (
	"time"
)

// Book row. Available is nullable: a book that was never borrowed keeps
// NULL, which reads as "available".
type Book struct {
	ID            int64    `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Author        string   `json:"author" db:"author"`
	PublishedYear *int     `json:"publishedYear,omitempty" db:"published_year"`
	Price         *float64 `json:"price,omitempty" db:"price"`
	Available     *bool    `json:"available,omitempty" db:"available"`
}

// IsAvailable treats an unset flag as available.
func (b Book) IsAvailable() bool {
	return b.Available == nil || *b.Available
}

type Member struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	JoinDate time.Time `json:"joinDate" db:"join_date"`
}

// Borrow links one member to one book over an interval. MemberID/BookID are
// the single source of truth; Member and Book are projections attached only
// by join reads and are never written through a Borrow.
type Borrow struct {
	ID         int64      `json:"id" db:"id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
	MemberID   *int64     `json:"memberId,omitempty" db:"member_id"`
	BookID     *int64     `json:"bookId,omitempty" db:"book_id"`

	Member *Member `json:"member,omitempty" db:"-"`
	Book   *Book   `json:"book,omitempty" db:"-"`
}

// Open reports whether the book is still out.
func (b Borrow) Open() bool {
	return b.ReturnDate == nil
}

type CreateBorrowRequest struct {
	MemberID int64 `json:"memberId" validate:"required"`
	BookID   int64 `json:"bookId" validate:"required"`
}

type UpdateBorrowRequest struct {
	ID         *int64     `json:"id"`
	BorrowDate time.Time  `json:"borrowDate" validate:"required"`
	ReturnDate *time.Time `json:"returnDate"`
	MemberID   *int64     `json:"memberId"`
	BookID     *int64     `json:"bookId"`
}

// BorrowPatch carries a merge-patch: nil fields leave the stored value
// untouched.
type BorrowPatch struct {
	ID         *int64     `json:"id"`
	BorrowDate *time.Time `json:"borrowDate"`
	ReturnDate *time.Time `json:"returnDate"`
	MemberID   *int64     `json:"memberId"`
	BookID     *int64     `json:"bookId"`
}

// Apply merges the patch into b field by field.
func (p BorrowPatch) Apply(b Borrow) Borrow {
	if p.BorrowDate != nil {
		b.BorrowDate = *p.BorrowDate
	}
	if p.ReturnDate != nil {
		b.ReturnDate = p.ReturnDate
	}
	if p.MemberID != nil {
		b.MemberID = p.MemberID
	}
	if p.BookID != nil {
		b.BookID = p.BookID
	}
	return b
}

type ListBorrows struct {
	Paging `json:",inline"`
	Items  []Borrow `json:"items"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type CreateBookRequest struct {
	Title         string   `json:"title" validate:"required"`
	Author        string   `json:"author" validate:"required"`
	PublishedYear *int     `json:"publishedYear"`
	Price         *float64 `json:"price"`
	Available     *bool    `json:"available"`
}

type CreateMemberRequest struct {
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
	JoinDate time.Time `json:"joinDate" validate:"required"`
}
