package model

import "time"

type BookBorrowCount struct {
	BookID        int64  `json:"bookId" db:"book_id"`
	Title         string `json:"title" db:"title"`
	Author        string `json:"author" db:"author"`
	TotalBorrowed int    `json:"totalBorrowed" db:"total_borrowed"`
}

type YearBorrowCount struct {
	Year  int `json:"year" db:"year"`
	Total int `json:"total" db:"total"`
}

type MemberBorrowCount struct {
	MemberID      int64  `json:"memberId" db:"member_id"`
	Name          string `json:"name" db:"name"`
	TotalBorrowed int    `json:"totalBorrowed" db:"total_borrowed"`
}

// UnreturnedBook is the open-borrow projection: who holds which book since when.
type UnreturnedBook struct {
	MemberID   int64     `json:"memberId" db:"member_id"`
	MemberName string    `json:"memberName" db:"member_name"`
	Email      string    `json:"email" db:"email"`
	BookTitle  string    `json:"bookTitle" db:"book_title"`
	BorrowDate time.Time `json:"borrowDate" db:"borrow_date"`
}

type ReportSummary struct {
	TopBooks        []BookBorrowCount   `json:"topBooks"`
	BorrowsPerYear  []YearBorrowCount   `json:"borrowsPerYear"`
	FrequentMembers []MemberBorrowCount `json:"frequentMembers"`
}
