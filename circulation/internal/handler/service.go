package handler

import (
	"context"
	"time"

	"github.com/mycompany/circulation-service/circulation/internal/model"
	"github.com/mycompany/circulation-service/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	BorrowBook(ctx context.Context, req model.CreateBorrowRequest) (model.Borrow, error)
	ReturnBook(ctx context.Context, id int64) (model.Borrow, error)
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
}

var _ CirculationService = (*service.Service)(nil)
