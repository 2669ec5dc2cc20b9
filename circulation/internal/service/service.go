package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	cb "github.com/mycompany/circulation-service/pkg/circuit_breaker"
	"github.com/mycompany/circulation-service/pkg/kafka"

	"github.com/mycompany/circulation-service/circulation/internal/model"
	"github.com/mycompany/circulation-service/circulation/internal/repository"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
	breaker  cb.CircuitBreaker
}

// NewService wires the circulation workflow. producer may be nil when event
// publishing is disabled.
func NewService(repo repository.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
		breaker:  cb.New(20, 30*time.Second, 0.5, 5),
	}
}

func (s *Service) BorrowBook(ctx context.Context, req model.CreateBorrowRequest) (model.Borrow, error) {
	borrow, err := s.repo.CreateBorrow(ctx, req.MemberID, req.BookID)
	if err != nil {
		return model.Borrow{}, err
	}
	s.publish(kafka.EventBorrowed, borrow)
	return borrow, nil
}

func (s *Service) ReturnBook(ctx context.Context, id int64) (model.Borrow, error) {
	borrow, err := s.repo.ReturnBorrow(ctx, id)
	if err != nil {
		return model.Borrow{}, err
	}
	s.publish(kafka.EventReturned, borrow)
	return borrow, nil
}

// publish is fire-and-forget: the transaction already committed, a broker
// outage must not fail the request. The breaker keeps a dead broker from
// adding latency to every call.
func (s *Service) publish(eventType kafka.EventType, borrow model.Borrow) {
	if s.producer == nil {
		return
	}
	event := kafka.EventCirculation{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		BorrowID:  borrow.ID,
		BookID:    deref(borrow.BookID),
		MemberID:  deref(borrow.MemberID),
	}
	data, err := json.Marshal(event)
	if err != nil {
		s.log.Error("publish marshal", zap.Error(err))
		return
	}
	if err := s.breaker.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: kafka.CirculationTopic, Value: sarama.StringEncoder(data)}
		_, _, err := s.producer.SendMessage(msg)
		return err
	}); err != nil {
		s.log.Warn("publish", zap.String("event", string(eventType)), zap.Error(err))
	}
}

func deref(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func (s *Service) UpdateBorrow(ctx context.Context, borrow model.Borrow) (model.Borrow, error) {
	return s.repo.UpdateBorrow(ctx, borrow)
}

func (s *Service) PatchBorrow(ctx context.Context, patch model.BorrowPatch) (model.Borrow, error) {
	return s.repo.PatchBorrow(ctx, patch)
}

func (s *Service) DeleteBorrow(ctx context.Context, id int64) error {
	return s.repo.DeleteBorrow(ctx, id)
}

func (s *Service) GetBorrow(ctx context.Context, id int64) (model.Borrow, error) {
	return s.repo.GetBorrow(ctx, id)
}

func (s *Service) ListBorrows(ctx context.Context, page, size int) (model.ListBorrows, error) {
	return s.repo.ListBorrows(ctx, page, size)
}

func (s *Service) StreamBorrows(ctx context.Context, fn func(model.Borrow) error) error {
	return s.repo.StreamBorrows(ctx, fn)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, page, size int) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, page, size)
}

func (s *Service) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	return s.repo.UpdateBook(ctx, book)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error) {
	return s.repo.CreateMember(ctx, req)
}

func (s *Service) GetMember(ctx context.Context, id int64) (model.Member, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context, page, size int) ([]model.Member, error) {
	return s.repo.ListMembers(ctx, page, size)
}

func (s *Service) UpdateMember(ctx context.Context, member model.Member) (model.Member, error) {
	return s.repo.UpdateMember(ctx, member)
}

func (s *Service) DeleteMember(ctx context.Context, id int64) error {
	return s.repo.DeleteMember(ctx, id)
}

func (s *Service) TopBorrowedBooks(ctx context.Context, limit int) ([]model.BookBorrowCount, error) {
	return s.repo.TopBorrowedBooks(ctx, limit)
}

func (s *Service) BorrowsPerYear(ctx context.Context) ([]model.YearBorrowCount, error) {
	return s.repo.BorrowsPerYear(ctx)
}

func (s *Service) FrequentMembers(ctx context.Context, minBorrows int) ([]model.MemberBorrowCount, error) {
	return s.repo.FrequentMembers(ctx, minBorrows)
}

func (s *Service) UnreturnedBooks(ctx context.Context) ([]model.UnreturnedBook, error) {
	return s.repo.UnreturnedBooks(ctx)
}

func (s *Service) PurgeReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.PurgeReturnedBefore(ctx, cutoff)
}

func (s *Service) RecordEvent(ctx context.Context, event kafka.EventCirculation) error {
	return s.repo.RecordEvent(ctx, event)
}
