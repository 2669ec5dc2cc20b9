package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/mycompany/circulation-service/pkg/kafka"
)

const eventTableName = `circulation_event`

// RecordEvent appends one circulation event to the audit trail. Redelivered
// messages are dropped on the event_id unique constraint.
func (r *repository) RecordEvent(ctx context.Context, event kafka.EventCirculation) error {
	q, args, err := qb.Insert(eventTableName).
		Columns("event_id", "event_type", "borrow_id", "book_id", "member_id", "occurred_at").
		Values(event.EventID, event.EventType, event.BorrowID, event.BookID, event.MemberID, event.Timestamp).
		Suffix("on conflict (event_id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("RecordEvent", zap.String("q", q), zap.Any("args", args))
		return err
	}
	return nil
}
