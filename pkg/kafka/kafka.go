package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	CirculationTopic   = "circulation-events"
	StatsConsumerGroup = "stats-group"
)

type EventType string

const (
	EventBorrowed EventType = "BORROWED"
	EventReturned EventType = "RETURNED"
)

// EventCirculation is published on every borrow/return transition.
type EventCirculation struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	EventType EventType `json:"eventType"`
	BorrowID  int64     `json:"borrowId"`
	BookID    int64     `json:"bookId"`
	MemberID  int64     `json:"memberId"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until its context is canceled upstream.
func Consume(cg sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, topics ...string) {
	ctx := context.Background()
	for {
		if err := cg.Consume(ctx, topics, h); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}
