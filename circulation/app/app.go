package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/mycompany/circulation-service/circulation/config"
	"github.com/mycompany/circulation-service/circulation/internal/handler"
	"github.com/mycompany/circulation-service/circulation/internal/repository"
	"github.com/mycompany/circulation-service/circulation/internal/server"
	"github.com/mycompany/circulation-service/circulation/internal/service"
	"github.com/mycompany/circulation-service/circulation/migrations"
	"github.com/mycompany/circulation-service/pkg/kafka"
	"github.com/mycompany/circulation-service/pkg/logger"
	"github.com/mycompany/circulation-service/pkg/postgres"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}

	// the service degrades to a silent producer when the broker is down;
	// circulation keeps working, only events are lost
	var producer sarama.SyncProducer
	if producer, err = kafka.NewProducer(cfg.Kafka); err != nil {
		log.Warn("kafka.NewProducer, events disabled", zap.Error(err))
		producer = nil
	}
	svc := service.NewService(repo, producer, log)

	if producer != nil {
		cg, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %v", err)
		}
		go kafka.Consume(cg, handler.NewConsumer(svc.RecordEvent, log), kafka.CirculationTopic)
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
