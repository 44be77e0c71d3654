package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/booklandia/lending-service/config"
	"github.com/booklandia/lending-service/internal/handler"
	"github.com/booklandia/lending-service/internal/repository"
	"github.com/booklandia/lending-service/internal/server"
	"github.com/booklandia/lending-service/internal/service"
	"github.com/booklandia/lending-service/migrations"
	"github.com/booklandia/lending-service/pkg/kafka"
	"github.com/booklandia/lending-service/pkg/logger"
	"github.com/booklandia/lending-service/pkg/openlibrary"
	"github.com/booklandia/lending-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "booklandia")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	catalog := openlibrary.NewClient(cfg.OpenLibrary, log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka.NewProducer, lending events disabled", zap.Error(err))
		producer = nil
	}

	svc := service.NewService(repo, catalog, producer, log)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()
	if consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.RatingConsumerGroup); err != nil {
		log.Warn("kafka.NewConsumer, rating stream disabled", zap.Error(err))
	} else {
		go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.SubmitBookRating, log), kafka.RatingTopic, log)
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
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if producer != nil {
		_ = producer.Close()
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
