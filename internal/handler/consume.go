package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/model"
)

type submitRating func(ctx context.Context, bookID, raterID, rating int, review string) (float64, error)

// Consumer applies rating submissions arriving over kafka through the same
// service path as the HTTP flow.
type Consumer struct {
	ratingHandler submitRating
	log           *zap.Logger
	ready         chan bool
}

func NewConsumer(rating submitRating, log *zap.Logger) *Consumer {
	return &Consumer{
		ratingHandler: rating,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var req model.RatingMsg
			if err := json.Unmarshal(message.Value, &req); err != nil {
				consumer.log.Error("unmarshal rating msg", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if _, err := consumer.ratingHandler(context.Background(), req.BookID, req.RaterID, req.Rating, req.Review); err != nil {
				consumer.log.Error("consumer.ratingHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
