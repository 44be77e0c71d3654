package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/model"
	"github.com/booklandia/lending-service/pkg/kafka"
)

// The lending operations trust that the caller has already verified the
// acting identity against the status owner; authorization lives in the
// handler layer, the machine only enforces transitions.

func (s *Service) RequestBook(ctx context.Context, bookID, ownerID, borrowerID int) error {
	rec, err := s.repo.CreateRequest(ctx, bookID, ownerID, borrowerID)
	if err != nil {
		return err
	}
	s.publish(model.LendingEvent{
		Type:       "requested",
		BookID:     rec.BookID,
		OwnerID:    rec.OwnerID,
		BorrowerID: rec.BorrowerID,
		At:         time.Now().UTC(),
	})
	return nil
}

func (s *Service) ApproveRequest(ctx context.Context, bookID, ownerID int) error {
	if err := s.repo.ApproveRequest(ctx, bookID, ownerID); err != nil {
		return err
	}
	s.publish(model.LendingEvent{
		Type:    "approved",
		BookID:  bookID,
		OwnerID: ownerID,
		At:      time.Now().UTC(),
	})
	return nil
}

func (s *Service) RejectRequest(ctx context.Context, bookID, ownerID int) error {
	if err := s.repo.RejectRequest(ctx, bookID, ownerID); err != nil {
		return err
	}
	s.publish(model.LendingEvent{
		Type:    "rejected",
		BookID:  bookID,
		OwnerID: ownerID,
		At:      time.Now().UTC(),
	})
	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, bookID, ownerID int, loc model.Location, cond model.Condition) error {
	return s.repo.UpdateStatus(ctx, bookID, ownerID, loc, cond)
}

func (s *Service) RemoveFromShelf(ctx context.Context, bookID, ownerID int) error {
	return s.repo.DeleteStatus(ctx, bookID, ownerID)
}

func (s *Service) Requests(ctx context.Context, userID int) (model.RequestsView, error) {
	return s.repo.RequestsFor(ctx, userID)
}

// publish emits the lending audit event. Failures are logged, never surfaced:
// the transition already committed.
func (s *Service) publish(ev model.LendingEvent) {
	if s.producer == nil {
		return
	}
	b, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("marshal lending event", zap.Error(err))
		return
	}
	if _, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: kafka.LendingTopic,
		Value: sarama.ByteEncoder(b),
	}); err != nil {
		s.log.Error("publish lending event", zap.String("type", ev.Type), zap.Error(err))
	}
}
