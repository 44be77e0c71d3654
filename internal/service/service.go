package service

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/repository"
	"github.com/booklandia/lending-service/pkg/circuit_breaker"
	"github.com/booklandia/lending-service/pkg/openlibrary"
)

// CatalogClient is the slice of the OpenLibrary client the ingestion path
// needs; narrowed for stubbing.
type CatalogClient interface {
	Search(ctx context.Context, title, author string) (openlibrary.SearchResponse, error)
	Work(ctx context.Context, key string) (openlibrary.Work, error)
	CoverURLs(id string) (medium, small string)
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	catalog  CatalogClient
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

// NewService wires the core. producer may be nil, in which case lending
// events are not published.
func NewService(repo repository.Repository, catalog CatalogClient, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		catalog:  catalog,
		producer: producer,
		cb:       circuit_breaker.New(20, 10*time.Second, 0.5, 3),
	}
}
