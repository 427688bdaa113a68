package products

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/aprksy/jsonsvc/internal/platform/metrics"
	"github.com/aprksy/jsonsvc/internal/query"
	"github.com/aprksy/jsonsvc/internal/storage"
	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
)

const collectionName = "products"

// Service serves the products collection.
type Service struct {
	store   storage.Store
	metrics *metrics.Metrics

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Service)

func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) load(ctx context.Context) ([]Product, error) {
	var records []Product
	found, err := s.store.Load(ctx, collectionName, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		records = seedProducts()
		if err := s.store.Save(ctx, collectionName, records); err != nil {
			return nil, err
		}
		s.metrics.IncrementCollectionsGenerated(collectionName)
	}
	return records, nil
}

func (s *Service) All(ctx context.Context) ([]Product, error) {
	return s.load(ctx)
}

func (s *Service) Random(ctx context.Context) (Product, error) {
	records, err := s.load(ctx)
	if err != nil {
		return Product{}, err
	}
	if len(records) == 0 {
		return Product{}, dErrors.New(dErrors.CodeNotFound, "no product data available")
	}
	s.mu.Lock()
	i := s.rng.Intn(len(records))
	s.mu.Unlock()
	return records[i], nil
}

// ByCategory returns products matching the category, case-insensitively.
// An empty result is a NotFound for this domain.
func (s *Service) ByCategory(ctx context.Context, category string) ([]Product, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	spec.Equal("category", category)
	matches := query.Apply(records, spec)
	if len(matches) == 0 {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "no products found in category '%s'", category)
	}
	return matches, nil
}
