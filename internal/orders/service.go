package orders

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

const collectionName = "orders"

// Service serves the orders collection.
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

func (s *Service) load(ctx context.Context) ([]Order, error) {
	var records []Order
	found, err := s.store.Load(ctx, collectionName, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		records = seedOrders()
		if err := s.store.Save(ctx, collectionName, records); err != nil {
			return nil, err
		}
		s.metrics.IncrementCollectionsGenerated(collectionName)
	}
	return records, nil
}

func (s *Service) All(ctx context.Context) ([]Order, error) {
	return s.load(ctx)
}

func (s *Service) Random(ctx context.Context) (Order, error) {
	records, err := s.load(ctx)
	if err != nil {
		return Order{}, err
	}
	if len(records) == 0 {
		return Order{}, dErrors.New(dErrors.CodeNotFound, "no order data available")
	}
	s.mu.Lock()
	i := s.rng.Intn(len(records))
	s.mu.Unlock()
	return records[i], nil
}

// ByUser returns the orders placed by one user, in stored order. An empty
// result is a NotFound for this domain.
func (s *Service) ByUser(ctx context.Context, userID int) ([]Order, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	spec.EqualInt("user_id", userID)
	matches := query.Apply(records, spec)
	if len(matches) == 0 {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "no orders found for user %d", userID)
	}
	return matches, nil
}
