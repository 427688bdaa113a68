package users

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

const collectionName = "users"

// Service serves the users collection: load-or-seed, lookups, random picks.
type Service struct {
	store   storage.Store
	metrics *metrics.Metrics

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Service)

// WithRand injects the random source so tests get reproducible picks.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithMetrics attaches prometheus counters. All counter methods are nil-safe,
// so services built without metrics just skip recording.
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

// load returns the stored collection, seeding and persisting the default
// records when nothing is stored yet.
func (s *Service) load(ctx context.Context) ([]User, error) {
	var records []User
	found, err := s.store.Load(ctx, collectionName, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		records = seedUsers()
		if err := s.store.Save(ctx, collectionName, records); err != nil {
			return nil, err
		}
		s.metrics.IncrementCollectionsGenerated(collectionName)
	}
	return records, nil
}

// All returns every user in stored order.
func (s *Service) All(ctx context.Context) ([]User, error) {
	return s.load(ctx)
}

// Random returns one user picked uniformly at random.
func (s *Service) Random(ctx context.Context) (User, error) {
	records, err := s.load(ctx)
	if err != nil {
		return User{}, err
	}
	if len(records) == 0 {
		return User{}, dErrors.New(dErrors.CodeNotFound, "no user data available")
	}
	s.mu.Lock()
	i := s.rng.Intn(len(records))
	s.mu.Unlock()
	return records[i], nil
}

// ByID returns the user with the given id.
func (s *Service) ByID(ctx context.Context, id int) (User, error) {
	records, err := s.load(ctx)
	if err != nil {
		return User{}, err
	}
	spec := &query.Spec{}
	spec.EqualInt("id", id)
	matches := query.Apply(records, spec)
	if len(matches) == 0 {
		return User{}, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	return matches[0], nil
}
