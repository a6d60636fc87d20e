// Package store is the authority over owners, items and their relationship.
// Every mutation passes through a Store, which keeps both sides of each
// ownership link consistent and records assignment and repair events in the
// affected item's history.
package store

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/custodian/internal/docstore"
	"github.com/erazemk/custodian/internal/metrics"
	"github.com/erazemk/custodian/internal/model"
)

// Store holds the owner and item tables. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	// saveMu orders whole saves so an older snapshot never lands after a newer one.
	saveMu sync.Mutex

	owners      map[int64]*model.Owner
	items       map[int64]*model.Item
	users       map[string]model.User
	nextOwnerID int64
	nextItemID  int64

	clock        func() time.Time
	backend      docstore.Backend
	logger       *slog.Logger
	metrics      *metrics.Metrics
	passwordCost int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithBackend sets where Load and Save read and write documents.
// Without one, a memory backend is used.
func WithBackend(b docstore.Backend) Option {
	return func(s *Store) { s.backend = b }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithMetrics enables metric recording.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithPasswordCost sets the bcrypt cost used to hash the seeded user passwords.
func WithPasswordCost(cost int) Option {
	return func(s *Store) { s.passwordCost = cost }
}

// New creates an empty store with the seeded users. Call Load to populate
// owners and items from the backend.
func New(opts ...Option) *Store {
	s := &Store{
		owners:       make(map[int64]*model.Owner),
		items:        make(map[int64]*model.Item),
		nextOwnerID:  1,
		nextItemID:   1,
		clock:        time.Now,
		logger:       slog.Default(),
		passwordCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		s.backend = docstore.NewMemory()
	}
	s.users = seedUsers(s.passwordCost)
	return s
}

// now returns the current time truncated to whole seconds.
func (s *Store) now() time.Time {
	return s.clock().Truncate(time.Second)
}

// record appends a transaction to the item's history. Callers hold the write lock.
func (s *Store) record(it *model.Item, tx model.Transaction) model.Transaction {
	tx.ItemID = it.ID
	tx.Timestamp = s.now()
	tx.ID = model.NewTransactionID(tx.Timestamp)
	it.History = append(it.History, tx)
	return tx
}

// updateGauges refreshes the entity gauges. Callers hold the lock.
func (s *Store) updateGauges() {
	s.metrics.SetCounts(len(s.owners), len(s.items))
}

func sortedOwners(table map[int64]*model.Owner) []model.Owner {
	out := make([]model.Owner, 0, len(table))
	for _, id := range slices.Sorted(maps.Keys(table)) {
		out = append(out, table[id].Clone())
	}
	return out
}

func sortedItems(table map[int64]*model.Item, keep func(*model.Item) bool) []model.Item {
	out := make([]model.Item, 0, len(table))
	for _, id := range slices.Sorted(maps.Keys(table)) {
		if keep == nil || keep(table[id]) {
			out = append(out, table[id].Clone())
		}
	}
	return out
}
