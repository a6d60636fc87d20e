package store

import (
	"context"
	"errors"

	"github.com/samber/oops"

	"github.com/erazemk/custodian/internal/codec"
	"github.com/erazemk/custodian/internal/docstore"
	"github.com/erazemk/custodian/internal/metrics"
	"github.com/erazemk/custodian/internal/model"
)

// Load replaces the store contents with the documents held by the backend.
// Items are read first, then owners. A collection whose document is missing
// or unreadable falls back to its default entries without affecting the
// other. Owner item lists are then reconciled against the loaded items.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return oops.Code(CodePersistenceFailure).Wrapf(err, "loading store")
	}

	now := s.now()

	items, err := s.readItems(ctx)
	if err != nil {
		s.logger.Warn("using default items", "document", codec.ItemsDocument, "missing", documentMissing(err), "error", err)
		items = seedItems(now)
	}

	owners, err := s.readOwners(ctx)
	if err != nil {
		s.logger.Warn("using default owners", "document", codec.OwnersDocument, "missing", documentMissing(err), "error", err)
		owners = seedOwners(now)
	}

	report := codec.Reconcile(owners, items)
	if report.Dropped() > 0 {
		s.logger.Info("dropped stale owner references",
			"missing", report.Missing, "duplicate", report.Duplicate, "claimed", report.Claimed)
	}

	s.mu.Lock()
	s.items = items
	s.owners = owners
	s.nextItemID = codec.NextID(items)
	s.nextOwnerID = codec.NextID(owners)
	s.updateGauges()
	s.mu.Unlock()

	s.metrics.RecordPersistence(metrics.OpLoad, nil)
	s.logger.Info("store loaded", "owners", len(owners), "items", len(items), "backend", s.backend.Driver())
	return nil
}

func (s *Store) readItems(ctx context.Context) (map[int64]*model.Item, error) {
	data, err := s.backend.Read(ctx, codec.ItemsDocument)
	if err != nil {
		return nil, err
	}
	return codec.DecodeItems(data)
}

func (s *Store) readOwners(ctx context.Context) (map[int64]*model.Owner, error) {
	data, err := s.backend.Read(ctx, codec.OwnersDocument)
	if err != nil {
		return nil, err
	}
	return codec.DecodeOwners(data)
}

// Save writes both documents to the backend, items first. Saves run one at a
// time, each writing the state as of its own start. Any failure is returned
// with the PERSISTENCE_FAILURE code.
func (s *Store) Save(ctx context.Context) error {
	s.saveMu.Lock()
	err := s.save(ctx)
	s.saveMu.Unlock()
	s.metrics.RecordPersistence(metrics.OpSave, err)
	if err != nil {
		return oops.Code(CodePersistenceFailure).
			With("backend", string(s.backend.Driver())).
			Wrapf(err, "saving store")
	}
	s.logger.Debug("store saved", "backend", s.backend.Driver())
	return nil
}

func (s *Store) save(ctx context.Context) error {
	s.mu.RLock()
	itemsDoc, err := codec.EncodeItems(sortedItems(s.items, nil))
	if err != nil {
		s.mu.RUnlock()
		return err
	}
	ownersDoc, err := codec.EncodeOwners(sortedOwners(s.owners), func(id int64) string {
		if it, ok := s.items[id]; ok {
			return it.Name
		}
		return ""
	})
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := s.backend.Write(ctx, codec.ItemsDocument, itemsDoc); err != nil {
		return err
	}
	return s.backend.Write(ctx, codec.OwnersDocument, ownersDoc)
}

// Backend returns the backend used by Load and Save.
func (s *Store) Backend() docstore.Backend {
	return s.backend
}

// documentMissing reports whether err means the document was never written.
func documentMissing(err error) bool {
	return errors.Is(err, docstore.ErrNotExist)
}
