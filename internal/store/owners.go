package store

import (
	"github.com/erazemk/custodian/internal/model"
)

// AddOwner creates an owner with the next owner ID.
func (s *Store) AddOwner(name string) model.Owner {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := &model.Owner{
		ID:        s.nextOwnerID,
		Name:      name,
		ItemIDs:   []int64{},
		CreatedAt: s.now(),
	}
	s.nextOwnerID++
	s.owners[o.ID] = o
	s.updateGauges()
	return o.Clone()
}

// FindOwnerByID returns the owner with the given ID.
func (s *Store) FindOwnerByID(id int64) (model.Owner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.owners[id]
	if !ok {
		return model.Owner{}, false
	}
	return o.Clone(), true
}

// FindAllOwners returns every owner ordered by ID.
func (s *Store) FindAllOwners() []model.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedOwners(s.owners)
}

// UpdateOwner renames an owner.
func (s *Store) UpdateOwner(id int64, name string) (model.Owner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.owners[id]
	if !ok {
		return model.Owner{}, ownerNotFound(id)
	}
	o.Name = name
	return o.Clone(), nil
}

// DeleteOwner removes an owner and releases every item it held.
// Deleting an unknown owner does nothing.
func (s *Store) DeleteOwner(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.owners[id]
	if !ok {
		return
	}
	for _, itemID := range o.ItemIDs {
		if it, ok := s.items[itemID]; ok && it.OwnerID == id {
			it.OwnerID = 0
		}
	}
	delete(s.owners, id)
	s.updateGauges()
}
