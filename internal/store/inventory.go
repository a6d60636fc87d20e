package store

import (
	"github.com/erazemk/custodian/internal/model"
)

// Stats summarizes the store contents.
type Stats struct {
	Owners   int `json:"owners"`
	Items    int `json:"items"`
	Assigned int `json:"assigned"`
	Worn     int `json:"worn"`
}

// OwnerItems returns the items the owner holds, in the order they were assigned.
func (s *Store) OwnerItems(ownerID int64) ([]model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.owners[ownerID]
	if !ok {
		return nil, ownerNotFound(ownerID)
	}
	out := make([]model.Item, 0, len(o.ItemIDs))
	for _, id := range o.ItemIDs {
		if it, ok := s.items[id]; ok {
			out = append(out, it.Clone())
		}
	}
	return out, nil
}

// UnassignedItems returns every item without an owner, ordered by ID.
func (s *Store) UnassignedItems() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedItems(s.items, func(it *model.Item) bool { return !it.Owned() })
}

// Stats counts owners, items, assigned items and items too worn to assign.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Owners: len(s.owners), Items: len(s.items)}
	for _, it := range s.items {
		if it.Owned() {
			st.Assigned++
		}
		if it.Worn() {
			st.Worn++
		}
	}
	return st
}
