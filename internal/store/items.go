package store

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/oops"

	"github.com/erazemk/custodian/internal/model"
)

// AddItem creates an unowned item in perfect condition. A nil name or
// description is stored as the corresponding placeholder text.
func (s *Store) AddItem(name, description *string) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	it := &model.Item{
		ID:          s.nextItemID,
		Name:        model.OrDefault(name, model.MissingName),
		Description: model.OrDefault(description, model.MissingDescription),
		Condition:   model.ConditionMax,
		History:     []model.Transaction{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextItemID++
	s.items[it.ID] = it
	s.updateGauges()
	return it.Clone()
}

// FindItemByID returns the item with the given ID.
func (s *Store) FindItemByID(id int64) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return model.Item{}, false
	}
	return it.Clone(), true
}

// FindAllItems returns every item ordered by ID.
func (s *Store) FindAllItems() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedItems(s.items, nil)
}

// FindItems returns the items whose name matches a glob pattern such as
// "*cloak*". Matching ignores case.
func (s *Store) FindItems(pattern string) ([]model.Item, error) {
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, oops.Code(CodeValidationFailure).With("pattern", pattern).Wrapf(err, "invalid name pattern")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedItems(s.items, func(it *model.Item) bool {
		return g.Match(strings.ToLower(it.Name))
	}), nil
}

// UpdateItem replaces an item's name and description. Nil values become the
// placeholder text, the same as AddItem.
func (s *Store) UpdateItem(id int64, name, description *string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return model.Item{}, itemNotFound(id)
	}
	it.Name = model.OrDefault(name, model.MissingName)
	it.Description = model.OrDefault(description, model.MissingDescription)
	it.UpdatedAt = s.now()
	return it.Clone(), nil
}

// DeleteItem removes an item and drops it from its owner's set.
// Deleting an unknown item does nothing.
func (s *Store) DeleteItem(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return
	}
	if o, ok := s.owners[it.OwnerID]; ok {
		o.RemoveItemID(id)
	}
	delete(s.items, id)
	s.updateGauges()
}

// ItemHistory returns the item's transactions, oldest first.
func (s *Store) ItemHistory(id int64) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, itemNotFound(id)
	}
	return it.Clone().History, nil
}

// SetItemPhoto stores a photo for the item, replacing any previous one.
func (s *Store) SetItemPhoto(id int64, data []byte, mime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return itemNotFound(id)
	}
	it.Photo = append([]byte(nil), data...)
	it.PhotoMIME = mime
	it.UpdatedAt = s.now()
	return nil
}

// ItemPhoto returns the item's photo and MIME type. An item without a photo
// returns nil data and no error.
func (s *Store) ItemPhoto(id int64) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, "", itemNotFound(id)
	}
	if len(it.Photo) == 0 {
		return nil, "", nil
	}
	return append([]byte(nil), it.Photo...), it.PhotoMIME, nil
}
