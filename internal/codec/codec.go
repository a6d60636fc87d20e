// Package codec converts the owner and item collections to and from the two
// persisted documents. Owner membership is written only on the owner side;
// Reconcile restores the item back-references after both are decoded.
package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/erazemk/custodian/internal/model"
)

// Document names.
const (
	ItemsDocument  = "items.json"
	OwnersDocument = "owners.json"
)

// ItemRecord is the persisted form of an item, keyed by ID in the items document.
type ItemRecord struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Condition   int                 `json:"condition"`
	History     []model.Transaction `json:"history"`
	Photo       []byte              `json:"photo,omitempty"`
	PhotoMIME   string              `json:"photo_mime,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ItemRef is an owner-side reference to an item. Name is informational only.
type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// OwnerRecord is the persisted form of an owner, keyed by ID in the owners document.
type OwnerRecord struct {
	Name      string    `json:"name"`
	Items     []ItemRef `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// EncodeItems renders the items document.
func EncodeItems(items []model.Item) ([]byte, error) {
	doc := make(map[int64]ItemRecord, len(items))
	for _, it := range items {
		history := it.History
		if history == nil {
			history = []model.Transaction{}
		}
		doc[it.ID] = ItemRecord{
			Name:        it.Name,
			Description: it.Description,
			Condition:   it.Condition,
			History:     history,
			Photo:       it.Photo,
			PhotoMIME:   it.PhotoMIME,
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   it.UpdatedAt,
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding items: %w", err)
	}
	return data, nil
}

// EncodeOwners renders the owners document. itemName supplies the summary
// name written next to each item reference.
func EncodeOwners(owners []model.Owner, itemName func(id int64) string) ([]byte, error) {
	doc := make(map[int64]OwnerRecord, len(owners))
	for _, o := range owners {
		refs := make([]ItemRef, 0, len(o.ItemIDs))
		for _, id := range o.ItemIDs {
			ref := ItemRef{ID: id}
			if itemName != nil {
				ref.Name = itemName(id)
			}
			refs = append(refs, ref)
		}
		doc[o.ID] = OwnerRecord{Name: o.Name, Items: refs, CreatedAt: o.CreatedAt}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding owners: %w", err)
	}
	return data, nil
}

// orMissing substitutes the placeholder for a blank or absent text field.
func orMissing(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// DecodeItems parses the items document. Items come back unowned; owner
// references are restored by Reconcile.
func DecodeItems(data []byte) (map[int64]*model.Item, error) {
	var doc map[string]ItemRecord
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}

	items := make(map[int64]*model.Item, len(doc))
	for key, rec := range doc {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("decoding items: %w", err)
		}
		history := rec.History
		if history == nil {
			history = []model.Transaction{}
		}
		for i := range history {
			if history[i].ItemID == 0 {
				history[i].ItemID = id
			}
		}
		items[id] = &model.Item{
			ID:          id,
			Name:        orMissing(rec.Name, model.MissingName),
			Description: orMissing(rec.Description, model.MissingDescription),
			Condition:   model.ClampCondition(rec.Condition),
			History:     history,
			Photo:       rec.Photo,
			PhotoMIME:   rec.PhotoMIME,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		}
	}
	return items, nil
}

// DecodeOwners parses the owners document. The returned item ID lists are
// exactly as persisted and may reference items that no longer exist.
func DecodeOwners(data []byte) (map[int64]*model.Owner, error) {
	var doc map[string]OwnerRecord
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding owners: %w", err)
	}

	owners := make(map[int64]*model.Owner, len(doc))
	for key, rec := range doc {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("decoding owners: %w", err)
		}
		ids := make([]int64, 0, len(rec.Items))
		for _, ref := range rec.Items {
			ids = append(ids, ref.ID)
		}
		owners[id] = &model.Owner{ID: id, Name: rec.Name, ItemIDs: ids, CreatedAt: rec.CreatedAt}
	}
	return owners, nil
}

// NextID returns max(key)+1, or 1 for an empty table.
func NextID[T any](table map[int64]T) int64 {
	var highest int64
	for id := range table {
		highest = max(highest, id)
	}
	return highest + 1
}

func parseID(key string) (int64, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", key)
	}
	return id, nil
}
