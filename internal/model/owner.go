package model

import (
	"slices"
	"time"
)

// Owner represents a holder of items. ItemIDs is an ordered set.
type Owner struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ItemIDs   []int64   `json:"item_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// Holds reports whether the owner's set contains the item.
func (o *Owner) Holds(itemID int64) bool {
	return slices.Contains(o.ItemIDs, itemID)
}

// AddItemID appends the item to the set. It returns false if already present.
func (o *Owner) AddItemID(itemID int64) bool {
	if o.Holds(itemID) {
		return false
	}
	o.ItemIDs = append(o.ItemIDs, itemID)
	return true
}

// RemoveItemID removes the item from the set, preserving order.
// It returns false if the item was not present.
func (o *Owner) RemoveItemID(itemID int64) bool {
	idx := slices.Index(o.ItemIDs, itemID)
	if idx < 0 {
		return false
	}
	o.ItemIDs = slices.Delete(o.ItemIDs, idx, idx+1)
	return true
}

// Clone returns a deep copy of the owner.
func (o *Owner) Clone() Owner {
	c := *o
	c.ItemIDs = slices.Clone(o.ItemIDs)
	if c.ItemIDs == nil {
		c.ItemIDs = []int64{}
	}
	return c
}
