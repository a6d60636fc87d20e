package model

import (
	"slices"
	"time"
)

// Placeholders stored when a caller supplies no name or description.
const (
	MissingName        = "name must not be null"
	MissingDescription = "description must not be null"
)

// Condition bounds and the wear rules applied to items.
const (
	ConditionMin = 0
	ConditionMax = 100

	// ConditionAssignable is the lowest condition at which an item may be assigned.
	ConditionAssignable = 10

	// AssignWear is the condition an item loses each time it is assigned.
	AssignWear = 5
)

// Item represents an individually tracked asset, held by at most one owner.
type Item struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Condition   int           `json:"condition"`
	OwnerID     int64         `json:"owner_id,omitempty"`
	History     []Transaction `json:"history"`
	Photo       []byte        `json:"-"`
	PhotoMIME   string        `json:"photo_mime,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Owned reports whether the item is currently held by an owner.
func (i *Item) Owned() bool {
	return i.OwnerID != 0
}

// Worn reports whether the item is too worn to be assigned.
func (i *Item) Worn() bool {
	return i.Condition < ConditionAssignable
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() Item {
	c := *i
	c.History = slices.Clone(i.History)
	if c.History == nil {
		c.History = []Transaction{}
	}
	c.Photo = slices.Clone(i.Photo)
	return c
}

// ClampCondition limits a condition value to the valid range.
func ClampCondition(c int) int {
	return min(max(c, ConditionMin), ConditionMax)
}

// OrDefault returns *s, or def when s is nil.
func OrDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
