package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemClone(t *testing.T) {
	orig := Item{
		ID:        1,
		Name:      "Time-Turner",
		Condition: 80,
		History:   []Transaction{{Kind: KindAssign, ItemID: 1, ToOwnerID: 2}},
		Photo:     []byte{1, 2, 3},
	}

	c := orig.Clone()
	c.History[0].ToOwnerID = 9
	c.Photo[0] = 9
	c.History = append(c.History, Transaction{Kind: KindUnassign})

	assert.Equal(t, int64(2), orig.History[0].ToOwnerID)
	assert.Equal(t, byte(1), orig.Photo[0])
	assert.Len(t, orig.History, 1)
}

func TestItemCloneEmptyHistory(t *testing.T) {
	orig := Item{ID: 3}
	c := orig.Clone()
	assert.NotNil(t, c.History)
	assert.Empty(t, c.History)
}

func TestItemWorn(t *testing.T) {
	assert.True(t, (&Item{Condition: 9}).Worn())
	assert.False(t, (&Item{Condition: 10}).Worn())
}

func TestClampCondition(t *testing.T) {
	assert.Equal(t, 0, ClampCondition(-4))
	assert.Equal(t, 55, ClampCondition(55))
	assert.Equal(t, 100, ClampCondition(140))
}

func TestOrDefault(t *testing.T) {
	name := "Cloak"
	assert.Equal(t, "Cloak", OrDefault(&name, MissingName))
	assert.Equal(t, MissingName, OrDefault(nil, MissingName))
}

func TestOwnerItemSet(t *testing.T) {
	o := Owner{ID: 1, Name: "Harry Potter"}

	assert.True(t, o.AddItemID(3))
	assert.True(t, o.AddItemID(1))
	assert.False(t, o.AddItemID(3))
	assert.Equal(t, []int64{3, 1}, o.ItemIDs)

	assert.True(t, o.RemoveItemID(3))
	assert.False(t, o.RemoveItemID(3))
	assert.Equal(t, []int64{1}, o.ItemIDs)

	c := o.Clone()
	c.ItemIDs[0] = 42
	assert.Equal(t, int64(1), o.ItemIDs[0])
}
