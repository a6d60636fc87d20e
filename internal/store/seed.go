package store

import (
	"time"

	"github.com/erazemk/custodian/internal/model"
)

var defaultOwners = []string{"Harry Potter", "Hermione Granger"}

var defaultItems = []struct{ name, description string }{
	{"Invisibility Cloak", "A magical cloak that makes the wearer invisible."},
	{"Time-Turner", "A device used for time travel."},
}

func seedOwners(now time.Time) map[int64]*model.Owner {
	owners := make(map[int64]*model.Owner, len(defaultOwners))
	for i, name := range defaultOwners {
		id := int64(i + 1)
		owners[id] = &model.Owner{ID: id, Name: name, ItemIDs: []int64{}, CreatedAt: now}
	}
	return owners
}

func seedItems(now time.Time) map[int64]*model.Item {
	items := make(map[int64]*model.Item, len(defaultItems))
	for i, d := range defaultItems {
		id := int64(i + 1)
		items[id] = &model.Item{
			ID:          id,
			Name:        d.name,
			Description: d.description,
			Condition:   model.ConditionMax,
			History:     []model.Transaction{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return items
}
