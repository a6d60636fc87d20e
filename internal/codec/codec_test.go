package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/custodian/internal/model"
)

func TestEncodeItemsOmitsOwner(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []model.Item{{
		ID: 3, Name: "Lamp", Description: "Brass", Condition: 95, OwnerID: 7,
		History: []model.Transaction{{
			ID: model.NewTransactionID(at), Kind: model.KindAssign, ItemID: 3, Timestamp: at, ToOwnerID: 7,
		}},
		CreatedAt: at, UpdatedAt: at,
	}}

	data, err := EncodeItems(items)
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "3")
	assert.NotContains(t, raw["3"], "owner_id")
	assert.Equal(t, "Lamp", raw["3"]["name"])

	history := raw["3"]["history"].([]any)
	require.Len(t, history, 1)
	assert.Equal(t, "ASSIGN", history[0].(map[string]any)["type"])
}

func TestItemsRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repair := model.Transaction{
		ID: model.NewTransactionID(at), Kind: model.KindRepair, ItemID: 1, Timestamp: at, Amount: 20, HitMax: true,
	}
	data, err := EncodeItems([]model.Item{
		{ID: 1, Name: "Cloak", Description: "Silver", Condition: 100, History: []model.Transaction{repair}},
		{ID: 4, Name: "Wand", Description: "Elder", Condition: 0},
	})
	require.NoError(t, err)

	items, err := DecodeItems(data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	cloak := items[1]
	assert.Equal(t, "Cloak", cloak.Name)
	assert.Zero(t, cloak.OwnerID)
	require.Len(t, cloak.History, 1)
	assert.Equal(t, repair.ID, cloak.History[0].ID)
	assert.True(t, cloak.History[0].HitMax)
	assert.True(t, cloak.History[0].Timestamp.Equal(at))

	assert.NotNil(t, items[4].History)
	assert.Empty(t, items[4].History)
}

func TestDecodeItemsClampsCondition(t *testing.T) {
	items, err := DecodeItems([]byte(`{"1":{"name":"a","description":"b","condition":140},"2":{"name":"c","description":"d","condition":-3}}`))
	require.NoError(t, err)
	assert.Equal(t, 100, items[1].Condition)
	assert.Equal(t, 0, items[2].Condition)
}

func TestDecodeItemsFillsMissingText(t *testing.T) {
	items, err := DecodeItems([]byte(`{"1":{"condition":50},"2":{"name":"","description":null,"condition":50},"3":{"name":"Cup","description":"Gold","condition":50}}`))
	require.NoError(t, err)

	assert.Equal(t, model.MissingName, items[1].Name)
	assert.Equal(t, model.MissingDescription, items[1].Description)
	assert.Equal(t, model.MissingName, items[2].Name)
	assert.Equal(t, model.MissingDescription, items[2].Description)
	assert.Equal(t, "Cup", items[3].Name)
	assert.Equal(t, "Gold", items[3].Description)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"1":`},
		{"array", `[1,2]`},
		{"bad key", `{"abc":{"name":"x"}}`},
		{"zero key", `{"0":{"name":"x"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeItems([]byte(tt.data))
			assert.Error(t, err)
			_, err = DecodeOwners([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestOwnersRoundTrip(t *testing.T) {
	names := map[int64]string{1: "Cloak", 2: "Time-Turner"}
	data, err := EncodeOwners([]model.Owner{
		{ID: 1, Name: "Harry", ItemIDs: []int64{2, 1}},
		{ID: 2, Name: "Ron"},
	}, func(id int64) string { return names[id] })
	require.NoError(t, err)

	var raw map[string]OwnerRecord
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []ItemRef{{ID: 2, Name: "Time-Turner"}, {ID: 1, Name: "Cloak"}}, raw["1"].Items)
	assert.NotNil(t, raw["2"].Items)

	owners, err := DecodeOwners(data)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, owners[1].ItemIDs)
	assert.Empty(t, owners[2].ItemIDs)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, int64(1), NextID(map[int64]int{}))
	assert.Equal(t, int64(8), NextID(map[int64]int{3: 0, 7: 0, 1: 0}))
}
