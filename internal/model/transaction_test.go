package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionLabel(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{"assign", Transaction{Kind: KindAssign, ToOwnerID: 1}, "ASSIGN"},
		{"unassign", Transaction{Kind: KindUnassign, FromOwnerID: 1}, "UNASSIGN"},
		{"repair", Transaction{Kind: KindRepair, Amount: 7}, "REPAIR by 7"},
		{"repair to max", Transaction{Kind: KindRepair, Amount: 10, HitMax: true}, "REPAIR by 10 (hit max)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tx.Label())
		})
	}
}

func TestTransactionDisplayTime(t *testing.T) {
	ts := time.Date(2025, time.March, 4, 17, 5, 9, 0, time.UTC)
	tx := Transaction{Kind: KindAssign, Timestamp: ts}

	assert.Equal(t, "03-04-2025 17:05:09 UTC", tx.DisplayTime(time.UTC))

	est := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, "03-04-2025 12:05:09 EST", tx.DisplayTime(est))
}

func TestNewTransactionIDMonotonic(t *testing.T) {
	at := time.Now()
	a := NewTransactionID(at)
	b := NewTransactionID(at)

	assert.Equal(t, -1, a.Compare(b), "ids minted in the same millisecond must sort in order")
	assert.Equal(t, uint64(at.UnixMilli()), a.Time())
}
