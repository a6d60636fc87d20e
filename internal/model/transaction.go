package model

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// TransactionKind identifies the event recorded by a transaction.
type TransactionKind string

// Transaction kinds.
const (
	KindAssign   TransactionKind = "ASSIGN"
	KindUnassign TransactionKind = "UNASSIGN"
	KindRepair   TransactionKind = "REPAIR"
)

// DisplayLayout is the layout used when showing transaction times to people.
const DisplayLayout = "01-02-2006 15:04:05 MST"

// Transaction is an immutable record of an ownership or repair event.
// ToOwnerID is set only for assignments, FromOwnerID only for unassignments,
// Amount and HitMax only for repairs.
type Transaction struct {
	ID          ulid.ULID       `json:"id"`
	Kind        TransactionKind `json:"type"`
	ItemID      int64           `json:"item_id"`
	Timestamp   time.Time       `json:"timestamp"`
	ToOwnerID   int64           `json:"to_owner_id,omitempty"`
	FromOwnerID int64           `json:"from_owner_id,omitempty"`
	Amount      int             `json:"amount,omitempty"`
	HitMax      bool            `json:"hit_max,omitempty"`
}

// Label renders the transaction type the way it is shown in item histories.
func (t Transaction) Label() string {
	if t.Kind != KindRepair {
		return string(t.Kind)
	}
	label := fmt.Sprintf("REPAIR by %d", t.Amount)
	if t.HitMax {
		label += " (hit max)"
	}
	return label
}

// DisplayTime formats the timestamp in loc. A nil loc means local time.
func (t Transaction) DisplayTime(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.Timestamp.In(loc).Format(DisplayLayout)
}

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

// NewTransactionID returns a ULID stamped with at.
func NewTransactionID(at time.Time) ulid.ULID {
	entropyLock.Lock()
	defer entropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), entropy)
}
