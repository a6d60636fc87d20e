package codec

import (
	"maps"
	"slices"

	"github.com/erazemk/custodian/internal/model"
)

// ReconcileReport counts the owner-side references that were discarded.
type ReconcileReport struct {
	Missing   int // item no longer exists
	Duplicate int // listed twice by the same owner
	Claimed   int // already held by an owner with a lower ID
}

// Dropped returns the total number of discarded references.
func (r ReconcileReport) Dropped() int {
	return r.Missing + r.Duplicate + r.Claimed
}

// Reconcile resolves every owner's item list against the canonical item
// table and points each resolved item back at its owner. Owners are visited
// in ascending ID order so the first claimant keeps a contested item.
// Both maps are modified in place.
func Reconcile(owners map[int64]*model.Owner, items map[int64]*model.Item) ReconcileReport {
	var report ReconcileReport

	for _, it := range items {
		it.OwnerID = 0
	}

	for _, ownerID := range slices.Sorted(maps.Keys(owners)) {
		o := owners[ownerID]
		kept := make([]int64, 0, len(o.ItemIDs))
		for _, itemID := range o.ItemIDs {
			canonical, ok := items[itemID]
			switch {
			case !ok:
				report.Missing++
			case canonical.OwnerID == o.ID:
				report.Duplicate++
			case canonical.OwnerID != 0:
				report.Claimed++
			default:
				canonical.OwnerID = o.ID
				kept = append(kept, itemID)
			}
		}
		o.ItemIDs = kept
	}

	return report
}
