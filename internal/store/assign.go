package store

import (
	"github.com/samber/oops"

	"github.com/erazemk/custodian/internal/metrics"
	"github.com/erazemk/custodian/internal/model"
)

// AssignItemToOwner gives the item to the owner. It returns false without
// changing anything when either ID is unknown, the item is too worn, or the
// owner already holds it. An item held by someone else is taken from them.
// A successful assignment wears the item and records an ASSIGN transaction.
func (s *Store) AssignItemToOwner(ownerID, itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := s.assign(ownerID, itemID)
	s.metrics.RecordAssignment(metrics.OpAssign, applied)
	return applied
}

func (s *Store) assign(ownerID, itemID int64) bool {
	o, ok := s.owners[ownerID]
	if !ok {
		return false
	}
	it, ok := s.items[itemID]
	if !ok {
		return false
	}
	if it.Worn() || it.OwnerID == ownerID {
		return false
	}

	if prev, ok := s.owners[it.OwnerID]; ok {
		prev.RemoveItemID(itemID)
		s.logger.Debug("item reassigned", "item_id", itemID, "from_owner_id", prev.ID, "to_owner_id", ownerID)
	}
	o.AddItemID(itemID)
	it.OwnerID = ownerID
	it.Condition = model.ClampCondition(it.Condition - model.AssignWear)
	it.UpdatedAt = s.now()
	s.record(it, model.Transaction{Kind: model.KindAssign, ToOwnerID: ownerID})
	return true
}

// UnassignItemFromOwner takes the item back from the owner. It returns false
// when either ID is unknown or the owner does not hold the item. Condition is
// left unchanged and an UNASSIGN transaction is recorded.
func (s *Store) UnassignItemFromOwner(ownerID, itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := s.unassign(ownerID, itemID)
	s.metrics.RecordAssignment(metrics.OpUnassign, applied)
	return applied
}

func (s *Store) unassign(ownerID, itemID int64) bool {
	o, ok := s.owners[ownerID]
	if !ok {
		return false
	}
	it, ok := s.items[itemID]
	if !ok || it.OwnerID != ownerID {
		return false
	}

	o.RemoveItemID(itemID)
	it.OwnerID = 0
	it.UpdatedAt = s.now()
	s.record(it, model.Transaction{Kind: model.KindUnassign, FromOwnerID: ownerID})
	return true
}

// ValidateRepairAmount checks that a repair amount lies within 0..100.
func ValidateRepairAmount(amount int) error {
	if amount < model.ConditionMin || amount > model.ConditionMax {
		return oops.Code(CodeValidationFailure).
			With("amount", amount).
			Errorf("repair amount must be between %d and %d", model.ConditionMin, model.ConditionMax)
	}
	return nil
}

// RepairItem raises the item's condition by amount and records a REPAIR
// transaction. The condition is capped at 100; hitMax reports whether the
// cap was reached. Amounts are not validated here.
func (s *Store) RepairItem(itemID int64, amount int) (hitMax bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[itemID]
	if !ok {
		return false, itemNotFound(itemID)
	}

	repaired := it.Condition + amount
	hitMax = repaired >= model.ConditionMax
	it.Condition = model.ClampCondition(repaired)
	it.UpdatedAt = s.now()
	s.record(it, model.Transaction{Kind: model.KindRepair, Amount: amount, HitMax: hitMax})
	s.metrics.RecordRepair(hitMax)
	return hitMax, nil
}
