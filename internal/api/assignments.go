package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/custodian/internal/model"
	"github.com/erazemk/custodian/internal/store"
)

// AssignmentsHandler handles assign, unassign and repair endpoints.
type AssignmentsHandler struct {
	Store *store.Store
}

type repairRequest struct {
	Amount *int `json:"amount"`
}

type repairResponse struct {
	Item   model.Item `json:"item"`
	HitMax bool       `json:"hit_max"`
}

func assignmentIDs(w http.ResponseWriter, r *http.Request) (ownerID, itemID int64, ok bool) {
	ownerID, ok = pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid owner id")
		return 0, 0, false
	}
	itemID, ok = pathID(r, "itemID")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return 0, 0, false
	}
	return ownerID, itemID, true
}

// Assign handles POST /api/owners/{id}/items/{itemID}.
func (h *AssignmentsHandler) Assign(w http.ResponseWriter, r *http.Request) {
	ownerID, itemID, ok := assignmentIDs(w, r)
	if !ok {
		return
	}

	if !h.Store.AssignItemToOwner(ownerID, itemID) {
		jsonError(w, http.StatusConflict, "item cannot be assigned to this owner")
		return
	}

	item, _ := h.Store.FindItemByID(itemID)
	slog.Info("item assigned", "user", currentUser(r), "item_id", itemID, "owner_id", ownerID, "condition", item.Condition)
	jsonResponse(w, http.StatusOK, item)
}

// Unassign handles DELETE /api/owners/{id}/items/{itemID}.
func (h *AssignmentsHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	ownerID, itemID, ok := assignmentIDs(w, r)
	if !ok {
		return
	}

	if !h.Store.UnassignItemFromOwner(ownerID, itemID) {
		jsonError(w, http.StatusConflict, "item is not held by this owner")
		return
	}

	item, _ := h.Store.FindItemByID(itemID)
	slog.Info("item unassigned", "user", currentUser(r), "item_id", itemID, "owner_id", ownerID)
	jsonResponse(w, http.StatusOK, item)
}

// Repair handles POST /api/items/{id}/repair.
func (h *AssignmentsHandler) Repair(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req repairRequest
	if err := decodeJSON(r, &req); err != nil || req.Amount == nil {
		jsonError(w, http.StatusBadRequest, "amount required")
		return
	}
	if err := store.ValidateRepairAmount(*req.Amount); err != nil {
		storeError(w, "invalid repair amount", err)
		return
	}

	hitMax, err := h.Store.RepairItem(id, *req.Amount)
	if err != nil {
		storeError(w, "failed to repair item", err)
		return
	}

	item, _ := h.Store.FindItemByID(id)
	slog.Info("item repaired", "user", currentUser(r), "item_id", id, "amount", *req.Amount, "hit_max", hitMax)
	jsonResponse(w, http.StatusOK, repairResponse{Item: item, HitMax: hitMax})
}
