package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/custodian/internal/store"
)

// InventoryHandler handles store-wide endpoints.
type InventoryHandler struct {
	Store *store.Store
}

// Unassigned handles GET /api/items/unassigned.
func (h *InventoryHandler) Unassigned(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.UnassignedItems())
}

// Stats handles GET /api/stats.
func (h *InventoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Stats())
}

// Save handles POST /api/admin/save.
func (h *InventoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Save(r.Context()); err != nil {
		storeError(w, "failed to save store", err)
		return
	}
	slog.Info("store saved", "user", currentUser(r))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "saved"})
}
