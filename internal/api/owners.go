package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/erazemk/custodian/internal/model"
	"github.com/erazemk/custodian/internal/store"
)

// OwnersHandler handles owner CRUD endpoints.
type OwnersHandler struct {
	Store *store.Store
}

type ownerRequest struct {
	Name string `json:"name"`
}

type ownerResponse struct {
	model.Owner
	Items []model.Item `json:"items"`
}

// List handles GET /api/owners.
func (h *OwnersHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.FindAllOwners())
}

// Create handles POST /api/owners.
func (h *OwnersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	owner := h.Store.AddOwner(name)

	slog.Info("owner created", "user", currentUser(r), "owner", owner.Name, "owner_id", owner.ID)
	jsonResponse(w, http.StatusCreated, owner)
}

// Get handles GET /api/owners/{id}.
func (h *OwnersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	owner, found := h.Store.FindOwnerByID(id)
	if !found {
		jsonError(w, http.StatusNotFound, "owner not found")
		return
	}
	items, err := h.Store.OwnerItems(id)
	if err != nil {
		storeError(w, "failed to list owner items", err)
		return
	}
	jsonResponse(w, http.StatusOK, ownerResponse{Owner: owner, Items: items})
}

// Update handles PUT /api/owners/{id}.
func (h *OwnersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	var req ownerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	owner, err := h.Store.UpdateOwner(id, name)
	if err != nil {
		storeError(w, "failed to update owner", err)
		return
	}

	slog.Info("owner updated", "user", currentUser(r), "owner_id", id, "name", name)
	jsonResponse(w, http.StatusOK, owner)
}

// Delete handles DELETE /api/owners/{id}.
func (h *OwnersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	h.Store.DeleteOwner(id)

	slog.Info("owner deleted", "user", currentUser(r), "owner_id", id)
	w.WriteHeader(http.StatusNoContent)
}
