package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/custodian/internal/imaging"
	"github.com/erazemk/custodian/internal/model"
	"github.com/erazemk/custodian/internal/store"
)

// maxPhotoBytes bounds photo uploads.
const maxPhotoBytes = 5 << 20

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	Store    *store.Store
	Location *time.Location
}

type itemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type historyEntry struct {
	model.Transaction
	Label       string `json:"label"`
	DisplayTime string `json:"display_time"`
}

// List handles GET /api/items. The optional name query is a glob pattern.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("name")
	if pattern == "" {
		jsonResponse(w, http.StatusOK, h.Store.FindAllItems())
		return
	}

	items, err := h.Store.FindItems(pattern)
	if err != nil {
		storeError(w, "failed to search items", err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := h.Store.AddItem(req.Name, req.Description)

	slog.Info("item created", "user", currentUser(r), "item", item.Name, "item_id", item.ID)
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, found := h.Store.FindItemByID(id)
	if !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.UpdateItem(id, req.Name, req.Description)
	if err != nil {
		storeError(w, "failed to update item", err)
		return
	}

	slog.Info("item updated", "user", currentUser(r), "item_id", id)
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	h.Store.DeleteItem(id)

	slog.Info("item deleted", "user", currentUser(r), "item_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// UploadPhoto handles PUT /api/items/{id}/photo with a multipart "photo" file.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	if _, found := h.Store.FindItemByID(id); !found {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes+1<<20)
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Normalize(file, imaging.Options{MaxBytes: maxPhotoBytes})
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		jsonError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	case err != nil:
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.SetItemPhoto(id, photo.Data, photo.MIME); err != nil {
		storeError(w, "failed to save photo", err)
		return
	}

	slog.Info("item photo uploaded", "user", currentUser(r), "item_id", id, "bytes", len(photo.Data))
	jsonResponse(w, http.StatusOK, map[string]any{
		"mime":   photo.MIME,
		"width":  photo.Width,
		"height": photo.Height,
	})
}

// GetPhoto handles GET /api/items/{id}/photo. With ?size=thumb a small
// rendition is returned.
func (h *ItemsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := h.Store.ItemPhoto(id)
	if err != nil {
		storeError(w, "failed to get photo", err)
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	if r.URL.Query().Get("size") == "thumb" {
		thumb, err := imaging.Thumbnail(data, mime)
		if err != nil {
			slog.Error("failed to render thumbnail", "item_id", id, "error", err)
			jsonError(w, http.StatusInternalServerError, "failed to render thumbnail")
			return
		}
		data, mime = thumb.Data, thumb.MIME
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("error writing photo", "item_id", id, "error", err)
	}
}

// GetHistory handles GET /api/items/{id}/history.
func (h *ItemsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	history, err := h.Store.ItemHistory(id)
	if err != nil {
		storeError(w, "failed to get item history", err)
		return
	}

	entries := make([]historyEntry, 0, len(history))
	for _, tx := range history {
		entries = append(entries, historyEntry{
			Transaction: tx,
			Label:       tx.Label(),
			DisplayTime: tx.DisplayTime(h.Location),
		})
	}
	jsonResponse(w, http.StatusOK, entries)
}
