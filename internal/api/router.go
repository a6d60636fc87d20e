// Package api exposes the store over a JSON HTTP API.
package api

import (
	"net/http"
	"time"

	"github.com/erazemk/custodian/internal/auth"
	"github.com/erazemk/custodian/internal/metrics"
	"github.com/erazemk/custodian/internal/model"
	"github.com/erazemk/custodian/internal/store"
)

// Config carries the dependencies shared by the handlers.
type Config struct {
	Store     *store.Store
	JWTSecret string
	Revoker   *auth.Revoker    // nil creates a private one
	Metrics   *metrics.Metrics // nil disables /metrics
	Location  *time.Location   // zone for transaction display times
	Autosave  bool             // save after every successful change
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(cfg Config) http.Handler {
	if cfg.Revoker == nil {
		cfg.Revoker = auth.NewRevoker()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	mux := http.NewServeMux()

	authHandler := &AuthHandler{Store: cfg.Store, JWTSecret: cfg.JWTSecret, Revoker: cfg.Revoker}
	ownersHandler := &OwnersHandler{Store: cfg.Store}
	itemsHandler := &ItemsHandler{Store: cfg.Store, Location: cfg.Location}
	assignHandler := &AssignmentsHandler{Store: cfg.Store}
	inventoryHandler := &InventoryHandler{Store: cfg.Store}

	authMW := AuthMiddleware(cfg.JWTSecret, cfg.Revoker)
	requireAdmin := RequireRole(model.RoleAdmin)
	saveMW := AutosaveMiddleware(cfg.Store, cfg.Autosave)

	// write wraps admin-only handlers that change the store.
	write := func(h http.HandlerFunc) http.Handler {
		return authMW(requireAdmin(saveMW(h)))
	}
	read := func(h http.HandlerFunc) http.Handler {
		return authMW(h)
	}

	// Public.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /metrics", cfg.Metrics.Handler())

	// Session.
	mux.Handle("POST /api/auth/logout", read(authHandler.Logout))
	mux.Handle("GET /api/auth/me", read(authHandler.Me))

	// Owners: read (all roles), write (admin).
	mux.Handle("GET /api/owners", read(ownersHandler.List))
	mux.Handle("POST /api/owners", write(ownersHandler.Create))
	mux.Handle("GET /api/owners/{id}", read(ownersHandler.Get))
	mux.Handle("PUT /api/owners/{id}", write(ownersHandler.Update))
	mux.Handle("DELETE /api/owners/{id}", write(ownersHandler.Delete))

	// Assignments (admin).
	mux.Handle("POST /api/owners/{id}/items/{itemID}", write(assignHandler.Assign))
	mux.Handle("DELETE /api/owners/{id}/items/{itemID}", write(assignHandler.Unassign))
	mux.Handle("POST /api/items/{id}/repair", write(assignHandler.Repair))

	// Items: read (all roles), write (admin).
	mux.Handle("GET /api/items", read(itemsHandler.List))
	mux.Handle("GET /api/items/unassigned", read(inventoryHandler.Unassigned))
	mux.Handle("POST /api/items", write(itemsHandler.Create))
	mux.Handle("GET /api/items/{id}", read(itemsHandler.Get))
	mux.Handle("PUT /api/items/{id}", write(itemsHandler.Update))
	mux.Handle("DELETE /api/items/{id}", write(itemsHandler.Delete))
	mux.Handle("PUT /api/items/{id}/photo", write(itemsHandler.UploadPhoto))
	mux.Handle("GET /api/items/{id}/photo", read(itemsHandler.GetPhoto))
	mux.Handle("GET /api/items/{id}/history", read(itemsHandler.GetHistory))

	// Inventory.
	mux.Handle("GET /api/stats", read(inventoryHandler.Stats))
	mux.Handle("POST /api/admin/save", authMW(requireAdmin(http.HandlerFunc(inventoryHandler.Save))))

	return mux
}
