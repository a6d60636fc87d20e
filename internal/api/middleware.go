package api

import (
	"bytes"
	"log/slog"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/erazemk/custodian/internal/auth"
	"github.com/erazemk/custodian/internal/model"
	"github.com/erazemk/custodian/internal/store"
)

// AuthMiddleware validates the bearer token, rejects revoked tokens and
// stores the session in the request context.
func AuthMiddleware(secret string, revoker *auth.Revoker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				jsonError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			claims, err := auth.ValidateToken(secret, tokenStr)
			if err != nil {
				jsonError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if revoker.IsRevoked(claims.ID) {
				jsonError(w, http.StatusUnauthorized, "token revoked")
				return
			}

			ctx := auth.WithSession(r.Context(), auth.SessionFromClaims(claims))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that checks if the user has at least the given role.
func RequireRole(minimum model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := auth.SessionFrom(r.Context())
			if !ok {
				jsonError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			if !model.RoleAtLeast(session.Role, minimum) {
				jsonError(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// currentUser returns the session username for log lines.
func currentUser(r *http.Request) string {
	session, _ := auth.SessionFrom(r.Context())
	return session.Username
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// bufferedResponse holds a handler's response until it is committed.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// commit copies the buffered response to w.
func (b *bufferedResponse) commit(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	if b.status == 0 {
		b.status = http.StatusOK
	}
	w.WriteHeader(b.status)
	if b.body.Len() == 0 {
		return
	}
	if _, err := w.Write(b.body.Bytes()); err != nil {
		slog.Error("error writing response", "error", err)
	}
}

// AutosaveMiddleware saves the store after every handler that succeeds. The
// handler's response is held back until the save completes; if the save
// fails the client gets a 500 with the PERSISTENCE_FAILURE code instead.
func AutosaveMiddleware(s *store.Store, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := &bufferedResponse{header: make(http.Header)}
			next.ServeHTTP(buf, r)
			if buf.status >= http.StatusBadRequest {
				buf.commit(w)
				return
			}
			if err := s.Save(r.Context()); err != nil {
				storeError(w, "change applied but autosave failed", err)
				return
			}
			buf.commit(w)
		})
	}
}

// LoggingMiddleware logs HTTP requests with method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
