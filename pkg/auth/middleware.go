package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/shopcatalog/pkg/httpx"
	"github.com/ghuser/shopcatalog/pkg/logger"
)

const sessionName = "shopcatalog_session"
const sessionUserIDKey = "user_id"

// RequireAuth is a chi middleware that gates mutating catalog routes behind
// session-cookie authentication. It reads the session cookie, extracts the
// user ID, and injects it into the request context. The catalog service never
// sees the identity; which caller may create/update/remove/reseed is purely a
// policy decision made here.
//
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a
// valid user_id. After this middleware, handlers can safely call
// auth.UserIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userIDStr, ok := session.Values[sessionUserIDKey].(string)
			if !ok || userIDStr == "" {
				log.WarnContext(r.Context(), "session missing user_id")
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid user_id in session", "user_id", userIDStr, "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
