package server

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"strings"

	"github.com/showupapp/showup/internal/logger"
)

const defaultUserID = "default"

type userCtxKey struct{}

// hashAPIKey creates the sha256 digest under which keys are configured.
// Plaintext keys never appear in the config file.
func hashAPIKey(apiKey string) string {
	hash := sha256.Sum256([]byte(apiKey))
	return fmt.Sprintf("%x", hash)
}

// authMiddleware resolves the requesting user. With auth disabled all
// traffic maps to a single default user; otherwise a bearer key is hashed
// and looked up in the configured key map.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.AuthEnabled {
			ctx := context.WithValue(r.Context(), userCtxKey{}, defaultUserID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		ah := r.Header.Get("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			authEventsTotal.WithLabelValues("missing_token").Inc()
			http.Error(w, `{"error":"authorization required"}`, http.StatusUnauthorized)
			return
		}

		key := strings.TrimPrefix(ah, "Bearer ")
		userID, ok := s.cfg.APIKeys[hashAPIKey(key)]
		if !ok {
			logger.Debug("Rejected unknown API key")
			authEventsTotal.WithLabelValues("failed").Inc()
			http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
			return
		}

		authEventsTotal.WithLabelValues("success").Inc()
		ctx := context.WithValue(r.Context(), userCtxKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(r *http.Request) string {
	if id, ok := r.Context().Value(userCtxKey{}).(string); ok {
		return id
	}
	return ""
}
