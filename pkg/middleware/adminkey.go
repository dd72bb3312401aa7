package middleware

import (
	"net/http"

	"room-reservation/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminKey guards admin routes with a shared key. The configured value is a
// bcrypt hash so the plaintext key never lives in config.
func AdminKey(keyHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				logger.Error("Admin key hash not configured, rejecting admin request",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access not configured")
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing X-Admin-Key header")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.Warn("Admin key rejected", zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
