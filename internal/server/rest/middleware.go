package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rohithmohanan1/Notes/internal/logging"
	"github.com/rohithmohanan1/Notes/internal/server/auth"
)

type contextKey string

const (
	requestIDKey contextKey = "requestID"
	authUIDKey   contextKey = "authUID"
)

// requestLogger assigns each request an id and logs method, path, status
// and duration on completion.
func requestLogger(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()

			ctx := context.WithValue(r.Context(), requestIDKey, requestID)
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(ctx))

			log.Info(ctx, "request",
				"requestID", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// bearerAuth verifies an Authorization header when one is present and puts
// the verified uid into the request context. Requests without the header
// pass through untouched; a header that fails verification is rejected.
func bearerAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorBody{Message: "Invalid authorization header"})
				return
			}

			uid, err := auth.GetUIDFromToken(token, secret)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorBody{Message: "Invalid token"})
				return
			}

			ctx := context.WithValue(r.Context(), authUIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authUID returns the uid established by bearerAuth, if any.
func authUID(ctx context.Context) string {
	uid, _ := ctx.Value(authUIDKey).(string)
	return uid
}
