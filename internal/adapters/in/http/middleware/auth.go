// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// TokenVerifier is the part of *fbauth.Client the middleware needs.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// AuthMiddleware verifies `Authorization: Bearer <ID_TOKEN>` for console routes
// and puts uid/email in the request context.
type AuthMiddleware struct {
	Verifier TokenVerifier
	Log      *zap.Logger
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	log := m.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("auth")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Verifier == nil {
			writeAuthErr(w, http.StatusServiceUnavailable, "auth middleware not initialized")
			return
		}
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthErr(w, http.StatusUnauthorized, "unauthorized: missing bearer token")
			return
		}
		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			writeAuthErr(w, http.StatusUnauthorized, "unauthorized: empty bearer token")
			return
		}

		token, err := m.Verifier.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			log.Info("invalid token", zap.String("path", r.URL.Path), zap.Error(err))
			writeAuthErr(w, http.StatusUnauthorized, "invalid token")
			return
		}
		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			writeAuthErr(w, http.StatusUnauthorized, "invalid uid in token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUID, uid)
		if e, ok := token.Claims["email"].(string); ok && strings.TrimSpace(e) != "" {
			ctx = context.WithValue(ctx, ctxKeyEmail, strings.TrimSpace(e))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUIDAndEmail returns the verified Firebase uid and email.
func CurrentUIDAndEmail(r *http.Request) (uid string, email string, ok bool) {
	u, okUID := r.Context().Value(ctxKeyUID).(string)
	if !okUID || strings.TrimSpace(u) == "" {
		return "", "", false
	}
	email, _ = r.Context().Value(ctxKeyEmail).(string)
	return u, email, true
}

func writeAuthErr(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
