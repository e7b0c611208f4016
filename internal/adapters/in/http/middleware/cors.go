// internal/adapters/in/http/middleware/cors.go
package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the configured front-end origins. "*" allows any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Cart-Id", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Cart-Id", "X-Request-Id", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           600,
	})
}
