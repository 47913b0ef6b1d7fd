package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS разрешает браузерному клиенту обращаться к API с указанных источников.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding"},
		MaxAge:         300,
	}
	// credentials нельзя совмещать с "*"
	if allowedOrigins[0] != "*" {
		opts.AllowCredentials = true
	}

	return cors.Handler(opts)
}
