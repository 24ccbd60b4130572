package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the portal frontend at appURL. An empty appURL allows any origin.
func CORS(appURL string) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if appURL != "" {
		origins = []string{appURL}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: appURL != "",
		MaxAge:           300,
	})
}
