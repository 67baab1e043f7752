package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires the API routes, the static dashboard files, and CORS.
func NewRouter(handler *Handler, publicDir string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	if publicDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(publicDir)))
	}
	return cors.Default().Handler(r)
}
