package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
	"github.com/MrSnakeDoc/courtscan/internal/httpserver/handlers"
)

func init() { Register(registerVenues) }

func registerVenues(r chi.Router, d deps.Deps) {
	r.Get("/api/venues", handlers.Venues(d))
}
