package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
	"github.com/MrSnakeDoc/courtscan/internal/httpserver/handlers"
)

func init() { Register(registerDay) }

func registerDay(r chi.Router, d deps.Deps) {
	r.Post("/api/day", handlers.Day(d))
}
