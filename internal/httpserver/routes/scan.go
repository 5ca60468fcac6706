package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
	"github.com/MrSnakeDoc/courtscan/internal/httpserver/handlers"
)

func init() { Register(registerScan) }

func registerScan(r chi.Router, d deps.Deps) {
	r.Post("/api/scan", handlers.ScanStart(d))
	r.Post("/api/scan/cancel", handlers.ScanCancel(d))
	r.Get("/api/scan", handlers.ScanStatus(d))
}
