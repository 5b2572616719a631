package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	boletoHandler "github.com/ricardoas/boleteiro/internal/http/boleto"
	"github.com/ricardoas/boleteiro/internal/http/ingest"
)

func New(boletosV1 *boletoHandler.Handler, ingestV1 *ingest.Handler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/boletos", func(r chi.Router) {
			boletosV1.Routes(r)

			r.Route("/import", ingestV1.Routes)
		})
	})

	return router
}
