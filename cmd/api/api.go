package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/obrascdmx/obras_tracker/internal/obras/territory"
	"github.com/obrascdmx/obras_tracker/internal/store"
)

type application struct {
	config  config
	store   store.Storage
	matcher *territory.Matcher
}

type config struct {
	addr    string
	dataDir string
	db      dbConfig
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Route("/obras", func(r chi.Router) {
			r.Get("/", app.handleListObras)
			r.Post("/", app.handleCreateObra)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.handleGetObra)
				r.Put("/", app.handleUpdateObra)
				r.Delete("/", app.handleDeleteObra)
			})
		})
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/resumen", app.handleDashboardSummary)
			r.Get("/territorial", app.handleDashboardTerritorial)
			r.Get("/budget-by-direction", app.handleBudgetByDirection)
			r.Get("/kpis", app.handleDashboardKPIs)
			r.Get("/critical-projects", app.handleCriticalProjects)
			r.Get("/risk-analysis", app.handleRiskAnalysis)
			r.Get("/recent-activity", app.handleRecentActivity)
		})
		r.Route("/import", func(r chi.Router) {
			r.Get("/history", app.handleGetImportHistory)
			r.Post("/", app.handleTriggerImport)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	log.Printf("Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}
