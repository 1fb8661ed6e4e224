// Package server exposes the storefront over HTTP: a JSON API for every user
// action plus server-rendered pages. The selection state it owns is the
// single source of truth; pages and API responses are projections of it.
package server

import (
	"net/http"

	"github.com/ghalymotors/showroom/internal/utils"
	"github.com/ghalymotors/showroom/pkg/catalog"
	"github.com/ghalymotors/showroom/pkg/selection"
	"github.com/ghalymotors/showroom/pkg/storage"
)

// Features gates optional storefront surfaces. A disabled feature's routes
// answer 404.
type Features struct {
	Comparison  bool
	Favorites   bool
	Sharing     bool
	TestDrive   bool
	ContactForm bool
}

// Config carries the business and auth settings the handlers need.
type Config struct {
	Username string
	Password string

	Company  string
	Currency string
	BaseURL  string

	Makes      []string
	BodyStyles []string

	Features Features
}

type Server struct {
	Catalog *catalog.Catalog
	State   *selection.State
	DB      *storage.DB
	Config  Config
}

func New(cat *catalog.Catalog, state *selection.State, db *storage.DB, cfg Config) *Server {
	return &Server{
		Catalog: cat,
		State:   state,
		DB:      db,
		Config:  cfg,
	}
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API group
	mux.HandleFunc("GET /api/vehicles", s.basicAuth(s.handleVehicles))
	mux.HandleFunc("GET /api/vehicles/{id}", s.basicAuth(s.handleVehicle))
	mux.HandleFunc("POST /api/vehicles/{id}/open", s.basicAuth(s.handleOpenVehicle))
	mux.HandleFunc("POST /api/vehicles/close", s.basicAuth(s.handleCloseVehicle))
	mux.HandleFunc("GET /api/filters", s.basicAuth(s.handleFilters))
	mux.HandleFunc("POST /api/search", s.basicAuth(s.handleSearch))
	mux.HandleFunc("POST /api/filters/make/toggle", s.basicAuth(s.handleToggleMake))
	mux.HandleFunc("POST /api/filters/style/toggle", s.basicAuth(s.handleToggleStyle))
	mux.HandleFunc("POST /api/sort", s.basicAuth(s.handleSort))
	mux.HandleFunc("POST /api/filters/reset", s.basicAuth(s.handleResetFilters))
	mux.HandleFunc("GET /api/stats", s.basicAuth(s.handleStats))
	mux.HandleFunc("GET /api/preferences/dark-mode", s.basicAuth(s.handleGetDarkMode))
	mux.HandleFunc("POST /api/preferences/dark-mode", s.basicAuth(s.handleSetDarkMode))

	if s.Config.Features.Favorites {
		mux.HandleFunc("GET /api/favorites", s.basicAuth(s.handleFavorites))
		mux.HandleFunc("POST /api/favorites/{id}/toggle", s.basicAuth(s.handleToggleFavorite))
	}
	if s.Config.Features.Comparison {
		mux.HandleFunc("GET /api/compare", s.basicAuth(s.handleCompareMatrix))
		mux.HandleFunc("POST /api/compare/{id}/toggle", s.basicAuth(s.handleToggleCompare))
		mux.HandleFunc("DELETE /api/compare", s.basicAuth(s.handleClearCompare))
	}
	if s.Config.Features.Sharing {
		mux.HandleFunc("GET /api/vehicles/{id}/share", s.basicAuth(s.handleShare))
	}
	if s.Config.Features.TestDrive {
		mux.HandleFunc("POST /api/leads/test-drive", s.basicAuth(s.handleTestDriveLead))
	}
	if s.Config.Features.ContactForm {
		mux.HandleFunc("POST /api/leads/contact", s.basicAuth(s.handleContactLead))
	}

	// Rendered pages
	mux.HandleFunc("GET /{$}", s.basicAuth(s.handleIndexPage))
	mux.HandleFunc("GET /vehicle/{id}", s.basicAuth(s.handleVehiclePage))
	mux.HandleFunc("GET /compare", s.basicAuth(s.handleComparePage))
	mux.HandleFunc("GET /about", s.basicAuth(s.handleAboutPage))

	return mux
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Config.Username == "" && s.Config.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Config.Username || pass != s.Config.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
