package http

import (
	"net/http"

	"go-product-catalog/internal/delivery/http/handler"
	"go-product-catalog/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	productHandler    *handler.ProductHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	staticDir         string
}

func NewRouter(
	productHandler *handler.ProductHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	staticDir string,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		productHandler:    productHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		staticDir:         staticDir,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", r.productHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/products", r.productHandler.Create).Methods(http.MethodPost)

	// Everything else belongs to the front-end bundle: existing files are
	// served as-is, any other path gets the entry document so client-side
	// routing can take over.
	r.router.PathPrefix("/").Handler(spaHandler{
		staticDir: r.staticDir,
		indexFile: "index.html",
	})

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
