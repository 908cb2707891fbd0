package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
	})

	// home view: unauthenticated visitors are redirected to the login page
	router.Group(func(r chi.Router) {
		r.Use(h.authOrRedirect)
		r.Get("/", h.listStocks)
	})

	// protected routes: unauthenticated access is rejected outright
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/logout", h.logout)
		r.Get("/add_stock", h.addStockForm)
		r.Post("/add_stock", h.addStock)
		r.Get("/delete", h.deleteStock)
	})

	return router
}
