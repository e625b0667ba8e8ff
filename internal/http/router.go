package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmendezv/fiado/internal/auth"
	creditHandler "github.com/dmendezv/fiado/internal/http/credit"
	"github.com/dmendezv/fiado/internal/http/export"
	"github.com/dmendezv/fiado/internal/http/importcsv"
	"github.com/dmendezv/fiado/internal/http/login"
)

func New(
	authSvc *auth.Service,
	creditsV1 *creditHandler.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	loginV1 *login.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/login", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			loginV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)

			r.Route("/credits", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				creditsV1.Routes(r)
			})

			r.Route("/clients", creditsV1.ClientRoutes)

			r.Route("/import", importV1.Routes)

			r.Route("/export", exportV1.Routes)
		})
	})

	return router
}
