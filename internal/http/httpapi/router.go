package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pixelforge/internal/http/handlers"
	"pixelforge/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(app.Logger, app.Countries),
		chimw.Recoverer,
		middleware.CORS(app.Config.AllowedOrigins),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)
		r.Get("/options", app.Options)

		r.Route("/images", func(r chi.Router) {
			r.With(middleware.OptionalAuth(app.Config.JWTSecret)).Get("/", app.ImagesList)
			r.With(middleware.AuthJWT(app.Config.JWTSecret)).Post("/generate", app.ImagesGenerate)
		})
	})

	return r
}
