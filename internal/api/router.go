package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isanz/inkwell-be/internal/api/handlers"
	"github.com/isanz/inkwell-be/internal/auth"
	"github.com/isanz/inkwell-be/internal/services"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures a new Chi router. The identity resolver
// runs on every request; the protected subtree additionally requires a
// resolved user.
func NewRouter(frontendOrigin string, codec auth.TokenCodec, userService services.UserServiceProvider, postService services.PostServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// CORS configuration; the origin comes from FRONTEND_ORIGIN
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(auth.ResolveIdentity(codec, userService))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, codec)
	postHandler := handlers.NewPostHandler(postService)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Everything below requires a logged-in user; anonymous callers
		// are redirected to the landing page.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser)

			r.Get("/dashboard", postHandler.Dashboard)

			r.Route("/posts", func(r chi.Router) {
				r.Post("/", postHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", postHandler.Get)
					r.Patch("/", postHandler.Update)
					r.Delete("/", postHandler.Delete)
				})
			})
		})
	})

	return r
}

// requestLogger logs one line per request through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
