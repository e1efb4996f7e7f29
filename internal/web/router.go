package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/good-yellow-bee/rollcall/internal/web/middleware"
)

// Routes builds the page router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(s.verbose))
	r.Use(middleware.Prometheus)

	// Static files and health (no CSRF, no session)
	r.Handle("/static/*", http.StripPrefix("/static/", s.StaticFS()))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Page routes
	r.Group(func(r chi.Router) {
		csrfMiddleware := csrf.Protect(
			s.csrfKey,
			csrf.Secure(s.secureCookies),
			csrf.Path("/"),
		)
		r.Use(csrfMiddleware)
		r.Use(middleware.WithSession(s.sessions, s.secureCookies))

		r.Get("/", s.handler.ShowPage)
		r.Post("/login", s.handler.HandleLogin)
		r.Post("/logout", s.handler.HandleLogout)
		r.Post("/signup", s.handler.HandleSignup)
		r.Post("/unregister", s.handler.HandleUnregister)
	})

	return r
}
