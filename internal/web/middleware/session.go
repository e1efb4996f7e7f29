// Package middleware provides HTTP middleware for the rollcall page.
package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/good-yellow-bee/rollcall/internal/session"
)

type contextKey string

// SessionContextKey carries the viewer's session in the request context.
const SessionContextKey contextKey = "session"

// WithSession attaches a session to every request. Unlike a protected
// area, the activity page is public: viewers without a valid cookie get
// a fresh anonymous session rather than a redirect.
func WithSession(store *session.Store, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie("session_id"); err == nil {
				if sess, ok := store.Get(cookie.Value); ok {
					ctx := context.WithValue(r.Context(), SessionContextKey, sess)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			sess, err := store.Create()
			if err != nil {
				log.Printf("create session: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     "session_id",
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secureCookies,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the session attached by WithSession, or nil.
func GetSession(r *http.Request) *session.Session {
	if sess, ok := r.Context().Value(SessionContextKey).(*session.Session); ok {
		return sess
	}
	return nil
}
