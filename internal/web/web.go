// Package web serves the rollcall activity page.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/good-yellow-bee/rollcall/internal/mutate"
	"github.com/good-yellow-bee/rollcall/internal/notify"
	"github.com/good-yellow-bee/rollcall/internal/roster"
	"github.com/good-yellow-bee/rollcall/internal/session"
	"github.com/good-yellow-bee/rollcall/internal/web/handlers"
	"github.com/good-yellow-bee/rollcall/internal/web/middleware"
)

//go:embed static
var staticFS embed.FS

// Config are the web server's settings.
type Config struct {
	CSRFKey       string
	SecureCookies bool
	Verbose       bool
}

// Server is the activity page server.
type Server struct {
	handler       *handlers.Handler
	sessions      *session.Store
	csrfKey       []byte
	secureCookies bool
	verbose       bool
}

// NewServer wires the page server to the session manager, roster
// synchronizer, mutation controller, and notice center.
func NewServer(
	cfg Config,
	manager *session.Manager,
	sync *roster.Synchronizer,
	ctrl *mutate.Controller,
	notices *notify.Center,
) *Server {
	// Five attempts, then one more every ten seconds per client.
	loginLimiter := middleware.NewLoginLimiter(rate.Every(10*time.Second), 5)

	return &Server{
		handler:       handlers.NewHandler(manager, sync, ctrl, notices, loginLimiter),
		sessions:      manager.Store(),
		csrfKey:       []byte(cfg.CSRFKey),
		secureCookies: cfg.SecureCookies,
		verbose:       cfg.Verbose,
	}
}

// StaticFS serves the embedded static assets.
func (s *Server) StaticFS() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Unrecoverable init error - server cannot function without static assets
		panic(fmt.Sprintf("failed to create static FS: %v", err))
	}
	return http.FileServer(http.FS(sub))
}

// Handler returns the page handler, mainly for tests.
func (s *Server) Handler() *handlers.Handler {
	return s.handler
}
