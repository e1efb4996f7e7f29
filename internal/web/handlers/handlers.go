// Package handlers implements the activity page endpoints.
package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/good-yellow-bee/rollcall/internal/models"
	"github.com/good-yellow-bee/rollcall/internal/mutate"
	"github.com/good-yellow-bee/rollcall/internal/notify"
	"github.com/good-yellow-bee/rollcall/internal/roster"
	"github.com/good-yellow-bee/rollcall/internal/session"
	"github.com/good-yellow-bee/rollcall/internal/web/middleware"
	"github.com/good-yellow-bee/rollcall/internal/web/templates"
)

// Handler carries the wiring shared by every page endpoint.
type Handler struct {
	manager      *session.Manager
	sync         *roster.Synchronizer
	ctrl         *mutate.Controller
	notices      *notify.Center
	loginLimiter *middleware.LoginLimiter
}

// NewHandler wires the page endpoints together.
func NewHandler(
	manager *session.Manager,
	sync *roster.Synchronizer,
	ctrl *mutate.Controller,
	notices *notify.Center,
	loginLimiter *middleware.LoginLimiter,
) *Handler {
	return &Handler{
		manager:      manager,
		sync:         sync,
		ctrl:         ctrl,
		notices:      notices,
		loginLimiter: loginLimiter,
	}
}

// renderPage writes the activity page for the viewer. The view is
// derived from the current snapshot and the session's login state at
// this instant, so affordances never outlive a logout.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var teacher *models.Teacher
	if t, ok := sess.Teacher(); ok {
		teacher = &t
	}

	var notice *notify.Notice
	if n, ok := h.notices.Current(sess.ID); ok {
		notice = &n
	}

	data := templates.PageData{
		Teacher:   teacher,
		Notice:    notice,
		View:      h.sync.View(sess.IsAuthenticated()),
		CSRFField: csrf.TemplateField(r),
	}

	if err := templates.RenderPage(w, data); err != nil {
		log.Printf("render page: %v", err)
	}
}
