package handlers

import (
	"fmt"
	"net/http"

	"github.com/good-yellow-bee/rollcall/internal/notify"
	"github.com/good-yellow-bee/rollcall/internal/upstream"
	"github.com/good-yellow-bee/rollcall/internal/web/middleware"
)

// HandleLogin verifies teacher credentials with the sign-up service.
// The outcome is shown as a notice and the page is re-rendered in
// place; only a successful login refreshes the roster, because only
// then does the rendered privilege state change.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	if sess == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if h.loginLimiter != nil && !h.loginLimiter.Allow(middleware.ClientKey(r)) {
		w.WriteHeader(http.StatusTooManyRequests)
		h.notices.Show(sess.ID, "Too many login attempts. Please try again later.", notify.SeverityError)
		h.renderPage(w, r, sess)
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.notices.Show(sess.ID, "Invalid form data", notify.SeverityError)
		h.renderPage(w, r, sess)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.notices.Show(sess.ID, "Username and password are required", notify.SeverityError)
		h.renderPage(w, r, sess)
		return
	}

	teacher, err := h.manager.Login(r.Context(), sess, username, password)
	if err != nil {
		if rej, ok := upstream.AsRejection(err); ok {
			text := rej.Detail
			if text == "" {
				text = "Login failed"
			}
			w.WriteHeader(http.StatusUnauthorized)
			h.notices.Show(sess.ID, text, notify.SeverityError)
		} else {
			h.notices.Show(sess.ID, "Login failed. Please try again.", notify.SeverityError)
		}
		h.renderPage(w, r, sess)
		return
	}

	h.notices.Show(sess.ID, fmt.Sprintf("Welcome, %s!", teacher.Name), notify.SeveritySuccess)
	h.sync.Refresh(r.Context())
	h.renderPage(w, r, sess)
}

// HandleLogout clears the session locally. No server call is made and
// the roster is re-fetched so removal affordances disappear at once.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	if sess == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.manager.Logout(sess)
	h.notices.Show(sess.ID, "Logged out successfully", notify.SeverityInfo)
	h.sync.Refresh(r.Context())
	h.renderPage(w, r, sess)
}
