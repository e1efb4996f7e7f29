package handlers

import (
	"net/http"

	"github.com/good-yellow-bee/rollcall/internal/notify"
	"github.com/good-yellow-bee/rollcall/internal/web/middleware"
)

// HandleSignup enrolls a student in an activity. All outcome handling
// (precondition, notice, refresh-on-success) lives in the mutation
// controller; the handler re-renders whatever state that left behind.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	if sess == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.notices.Show(sess.ID, "Invalid form data", notify.SeverityError)
		h.renderPage(w, r, sess)
		return
	}

	activity := r.FormValue("activity")
	email := r.FormValue("email")
	if activity == "" || email == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.notices.Show(sess.ID, "Activity and email are required", notify.SeverityError)
		h.renderPage(w, r, sess)
		return
	}

	h.ctrl.Signup(r.Context(), sess, activity, email)
	h.renderPage(w, r, sess)
}

// HandleUnregister removes a participant from an activity roster.
func (h *Handler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	if sess == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.notices.Show(sess.ID, "Invalid form data", notify.SeverityError)
		h.renderPage(w, r, sess)
		return
	}

	activity := r.FormValue("activity")
	email := r.FormValue("email")
	if activity == "" || email == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.notices.Show(sess.ID, "Activity and email are required", notify.SeverityError)
		h.renderPage(w, r, sess)
		return
	}

	h.ctrl.Unregister(r.Context(), sess, activity, email)
	h.renderPage(w, r, sess)
}
