package handlers

import (
	"net/http"

	"github.com/good-yellow-bee/rollcall/internal/web/middleware"
)

// ShowPage refreshes the roster snapshot and renders the activity page.
// A fetch failure is rendered in place of the list; the page itself
// always loads.
func (h *Handler) ShowPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	if sess == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.sync.Refresh(r.Context())
	h.renderPage(w, r, sess)
}
