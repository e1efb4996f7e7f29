// Package templates renders the activity page.
package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/good-yellow-bee/rollcall/internal/models"
	"github.com/good-yellow-bee/rollcall/internal/notify"
	"github.com/good-yellow-bee/rollcall/internal/roster"
)

//go:embed index.html.tmpl
var files embed.FS

var page = template.Must(template.ParseFS(files, "index.html.tmpl"))

// PageData is everything the activity page needs to render.
type PageData struct {
	Teacher   *models.Teacher // nil for anonymous viewers
	Notice    *notify.Notice  // nil when no transient notice is live
	View      roster.View
	CSRFField template.HTML
}

// RenderPage writes the activity page to w.
func RenderPage(w io.Writer, data PageData) error {
	return page.ExecuteTemplate(w, "index.html.tmpl", data)
}
