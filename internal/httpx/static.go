package httpx

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterStatic serves index.html at / and the rest of site under /static/.
// site must contain "static/index.html".
func RegisterStatic(r chi.Router, site fs.FS) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, site, "static/index.html")
	})
	r.Handle("/static/*", http.FileServer(http.FS(site)))
}
