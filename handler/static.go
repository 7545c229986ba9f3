package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gorilla/mux"
)

// RegisterStatic serves a built single-page frontend from dir. Paths that
// match no file fall back to index.html so client-side routes resolve.
// Call it after RegisterRoutes.
func RegisterStatic(r *mux.Router, dir string) {
	r.PathPrefix("/").Methods("GET", "HEAD").Handler(spaHandler{dir: dir})
}

type spaHandler struct {
	dir string
}

func (s spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(s.dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if fi, err := os.Stat(name); err != nil || fi.IsDir() {
		http.ServeFile(w, r, filepath.Join(s.dir, "index.html"))
		return
	}
	http.FileServer(http.Dir(s.dir)).ServeHTTP(w, r)
}
