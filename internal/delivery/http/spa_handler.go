package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// spaHandler serves files from staticDir and falls back to the entry
// document for paths that do not map to an existing file.
type spaHandler struct {
	staticDir string
	indexFile string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Clean with a leading slash so the path cannot escape staticDir.
	path := filepath.Join(h.staticDir, filepath.Clean("/"+req.URL.Path))

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err) || (err == nil && info.IsDir()):
		http.ServeFile(w, req, filepath.Join(h.staticDir, h.indexFile))
	case err != nil:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		http.FileServer(http.Dir(h.staticDir)).ServeHTTP(w, req)
	}
}
