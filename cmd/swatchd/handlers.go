package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"

	"github.com/packviz/swatch"
)

// server is the directory-serving side of the visualizer: it lists the
// result tables and hands them out byte for byte. It never writes; the
// swatch CLI owns the files.
type server struct {
	results string
	docroot string
}

func (s *server) mux() http.Handler {
	mux := httprouter.New()
	mux.GET("/list_csv", s.listHandler)
	mux.GET("/packing_data/:filename", s.fileHandler)
	// Everything else is the visualizer's static assets.
	mux.NotFound = http.FileServer(http.Dir(s.docroot))
	return mux
}

// listHandler returns the matching filenames in the results directory as a
// JSON array. An absent or empty directory is an empty listing, not an
// error; the visualizer just shows nothing to open.
func (s *server) listHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	names, err := swatch.Matches(s.results)
	if err != nil {
		log.WithFields(log.Fields{
			"results": s.results,
			"error":   err,
		}).Warn("could not list results")
	}
	if names == nil {
		names = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(names); err != nil {
		log.WithFields(log.Fields{"error": err}).Error("writing listing")
	}
}

// fileHandler serves one result table as CSV. Only bare filenames matching
// the result pattern are served; anything else, including traversal
// attempts, is a 404, same as a file that does not exist.
func (s *server) fileHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("filename")
	if !swatch.IsResultFile(name) {
		log.WithFields(log.Fields{"filename": name}).Warn("rejected file request")
		s.notFound(w, name)
		return
	}

	f, err := os.Open(filepath.Join(s.results, name))
	if err != nil {
		s.notFound(w, name)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "text/csv")
	if _, err := io.Copy(w, f); err != nil {
		log.WithFields(log.Fields{
			"filename": name,
			"error":    err,
		}).Error("writing file")
	}
}

func (s *server) notFound(w http.ResponseWriter, name string) {
	http.Error(w, fmt.Sprintf("File Not Found: %s", name), http.StatusNotFound)
}
