package main

import (
	"flag"
	"mime"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	log "github.com/sirupsen/logrus"

	"github.com/packviz/swatch"
)

var (
	fAddr    = flag.String("addr", "", "Listen address. Overrides server.addr from swatch.toml.")
	fDir     = flag.String("dir", "", "Results directory. Overrides results from swatch.toml.")
	fDocroot = flag.String("docroot", "", "Static document root. Overrides server.docroot from swatch.toml.")
)

func main() {
	flag.Parse()

	cfg, err := swatch.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	if *fAddr != "" {
		cfg.Server.Addr = *fAddr
	}
	if *fDir != "" {
		cfg.Results = *fDir
	}
	if *fDocroot != "" {
		cfg.Server.Docroot = *fDocroot
	}

	// The visualizer fetches tables by bare filename and expects CSV,
	// whichever endpoint serves them.
	if err := mime.AddExtensionType(".csv", "text/csv"); err != nil {
		log.Fatal(err)
	}

	s := &server{results: cfg.Results, docroot: cfg.Server.Docroot}

	log.WithFields(log.Fields{
		"addr":    cfg.Server.Addr,
		"results": cfg.Results,
		"docroot": cfg.Server.Docroot,
		"version": swatch.Version,
	}).Info("listening")
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handlers.LoggingHandler(os.Stdout, s.mux())))
}
