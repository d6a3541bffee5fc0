package handlers

import (
	"net/http"

	"github.com/go-logr/logr"
	"github.com/pierrenodet/lunium-site/config"
)

func Custom404Handler(cfg *config.SiteConfiguration, log logr.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		html, err := renderPage(cfg, "Page not found", "404.plush.html", nil)
		if err != nil {
			log.Error(err, "rendering 404 page", "path", r.URL.Path)
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		writeHTML(w, http.StatusNotFound, html)
	}
}
