package handlers

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	"github.com/pierrenodet/lunium-site/config"
	"github.com/pierrenodet/lunium-site/utils"
	"github.com/pkg/errors"
)

// Options locate the directories the preview server reads from.
type Options struct {
	// StaticDir holds the images and other assets referenced by the config.
	StaticDir string
	// Root is the directory customDocsPath is relative to.
	Root string
}

type site struct {
	cfg    *config.SiteConfiguration
	router *mux.Router
}

// Preview serves a rendered preview of the site configuration. The
// configuration can be swapped while serving with Reload.
type Preview struct {
	opts    Options
	log     logr.Logger
	current atomic.Pointer[site]
}

func NewPreview(cfg *config.SiteConfiguration, opts Options, log logr.Logger) *Preview {
	if opts.StaticDir == "" {
		opts.StaticDir = "static"
	}
	if opts.Root == "" {
		opts.Root = "."
	}

	p := &Preview{opts: opts, log: log}
	p.Reload(cfg)
	return p
}

// Reload replaces the configuration being served. Requests already in flight
// finish with the previous one.
func (p *Preview) Reload(cfg *config.SiteConfiguration) {
	p.current.Store(&site{cfg: cfg, router: p.setupRouter(cfg)})
}

// Config returns the configuration currently being served.
func (p *Preview) Config() *config.SiteConfiguration {
	return p.current.Load().cfg
}

func (p *Preview) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.current.Load().router.ServeHTTP(w, r)
}

func (p *Preview) docsFS(cfg *config.SiteConfiguration) fs.FS {
	return os.DirFS(filepath.Join(p.opts.Root, cfg.CustomDocsPath))
}

func (p *Preview) setupRouter(cfg *config.SiteConfiguration) *mux.Router {
	router := mux.NewRouter()
	base := cfg.BaseURL

	router.NotFoundHandler = Custom404Handler(cfg, p.log)

	if base != "/" {
		router.Handle("/", http.RedirectHandler(base, http.StatusFound)).Methods("GET")
	}

	router.HandleFunc(base, p.indexHandler(cfg)).Methods("GET")
	router.HandleFunc(base+"docs/{doc:.+}", p.docHandler(cfg)).Methods("GET")
	router.HandleFunc(base+"siteConfig.json", p.configHandler(cfg)).Methods("GET")
	router.HandleFunc(base+"sitemap.xml", p.sitemapHandler(cfg)).Methods("GET")

	// Set up static file serving
	router.PathPrefix(base).Handler(http.StripPrefix(base, staticHandler(p.opts.StaticDir, router.NotFoundHandler)))

	return router
}

// docPages lists the doc pages, treating a missing docs directory as empty.
func (p *Preview) docPages(cfg *config.SiteConfiguration) ([]config.DocPage, error) {
	pages, err := config.DocPages(p.docsFS(cfg))
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return pages, err
}

func (p *Preview) indexHandler(cfg *config.SiteConfiguration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := p.docPages(cfg)
		if err != nil {
			p.serverError(w, "listing doc pages", err)
			return
		}

		docs := make([]docEntry, 0, len(pages))
		for _, page := range pages {
			title := page.Title
			if title == "" {
				title = page.ID
			}
			docs = append(docs, docEntry{Href: cfg.DocPath(page.ID), Title: title})
		}

		html, err := renderPage(cfg, "", "index.plush.html", map[string]interface{}{
			"docs":    docs,
			"hasDocs": len(docs) > 0,
		})
		if err != nil {
			p.serverError(w, "rendering index", err)
			return
		}
		writeHTML(w, http.StatusOK, html)
	}
}

func (p *Preview) docHandler(cfg *config.SiteConfiguration) http.HandlerFunc {
	notFound := Custom404Handler(cfg, p.log)

	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSuffix(mux.Vars(r)["doc"], ".html")

		pages, err := p.docPages(cfg)
		if err != nil {
			p.serverError(w, "listing doc pages", err)
			return
		}
		page, ok := config.FindDocPage(pages, id)
		if !ok {
			notFound(w, r)
			return
		}

		content, err := fs.ReadFile(p.docsFS(cfg), page.Path)
		if err != nil {
			p.serverError(w, "reading doc page", err)
			return
		}
		_, body := config.SplitFrontMatter(content)

		title := page.Title
		if title == "" {
			title = page.ID
		}

		ctx := layoutContext(cfg, title)
		html, err := renderLayout(ctx, renderMarkdown(body))
		if err != nil {
			p.serverError(w, "rendering doc page", err)
			return
		}
		writeHTML(w, http.StatusOK, html)
	}
}

func (p *Preview) sitemapHandler(cfg *config.SiteConfiguration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := p.docPages(cfg)
		if err != nil {
			p.serverError(w, "listing doc pages", err)
			return
		}

		sitemap, err := utils.GenerateSitemapContent(cfg, pages, time.Now())
		if err != nil {
			p.serverError(w, "generating sitemap", err)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write(sitemap)
	}
}

func (p *Preview) configHandler(cfg *config.SiteConfiguration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			p.log.Error(err, "writing site configuration", "path", r.URL.Path)
		}
	}
}

// staticHandler serves files from dir, sending directories and missing files
// to notFound.
func staticHandler(dir string, notFound http.Handler) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(r.URL.Path, "/")))
		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			notFound.ServeHTTP(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func (p *Preview) serverError(w http.ResponseWriter, what string, err error) {
	p.log.Error(err, "preview request failed", "step", what)
	http.Error(w, fmt.Sprintf("Error %s: %v", what, err), http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(html))
}
