package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"clinicaacosta.org/clinic-web/internal/config"
	"clinicaacosta.org/clinic-web/internal/content"
	"clinicaacosta.org/clinic-web/internal/i18n"
	"clinicaacosta.org/clinic-web/internal/insurance"
	mw "clinicaacosta.org/clinic-web/internal/middleware"
	"clinicaacosta.org/clinic-web/internal/relay"
)

var (
	cfg         config.Config
	bundle      *i18n.Bundle
	pages       *content.Store
	plans       *insurance.Catalog
	relayClient *relay.Client

	devMode   bool
	tmplCache *template.Template
)

func main() {
	c, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	var addr string
	flag.StringVar(&addr, "addr", c.Addr, "HTTP listen address")
	flag.StringVar(&c.TemplatesDir, "templates", c.TemplatesDir, "templates directory")
	flag.StringVar(&c.PublicDir, "public", c.PublicDir, "public assets directory")
	flag.Parse()
	c.Addr = addr
	cfg = c
	devMode = cfg.Dev()

	bundle, err = i18n.Load(cfg.LocalesDir, cfg.DefaultLang, cfg.SupportedLangs)
	if err != nil {
		log.Fatalf("locales: %v", err)
	}
	pages = content.NewStore(cfg.ContentDir)
	plans = insurance.Default()
	relayClient = relay.NewClient(cfg.RelayEndpoint, cfg.RelayAccessKey)

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v)", cfg.Addr, devMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Locale(bundle))
	r.Use(mw.CSRF)
	r.Use(mw.VaryLocale)
	r.Use(mw.Motion)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets/", mw.AssetsWithCache(filepath.Join(cfg.PublicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/about", AboutHandler)
	r.Get("/services", ServicesHandler)
	r.Get("/services/rail", ServicesRailFrag)
	r.Get("/insurance", InsuranceHandler)
	r.Get("/insurance/results", InsuranceResultsFrag)
	r.Get("/gallery", GalleryHandler)
	r.Get("/gallery/strip", GalleryStripFrag)
	r.Get("/contact", ContactHandler)
	r.Post("/contact", ContactSubmitHandler)
	r.Get("/providers/{slug}", ProviderHandler)
	r.Get("/coming-soon", ComingSoonHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":    time.Now,
		"safeJS": func(s string) template.JS { return template.JS(s) },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(cfg.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", cfg.TemplatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}
