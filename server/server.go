// Package server exposes the public storefront and the admin API over
// HTTP. Public pages are looked up by slug, checkout posts back to the
// page path, and a server-sent event stream drives the social-proof
// toasts. The admin API sits behind a bearer token.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/codforge/codforge"
	"github.com/codforge/codforge/geo"
	"github.com/codforge/codforge/render"
	"github.com/codforge/codforge/store"
)

// PageGenerator produces new content documents, fresh review sets and
// gallery image variants.
type PageGenerator interface {
	Generate(ctx context.Context, product codforge.ProductDetails, reviewCount int) (*codforge.ContentDocument, error)
	GenerateReviews(ctx context.Context, doc *codforge.ContentDocument, count int) ([]codforge.Testimonial, error)
	EnrichImages(ctx context.Context, heroDataURL string, variants []codforge.ImageVariant) <-chan codforge.ImageResult
}

// PageTranslator clones a document into another supported language.
type PageTranslator interface {
	Translate(ctx context.Context, doc *codforge.ContentDocument, targetLanguage string) (*codforge.ContentDocument, error)
}

// Locator resolves a visitor address to a coarse location.
type Locator interface {
	LookupIP(ctx context.Context, ip string) (geo.Location, error)
}

// Config wires the server's collaborators. Store and Renderer are
// required; the rest degrade gracefully when absent (no admin token
// disables the admin API, no generator disables generation endpoints).
type Config struct {
	Store      store.Store
	Renderer   *render.Renderer
	Generator  PageGenerator
	Translator PageTranslator
	Notifier   *codforge.WebhookNotifier
	Locator    Locator
	Logger     *zap.Logger
	AdminToken string
}

// Server is the HTTP surface. It implements http.Handler.
type Server struct {
	store      store.Store
	renderer   *render.Renderer
	generator  PageGenerator
	translator PageTranslator
	notifier   *codforge.WebhookNotifier
	locator    Locator
	logger     *zap.Logger
	adminToken string
	hub        *Hub
	router     chi.Router
}

var _ http.Handler = (*Server)(nil)

// New builds the server and its route table.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, &codforge.ConfigurationError{Message: "server requires a page store"}
	}
	if cfg.Renderer == nil {
		return nil, &codforge.ConfigurationError{Message: "server requires a renderer"}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = codforge.NewWebhookNotifier(codforge.WithWebhookLogger(logger))
	}

	s := &Server{
		store:      cfg.Store,
		renderer:   cfg.Renderer,
		generator:  cfg.Generator,
		translator: cfg.Translator,
		notifier:   notifier,
		locator:    cfg.Locator,
		logger:     logger,
		adminToken: cfg.AdminToken,
		hub:        NewHub(),
	}
	s.router = s.routes()
	return s, nil
}

// Hub exposes the presence hub for wiring and tests.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireAdmin)

		r.Get("/pages", s.handleListPages)
		r.Post("/pages", s.handleCreatePage)
		r.Get("/pages/{id}", s.handleGetPage)
		r.Put("/pages/{id}", s.handleUpdatePage)
		r.Delete("/pages/{id}", s.handleDeletePage)

		r.Post("/generate", s.handleGenerate)
		r.Post("/pages/{id}/translate", s.handleTranslate)
		r.Post("/pages/{id}/reviews", s.handleReviews)
		r.Post("/pages/{id}/images", s.handleImages)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleSaveSettings)

		r.Get("/presence", s.handlePresence)
	})

	r.Get("/{slug}/events", s.handleEvents)
	r.Get("/{slug}", s.handlePage)
	r.Post("/{slug}", s.handleOrder)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", r.RemoteAddr),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}
