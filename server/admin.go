package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/codforge/codforge"
	"github.com/codforge/codforge/store"
)

// requireAdmin guards the admin API with a bearer token. With no token
// configured the whole API is withheld.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.adminToken == "" {
			http.NotFound(w, r)
			return
		}
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			s.respondError(w, http.StatusUnauthorized, "invalid or missing bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encoding response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "malformed JSON body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("published") == "true"
	pages, err := s.store.ListPages(r.Context(), publishedOnly)
	if err != nil {
		s.logger.Error("listing pages", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "listing pages failed")
		return
	}
	s.respondJSON(w, http.StatusOK, pages)
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var page store.Page
	if !s.readJSON(w, r, &page) {
		return
	}
	if page.Slug == "" {
		s.respondError(w, http.StatusBadRequest, "slug is required")
		return
	}
	if page.ID == "" {
		page.ID = uuid.NewString()
	}
	if page.CreatedAt.IsZero() {
		page.CreatedAt = time.Now().UTC()
	}
	if page.ProductName == "" {
		page.ProductName = page.Content.Headline
	}
	if err := s.store.SavePage(r.Context(), &page); err != nil {
		s.logger.Error("saving page", zap.String("id", page.ID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "saving page failed")
		return
	}
	s.respondJSON(w, http.StatusCreated, &page)
}

func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.store.GetPage(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "loading page failed")
		return
	}
	s.respondJSON(w, http.StatusOK, page)
}

// handleUpdatePage replaces a page whole. Last writer wins.
func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := s.store.GetPage(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "loading page failed")
		return
	}

	var page store.Page
	if !s.readJSON(w, r, &page) {
		return
	}
	page.ID = id
	if page.CreatedAt.IsZero() {
		page.CreatedAt = existing.CreatedAt
	}
	if err := s.store.SavePage(r.Context(), &page); err != nil {
		s.logger.Error("saving page", zap.String("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "saving page failed")
		return
	}
	s.respondJSON(w, http.StatusOK, &page)
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePage(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusInternalServerError, "deleting page failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type generateRequest struct {
	Product     codforge.ProductDetails `json:"product"`
	ReviewCount int                     `json:"reviewCount"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.generator == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no generation provider configured")
		return
	}
	var req generateRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Product.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "product name is required")
		return
	}
	doc, err := s.generator.Generate(r.Context(), req.Product, req.ReviewCount)
	if err != nil {
		s.logger.Error("generating page", zap.String("product", req.Product.Name), zap.Error(err))
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

type translateRequest struct {
	Target string `json:"target"`
}

// handleTranslate returns the translated document without persisting
// it; the operator saves it as a new page once reviewed.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if s.translator == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no translation provider configured")
		return
	}
	page, err := s.store.GetPage(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "loading page failed")
		return
	}
	var req translateRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if !codforge.IsSupportedLanguage(req.Target) {
		s.respondError(w, http.StatusBadRequest, "unsupported target language")
		return
	}
	doc, err := s.translator.Translate(r.Context(), &page.Content, req.Target)
	if err != nil {
		s.logger.Error("translating page", zap.String("id", page.ID), zap.String("target", req.Target), zap.Error(err))
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

type reviewsRequest struct {
	Count int `json:"count"`
}

func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	if s.generator == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no generation provider configured")
		return
	}
	page, err := s.store.GetPage(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "loading page failed")
		return
	}
	var req reviewsRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	reviews, err := s.generator.GenerateReviews(r.Context(), &page.Content, req.Count)
	if err != nil {
		s.logger.Error("generating reviews", zap.String("id", page.ID), zap.Error(err))
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, reviews)
}

type imageVariantRequest struct {
	Style        string `json:"style"`
	CustomPrompt string `json:"customPrompt,omitempty"`
}

type imagesRequest struct {
	Variants []imageVariantRequest `json:"variants"`
}

type imagesResponse struct {
	Page   *store.Page `json:"page"`
	Added  int         `json:"added"`
	Failed int         `json:"failed"`
}

// handleImages generates style-conditioned variants of the page's hero
// image and appends the successes to its gallery. Individual variant
// failures are reported in the response without failing the request.
func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	if s.generator == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no generation provider configured")
		return
	}
	page, err := s.store.GetPage(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "loading page failed")
		return
	}
	var req imagesRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if page.Content.HeroImage == "" {
		s.respondError(w, http.StatusBadRequest, "page has no hero image")
		return
	}

	variants := make([]codforge.ImageVariant, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, codforge.ImageVariant{
			Style:        codforge.ImageStyle(v.Style),
			CustomPrompt: v.CustomPrompt,
		})
	}
	if len(variants) == 0 {
		variants = []codforge.ImageVariant{
			{Style: codforge.ImageStyleTechnical},
			{Style: codforge.ImageStyleBeforeAfter},
			{Style: codforge.ImageStyleLifestyle},
		}
	}

	var added, failed int
	for res := range s.generator.EnrichImages(r.Context(), page.Content.HeroImage, variants) {
		if res.Err != nil {
			s.logger.Warn("gallery image failed", zap.String("id", page.ID), zap.Error(res.Err))
			failed++
			continue
		}
		if page.Content.AppendGalleryImage(res.Image) {
			added++
		}
	}
	if added == 0 && failed > 0 {
		s.respondError(w, http.StatusBadGateway, "image generation failed")
		return
	}
	if added > 0 {
		if err := s.store.SavePage(r.Context(), page); err != nil {
			s.logger.Error("saving page", zap.String("id", page.ID), zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, "saving page failed")
			return
		}
	}
	s.respondJSON(w, http.StatusOK, imagesResponse{Page: page, Added: added, Failed: failed})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "loading settings failed")
		return
	}
	s.respondJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings store.SiteSettings
	if !s.readJSON(w, r, &settings) {
		return
	}
	if err := s.store.SaveSettings(r.Context(), &settings); err != nil {
		s.respondError(w, http.StatusInternalServerError, "saving settings failed")
		return
	}
	s.respondJSON(w, http.StatusOK, &settings)
}

func (s *Server) handlePresence(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.hub.Snapshot())
}
