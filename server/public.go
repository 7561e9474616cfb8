package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/codforge/codforge"
	"github.com/codforge/codforge/render"
	"github.com/codforge/codforge/store"
)

// lookupPublished fetches a published page by slug. Drafts and unknown
// slugs both come back as not found.
func (s *Server) lookupPublished(ctx context.Context, slug string) (*store.Page, bool, error) {
	page, isThankYou, err := s.store.GetPageBySlug(ctx, slug)
	if err != nil {
		return nil, false, err
	}
	if !page.IsPublished {
		return nil, false, store.ErrNotFound
	}
	return page, isThankYou, nil
}

func (s *Server) site(ctx context.Context) render.Site {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		s.logger.Warn("loading site settings", zap.Error(err))
		return render.Site{}
	}
	return render.Site{Name: settings.SiteName, FooterText: settings.FooterText}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, isThankYou, err := s.lookupPublished(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("page lookup", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	site := s.site(r.Context())

	var html string
	if isThankYou {
		doc := page.ThankYouContent
		if doc == nil {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		html, err = s.renderer.ThankYou(doc, site, q.Get("name"), q.Get("phone"))
	} else {
		html, err = s.renderer.Page(&page.Content, site)
	}
	if err != nil {
		s.logger.Error("rendering page", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, isThankYou, err := s.lookupPublished(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) || (err == nil && isThankYou) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("page lookup", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	// Card checkout fails in the page script and flips the buyer to
	// cash on delivery. Only COD finalizations are accepted here.
	if method := r.PostFormValue("payment_method"); method != "cod" {
		http.Error(w, "only cash on delivery is accepted", http.StatusUnprocessableEntity)
		return
	}

	doc := &page.Content
	sub := codforge.OrderSubmission{
		Fields:        make(map[codforge.FormFieldID]string),
		PaymentMethod: "cod",
		CustomerIP:    clientIP(r),
		Selections: codforge.AddonSelections{
			Insurance: r.PostFormValue("insurance") == "1",
			Gadget:    r.PostFormValue("gadget") == "1",
		},
	}
	for _, field := range doc.FormConfiguration {
		if !field.Enabled {
			continue
		}
		value := strings.TrimSpace(r.PostFormValue(string(field.ID)))
		if value == "" && field.Required {
			http.Error(w, fmt.Sprintf("missing required field %q", field.ID), http.StatusBadRequest)
			return
		}
		sub.Fields[field.ID] = value
	}

	s.notifier.NotifyOrder(r.Context(), doc, sub)
	s.hub.MarkPurchase(sub.CustomerIP, "/"+slug)

	http.Redirect(w, r, s.thankYouTarget(page, sub), http.StatusSeeOther)
}

// thankYouTarget picks the post-checkout destination: the external
// override when set, the paired thank-you slug with personalization
// carried in the query, or back to the page itself.
func (s *Server) thankYouTarget(page *store.Page, sub codforge.OrderSubmission) string {
	if custom := strings.TrimSpace(page.Content.CustomThankYouURL); custom != "" {
		return custom
	}
	if page.ThankYouSlug == "" {
		return "/" + page.Slug
	}
	q := url.Values{}
	if name := sub.Fields[codforge.FieldName]; name != "" {
		q.Set("name", name)
	}
	if phone := sub.Fields[codforge.FieldPhone]; phone != "" {
		q.Set("phone", phone)
	}
	target := "/" + page.ThankYouSlug
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	return target
}

// handleEvents streams social-proof toasts for one page as server-sent
// events and tracks the connection in the presence hub.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, isThankYou, err := s.lookupPublished(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) || (err == nil && isThankYou) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	visitor := Visitor{
		ID:       uuid.NewString(),
		IP:       clientIP(r),
		OnlineAt: time.Now().UTC(),
		PageURL:  "/" + slug,
	}
	if s.locator != nil {
		lctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		if loc, err := s.locator.LookupIP(lctx, visitor.IP); err == nil {
			visitor.City = loc.City
			visitor.Country = loc.Country
			visitor.Lat = loc.Lat
			visitor.Lon = loc.Lon
		} else {
			s.logger.Debug("visitor geolocation", zap.Error(err))
		}
		cancel()
	}
	s.hub.Join(visitor)
	defer s.hub.Leave(visitor.ID)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	feed := codforge.NewSocialProofFeed(&page.Content)
	for event := range feed.Run(r.Context()) {
		payload, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "event: proof\ndata: %s\n\n", payload)
		flusher.Flush()
	}
}

func clientIP(r *http.Request) string {
	// chi's RealIP middleware already folds X-Forwarded-For and
	// X-Real-IP into RemoteAddr.
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}
