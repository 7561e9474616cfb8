// Package store persists landing pages and site settings.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/codforge/codforge"
)

// ErrNotFound is returned when no page matches the lookup.
var ErrNotFound = errors.New("store: page not found")

// Page is one persisted landing page with its optional paired
// thank-you document. Content is stored and replaced as a whole.
type Page struct {
	ID              string                    `json:"id"`
	CreatedAt       time.Time                 `json:"created_at"`
	ProductName     string                    `json:"product_name"`
	Niche           string                    `json:"niche,omitempty"`
	IsPublished     bool                      `json:"is_published"`
	Slug            string                    `json:"slug"`
	ThankYouSlug    string                    `json:"thank_you_slug,omitempty"`
	Content         codforge.ContentDocument  `json:"content"`
	ThankYouContent *codforge.ContentDocument `json:"thank_you_content,omitempty"`
}

// SiteSettings is the single-row site configuration, upserted whole.
type SiteSettings struct {
	SiteName   string `json:"siteName"`
	FooterText string `json:"footerText"`
}

// Store is the persistence surface the server works against.
type Store interface {
	// SavePage inserts or replaces a page by ID.
	SavePage(ctx context.Context, page *Page) error

	// GetPage fetches a page by ID.
	GetPage(ctx context.Context, id string) (*Page, error)

	// GetPageBySlug fetches a page whose slug or thank-you slug
	// matches. The second return value is true when the match was the
	// thank-you slug.
	GetPageBySlug(ctx context.Context, slug string) (*Page, bool, error)

	// ListPages returns all pages, newest first. When publishedOnly is
	// set, drafts are excluded.
	ListPages(ctx context.Context, publishedOnly bool) ([]*Page, error)

	// DeletePage removes a page by ID. Deleting a missing page is not
	// an error.
	DeletePage(ctx context.Context, id string) error

	// SaveSettings upserts the site settings row.
	SaveSettings(ctx context.Context, settings *SiteSettings) error

	// GetSettings returns the site settings, or zero-value settings
	// when none were saved yet.
	GetSettings(ctx context.Context) (*SiteSettings, error)

	// Close releases the underlying resources.
	Close() error
}
