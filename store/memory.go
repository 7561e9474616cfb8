package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is a non-persistent Store for tests and local preview.
type MemoryStore struct {
	mu       sync.RWMutex
	pages    map[string]*Page
	settings *SiteSettings
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pages: make(map[string]*Page)}
}

// SavePage inserts or replaces a page by ID.
func (s *MemoryStore) SavePage(ctx context.Context, page *Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *page
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now().UTC()
	}
	s.pages[copied.ID] = &copied
	return nil
}

// GetPage fetches a page by ID.
func (s *MemoryStore) GetPage(ctx context.Context, id string) (*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.pages[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *page
	return &copied, nil
}

// GetPageBySlug fetches a page by landing or thank-you slug.
func (s *MemoryStore) GetPageBySlug(ctx context.Context, slug string) (*Page, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, page := range s.pages {
		if page.Slug == slug {
			copied := *page
			return &copied, false, nil
		}
		if page.ThankYouSlug != "" && page.ThankYouSlug == slug {
			copied := *page
			return &copied, true, nil
		}
	}
	return nil, false, ErrNotFound
}

// ListPages returns all pages, newest first.
func (s *MemoryStore) ListPages(ctx context.Context, publishedOnly bool) ([]*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pages []*Page
	for _, page := range s.pages {
		if publishedOnly && !page.IsPublished {
			continue
		}
		copied := *page
		pages = append(pages, &copied)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].CreatedAt.After(pages[j].CreatedAt)
	})
	return pages, nil
}

// DeletePage removes a page by ID.
func (s *MemoryStore) DeletePage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pages, id)
	return nil
}

// SaveSettings stores the settings row.
func (s *MemoryStore) SaveSettings(ctx context.Context, settings *SiteSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *settings
	s.settings = &copied
	return nil
}

// GetSettings returns the stored settings, or defaults when unset.
func (s *MemoryStore) GetSettings(ctx context.Context) (*SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return &SiteSettings{}, nil
	}
	copied := *s.settings
	return &copied, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// Verify MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
