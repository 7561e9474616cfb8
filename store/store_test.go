package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codforge/codforge"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "pages.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func samplePage(slug string) *Page {
	doc := codforge.Complete(codforge.ContentDocument{
		Language: "Italiano",
		Headline: "Prodotto Fantastico",
		Price:    "49.90",
	}, codforge.GetLocale("Italiano"))
	ty := codforge.ContentDocument{Language: "Italiano", Headline: "Grazie!"}

	return &Page{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
		ProductName:     "Prodotto Fantastico",
		Niche:           "Tech",
		IsPublished:     true,
		Slug:            slug,
		ThankYouSlug:    slug + "-grazie",
		Content:         doc,
		ThankYouContent: &ty,
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			page := samplePage("prodotto-" + name)

			if err := s.SavePage(ctx, page); err != nil {
				t.Fatal(err)
			}

			got, err := s.GetPage(ctx, page.ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.Slug != page.Slug || got.Content.Headline != "Prodotto Fantastico" {
				t.Errorf("round trip lost data: %+v", got)
			}
			if got.ThankYouContent == nil || got.ThankYouContent.Headline != "Grazie!" {
				t.Error("thank-you content lost")
			}
			if got.Content.Labels == nil {
				t.Error("label bundle not persisted")
			}

			if _, err := s.GetPage(ctx, uuid.NewString()); err != ErrNotFound {
				t.Errorf("missing page: got %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreSlugLookup(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			page := samplePage("slug-" + name)
			if err := s.SavePage(ctx, page); err != nil {
				t.Fatal(err)
			}

			got, isThankYou, err := s.GetPageBySlug(ctx, page.Slug)
			if err != nil || isThankYou {
				t.Fatalf("landing lookup: %v, thankYou=%v", err, isThankYou)
			}
			if got.ID != page.ID {
				t.Error("wrong page")
			}

			_, isThankYou, err = s.GetPageBySlug(ctx, page.ThankYouSlug)
			if err != nil || !isThankYou {
				t.Errorf("thank-you lookup: %v, thankYou=%v", err, isThankYou)
			}

			if _, _, err := s.GetPageBySlug(ctx, "nope"); err != ErrNotFound {
				t.Errorf("missing slug: got %v", err)
			}
		})
	}
}

func TestStoreListAndPublishFilter(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			older := samplePage("older-" + name)
			older.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
			newer := samplePage("newer-" + name)
			draft := samplePage("draft-" + name)
			draft.IsPublished = false

			for _, p := range []*Page{older, newer, draft} {
				if err := s.SavePage(ctx, p); err != nil {
					t.Fatal(err)
				}
			}

			all, err := s.ListPages(ctx, false)
			if err != nil {
				t.Fatal(err)
			}
			if len(all) != 3 {
				t.Fatalf("got %d pages, want 3", len(all))
			}
			if all[len(all)-1].ID != older.ID {
				t.Error("pages not newest first")
			}

			published, err := s.ListPages(ctx, true)
			if err != nil {
				t.Fatal(err)
			}
			if len(published) != 2 {
				t.Errorf("got %d published pages, want 2", len(published))
			}
		})
	}
}

func TestStoreUpdateAndDelete(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			page := samplePage("update-" + name)
			if err := s.SavePage(ctx, page); err != nil {
				t.Fatal(err)
			}

			page.Content.Headline = "Titolo Aggiornato"
			page.IsPublished = false
			if err := s.SavePage(ctx, page); err != nil {
				t.Fatal(err)
			}

			got, err := s.GetPage(ctx, page.ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.Content.Headline != "Titolo Aggiornato" || got.IsPublished {
				t.Error("update not persisted")
			}

			if err := s.DeletePage(ctx, page.ID); err != nil {
				t.Fatal(err)
			}
			if _, err := s.GetPage(ctx, page.ID); err != ErrNotFound {
				t.Errorf("after delete: got %v", err)
			}
			if err := s.DeletePage(ctx, page.ID); err != nil {
				t.Errorf("double delete must not fail: %v", err)
			}
		})
	}
}

func TestStoreSettings(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			settings, err := s.GetSettings(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if settings.SiteName != "" {
				t.Errorf("unexpected defaults: %+v", settings)
			}

			if err := s.SaveSettings(ctx, &SiteSettings{SiteName: "CODForge Shop", FooterText: "Tutti i diritti riservati"}); err != nil {
				t.Fatal(err)
			}
			if err := s.SaveSettings(ctx, &SiteSettings{SiteName: "CODForge Store", FooterText: "Tutti i diritti riservati"}); err != nil {
				t.Fatal(err)
			}

			settings, err = s.GetSettings(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if settings.SiteName != "CODForge Store" {
				t.Errorf("settings upsert lost: %+v", settings)
			}
		})
	}
}
