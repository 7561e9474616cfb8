package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/codforge/codforge"
)

// SQLiteStore is a file-backed Store using the pure-Go SQLite driver.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and runs the
// schema migration.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS landing_pages (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		product_name TEXT NOT NULL,
		niche TEXT,
		is_published INTEGER NOT NULL DEFAULT 0,
		slug TEXT NOT NULL UNIQUE,
		thank_you_slug TEXT,
		content TEXT NOT NULL,
		thank_you_content TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_pages_slug ON landing_pages(slug);
	CREATE INDEX IF NOT EXISTS idx_pages_ty_slug ON landing_pages(thank_you_slug);

	CREATE TABLE IF NOT EXISTS site_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		config TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}
	return nil
}

// SavePage inserts or replaces a page by ID.
func (s *SQLiteStore) SavePage(ctx context.Context, page *Page) error {
	content, err := json.Marshal(page.Content)
	if err != nil {
		return fmt.Errorf("encoding content: %w", err)
	}
	var tyContent []byte
	if page.ThankYouContent != nil {
		tyContent, err = json.Marshal(page.ThankYouContent)
		if err != nil {
			return fmt.Errorf("encoding thank-you content: %w", err)
		}
	}

	createdAt := page.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO landing_pages
			(id, created_at, product_name, niche, is_published, slug, thank_you_slug, content, thank_you_content)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			product_name = excluded.product_name,
			niche = excluded.niche,
			is_published = excluded.is_published,
			slug = excluded.slug,
			thank_you_slug = excluded.thank_you_slug,
			content = excluded.content,
			thank_you_content = excluded.thank_you_content`,
		page.ID, createdAt, page.ProductName, page.Niche, page.IsPublished,
		page.Slug, page.ThankYouSlug, string(content), nullableText(tyContent))
	if err != nil {
		return fmt.Errorf("saving page: %w", err)
	}
	return nil
}

func nullableText(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

const pageColumns = `id, created_at, product_name, niche, is_published, slug, thank_you_slug, content, thank_you_content`

func scanPage(row interface{ Scan(...any) error }) (*Page, error) {
	var (
		page      Page
		niche     sql.NullString
		tySlug    sql.NullString
		content   string
		tyContent sql.NullString
	)
	err := row.Scan(&page.ID, &page.CreatedAt, &page.ProductName, &niche,
		&page.IsPublished, &page.Slug, &tySlug, &content, &tyContent)
	if err != nil {
		return nil, err
	}
	page.Niche = niche.String
	page.ThankYouSlug = tySlug.String

	if err := json.Unmarshal([]byte(content), &page.Content); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if tyContent.Valid && tyContent.String != "" {
		var doc codforge.ContentDocument
		if err := json.Unmarshal([]byte(tyContent.String), &doc); err != nil {
			return nil, fmt.Errorf("decoding thank-you content: %w", err)
		}
		page.ThankYouContent = &doc
	}
	return &page, nil
}

// GetPage fetches a page by ID.
func (s *SQLiteStore) GetPage(ctx context.Context, id string) (*Page, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM landing_pages WHERE id = ?`, id)
	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// GetPageBySlug fetches a page by landing or thank-you slug.
func (s *SQLiteStore) GetPageBySlug(ctx context.Context, slug string) (*Page, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM landing_pages WHERE slug = ? OR thank_you_slug = ?`,
		slug, slug)
	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}
	return page, page.ThankYouSlug == slug && page.Slug != slug, nil
}

// ListPages returns all pages, newest first.
func (s *SQLiteStore) ListPages(ctx context.Context, publishedOnly bool) ([]*Page, error) {
	query := `SELECT ` + pageColumns + ` FROM landing_pages`
	if publishedOnly {
		query += ` WHERE is_published = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// DeletePage removes a page by ID.
func (s *SQLiteStore) DeletePage(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM landing_pages WHERE id = ?`, id)
	return err
}

// SaveSettings upserts the single settings row.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings *SiteSettings) error {
	config, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO site_settings (id, config) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET config = excluded.config`,
		string(config))
	return err
}

// GetSettings returns the stored settings, or defaults when unset.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*SiteSettings, error) {
	var config string
	err := s.db.QueryRowContext(ctx,
		`SELECT config FROM site_settings WHERE id = 1`).Scan(&config)
	if err == sql.ErrNoRows {
		return &SiteSettings{}, nil
	}
	if err != nil {
		return nil, err
	}

	var settings SiteSettings
	if err := json.Unmarshal([]byte(config), &settings); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &settings, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Verify SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)
