// Command codforge serves AI-generated cash-on-delivery landing pages.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/codforge/codforge"
	"github.com/codforge/codforge/cache"
	"github.com/codforge/codforge/geo"
	"github.com/codforge/codforge/provider"
	"github.com/codforge/codforge/render"
	"github.com/codforge/codforge/server"
	"github.com/codforge/codforge/store"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = codforge.Version
	commit    = codforge.GitCommit
	buildDate = codforge.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("codforge", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags override config file and CODFORGE_* environment values.
	configFile := fs.String("config", "", "Config file (optional)")
	listen := fs.String("listen", "", "HTTP listen address (default :8080)")
	dbPath := fs.String("db", "", "SQLite database path (default codforge.db)")
	providerName := fs.String("provider", "", "AI provider: gemini, openai, or none")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", codforge.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	v := viper.New()
	v.SetEnvPrefix("CODFORGE")
	v.AutomaticEnv()
	v.SetDefault("listen", ":8080")
	v.SetDefault("db", "codforge.db")
	v.SetDefault("provider", "gemini")
	v.SetDefault("cache_ttl", 86400)
	v.SetDefault("rate_limit_rpm", 30)
	v.SetDefault("geo_lookup", true)

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	if *listen != "" {
		v.Set("listen", *listen)
	}
	if *dbPath != "" {
		v.Set("db", *dbPath)
	}
	if *providerName != "" {
		v.Set("provider", *providerName)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.NewSQLiteStore(v.GetString("db"))
	if err != nil {
		return fmt.Errorf("opening page store: %w", err)
	}
	defer st.Close()

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	cfg := server.Config{
		Store:      st,
		Renderer:   renderer,
		Notifier:   codforge.NewWebhookNotifier(codforge.WithWebhookLogger(logger)),
		Logger:     logger,
		AdminToken: v.GetString("admin_token"),
	}
	if v.GetBool("geo_lookup") {
		cfg.Locator = geo.NewClient()
	}

	ai, err := buildProvider(ctx, v)
	if err != nil {
		return err
	}
	if ai != nil {
		if rpm := v.GetInt("rate_limit_rpm"); rpm > 0 {
			ai = codforge.NewRateLimitedProvider(ai, codforge.RateLimitConfig{RequestsPerMinute: rpm})
		}

		generator, err := codforge.NewGenerator(ai, codforge.WithGeneratorLogger(logger))
		if err != nil {
			return err
		}
		cfg.Generator = generator

		tc, memCache := buildCache(v, logger)
		if memCache != nil {
			if path := v.GetString("cache_snapshot"); path != "" {
				if n, err := cache.ReadSnapshotFile(path, memCache); err == nil {
					logger.Info("restored translation cache", zap.Int("entries", n), zap.String("path", path))
				} else if !errors.Is(err, os.ErrNotExist) {
					logger.Warn("reading cache snapshot", zap.Error(err))
				}
				defer func() {
					if err := cache.WriteSnapshotFile(path, memCache); err != nil {
						logger.Warn("writing cache snapshot", zap.Error(err))
					}
				}()
			}
		}

		translator, err := codforge.NewTranslator(ai,
			codforge.WithTranslationCache(tc),
			codforge.WithTranslatorLogger(logger))
		if err != nil {
			return err
		}
		cfg.Translator = translator
	} else {
		logger.Warn("no AI provider configured, generation and translation endpoints disabled")
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         v.GetString("listen"),
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // event streams stay open indefinitely
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", httpServer.Addr), zap.String("version", version))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildProvider constructs the configured AI provider. Keys come from
// CODFORGE_GEMINI_API_KEY / CODFORGE_OPENAI_API_KEY, falling back to
// the providers' conventional variable names.
func buildProvider(ctx context.Context, v *viper.Viper) (codforge.AIProvider, error) {
	switch name := v.GetString("provider"); name {
	case "gemini":
		key := v.GetString("gemini_api_key")
		if key == "" {
			key = os.Getenv("GEMINI_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("Gemini API key required (CODFORGE_GEMINI_API_KEY or GEMINI_API_KEY env)")
		}
		return provider.NewGeminiProvider(ctx, provider.GeminiConfig{
			APIKey:     key,
			TextModel:  v.GetString("gemini_model"),
			ImageModel: v.GetString("gemini_image_model"),
		})
	case "openai":
		key := v.GetString("openai_api_key")
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("OpenAI API key required (CODFORGE_OPENAI_API_KEY or OPENAI_API_KEY env)")
		}
		return provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey:     key,
			Model:      v.GetString("openai_model"),
			ImageModel: v.GetString("openai_image_model"),
		})
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want gemini, openai, or none)", name)
	}
}

// buildCache picks Redis when a URL is configured, otherwise an
// in-process cache. A Redis that cannot be reached at startup is
// reported and skipped rather than fatal. The second return value is
// non-nil when the in-process cache is used, so it can be snapshotted
// across restarts.
func buildCache(v *viper.Viper, logger *zap.Logger) (codforge.TranslationCache, *cache.InMemoryCache) {
	ttl := v.GetInt("cache_ttl")
	if url := v.GetString("redis_url"); url != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: url, TTL: ttl})
		if err == nil {
			return rc, nil
		}
		logger.Warn("redis cache unavailable, using in-memory cache", zap.Error(err))
	}
	mem := cache.NewInMemoryCache(ttl)
	return mem, mem
}
