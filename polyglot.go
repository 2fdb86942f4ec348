// Package polyglot is a small internationalization helper: a process-wide
// lookup of localized message strings by key, with optional named-argument
// substitution, loaded once from environment-configured locale files.
//
// Configuration is resolved on first use:
//   - I18N_ID: locale tag (default "en-US")
//   - I18N_DIR: locale resource directory (default "./assets/locales/")
//   - I18N_DATABASE_URL: optional Postgres DSN holding translation overrides
//
// Invalid configuration aborts the process the first time a translation is
// requested. The loaded catalog never changes afterwards; there is no
// runtime locale switching or reload.
package polyglot

import (
	"context"
	"fmt"
	"sync"

	"polyglot/internal/application"
	"polyglot/internal/config"
	"polyglot/internal/domain"
	"polyglot/internal/infrastructure/catalog"
	"polyglot/internal/infrastructure/database"
	"polyglot/internal/ports/output"
)

var (
	once       sync.Once
	translator *application.TranslatorService
)

// instance returns the shared translator, building it on the first call.
// Construction happens at most once; a failed construction panics here and
// on every later call.
func instance() *application.TranslatorService {
	once.Do(func() {
		svc, err := load(context.Background())
		if err != nil {
			panic(err)
		}
		translator = svc
	})
	if translator == nil {
		panic(domain.ErrBuildLoader)
	}
	return translator
}

// load resolves configuration and builds the translation catalog.
func load(ctx context.Context) (*application.TranslatorService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var sources []output.MessageSource
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrBuildLoader, err)
		}
		// The pool only feeds the catalog build; translations are read once.
		defer pool.Close()
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrBuildLoader, err)
		}
		sources = append(sources, database.NewMessageRepository(pool))
	}

	cat, err := catalog.Build(ctx, cfg.LocalesDir, cfg.Language, sources...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBuildLoader, err)
	}
	return application.NewTranslatorService(cat), nil
}

// Get returns the message registered for key under the active locale, with
// no argument substitution. Unknown keys fall back to the key itself.
func Get(key string) string {
	return instance().Translate(key)
}

// Builder accumulates named arguments for a parameterized lookup.
// A Builder is a plain value owned by one goroutine; it may be consumed more
// than once.
type Builder struct {
	key  string
	args map[string]string
}

// New returns a Builder for key with an empty argument set.
func New(key string) *Builder {
	return &Builder{
		key:  key,
		args: make(map[string]string),
	}
}

// SetArgs sets the argument named name to value, overwriting any previous
// value for that name, and returns the builder for chaining.
func (b *Builder) SetArgs(name, value string) *Builder {
	b.args[name] = value
	return b
}

// Args looks up key (not necessarily the builder's own) with the arguments
// accumulated so far. With no arguments set it is identical to Get.
func (b *Builder) Args(key string) string {
	if len(b.args) == 0 {
		return Get(key)
	}
	return instance().TranslateWithArgs(key, b.args)
}

// Build looks up the builder's own key with the accumulated arguments.
func (b *Builder) Build() string {
	return b.Args(b.key)
}
