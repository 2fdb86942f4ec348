package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"polyglot/internal/domain"
)

const (
	defaultLanguage   = "en-US"
	defaultLocalesDir = "./assets/locales/"
)

type Config struct {
	Language    language.Tag
	LocalesDir  string
	DatabaseURL string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	id := os.Getenv("I18N_ID")
	if strings.TrimSpace(id) == "" {
		id = defaultLanguage
	}
	tag, err := language.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrParseLanguage, id, err)
	}

	dir := os.Getenv("I18N_DIR")
	if dir == "" {
		dir = defaultLocalesDir
	}

	return &Config{
		Language:    tag,
		LocalesDir:  dir,
		DatabaseURL: os.Getenv("I18N_DATABASE_URL"),
	}, nil
}
