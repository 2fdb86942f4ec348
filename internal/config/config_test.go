package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyglot/internal/config"
	"polyglot/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("I18N_ID", "")
	t.Setenv("I18N_DIR", "")
	t.Setenv("I18N_DATABASE_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Language.String())
	assert.Equal(t, "./assets/locales/", cfg.LocalesDir)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("I18N_ID", "fr")
	t.Setenv("I18N_DIR", "/srv/locales")
	t.Setenv("I18N_DATABASE_URL", "postgres://localhost:5432/i18n?sslmode=disable")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "fr", cfg.Language.String())
	assert.Equal(t, "/srv/locales", cfg.LocalesDir)
	assert.Equal(t, "postgres://localhost:5432/i18n?sslmode=disable", cfg.DatabaseURL)
}

func TestLoadInvalidLanguage(t *testing.T) {
	t.Setenv("I18N_ID", "not a locale!!")

	_, err := config.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParseLanguage)
}
