package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"polyglot/internal/ports/output"
)

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

// Catalog is a thin wrapper around go-i18n's Bundle/Localizer.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// Build loads every locale resource file found directly in dir into a
// go-i18n bundle pinned to tag, then merges messages from the given sources
// (later sources win). File names carry their locale, go-i18n's convention
// (e.g. "en-US.toml"); resource parsing is owned entirely by go-i18n.
func Build(ctx context.Context, dir string, tag language.Tag, sources ...output.MessageSource) (*Catalog, error) {
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".toml", ".json":
		default:
			continue
		}
		if _, err := bundle.LoadMessageFile(filepath.Join(dir, entry.Name())); err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
	}

	for _, source := range sources {
		messages, err := source.ListMessages(ctx)
		if err != nil {
			return nil, fmt.Errorf("list source messages: %w", err)
		}
		for _, m := range messages {
			messageTag, err := language.Parse(m.Locale)
			if err != nil {
				return nil, fmt.Errorf("message %q: bad locale %q: %w", m.Key, m.Locale, err)
			}
			if err := bundle.AddMessages(messageTag, &i18n.Message{ID: m.Key, Other: m.Template}); err != nil {
				return nil, fmt.Errorf("add message %q: %w", m.Key, err)
			}
		}
	}

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Lookup returns the message registered for key under the active locale.
// Unknown keys fall back to the key itself.
func (c *Catalog) Lookup(key string) string {
	return c.LookupWithArgs(key, nil)
}

// LookupWithArgs renders the message for key with args substituted into its
// template placeholders. Unknown keys fall back to the key itself.
func (c *Catalog) LookupWithArgs(key string, args map[string]string) string {
	cfg := &i18n.LocalizeConfig{MessageID: key}
	if len(args) > 0 {
		cfg.TemplateData = args
	}
	msg, err := c.localizer.Localize(cfg)
	if err != nil {
		return key
	}
	return msg
}
