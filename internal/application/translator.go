package application

import "polyglot/internal/ports/output"

// TranslatorService answers message lookups against a loaded catalog.
type TranslatorService struct {
	catalog output.Catalog
}

func NewTranslatorService(catalog output.Catalog) *TranslatorService {
	return &TranslatorService{catalog: catalog}
}

// Translate returns the message registered for key, without substitution.
func (s *TranslatorService) Translate(key string) string {
	return s.catalog.Lookup(key)
}

// TranslateWithArgs renders the message for key with the named arguments
// substituted. An empty argument set behaves exactly like Translate.
func (s *TranslatorService) TranslateWithArgs(key string, args map[string]string) string {
	if len(args) == 0 {
		return s.catalog.Lookup(key)
	}
	return s.catalog.LookupWithArgs(key, args)
}
