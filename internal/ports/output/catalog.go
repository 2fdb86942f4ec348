package output

// Catalog exposes a minimal lookup contract over a loaded translation
// catalog. Implementations own message parsing, template substitution and
// the missing-key policy.
type Catalog interface {
	// Lookup returns the message registered for key, without substitution.
	Lookup(key string) string
	// LookupWithArgs renders the message for key with the named arguments
	// substituted into its template placeholders.
	LookupWithArgs(key string, args map[string]string) string
}
