package polyglot

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyglot/internal/domain"
)

func TestMain(m *testing.M) {
	// The package singleton reads the environment on first lookup; pin it to
	// the test fixtures before any test can trigger initialization.
	os.Setenv("I18N_ID", "en-US")
	os.Setenv("I18N_DIR", "testdata/locales")
	os.Unsetenv("I18N_DATABASE_URL")
	os.Exit(m.Run())
}

func TestGetReturnsLiteralTemplate(t *testing.T) {
	assert.Equal(t, "Hello, world!", Get("hello"))
}

func TestGetMissingKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", Get("no.such.key"))
}

func TestBuilderSubstitutesArgs(t *testing.T) {
	got := New("greeting").SetArgs("name", "Alice").Build()
	assert.Equal(t, "Hello, Alice!", got)
}

func TestSetArgsOverwrites(t *testing.T) {
	got := New("greeting").SetArgs("name", "a").SetArgs("name", "b").Build()
	assert.Equal(t, "Hello, b!", got)
}

func TestArgsWithOtherKey(t *testing.T) {
	builder := New("greeting").SetArgs("name", "Bob").SetArgs("place", "Paris")

	fresh := New("farewell").SetArgs("name", "Bob").SetArgs("place", "Paris").Build()
	assert.Equal(t, fresh, builder.Args("farewell"))
	assert.Equal(t, "Goodbye, Bob. See you in Paris.", fresh)
}

func TestBuildWithoutArgsEqualsGet(t *testing.T) {
	assert.Equal(t, Get("hello"), New("hello").Build())
}

func TestArgsWithoutArgsEqualsGet(t *testing.T) {
	assert.Equal(t, Get("hello"), New("greeting").Args("hello"))
}

func TestConcurrentLookupsShareOneCatalog(t *testing.T) {
	const callers = 64

	var wg sync.WaitGroup
	results := make([]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Get("hello")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "Hello, world!", got)
	}
}

func TestLoadInvalidLocaleFails(t *testing.T) {
	t.Setenv("I18N_ID", "not a locale!!")

	_, err := load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParseLanguage)
}

func TestLoadMissingLocalesDirFails(t *testing.T) {
	t.Setenv("I18N_DIR", "testdata/does-not-exist")

	_, err := load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildLoader)
}
