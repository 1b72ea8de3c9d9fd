package codegen

import (
	"testing"

	"github.com/gensmith-dev/gensmith/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	packageName string
}

func (f *fakeGenerator) Generate(sess *schema.Session) ([]byte, error) {
	if _, err := sess.Schema(); err != nil {
		return nil, err
	}
	return []byte("// " + f.packageName), nil
}

func (f *fakeGenerator) Language() string      { return "fake" }
func (f *fakeGenerator) FileExtension() string { return ".fake" }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("fake", func(packageName string) Generator {
		return &fakeGenerator{packageName: packageName}
	})

	gen, err := r.Get("fake", "pkg")
	require.NoError(t, err)
	assert.Equal(t, "fake", gen.Language())
	assert.Equal(t, ".fake", gen.FileExtension())
}

func TestRegistry_UnknownLanguage(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("cobol", "pkg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language: cobol")
}

func TestRegistry_Languages(t *testing.T) {
	r := NewRegistry()
	r.Register("a", func(string) Generator { return &fakeGenerator{} })
	r.Register("b", func(string) Generator { return &fakeGenerator{} })
	assert.ElementsMatch(t, []string{"a", "b"}, r.Languages())
}

func TestDefaultRegistry_BuiltIns(t *testing.T) {
	for _, language := range []string{"go", "typescript", "ts"} {
		gen, err := DefaultRegistry.Get(language, "pkg")
		require.NoError(t, err, "language %s", language)
		assert.NotNil(t, gen)
	}
}

func TestGenerator_EmptySessionFails(t *testing.T) {
	// Test: generation before any successful parse reports the dedicated
	// error for every built-in generator
	for _, language := range DefaultRegistry.Languages() {
		gen, err := DefaultRegistry.Get(language, "pkg")
		require.NoError(t, err)

		_, err = gen.Generate(&schema.Session{})
		assert.ErrorIs(t, err, schema.ErrNoSchemaParsed, "language %s", language)
	}
}
