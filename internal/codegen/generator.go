package codegen

import "github.com/gensmith-dev/gensmith/internal/schema"

// Generator is the interface all language-specific code generators
// implement. Generators combine the parsed schema session with string
// templates and return the rendered source text; callers decide file
// names and persistence.
type Generator interface {
	// Generate renders code for the session's schema. A session with no
	// successful parse behind it fails with schema.ErrNoSchemaParsed.
	Generate(sess *schema.Session) ([]byte, error)

	// Language returns the name of the target language (e.g. "go").
	Language() string

	// FileExtension returns the extension for generated files (e.g. ".go").
	FileExtension() string
}

// Options carries common generation options.
type Options struct {
	// PackageName is the package/module name for the generated code.
	PackageName string

	// OutputPath is the directory where files should be written.
	OutputPath string

	// IncludeComments controls whether descriptions become doc comments.
	IncludeComments bool
}
