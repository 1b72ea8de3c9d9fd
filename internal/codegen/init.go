package codegen

import (
	"github.com/gensmith-dev/gensmith/internal/codegen/golang"
	"github.com/gensmith-dev/gensmith/internal/codegen/typescript"
)

// DefaultRegistry is the global registry with the built-in generators.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register("go", func(packageName string) Generator {
		return golang.NewGenerator(packageName)
	})

	DefaultRegistry.Register("typescript", func(packageName string) Generator {
		return typescript.NewGenerator(packageName)
	})

	// ts is an alias for typescript
	DefaultRegistry.Register("ts", func(packageName string) Generator {
		return typescript.NewGenerator(packageName)
	})
}
