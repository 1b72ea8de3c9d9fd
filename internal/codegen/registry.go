package codegen

import "fmt"

// Registry manages the available code generators by language name.
type Registry struct {
	generators map[string]func(packageName string) Generator
}

// NewRegistry creates an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]func(packageName string) Generator),
	}
}

// Register adds a generator factory under a language name.
func (r *Registry) Register(language string, factory func(packageName string) Generator) {
	r.generators[language] = factory
}

// Get returns a generator for the given language.
func (r *Registry) Get(language, packageName string) (Generator, error) {
	factory, exists := r.generators[language]
	if !exists {
		return nil, fmt.Errorf("unsupported language: %s", language)
	}
	return factory(packageName), nil
}

// Languages returns the registered language names.
func (r *Registry) Languages() []string {
	languages := make([]string, 0, len(r.generators))
	for lang := range r.generators {
		languages = append(languages, lang)
	}
	return languages
}
