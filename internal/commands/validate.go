package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gensmith-dev/gensmith/internal/config"
	"github.com/gensmith-dev/gensmith/internal/document"
	"github.com/gensmith-dev/gensmith/internal/schema"
)

// ValidateDependencies for the validate command
type ValidateDependencies struct {
	ConfigLoader ConfigLoader
	FileSystem   FileSystem
	Output       Output
}

// ValidateCommand checks the project's schema and document without
// writing any files.
type ValidateCommand struct {
	deps ValidateDependencies
}

// NewValidateCommand creates a new validate command with default dependencies
func NewValidateCommand() *ValidateCommand {
	return &ValidateCommand{
		deps: ValidateDependencies{
			ConfigLoader: &defaultConfigLoader{},
			FileSystem:   osFileSystem{},
			Output:       defaultOutput{},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (vc *ValidateCommand) WithDependencies(deps ValidateDependencies) *ValidateCommand {
	vc.deps = deps
	return vc
}

// Execute runs the validate command
func (vc *ValidateCommand) Execute(ctx context.Context) error {
	cfg, projectRoot, err := vc.deps.ConfigLoader.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	if err := vc.validateSchema(cfg, projectRoot); err != nil {
		return err
	}

	if cfg.Document != "" {
		if err := vc.validateDocument(cfg, projectRoot); err != nil {
			return err
		}
	}

	vc.deps.Output.Println("✅ All inputs are valid")
	return nil
}

func (vc *ValidateCommand) validateSchema(cfg *config.Config, projectRoot string) error {
	schemaPath := cfg.Schema
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(projectRoot, schemaPath)
	}

	src, err := vc.deps.FileSystem.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	doc, err := schema.ParseSchema(string(src))
	if err != nil {
		return fmt.Errorf("schema %s is invalid: %w", schemaPath, err)
	}

	vc.deps.Output.Printf("📝 Schema %s: %d types, %d directives\n", cfg.Schema, len(doc.Types), len(doc.Directives))
	return nil
}

func (vc *ValidateCommand) validateDocument(cfg *config.Config, projectRoot string) error {
	docPath := cfg.Document
	if !filepath.IsAbs(docPath) {
		docPath = filepath.Join(projectRoot, docPath)
	}

	data, err := vc.deps.FileSystem.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return fmt.Errorf("document %s is invalid: %w", docPath, err)
	}

	vc.deps.Output.Printf("📄 Document %s: %d paths, %d schemas\n", cfg.Document, len(doc.Paths), schemaCount(doc))
	return nil
}

// schemaCount tolerates documents without a components block.
func schemaCount(doc *document.Document) int {
	if doc.Components == nil {
		return 0
	}
	return len(doc.Components.Schemas)
}
