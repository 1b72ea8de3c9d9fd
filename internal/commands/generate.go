package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/gensmith-dev/gensmith/internal/codegen"
	"github.com/gensmith-dev/gensmith/internal/codegen/docs"
	"github.com/gensmith-dev/gensmith/internal/config"
	"github.com/gensmith-dev/gensmith/internal/document"
	"github.com/gensmith-dev/gensmith/internal/schema"
)

// GenerateDependencies for the generate command
type GenerateDependencies struct {
	ConfigLoader ConfigLoader
	FileSystem   FileSystem
	Registry     *codegen.Registry
	Output       Output
}

// Interfaces for dependency injection
type ConfigLoader interface {
	LoadConfig() (*config.Config, string, error)
}

type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Stat(name string) (os.FileInfo, error)
}

type Output interface {
	Printf(format string, args ...any)
	Println(args ...any)
}

// Default implementations
type defaultConfigLoader struct{}

func (l *defaultConfigLoader) LoadConfig() (*config.Config, string, error) {
	return config.Load()
}

type osFileSystem struct{}

func (osFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osFileSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

type defaultOutput struct{}

func (defaultOutput) Printf(format string, args ...any) { fmt.Printf(format, args...) }
func (defaultOutput) Println(args ...any)               { fmt.Println(args...) }

// GenerateCommand encapsulates the generate logic with injected dependencies
type GenerateCommand struct {
	deps GenerateDependencies
}

// NewGenerateCommand creates a new generate command with default dependencies
func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{
		deps: GenerateDependencies{
			ConfigLoader: &defaultConfigLoader{},
			FileSystem:   osFileSystem{},
			Registry:     codegen.DefaultRegistry,
			Output:       defaultOutput{},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (gc *GenerateCommand) WithDependencies(deps GenerateDependencies) *GenerateCommand {
	gc.deps = deps
	return gc
}

// Execute runs the generate command
func (gc *GenerateCommand) Execute(ctx context.Context) error {
	cfg, projectRoot, err := gc.deps.ConfigLoader.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	outputDir := cfg.Output.Dir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(projectRoot, outputDir)
	}
	if err := gc.deps.FileSystem.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	sess, err := gc.parseSchema(cfg, projectRoot)
	if err != nil {
		return err
	}

	for _, target := range cfg.Targets {
		if target == "docs" {
			if err := gc.generateDocs(cfg, projectRoot, outputDir); err != nil {
				return err
			}
			continue
		}

		gen, err := gc.deps.Registry.Get(target, cfg.Package)
		if err != nil {
			return err
		}

		code, err := gen.Generate(sess)
		if err != nil {
			return fmt.Errorf("failed to generate %s code: %w", target, err)
		}

		outPath := filepath.Join(outputDir, cfg.Package+gen.FileExtension())
		if err := gc.deps.FileSystem.WriteFile(outPath, code, 0644); err != nil {
			return fmt.Errorf("failed to write generated file: %w", err)
		}

		log.Info().Str("target", target).Str("path", outPath).Msg("generated code")
		gc.deps.Output.Printf("✅ Generated %s: %s\n", target, outPath)
	}

	return nil
}

func (gc *GenerateCommand) parseSchema(cfg *config.Config, projectRoot string) (*schema.Session, error) {
	schemaPath := cfg.Schema
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(projectRoot, schemaPath)
	}

	src, err := gc.deps.FileSystem.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	sess, err := schema.ParseIntoSession(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", schemaPath, err)
	}

	doc, _ := sess.Schema()
	log.Debug().Str("schema", schemaPath).Int("types", len(doc.Types)).Msg("parsed schema")
	return sess, nil
}

func (gc *GenerateCommand) generateDocs(cfg *config.Config, projectRoot, outputDir string) error {
	if cfg.Document == "" {
		return fmt.Errorf("docs target requires a document path in gensmith.json")
	}

	docPath := cfg.Document
	if !filepath.IsAbs(docPath) {
		docPath = filepath.Join(projectRoot, docPath)
	}

	data, err := gc.deps.FileSystem.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse document %s: %w", docPath, err)
	}

	gen := docs.NewGenerator()
	md, err := gen.Generate(doc)
	if err != nil {
		return fmt.Errorf("failed to generate docs: %w", err)
	}

	outPath := filepath.Join(outputDir, "reference"+gen.FileExtension())
	if err := gc.deps.FileSystem.WriteFile(outPath, md, 0644); err != nil {
		return fmt.Errorf("failed to write generated file: %w", err)
	}

	log.Info().Str("target", "docs").Str("path", outPath).Msg("generated docs")
	gc.deps.Output.Printf("✅ Generated docs: %s\n", outPath)
	return nil
}
