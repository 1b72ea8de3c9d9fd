package commands

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/gensmith-dev/gensmith/internal/template"
)

//go:embed templates/*
var templatesFS embed.FS

type InitOptions struct {
	ProjectName string
	Target      string
}

type InitCommand struct {
	filesystem  FileSystem
	templatesFS fs.FS
	// For testing: if set, skip prompting
	testOptions *InitOptions
}

func NewInitCommand() *InitCommand {
	return &InitCommand{
		filesystem:  osFileSystem{},
		templatesFS: templatesFS,
	}
}

func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	var options *InitOptions
	var err error

	// For testing: use provided options instead of prompting
	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(opts...)
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}

	if err := ic.scaffold(options); err != nil {
		return fmt.Errorf("failed to scaffold project: %w", err)
	}

	fmt.Printf("✅ Successfully created %s project: %s\n", options.Target, options.ProjectName)
	return nil
}

func (ic *InitCommand) promptInitOptions(opts ...tea.ProgramOption) (*InitOptions, error) {
	var projectName string
	var target string

	form := ic.createInitForm(&projectName, &target)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return &InitOptions{
		ProjectName: projectName,
		Target:      target,
	}, nil
}

func (ic *InitCommand) createInitForm(projectName *string, target *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Name of your new project").
				Value(projectName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					if _, err := ic.filesystem.Stat(s); err == nil {
						return fmt.Errorf("directory %s already exists", s)
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Target").
				Description("Choose a generation target").
				Options(
					huh.NewOption("Go", "go"),
					huh.NewOption("TypeScript", "typescript"),
				).
				Value(target),
		),
	)
}

// scaffold renders the embedded project templates into a new directory
// named after the project.
func (ic *InitCommand) scaffold(options *InitOptions) error {
	ctx := template.Context{
		"name":   options.ProjectName,
		"target": options.Target,
	}

	return fs.WalkDir(ic.templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == "templates" {
			return nil
		}

		relPath, err := filepath.Rel("templates", path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(options.ProjectName, strings.TrimSuffix(relPath, ".tmpl"))

		if d.IsDir() {
			return ic.filesystem.MkdirAll(destPath, 0755)
		}

		data, err := fs.ReadFile(ic.templatesFS, path)
		if err != nil {
			return err
		}

		rendered := template.Render(string(data), ctx)
		if err := ic.filesystem.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}
		return ic.filesystem.WriteFile(destPath, []byte(rendered), 0644)
	})
}
