// Package commands contains the CLI commands for the application
package commands

import (
	"context"
)

type Flags struct {
	LogLevel string
}

type Controller struct {
	Flags *Flags
}

func (c *Controller) Generate(ctx context.Context) error {
	return NewGenerateCommand().Execute(ctx)
}

func (c *Controller) Validate(ctx context.Context) error {
	return NewValidateCommand().Execute(ctx)
}

func (c *Controller) Init(ctx context.Context) error {
	return NewInitCommand().Run(ctx)
}

func (c *Controller) Dev(ctx context.Context) error {
	return NewDevCommand().Execute(ctx)
}
