package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Reporter ports.Reporter
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, reporter ports.Reporter) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Reporter: reporter,
	}
}

// NewApp builds the application from the registered Graft nodes.
func NewApp(ctx context.Context) (*Components, error) {
	components, _, err := graft.ExecuteFor[*Components](ctx)
	return components, err
}

type outputConfigurer interface {
	SetVerbose(verbose bool)
	SetJSON(json bool)
}

type quietSetter interface {
	SetQuiet(quiet bool)
}

// ConfigureOutput applies the global output flags to the logger and reporter.
func (c *Components) ConfigureOutput(verbose, json, quiet bool) {
	if l, ok := c.Logger.(outputConfigurer); ok {
		l.SetVerbose(verbose)
		l.SetJSON(json)
	}
	if r, ok := c.Reporter.(quietSetter); ok {
		r.SetQuiet(quiet)
	}
}
