// Package commands implements the CLI commands for cairn.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cairn/internal/app"
	"go.trai.ch/cairn/internal/build"
)

// CLI represents the command line interface for cairn.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cairn",
		Short:         "Resolve package dependencies from git, path and registry sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.String("manifest-path", "", "Path to Cairn.toml or the package directory")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.BoolP("quiet", "q", false, "Suppress status lines and warnings")
	flags.Bool("log-json", false, "Emit logs as JSON")
	flags.Bool("offline", false, "Use cached git repositories only")
	flags.IntP("jobs", "j", 0, "Number of manifests loaded in parallel")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logJSON, _ := cmd.Flags().GetBool("log-json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		c.components.ConfigureOutput(verbose, logJSON, quiet)
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newTreeCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// Verbose reports whether --verbose was given.
func (c *CLI) Verbose() bool {
	verbose, _ := c.rootCmd.PersistentFlags().GetBool("verbose")
	return verbose
}

func options(cmd *cobra.Command) app.Options {
	manifestPath, _ := cmd.Flags().GetString("manifest-path")
	offline, _ := cmd.Flags().GetBool("offline")
	jobs, _ := cmd.Flags().GetInt("jobs")
	return app.Options{
		ManifestPath: manifestPath,
		Offline:      offline,
		Jobs:         jobs,
	}
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}
