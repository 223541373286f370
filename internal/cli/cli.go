// Package cli implements the treeline command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeline/internal/config"
	"github.com/matzehuels/treeline/pkg/buildinfo"
	"github.com/matzehuels/treeline/pkg/cache"
	"github.com/matzehuels/treeline/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "treeline"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath   string
	cacheBackend string
	verbose      bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "treeline",
		Short:         "Treeline renders binary trees as ASCII diagrams",
		Long:          `Treeline is a CLI tool for rendering binary trees as ASCII-art diagrams, with JSON, DOT, SVG, PDF, and PNG outputs for pipelines and documents.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			if c.verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a treeline.toml configuration file")
	root.PersistentFlags().StringVar(&c.cacheBackend, "cache", "", "cache backend override (memory|file|redis|none)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves the effective configuration. Without --config the
// built-in defaults stand; a missing or invalid explicit file is an error.
// The --cache flag overrides the backend from either source.
func (c *CLI) loadConfig() error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		level, err := cfg.Log.ParseLevel()
		if err != nil {
			return err
		}
		c.Config = cfg
		c.SetLogLevel(level)
	}

	if c.cacheBackend != "" {
		c.Config.Cache.Backend = c.cacheBackend
		if err := c.Config.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
// Cache setup failures degrade to a null cache rather than blocking the render.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	runner := pipeline.NewRunner(c.openCache(ctx, noCache), nil, c.Logger)
	if ttl := c.Config.Cache.TTL.Duration; ttl > 0 {
		runner.TTL = ttl
	}
	return runner
}

func (c *CLI) openCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	backend, err := c.Config.Cache.Open(ctx)
	if err != nil {
		c.Logger.Warn("cache unavailable, rendering without it", "error", err)
		return cache.NewNullCache()
	}
	return backend
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, falling back to the
// XDG default (~/.cache/treeline).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return config.DefaultCacheDir()
}
