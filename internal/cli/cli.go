package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Maxyme/gml-to-graphml/pkg/buildinfo"
	"github.com/Maxyme/gml-to-graphml/pkg/cache"
	"github.com/Maxyme/gml-to-graphml/pkg/config"
	"github.com/Maxyme/gml-to-graphml/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphconv"

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

	// Out receives status lines. It is stderr so that stdout stays free
	// for converted output.
	Out io.Writer

	// Stdin and Stdout back the "-" path.
	Stdin  io.Reader
	Stdout io.Writer

	configPath string
	config     *config.Config
	quiet      bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stderr,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		config: &config.Config{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.Logger.SetReportCaller(level <= log.DebugLevel)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	tmpl := buildinfo.Template()
	root := &cobra.Command{
		Use:   appName,
		Short: "graphconv converts graphs between GML and GraphML",
		Long: `graphconv is a streaming converter between GML (Graph Modelling Language) and
GraphML. Node, edge and graph attributes survive the round trip, including
repeated attributes (lists) and nested blocks (dicts).`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(tmpl)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphconv/config.toml)")
	root.PersistentFlags().BoolVarP(&c.quiet, "quiet", "q", false, "suppress status output")

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.normalizeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file once flags are parsed.
func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	if c.quiet {
		c.Logger.SetLevel(log.WarnLevel)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	path, required := c.configPath, true
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config directory", "error", err)
			return nil
		}
		path, required = p, false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the render cache directory, honoring XDG_CACHE_HOME.
func cacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// renderCache opens the file cache, falling back to no caching when the
// cache directory is unavailable.
func (c *CLI) renderCache(ctx context.Context) cache.Cache {
	logger := loggerFromContext(ctx)
	dir, err := cacheDir()
	if err != nil {
		logger.Debug("render cache disabled", "error", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(filepath.Join(dir, "render"))
	if err != nil {
		logger.Debug("render cache disabled", "error", err)
		return cache.NewNullCache()
	}
	return fc
}
