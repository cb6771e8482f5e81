// Package cli implements the techradar command-line interface.
//
// # Commands
//
//   - render: lay out a radar definition and write SVG, JSON, PNG, PDF or DOT
//   - radii: compare ring spacing policies in a table
//   - scene: draw the region tree of a radar with Graphviz
//   - inspect: browse blip placements interactively
//   - serve: run the HTTP API
//   - mcp: run the MCP tools over stdio
//   - cache: clear or locate the artifact cache
//
// All commands log through charmbracelet/log on stderr; --verbose enables
// debug output (including one line per placed blip) and --quiet limits
// output to warnings.
package cli

import (
	"cmp"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/buildinfo"
	"github.com/matzehuels/techradar/pkg/cache"
	"github.com/matzehuels/techradar/pkg/pipeline"
)

const (
	// appName is the application name used for directories and display.
	appName = "techradar"

	// redisEnv names the environment variable holding a default Redis URL.
	redisEnv = "TECHRADAR_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Cache & Runner
// =============================================================================

// cacheFlags selects the cache backend of a command.
type cacheFlags struct {
	noCache  bool
	redisURL string
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&f.redisURL, "redis", os.Getenv(redisEnv), "Redis URL for the artifact cache (default: file cache, env "+redisEnv+")")
}

// newRunner creates a pipeline runner backed by the cache f selects. Keys
// are scoped to the build version so an upgrade never serves artifacts
// drawn by an older renderer.
func (c *CLI) newRunner(ctx context.Context, f cacheFlags) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, f)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, f cacheFlags) (cache.Cache, error) {
	switch {
	case f.noCache:
		return cache.NewNullCache(), nil
	case f.redisURL != "":
		c.Logger.Debug("using redis cache")
		return cache.NewRedisCache(ctx, cache.RedisConfig{URL: f.redisURL, Prefix: appName + ":"})
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory, honoring XDG_CACHE_HOME.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	return cache.DefaultDir()
}

// basePath derives the output path without extension. An empty output
// strips the extension of input; a known format extension on output is
// dropped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// parseFormats splits a comma-separated format list. Empty means svg.
func parseFormats(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		out = append(out, cmp.Or(strings.ToLower(strings.TrimSpace(f)), pipeline.FormatSVG))
	}
	return out
}
