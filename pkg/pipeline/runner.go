package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/techradar/pkg/cache"
	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/layout"
	"github.com/matzehuels/techradar/pkg/observability"
	"github.com/matzehuels/techradar/pkg/placement"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means [cache.DefaultKeyer], a nil
// cache disables caching and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs layout and render for opts.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.New()}
	logger := opts.Logger.With("run", result.RunID.String()[:8])

	hash, err := cache.HashJSON(opts.Definition)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash definition")
	}
	result.DefinitionHash = hash

	// Stage 1: Layout
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	layoutStart := time.Now()
	l, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats = layoutStats(l)
	result.Stats.LayoutTime = time.Since(layoutStart)

	logger.Info("placed blips",
		"placed", result.Stats.Placed,
		"skipped", result.Stats.Skipped,
		"shrunk", result.Stats.Shrunk,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	artifacts, info, err := r.RenderWithCacheInfo(ctx, l, hash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo = info
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", info.Hits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout builds the scene and places the blips of opts.Definition.
func (r *Runner) Layout(ctx context.Context, opts Options) (layout.Layout, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, err
	}
	def := opts.Definition

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(def.Segments), len(def.Rings), len(def.Blips))
	start := time.Now()

	buildOpts := []layout.Option{layout.WithObserver(placement.LogObserver{Logger: opts.Logger})}
	if opts.RadiusFunc != nil {
		buildOpts = append(buildOpts, layout.WithRadiusFunc(opts.RadiusFunc))
	}
	l, err := layout.Build(def, buildOpts...)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, 0, time.Since(start), err)
		return layout.Layout{}, err
	}

	s := l.Summary()
	hooks.OnLayoutComplete(ctx, s.Placed, s.Skipped, time.Since(start), nil)
	emitPlacementHooks(ctx, l.Outcomes)
	return l, nil
}

// RenderWithCacheInfo renders every format of opts, serving what it can
// from cache. defHash identifies the definition the layout was built from.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, defHash string, opts Options) (map[string][]byte, CacheInfo, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, CacheInfo{}, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var info CacheInfo
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	useCache := opts.Cacheable() && defHash != ""

	for _, format := range opts.Formats {
		if !useCache {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(defHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err == nil && hit {
			cacheHooks.OnCacheHit(ctx, format)
			artifacts[format] = data
			info.Hits++
			continue
		}
		cacheHooks.OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}

	if len(missing) > 0 {
		rendered, err := RenderLayout(ctx, l, withFormats(opts, missing))
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, info, err
		}
		for format, data := range rendered {
			artifacts[format] = data
			if !useCache {
				continue
			}
			key := r.Keyer.ArtifactKey(defHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
				opts.Logger.Warn("cache write failed", "format", format, "err", err)
				continue
			}
			cacheHooks.OnCacheSet(ctx, format, len(data))
		}
	}

	info.RenderHit = len(missing) == 0
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, info, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func withFormats(opts Options, formats []string) Options {
	opts.Formats = formats
	return opts
}

func layoutStats(l layout.Layout) Stats {
	s := l.Summary()
	return Stats{
		Segments: len(l.Scene.Segments()),
		Rings:    len(l.Scene.Rings()),
		Blips:    len(l.Outcomes),
		Placed:   s.Placed,
		Skipped:  s.Skipped,
		Shrunk:   s.Shrunk,
	}
}

func emitPlacementHooks(ctx context.Context, outcomes []placement.Outcome) {
	hooks := observability.Placement()
	for _, o := range outcomes {
		if o.Placed {
			hooks.OnBlipPlaced(ctx, o.Blip.ID, o.Attempts, o.Shrinks)
		} else {
			hooks.OnBlipSkipped(ctx, o.Blip.ID, o.Reason.String())
		}
	}
}
