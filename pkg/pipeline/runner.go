package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeline/pkg/bintree"
	"github.com/matzehuels/treeline/pkg/cache"
	"github.com/matzehuels/treeline/pkg/observability"
	"github.com/matzehuels/treeline/pkg/treeio"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL bounds the lifetime of cached render artifacts.
	// Zero means cache.TTLRender.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLRender,
	}
}

// Execute runs the complete decode → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	result := &Result{}

	// Stage 1: Decode
	decodeStart := time.Now()
	root, err := r.Decode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.Root = root
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.NodeCount = root.Size()
	result.Stats.TreeHeight = root.Height()

	// Canonical form keeps cache keys stable across cosmetic document
	// differences (whitespace, key order).
	canonical, err := canonicalTree(root)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	result.TreeHash = cache.Hash(canonical)

	logger.Info("decoded tree",
		"nodes", result.Stats.NodeCount,
		"height", result.Stats.TreeHeight,
		"duration", result.Stats.DecodeTime)

	// Stage 2: Render
	renderStart := time.Now()
	output, renderHit, err := r.renderCached(ctx, root, result.TreeHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}
	result.Output = output
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheHit = renderHit

	logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(output),
		"cache_hit", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Decode reads the source document into a tree. Decoding is not cached;
// only rendered artifacts are.
func (r *Runner) Decode(ctx context.Context, opts Options) (*bintree.Node, error) {
	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, sourceName(opts))

	start := time.Now()
	root, err := treeio.ReadTree(bytes.NewReader(opts.Source))
	hooks.OnDecodeComplete(ctx, sourceName(opts), root.Size(), time.Since(start), err)

	return root, err
}

// RenderWithCacheInfo renders an already-built tree with caching and reports
// whether the artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, root *bintree.Node, opts Options) ([]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, false, err
	}

	canonical, err := canonicalTree(root)
	if err != nil {
		return nil, false, fmt.Errorf("canonicalize: %w", err)
	}
	return r.renderCached(ctx, root, cache.Hash(canonical), opts)
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, root *bintree.Node, opts Options) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, root, opts)
	return data, err
}

// renderCached serves the artifact from the cache when possible, rendering
// and storing it otherwise. Refresh bypasses the read but still stores the
// fresh artifact.
func (r *Runner) renderCached(ctx context.Context, root *bintree.Node, treeHash string, opts Options) ([]byte, bool, error) {
	cacheKey := r.Keyer.RenderKey(treeHash, opts.RenderKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format, root.Size())
	start := time.Now()
	data, err := renderTree(ctx, root, opts)
	hooks.OnRenderComplete(ctx, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, data, r.ttl()); err == nil {
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}

	return data, false, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLRender
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// canonicalTree re-encodes the tree in treeio's stable form.
func canonicalTree(root *bintree.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := treeio.WriteTree(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sourceName(opts Options) string {
	if opts.SourceName != "" {
		return opts.SourceName
	}
	return "inline"
}

// logger returns the per-call logger override when set.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
