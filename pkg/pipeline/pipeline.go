// Package pipeline provides the core rendering pipeline for Treeline.
//
// This package implements the complete decode → render pipeline that can be
// used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Decode: Read the tree document into the in-memory model
//  2. Render: Generate output in the requested format
//
// Each stage can be run independently or as part of the complete pipeline.
// Rendered artifacts are cached under content-addressed keys, so repeated
// renders of the same document are served from the cache.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source: doc,
//	    Format: pipeline.FormatASCII,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Output))
//
// Run individual stages:
//
//	// Decode only
//	root, err := runner.Decode(ctx, opts)
//
//	// Render an already-built tree
//	data, err := runner.Render(ctx, root, opts)
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeline/pkg/bintree"
	"github.com/matzehuels/treeline/pkg/cache"
	"github.com/matzehuels/treeline/pkg/errors"
	"github.com/matzehuels/treeline/pkg/render/ascii"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxCellWidth caps the global cell width of text layouts. It
	// mirrors ascii.DefaultMaxCellWidth so CLI, API, and library callers
	// agree on geometry.
	DefaultMaxCellWidth = ascii.DefaultMaxCellWidth

	// DefaultScale is the default PNG resolution multiplier.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatASCII = "ascii"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatSVG   = "svg"
	FormatPDF   = "pdf"
	FormatPNG   = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatASCII: true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatSVG:   true,
	FormatPDF:   true,
	FormatPNG:   true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Decode options
	Source json.RawMessage `json:"tree,omitempty"`

	// Render options
	Format       string  `json:"format,omitempty"`
	MaxCellWidth int     `json:"max_cell_width,omitempty"`
	Scale        float64 `json:"scale,omitempty"`
	Detailed     bool    `json:"detailed,omitempty"`
	Refresh      bool    `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	SourceName string      `json:"-"` // origin label for logs, e.g. a file path
	Logger     *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the decoded tree.
	Root *bintree.Node

	// TreeHash is the content hash of the canonical tree document.
	TreeHash string

	// Output is the rendered artifact.
	Output []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether Output came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	TreeHeight int
	DecodeTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: ascii, json, dot, svg, pdf, png)", format)
	}
	return nil
}

// BinaryFormat reports whether a format produces binary output, as opposed
// to text that can print to a terminal or embed in a JSON response.
func BinaryFormat(format string) bool {
	return format == FormatPDF || format == FormatPNG
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "tree document is required")
	}
	o.SetRenderDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := errors.ValidateMaxCellWidth(o.MaxCellWidth); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = FormatASCII
	}
	if o.MaxCellWidth == 0 {
		o.MaxCellWidth = DefaultMaxCellWidth
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// RenderKeyOpts returns cache key options for artifact caching.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:       o.Format,
		MaxCellWidth: o.MaxCellWidth,
		Scale:        o.Scale,
		Detailed:     o.Detailed,
	}
}
