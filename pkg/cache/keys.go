package cache

// Keyer derives cache keys for trees and their rendered artifacts. Keys are
// content-addressed: the same tree and options always map to the same key, so
// cache hits survive process restarts.
type Keyer interface {
	// TreeKey identifies a tree by its canonical JSON encoding.
	TreeKey(canonical []byte) string

	// RenderKey identifies one rendering of the tree named by treeHash.
	RenderKey(treeHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts distinguishes renderings of the same tree.
type RenderKeyOpts struct {
	Format       string
	MaxCellWidth int
	Scale        float64
	Detailed     bool
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TreeKey generates a key for tree identity caching.
func (k *DefaultKeyer) TreeKey(canonical []byte) string {
	return "tree:" + Hash(canonical)
}

// RenderKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) RenderKey(treeHash string, opts RenderKeyOpts) string {
	return hashKey("render", treeHash, opts.Format, opts.MaxCellWidth, opts.Scale, opts.Detailed)
}
