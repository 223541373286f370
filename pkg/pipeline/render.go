package pipeline

import (
	"context"

	"github.com/matzehuels/treeline/pkg/bintree"
	"github.com/matzehuels/treeline/pkg/errors"
	"github.com/matzehuels/treeline/pkg/render/ascii"
	"github.com/matzehuels/treeline/pkg/render/nodelink"
	"github.com/matzehuels/treeline/pkg/render/sinkjson"
)

// renderTree generates the artifact for one format. Text and layout formats
// honor MaxCellWidth; diagram formats honor Detailed and, for PNG, Scale.
func renderTree(ctx context.Context, root *bintree.Node, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatASCII:
		return []byte(ascii.Render(root, ascii.WithMaxCellWidth(opts.MaxCellWidth))), nil

	case FormatJSON:
		return sinkjson.Encode(root, sinkjson.WithMaxCellWidth(opts.MaxCellWidth))

	case FormatDOT:
		return []byte(nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed})), nil

	case FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed}))

	case FormatPDF:
		return nodelink.RenderPDF(ctx, nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed}))

	case FormatPNG:
		return nodelink.RenderPNG(ctx, nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed}), opts.Scale)

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", opts.Format)
	}
}
