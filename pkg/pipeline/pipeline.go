// Package pipeline provides the conversion pipeline for graphconv.
//
// This package wires a parser for the input format to a sink for the
// output format and streams records between them. The CLI and tests use it
// so that every entry point behaves the same way.
//
// # Architecture
//
// A conversion has two halves connected by [graph.Sink]:
//
//  1. Parse: a GML or GraphML parser reads the input and emits records
//  2. Write: a GML, GraphML or DOT writer consumes them; SVG, PDF and PNG
//     are rendered from DOT once the input is exhausted
//
// Records flow one at a time, so memory use does not grow with the number
// of nodes, except for the GraphML body which is buffered until its key
// declarations are known (see the spool package).
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{From: "gml", To: "graphml"}
//	result, err := runner.Convert(ctx, in, out, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.NodeCount)
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Maxyme/gml-to-graphml/pkg/cache"
	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/gml"
	"github.com/Maxyme/gml-to-graphml/pkg/graphml"
	"github.com/Maxyme/gml-to-graphml/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultNodePrefix is prepended to integer node ids in GraphML.
	DefaultNodePrefix = graphml.DefaultNodePrefix

	// DefaultIndent is the per-level indentation of GML and GraphML output.
	DefaultIndent = gml.DefaultIndent

	// DefaultLabelAttr is the attribute used for node labels in diagrams.
	DefaultLabelAttr = nodelink.DefaultLabelAttr

	// DefaultScale is the PNG resolution factor.
	DefaultScale = 2.0
)

// Format constants for inputs and outputs.
const (
	FormatGML     = "gml"
	FormatGraphML = "graphml"
	FormatDOT     = "dot"
	FormatSVG     = "svg"
	FormatPDF     = "pdf"
	FormatPNG     = "png"
)

// InputFormats is the set of formats that can be parsed.
var InputFormats = map[string]bool{
	FormatGML:     true,
	FormatGraphML: true,
}

// OutputFormats is the set of formats that can be written.
var OutputFormats = map[string]bool{
	FormatGML:     true,
	FormatGraphML: true,
	FormatDOT:     true,
	FormatSVG:     true,
	FormatPDF:     true,
	FormatPNG:     true,
}

var extensions = map[string]string{
	".gml":     FormatGML,
	".graphml": FormatGraphML,
	".xml":     FormatGraphML,
	".dot":     FormatDOT,
	".gv":      FormatDOT,
	".svg":     FormatSVG,
	".pdf":     FormatPDF,
	".png":     FormatPNG,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one conversion.
type Options struct {
	// From and To are the input and output formats.
	From string
	To   string

	// NodePrefix is added to integer node ids when writing GraphML and
	// stripped when reading it. RawIDs disables it.
	NodePrefix string
	RawIDs     bool

	// Indent is the per-level indentation of GML and GraphML output.
	Indent string

	// Lenient keeps non-numeric GraphML values under numeric keys as text.
	Lenient bool

	// Normalize drops empty and NaN values and unfolds embedded JSON while
	// reading GML. KeepNaN keeps NaN values when normalizing.
	Normalize bool
	KeepNaN   bool

	// SpoolDir and SpoolThreshold configure the GraphML body buffer.
	SpoolDir       string
	SpoolThreshold int64

	// Diagram options for DOT, SVG, PDF and PNG.
	LabelAttr string
	Detailed  bool
	Scale     float64

	// Cache stores rendered SVG, PDF and PNG output. Defaults to no caching.
	Cache cache.Cache

	// Logger receives progress messages. Defaults to a discarding logger.
	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a conversion.
type Result struct {
	// Stats contains counts and timing.
	Stats Stats

	// Spilled reports whether the GraphML body outgrew memory.
	Spilled bool

	// Cached reports whether a rendered picture came from the cache.
	Cached bool
}

// Stats contains conversion statistics.
type Stats struct {
	NodeCount int
	EdgeCount int
	AttrCount int
	KeyCount  int
	Duration  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// DetectFormat infers a format from a file extension.
func DetectFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot detect format of %q (use --from/--to)", path)
}

// ValidateInputFormat checks that a format can be parsed.
func ValidateInputFormat(format string) error {
	if !InputFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid input format: %q (must be one of: %s)",
			format, strings.Join(sortedKeys(InputFormats), ", "))
	}
	return nil
}

// ValidateOutputFormat checks that a format can be written.
func ValidateOutputFormat(format string) error {
	if !OutputFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid output format: %q (must be one of: %s)",
			format, strings.Join(sortedKeys(OutputFormats), ", "))
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the formats and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateInputFormat(o.From); err != nil {
		return err
	}
	if err := ValidateOutputFormat(o.To); err != nil {
		return err
	}
	if o.NodePrefix == "" {
		o.NodePrefix = DefaultNodePrefix
	}
	if err := errors.ValidateNodePrefix(o.NodePrefix); err != nil {
		return err
	}
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if strings.TrimLeft(o.Indent, " \t") != "" {
		return errors.New(errors.ErrCodeInvalidConfig, "indent must be spaces or tabs: %q", o.Indent)
	}
	if o.LabelAttr == "" {
		o.LabelAttr = DefaultLabelAttr
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive: %g", o.Scale)
	}
	if o.Cache == nil {
		o.Cache = cache.NewNullCache()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Prefix returns the node id prefix in effect.
func (o *Options) Prefix() string {
	if o.RawIDs {
		return ""
	}
	return o.NodePrefix
}

// IsRendered reports whether the output is a picture rendered from DOT.
func (o *Options) IsRendered() bool {
	return o.To == FormatSVG || o.To == FormatPDF || o.To == FormatPNG
}
