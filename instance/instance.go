// Package instance reads problem instances from YAML or JSON documents and
// hands them to the matching encoder.
//
// A document names its problem kind and carries the instance matrices:
//
//	kind: qap
//	name: two-facility
//	alpha: 10
//	weight:   [[0, 1], [1, 0]]
//	distance: [[0, 2], [2, 0]]
//
// "tsp" documents carry only a distance matrix. A positive alpha in the
// document is applied before any caller option, so callers can override it.
package instance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qubox/encoder"
	"github.com/katalvlaran/qubox/model"
	"github.com/katalvlaran/qubox/qap"
	"github.com/katalvlaran/qubox/tsp"
)

// Sentinel errors returned by the instance package.
var (
	// ErrUnknownFormat indicates a file extension or format other than YAML or JSON.
	ErrUnknownFormat = errors.New("instance: unknown document format, want yaml or json")

	// ErrUnknownKind indicates a problem kind other than "qap" or "tsp".
	ErrUnknownKind = errors.New("instance: unknown problem kind, want 'qap' or 'tsp'")

	// ErrMissingMatrix indicates that a matrix required by the kind is absent.
	ErrMissingMatrix = errors.New("instance: required matrix is missing")
)

// Kind names a problem family.
type Kind string

// Supported problem kinds.
const (
	KindQAP Kind = "qap"
	KindTSP Kind = "tsp"
)

// Format names a document encoding.
type Format string

// Supported document formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf derives the format from a file extension (.yaml, .yml, .json).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Document is one problem instance.
type Document struct {
	Kind     Kind        `yaml:"kind" json:"kind"`
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Alpha    float64     `yaml:"alpha,omitempty" json:"alpha,omitempty"`
	Weight   [][]float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
	Distance [][]float64 `yaml:"distance" json:"distance"`
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode reads one document in format f from r and validates it.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("instance: decode %s: %w", f, err)
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode writes d in format f.
func (d *Document) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("instance: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// Validate checks the kind, the matrices the kind needs and alpha.
//
// Errors:
//   - ErrUnknownKind, ErrMissingMatrix, encoder.ErrBadAlpha and the encoder
//     instance errors (ErrNonSquare, ErrShapeMismatch, ...).
func (d *Document) Validate() error {
	if d.Kind != KindQAP && d.Kind != KindTSP {
		return fmt.Errorf("instance: %q: %w", d.Kind, ErrUnknownKind)
	}
	if math.IsNaN(d.Alpha) || math.IsInf(d.Alpha, 0) || d.Alpha < 0 {
		return fmt.Errorf("instance: alpha=%v: %w", d.Alpha, encoder.ErrBadAlpha)
	}
	if d.Distance == nil {
		return fmt.Errorf("instance: distance: %w", ErrMissingMatrix)
	}
	n, err := encoder.SquareOrder("distance", d.Distance)
	if err != nil {
		return fmt.Errorf("instance: %w", err)
	}

	if d.Kind == KindTSP {
		return nil
	}
	if d.Weight == nil {
		return fmt.Errorf("instance: weight: %w", ErrMissingMatrix)
	}
	nw, err := encoder.SquareOrder("weight", d.Weight)
	if err != nil {
		return fmt.Errorf("instance: %w", err)
	}
	if nw != n {
		return fmt.Errorf("instance: weight %d vs distance %d: %w", nw, n, encoder.ErrShapeMismatch)
	}

	return nil
}

// Order returns the instance order n; the model has n² variables.
func (d *Document) Order() int { return len(d.Distance) }

// options prepends the document alpha to the caller options.
func (d *Document) options(opts []encoder.Option) []encoder.Option {
	if d.Alpha <= 0 {
		return opts
	}

	return append([]encoder.Option{encoder.WithAlpha(d.Alpha)}, opts...)
}

// Build encodes the document with the encoder of its kind.
func (d *Document) Build(opts ...encoder.Option) (*model.Model, error) {
	return d.BuildContext(context.Background(), opts...)
}

// BuildContext is Build with cancellation.
func (d *Document) BuildContext(ctx context.Context, opts ...encoder.Option) (*model.Model, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	switch d.Kind {
	case KindQAP:
		return qap.BuildContext(ctx, d.Weight, d.Distance, d.options(opts)...)
	default:
		return tsp.BuildContext(ctx, d.Distance, d.options(opts)...)
	}
}

// Objective returns the problem objective of a decoded solution: the
// assignment cost for "qap", the tour length for "tsp".
func (d *Document) Objective(perm []int) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if d.Kind == KindQAP {
		return qap.AssignmentCost(d.Weight, d.Distance, perm)
	}

	return tsp.TourLength(d.Distance, perm)
}

// DecodeSample maps a sample of the built model back to a permutation.
func (d *Document) DecodeSample(x []int) ([]int, error) {
	if d.Kind == KindQAP {
		return qap.Decode(x, d.Order())
	}

	return tsp.Decode(x, d.Order())
}
