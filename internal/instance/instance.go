// Package instance decodes problem files into a *graph.WeightedGraph.
//
// Two shapes are accepted, in JSON or YAML:
//
//	{"matrix": [[0, 4, null], ...], "labels": [...], "zero_as_missing": true, "missing_value": -1}
//	{"adjacency": {"A": {"B": 4}, ...}, "order": ["A", "B", ...]}
//
// A null matrix cell means "no edge". In adjacency form an absent pair means
// "no edge"; when order is omitted nodes are sorted by name.
package instance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heldkarp/graph"
)

// ErrInvalidInstance reports a file that decodes but does not describe exactly
// one graph.
var ErrInvalidInstance = errors.New("instance: invalid instance")

// Format selects the decoder.
type Format int

const (
	// JSON is the default format.
	JSON Format = iota

	// YAML is selected for .yaml and .yml files.
	YAML
)

// File is the on-disk representation of a problem instance.
type File struct {
	Matrix        [][]*float64                   `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Labels        []string                       `json:"labels,omitempty" yaml:"labels,omitempty"`
	ZeroAsMissing bool                           `json:"zero_as_missing,omitempty" yaml:"zero_as_missing,omitempty"`
	MissingValue  *float64                       `json:"missing_value,omitempty" yaml:"missing_value,omitempty"`
	Adjacency     map[string]map[string]*float64 `json:"adjacency,omitempty" yaml:"adjacency,omitempty"`
	Order         []string                       `json:"order,omitempty" yaml:"order,omitempty"`
}

// FormatOf guesses the format from a file name.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Load reads and builds the instance at path. extra options are applied after
// the ones the file itself requests.
func Load(path string, extra ...graph.Option) (*graph.WeightedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	defer f.Close()

	g, err := Decode(f, FormatOf(path), extra...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode reads one instance from r.
func Decode(r io.Reader, format Format, extra ...graph.Option) (*graph.WeightedGraph, error) {
	var (
		file File
		err  error
	)
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&file)
	default:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	}
	if err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	return file.Build(extra...)
}

// Build converts a decoded file into a graph.
func (f *File) Build(extra ...graph.Option) (*graph.WeightedGraph, error) {
	hasMatrix, hasAdj := len(f.Matrix) > 0, len(f.Adjacency) > 0
	switch {
	case hasMatrix && hasAdj:
		return nil, fmt.Errorf("%w: both matrix and adjacency given", ErrInvalidInstance)
	case !hasMatrix && !hasAdj:
		return nil, fmt.Errorf("%w: neither matrix nor adjacency given", ErrInvalidInstance)
	}

	var opts []graph.Option
	if f.ZeroAsMissing {
		opts = append(opts, graph.WithZeroAsMissing())
	}
	if f.MissingValue != nil {
		if math.IsNaN(*f.MissingValue) {
			return nil, fmt.Errorf("%w: missing_value is NaN", ErrInvalidInstance)
		}
		opts = append(opts, graph.WithMissingValue(*f.MissingValue))
	}
	opts = append(opts, extra...)

	if hasAdj {
		if len(f.Labels) > 0 {
			return nil, fmt.Errorf("%w: labels come from order in adjacency form", ErrInvalidInstance)
		}
		order := f.Order
		if len(order) == 0 {
			order = nodeNames(f.Adjacency)
		}

		return graph.FromAdjacency(denseEdges(f.Adjacency), order, opts...)
	}

	if len(f.Labels) > 0 {
		opts = append(opts, graph.WithLabels(f.Labels))
	}

	return graph.New(denseRows(f.Matrix), opts...)
}

// denseRows replaces null cells with +Inf.
func denseRows(m [][]*float64) [][]float64 {
	inf := math.Inf(1)
	rows := make([][]float64, len(m))
	for i, row := range m {
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			if v == nil {
				rows[i][j] = inf
				continue
			}
			rows[i][j] = *v
		}
	}

	return rows
}

// denseEdges replaces null weights with +Inf, the same as an omitted edge.
func denseEdges(adj map[string]map[string]*float64) map[string]map[string]float64 {
	inf := math.Inf(1)
	out := make(map[string]map[string]float64, len(adj))
	for from, row := range adj {
		out[from] = make(map[string]float64, len(row))
		for to, w := range row {
			if w == nil {
				out[from][to] = inf
				continue
			}
			out[from][to] = *w
		}
	}

	return out
}

// nodeNames collects every name mentioned in adj, sorted.
func nodeNames(adj map[string]map[string]*float64) []string {
	seen := make(map[string]struct{}, len(adj))
	for from, row := range adj {
		seen[from] = struct{}{}
		for to := range row {
			seen[to] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
