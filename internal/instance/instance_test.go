package instance_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/internal/instance"
	"github.com/katalvlaran/heldkarp/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SevenCities(t *testing.T) {
	for _, name := range []string{"seven.json", "cities.json", "cities.yaml"} {
		t.Run(name, func(t *testing.T) {
			g, err := instance.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			require.Equal(t, 7, g.N())
			assert.False(t, g.HasEdge(0, 3))
			assert.Equal(t, 3.0, g.Cost(2, 4))

			res, err := tsp.Solve(g, tsp.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 3, 5, 6, 4, 2, 0}, res.Tour)
			assert.Equal(t, 63.0, res.Cost)
		})
	}
}

func TestLoad_AdjacencyLabels(t *testing.T) {
	g, err := instance.Load(filepath.Join("testdata", "cities.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "City 1", g.Label(0))
	assert.Equal(t, "City 7", g.Label(6))
}

func TestLoad_NullsAndSentinel(t *testing.T) {
	g, err := instance.Load(filepath.Join("testdata", "nulls.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"depot", "mill", "farm"}, g.Labels())
	assert.True(t, math.IsInf(g.Cost(1, 0), 1), "null is no edge")
	assert.True(t, math.IsInf(g.Cost(2, 1), 1), "missing_value is no edge")

	res, err := tsp.Solve(g, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, res.Tour)
	assert.Equal(t, 9.0, res.Cost)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := instance.Load(filepath.Join("testdata", "absent.json"))
	require.Error(t, err)
}

func TestDecode_ExtraOptions(t *testing.T) {
	src := `{"matrix": [[0, 0], [5, 0]]}`

	g, err := instance.Decode(strings.NewReader(src), instance.JSON)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1), "zero is a real edge by default")

	g, err = instance.Decode(strings.NewReader(src), instance.JSON, graph.WithZeroAsMissing())
	require.NoError(t, err)
	assert.False(t, g.HasEdge(0, 1))
}

func TestDecode_NullAdjacencyWeight(t *testing.T) {
	cases := map[string]struct {
		src    string
		format instance.Format
	}{
		"json": {`{"adjacency": {"A": {"B": 4, "C": null}, "B": {"C": 1, "A": 2}, "C": {"A": 3}}}`, instance.JSON},
		"yaml": {"adjacency:\n  A: {B: 4, C: ~}\n  B: {C: 1, A: 2}\n  C: {A: 3}\n", instance.YAML},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := instance.Decode(strings.NewReader(tc.src), tc.format)
			require.NoError(t, err)
			require.Equal(t, []string{"A", "B", "C"}, g.Labels())
			assert.False(t, g.HasEdge(0, 2), "null is no edge, not a zero-cost one")
			assert.True(t, g.HasEdge(0, 1))

			res, err := tsp.Solve(g, tsp.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 0}, res.Tour)
			assert.Equal(t, 8.0, res.Cost)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]struct {
		src    string
		format instance.Format
		target error
	}{
		"empty object":     {`{}`, instance.JSON, instance.ErrInvalidInstance},
		"both shapes":      {`{"matrix": [[0]], "adjacency": {"a": {}}}`, instance.JSON, instance.ErrInvalidInstance},
		"labels with adj":  {`{"adjacency": {"a": {"b": 1}}, "labels": ["a", "b"]}`, instance.JSON, instance.ErrInvalidInstance},
		"ragged":           {`{"matrix": [[0, 1], [1]]}`, instance.JSON, graph.ErrMalformedGraph},
		"negative":         {`{"matrix": [[0, -2], [1, 0]]}`, instance.JSON, graph.ErrMalformedGraph},
		"unknown adj node": {`{"adjacency": {"a": {"z": 1}}, "order": ["a"]}`, instance.JSON, graph.ErrMalformedGraph},
		"yaml nan":         {"matrix: [[0, 1], [1, 0]]\nmissing_value: .nan\n", instance.YAML, instance.ErrInvalidInstance},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := instance.Decode(strings.NewReader(tc.src), tc.format)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := instance.Decode(strings.NewReader(`{"matrix": [[0]], "symmetric": true}`), instance.JSON)
	require.Error(t, err)

	_, err = instance.Decode(strings.NewReader("matrix: [[0]]\nsymmetric: true\n"), instance.YAML)
	require.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, instance.YAML, instance.FormatOf("a/b.yml"))
	assert.Equal(t, instance.YAML, instance.FormatOf("B.YAML"))
	assert.Equal(t, instance.JSON, instance.FormatOf("c.json"))
	assert.Equal(t, instance.JSON, instance.FormatOf("stdin"))
}
