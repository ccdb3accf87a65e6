package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/grid"
)

func TestColorEnabled(t *testing.T) {
	cases := []struct {
		mode string
		tty  bool
		want bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
		{"ALWAYS", false, true},
		{"never", true, false},
	}
	for _, tc := range cases {
		got, err := colorEnabled(tc.mode, tc.tty)
		require.NoError(t, err, tc.mode)
		assert.Equal(t, tc.want, got, "mode=%q tty=%v", tc.mode, tc.tty)
	}
	_, err := colorEnabled("sometimes", true)
	assert.Error(t, err)
}

func TestCarve(t *testing.T) {
	g, err := carve(5, 7, "Hunt and Kill", 3)
	require.NoError(t, err)
	assert.Equal(t, 5*7-1, g.LinkCount())
	assert.NoError(t, g.CheckPerfect())

	_, err = carve(5, 7, "prims", 3)
	assert.ErrorIs(t, err, generate.ErrUnknownAlgorithm)

	_, err = carve(0, 7, "wilsons", 3)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestBuildLabel(t *testing.T) {
	g, err := carve(4, 4, "binary-tree", 1)
	require.NoError(t, err)

	for _, show := range []string{showNone, showDistances, showPath, showHeat} {
		label, err := buildLabel(g, show, true, false)
		require.NoError(t, err, show)
		assert.NotEmpty(t, label(grid.Coord{}), show)
	}
	_, err = buildLabel(g, "walls", false, false)
	assert.Error(t, err)
}

func TestCollectStats(t *testing.T) {
	var ticks int
	results, err := collectStats(6, 6, 3, 11, func() { ticks++ })
	require.NoError(t, err)
	require.Len(t, results, len(generate.Algorithms()))
	assert.Equal(t, 3*len(generate.Algorithms()), ticks)

	for i, st := range results {
		assert.Equal(t, generate.Algorithms()[i], st.Algorithm)
		assert.Equal(t, 3, st.Trials)
		assert.Greater(t, st.AvgDeadEnds(), 0.0)
		assert.GreaterOrEqual(t, st.AvgLongest(), 10.0, "a 6x6 maze spans at least corner to corner")
	}

	again, err := collectStats(6, 6, 3, 11, nil)
	require.NoError(t, err)
	assert.Equal(t, results, again)
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	writeStats(&buf, 100, []algorithmStats{
		{Algorithm: generate.Sidewinder, Trials: 2, DeadEnds: 50, LongestSteps: 60},
	})
	out := buf.String()
	assert.Contains(t, out, headerAlgorithm)
	assert.Contains(t, out, "sidewinder")
	assert.Contains(t, out, "25.0")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "30.0")
}

func TestAlgorithmStats_ZeroTrials(t *testing.T) {
	var st algorithmStats
	assert.Zero(t, st.AvgDeadEnds())
	assert.Zero(t, st.AvgLongest())
}
