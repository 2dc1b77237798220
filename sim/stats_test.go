package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sorted []float64
		want   float64
		ok     bool
	}{
		{"empty", nil, 0, false},
		{"single", []float64{5}, 5, true},
		{"even pair", []float64{1, 3}, 2, true},
		{"even four", []float64{1, 2, 3, 4}, 2.5, true},
		{"odd five", []float64{1, 2, 3, 4, 5}, 3, true},
	}

	for _, tc := range tests {
		got, ok := median(tc.sorted)
		assert.Equal(t, tc.ok, ok, tc.name)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 0.0001, tc.name)
		}
	}
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	four := []float64{10, 20, 30, 40}

	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
		ok     bool
	}{
		{"empty", nil, 50, 0, false},
		{"below range", four, -1, 0, false},
		{"above range", four, 100.1, 0, false},
		{"p0 minimum", four, 0, 10, true},
		{"p10 floors to first", four, 10, 10, true},
		{"p25 exact boundary averages", four, 25, 15, true},
		{"p50 matches median", four, 50, 25, true},
		{"p75 exact boundary averages", four, 75, 35, true},
		{"p90 floors to last", four, 90, 40, true},
		{"p100 maximum", four, 100, 40, true},
		{"single p50", []float64{7}, 50, 7, true},
		{"single p100", []float64{7}, 100, 7, true},
		{"pair p10", []float64{1, 3}, 10, 1, true},
		{"pair p50", []float64{1, 3}, 50, 2, true},
		{"pair p90", []float64{1, 3}, 90, 3, true},
	}

	for _, tc := range tests {
		got, ok := percentile(tc.sorted, tc.p)
		assert.Equal(t, tc.ok, ok, tc.name)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 0.0001, tc.name)
		}
	}
}

func TestMedianAndPercentileAgreeOneRun(t *testing.T) {
	t.Parallel()

	e, err := New(0.0, 10.0, 0.0)
	require.NoError(t, err)
	require.NoError(t, e.RunSimulations(1, 1, 100))

	results := e.Results()
	require.Len(t, results, 1)

	med, ok := e.ResultMedian()
	require.True(t, ok)
	assert.Equal(t, results[0], med)

	p100, ok := e.ResultPercentile(100)
	require.True(t, ok)
	assert.Equal(t, results[0], p100)

	p50, ok := e.ResultPercentile(50)
	require.True(t, ok)
	assert.Equal(t, med, p50)
}

func TestMedianAndPercentileAgreeTwoRuns(t *testing.T) {
	t.Parallel()

	e, err := New(0.0, 10.0, 0.0)
	require.NoError(t, err)
	require.NoError(t, e.RunSimulations(2, 1, 100))

	results := e.Results()
	require.Len(t, results, 2)

	med, ok := e.ResultMedian()
	require.True(t, ok)
	assert.InDelta(t, (results[0]+results[1])/2, med, 0.0001)

	p10, _ := e.ResultPercentile(10)
	assert.Equal(t, results[0], p10)

	p90, _ := e.ResultPercentile(90)
	assert.Equal(t, results[1], p90)

	p50, _ := e.ResultPercentile(50)
	assert.Equal(t, med, p50)
}

func TestMedianAndPercentileAgreeFourRuns(t *testing.T) {
	t.Parallel()

	e, err := New(0.0, 10.0, 0.0)
	require.NoError(t, err)
	require.NoError(t, e.RunSimulations(4, 1, 100))

	results := e.Results()
	require.Len(t, results, 4)

	med, ok := e.ResultMedian()
	require.True(t, ok)
	assert.InDelta(t, (results[1]+results[2])/2, med, 0.0001)

	p10, _ := e.ResultPercentile(10)
	assert.Equal(t, results[0], p10)

	p90, _ := e.ResultPercentile(90)
	assert.Equal(t, results[3], p90)

	p25, _ := e.ResultPercentile(25)
	assert.InDelta(t, (results[0]+results[1])/2, p25, 0.0001)

	p75, _ := e.ResultPercentile(75)
	assert.InDelta(t, (results[2]+results[3])/2, p75, 0.0001)

	p50, _ := e.ResultPercentile(50)
	assert.Equal(t, med, p50)
}
