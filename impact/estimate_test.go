package impact

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollama/spatten/attention"
)

func TestComputeBertBase(t *testing.T) {
	// 1 x 12 x 256, 1000 gepruente Tokens
	m := Compute(3072, 1000, 12, 256)

	assert.Equal(t, 3072, m.TotalTokenSlots)
	assert.Equal(t, 1000, m.PrunedCount)
	assert.InDelta(t, 32.552083, m.PrunedPercentage, 1e-6)
	assert.InDelta(t, 172.666667, m.ActiveTokensPerHead, 1e-6)
	assert.Equal(t, 65536, m.BaselineOpsPerHead)
	// floor(172.666... * 256) = floor(44202.67)
	assert.Equal(t, 44202, m.PrunedOpsPerHead)
	assert.InDelta(t, 100*float64(65536-44202)/65536, m.OpsReductionPct, 1e-12)
	assert.InDelta(t, 65536.0/44202.0, m.MemoryAccessReduction, 1e-12)
}

func TestComputeNothingPruned(t *testing.T) {
	m := Compute(4*8, 0, 4, 8)
	assert.Equal(t, 0.0, m.PrunedPercentage)
	assert.Equal(t, 8.0, m.ActiveTokensPerHead)
	assert.Equal(t, m.BaselineOpsPerHead, m.PrunedOpsPerHead)
	assert.Equal(t, 0.0, m.OpsReductionPct)
	assert.Equal(t, 1.0, m.MemoryAccessReduction)
}

func TestComputeEverythingPruned(t *testing.T) {
	m := Compute(24, 24, 3, 8)
	assert.Equal(t, 100.0, m.PrunedPercentage)
	assert.Equal(t, 0, m.PrunedOpsPerHead)
	assert.Equal(t, 100.0, m.OpsReductionPct)
	assert.True(t, math.IsInf(m.MemoryAccessReduction, 1))
}

func TestComputeAveragesAcrossHeads(t *testing.T) {
	// Alle 3 gepruenten Tokens liegen in einem Head, geschaetzt wird
	// trotzdem gleichmaessig verteilt: (8-3)/2 = 2.5 aktive Tokens
	m := Compute(8, 3, 2, 4)
	assert.Equal(t, 2.5, m.ActiveTokensPerHead)
	assert.Equal(t, 10, m.PrunedOpsPerHead)
	assert.Equal(t, 1.6, m.MemoryAccessReduction)
}

func TestEstimateFromMask(t *testing.T) {
	tt, err := attention.FromData(attention.Shape{Batch: 1, Heads: 2, SeqLen: 2}, []float64{
		0.9, 0.1,
		0.4, 0.6,
		0.5, 0.5,
		0.3, 0.7,
	})
	require.NoError(t, err)

	_, mask := attention.Prune(tt, 0.8)
	m := Estimate(mask)

	assert.Equal(t, 4, m.TotalTokenSlots)
	assert.Equal(t, 3, m.PrunedCount)
	assert.Equal(t, 75.0, m.PrunedPercentage)
	assert.Equal(t, 0.5, m.ActiveTokensPerHead)
	assert.Equal(t, 4, m.BaselineOpsPerHead)
	assert.Equal(t, 1, m.PrunedOpsPerHead)
	assert.Equal(t, 75.0, m.OpsReductionPct)
	assert.Equal(t, 4.0, m.MemoryAccessReduction)
	assert.Equal(t, []int{1, 2}, m.PrunedPerHead)
}

func TestEstimateSynthesizedBoundaries(t *testing.T) {
	tt, err := attention.Synthesize(rand.New(rand.NewSource(5)), 32, 4, 1)
	require.NoError(t, err)

	_, mask := attention.Prune(tt, 0)
	assert.Equal(t, 1.0, Estimate(mask).MemoryAccessReduction)

	_, mask = attention.Prune(tt, 1)
	assert.True(t, math.IsInf(Estimate(mask).MemoryAccessReduction, 1))
}

func TestMetricsJSONInfinity(t *testing.T) {
	b, err := json.Marshal(Compute(4, 4, 1, 4))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "+Inf", out["memory_access_reduction_factor"])
	assert.Equal(t, 100.0, out["ops_reduction_pct"])

	b, err = json.Marshal(Compute(4, 0, 1, 4))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, 1.0, out["memory_access_reduction_factor"])
}

func TestMetricsJSONRoundTrip(t *testing.T) {
	cases := []Metrics{
		Compute(12, 12, 3, 4),
		Compute(12, 0, 3, 4),
		Compute(3072, 1000, 12, 256),
	}

	for _, want := range cases {
		b, err := json.Marshal(want)
		require.NoError(t, err)

		var got Metrics
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, want, got)
	}
}

func TestMetricsJSONAllPrunedRoundTrip(t *testing.T) {
	tt, err := attention.Synthesize(rand.New(rand.NewSource(8)), 16, 2, 1)
	require.NoError(t, err)

	_, mask := attention.Prune(tt, 2)
	want := Estimate(mask)
	require.True(t, math.IsInf(want.MemoryAccessReduction, 1))

	b, err := json.Marshal(want)
	require.NoError(t, err)

	var got Metrics
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, math.IsInf(got.MemoryAccessReduction, 1))
	assert.Equal(t, want.PrunedCount, got.PrunedCount)
	assert.Equal(t, []int{16, 16}, got.PrunedPerHead)
}

func TestMetricsJSONInvalidFactor(t *testing.T) {
	var m Metrics
	err := json.Unmarshal([]byte(`{"memory_access_reduction_factor":"viel"}`), &m)
	assert.Error(t, err)
}
