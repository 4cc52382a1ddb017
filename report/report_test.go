package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollama/spatten/attention"
	"github.com/ollama/spatten/impact"
)

// testReport erstellt einen Report mit BERT-Base Parametern
func testReport() *Report {
	shape := attention.Shape{Batch: 1, Heads: 12, SeqLen: 256}
	r := New(shape, 0.05, 42)
	r.FinalSparsity = 32.55
	r.Metrics = impact.Compute(shape.Rows(), 1000, shape.Heads, shape.SeqLen)
	r.Footprint = impact.Footprint{DType: "f16", DenseBytes: 1572864, PrunedBytes: 1060864}
	return r
}

func TestNew(t *testing.T) {
	r := testReport()
	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err)
	assert.False(t, r.Timestamp.IsZero())
	assert.NotEqual(t, r.RunID, New(r.Shape, 0.05, 42).RunID)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, testReport(), true)
	out := buf.String()

	for _, want := range []string{
		"Parameters: Batch Size=1, Sequence Length=256, Heads=12",
		"Tokens pruned: 1,000 out of 3,072 total tokens across all heads (32.55%)",
		"Final Matrix Sparsity: 32.55%",
		"Baseline (Dense) Operations: ~65,536 MACs",
		"Pruned (Sparse) Operations: ~44,202 MACs",
		"Reduction in Compute Operations: 32.55%",
		"Attention weights (f16):",
		"~1.5x reduction in off-chip DRAM access",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteTextWithoutBanner(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, testReport(), false)
	assert.NotContains(t, buf.String(), "Parameters:")
}

func TestWriteTextInfiniteFactor(t *testing.T) {
	r := testReport()
	r.Metrics = impact.Compute(r.Shape.Rows(), r.Shape.Rows(), r.Shape.Heads, r.Shape.SeqLen)
	r.Footprint = impact.Footprint{}

	var buf bytes.Buffer
	WriteText(&buf, r, false)
	assert.Contains(t, buf.String(), "~inf reduction in off-chip DRAM access")
	assert.NotContains(t, buf.String(), "Infx")
	assert.NotContains(t, buf.String(), "Attention weights")
}

func TestWriteMetricsTable(t *testing.T) {
	var buf bytes.Buffer
	WriteMetricsTable(&buf, testReport())
	out := buf.String()

	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "65536")
	assert.Contains(t, out, "44202")
	assert.Contains(t, out, "1.5x")
}

func TestWriteSweepTable(t *testing.T) {
	points := []impact.SweepPoint{
		{Threshold: 0, Metrics: impact.Compute(8, 0, 2, 4)},
		{Threshold: 1, Sparsity: 100, Metrics: impact.Compute(8, 8, 2, 4)},
	}

	var buf bytes.Buffer
	WriteSweepTable(&buf, points)
	out := buf.String()

	assert.Contains(t, out, "THRESHOLD")
	assert.Contains(t, out, "0/8")
	assert.Contains(t, out, "8/8")
	assert.Contains(t, out, "inf")
	assert.NotContains(t, out, "+Inf")
	assert.True(t, strings.HasSuffix(out, "mean compute reduction: 50.00%\n"))
}

func TestFactor(t *testing.T) {
	assert.Equal(t, "1.5x", factor(65536.0/44202.0))
	assert.Equal(t, "1.0x", factor(1))
	assert.Equal(t, "inf", factor(math.Inf(1)))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testReport()))

	var out struct {
		RunID   string          `json:"run_id"`
		Shape   attention.Shape `json:"shape"`
		Metrics map[string]any  `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 256, out.Shape.SeqLen)
	assert.Equal(t, 44202.0, out.Metrics["pruned_ops_per_head"])
}
