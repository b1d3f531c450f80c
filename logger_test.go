package geodarray

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRecordsMappings(t *testing.T) {
	var buf bytes.Buffer
	g := WGS84.With(WithLogger(NewJSONLogger(&buf, slog.LevelDebug)))

	lat, err := Masked([]float64{0, 1, 2}, 1)
	require.NoError(t, err)
	_, err = g.Distance(lat, lat, Scalar(0), Scalar(0))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "mapping completed", rec["msg"])
	assert.Equal(t, "distance", rec["op"])
	assert.Equal(t, 3.0, rec["count"])
	assert.Equal(t, 1.0, rec["masked"])

	buf.Reset()
	_, err = g.Distance(lat, NewArray(2), Scalar(0), Scalar(0))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "mapping rejected")
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	g := Globe.With(WithLogger(NewTextLogger(&buf, slog.LevelInfo)))
	_, err := g.Distance(Scalar(0), Scalar(0), Scalar(1), Scalar(1))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	// a nil logger falls back to discarding output
	g = Globe.With(WithLogger(nil))
	_, err = g.Distance(Scalar(0), Scalar(0), Scalar(1), Scalar(1))
	require.NoError(t, err)

	assert.NotNil(t, NewLogger(nil).Logger)
}

func TestWithCopiesOptions(t *testing.T) {
	var buf bytes.Buffer
	_ = WGS84.With(WithLogger(NewTextLogger(&buf, slog.LevelDebug)), WithMaskNaN(true))
	_, err := WGS84.Distance(Scalar(0), Scalar(0), Scalar(1), Scalar(1))
	require.NoError(t, err)
	assert.False(t, strings.Contains(buf.String(), "mapping"))
	assert.False(t, WGS84.opts.maskNaN)
}
