package topk

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	identity := func(v int) int { return v }

	newBufLogger := func(buf *bytes.Buffer) *Logger {
		return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	t.Run("SelectorOperations", func(t *testing.T) {
		var buf bytes.Buffer
		sel, err := NewTop(2, identity, WithLogger(newBufLogger(&buf)))
		require.NoError(t, err)

		sel.Offer(1)
		sel.Results()
		sel.Reset()

		out := buf.String()
		assert.Contains(t, out, "results extracted")
		assert.Contains(t, out, "drained=false")
		assert.Contains(t, out, "selector reset")
		assert.Contains(t, out, "discarded=1")
	})

	t.Run("MergeLog", func(t *testing.T) {
		var buf bytes.Buffer
		dst, err := NewTop(2, identity, WithLogger(newBufLogger(&buf)))
		require.NoError(t, err)
		src, err := NewTop(2, identity)
		require.NoError(t, err)

		src.Offer(3)
		dst.Merge(src)

		assert.Contains(t, buf.String(), "merge completed")
		assert.Contains(t, buf.String(), "accepted=1")
	})

	t.Run("ComputeLog", func(t *testing.T) {
		var buf bytes.Buffer

		_, err := ComputeTop(2, []int{4, 2, 6}, identity, func(o *ComputeOptions) {
			o.Logger = newBufLogger(&buf)
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "compute completed")
		assert.Contains(t, out, "offered=3")
	})

	t.Run("WithHelpers", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newBufLogger(&buf).WithK(5).WithCount(2)

		logger.Debug("checkpoint")

		out := buf.String()
		assert.Contains(t, out, "k=5")
		assert.Contains(t, out, "count=2")
	})

	t.Run("NoopDiscards", func(t *testing.T) {
		// Must not panic and must stay silent at any level.
		logger := NoopLogger()
		logger.Error("dropped")
		logger.LogResults(1, 1, true, false)
	})
}
