package timing

import (
	"context"
	"testing"
	"time"

	"audiology/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_RecordsDurations(t *testing.T) {
	tr := NewTracker(logger.NoOpLogger{})

	ctx := tr.Start("load_image")
	time.Sleep(2 * time.Millisecond)
	d := tr.End(ctx)

	assert.GreaterOrEqual(t, d, 2*time.Millisecond)
	timings := tr.Timings("load_image")
	require.Len(t, timings, 1)
	assert.Equal(t, d, timings[0])
	assert.Equal(t, d, tr.Average("load_image"))
}

func TestTracker_UnknownContext(t *testing.T) {
	tr := NewTracker(logger.NoOpLogger{})

	assert.Zero(t, tr.End(context.Background()))
	assert.Nil(t, tr.Timings("anything"))
	assert.Zero(t, tr.Average("anything"))
}

func TestTracker_Disabled(t *testing.T) {
	tr := NewTracker(logger.NoOpLogger{})
	tr.SetEnabled(false)

	tr.End(tr.Start("decode"))
	assert.Nil(t, tr.Timings("decode"))
}

func TestTracker_SummaryAndReset(t *testing.T) {
	tr := NewTracker(logger.NoOpLogger{})
	tr.End(tr.Start("a"))
	tr.End(tr.Start("a"))
	tr.End(tr.Start("b"))

	summary := tr.Summary()
	assert.Equal(t, 2, summary["a_count"])
	assert.Equal(t, 1, summary["b_count"])
	assert.Contains(t, summary, "a_avg_ms")

	tr.Reset("a")
	assert.Nil(t, tr.Timings("a"))
	assert.Len(t, tr.Timings("b"), 1)

	tr.Reset("")
	assert.Empty(t, tr.Summary())
}
