package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time { return c.t }

func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerReportsAtInterval(t *testing.T) {
	var out bytes.Buffer
	clock := &stepClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithLogger(log.New(&out, "", 0)), WithInterval(time.Second), WithClock(clock.now))

	for i := 0; i < 49; i++ {
		clock.advance(20 * time.Millisecond)
		require.False(t, p.Tick())
	}
	assert.Empty(t, out.String())

	clock.advance(20 * time.Millisecond)
	require.True(t, p.Tick())
	assert.Contains(t, out.String(), "[Profiler] FPS: 50.00")
	assert.InDelta(t, 50, p.FPS(), 0.01)

	clock.advance(time.Millisecond)
	assert.False(t, p.Tick(), "counter restarts after a report")
}

func TestProfilerOptionsIgnoreInvalidValues(t *testing.T) {
	p := NewProfiler(WithLogger(nil), WithInterval(-time.Second), WithClock(nil))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.now)
	assert.Equal(t, 0.0, p.FPS())
}
