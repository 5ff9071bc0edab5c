package camera

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryOrder(t *testing.T) {
	r := NewDefaultModeRegistry()
	assert.Equal(t, []string{ModeDefault, ModeCloseup, ModeFull, ModeSide, ModeLow}, r.IDs())
	assert.Equal(t, 5, r.Len())

	m, err := r.Get(ModeCloseup)
	require.NoError(t, err)
	assert.Equal(t, NewPose(0, 1.2, 2, 0, 1.2, 0, 45), m.Pose)
	assert.Equal(t, 0.8, m.TransitionDuration)
}

func TestRegistryUnknownMode(t *testing.T) {
	r := NewDefaultModeRegistry()
	_, err := r.Get("dutch")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Contains(t, err.Error(), "dutch")
}

func TestRegistryReRegisterLastWriteWins(t *testing.T) {
	r := NewModeRegistry()
	require.NoError(t, r.Register(Mode{ID: "a", Pose: NewPose(0, 0, 1, 0, 0, 0, 40), TransitionDuration: 1}))
	require.NoError(t, r.Register(Mode{ID: "b", Pose: NewPose(0, 0, 2, 0, 0, 0, 40), TransitionDuration: 1}))
	require.NoError(t, r.Register(Mode{ID: "a", Pose: NewPose(0, 0, 3, 0, 0, 0, 70), TransitionDuration: 2}))

	m, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, NewPose(0, 0, 3, 0, 0, 0, 70), m.Pose)
	assert.Equal(t, 2.0, m.TransitionDuration)
	assert.Equal(t, "a", m.DisplayName)
	assert.Equal(t, []string{"a", "b"}, r.IDs())
}

func TestRegistryRejectsInvalidModes(t *testing.T) {
	r := NewModeRegistry()
	tests := []struct {
		name string
		mode Mode
	}{
		{"empty id", Mode{TransitionDuration: 1}},
		{"zero duration", Mode{ID: "x"}},
		{"negative duration", Mode{ID: "x", TransitionDuration: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.Register(tt.mode), ErrInvalidMode)
		})
	}
	assert.Empty(t, r.IDs())
}

func TestRegistryIDsReturnsCopy(t *testing.T) {
	r := NewDefaultModeRegistry()
	ids := r.IDs()
	ids[0] = "mutated"
	assert.Equal(t, ModeDefault, r.IDs()[0])
}

func TestRegistryConcurrentReads(t *testing.T) {
	r := NewDefaultModeRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_, err := r.Get(ModeSide)
				assert.NoError(t, err)
				assert.Len(t, r.IDs(), 5)
			}
		}()
	}
	wg.Wait()
}
