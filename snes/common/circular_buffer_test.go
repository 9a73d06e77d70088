package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularBufferWriteRead(t *testing.T) {
	buffer := NewCircularBuffer(8)

	for i := 0; i < 7; i++ {
		require.NoError(t, buffer.Write(float64(i), false))
	}
	// one slot always stays open
	assert.Error(t, buffer.Write(99, false))

	val, err := buffer.Read()
	require.NoError(t, err)
	assert.Equal(t, 0.0, val)

	out := make([]float64, 16)
	got := buffer.ReadInto(out)
	assert.Equal(t, 6, got)
	assert.Equal(t, 1.0, out[0])
	assert.Equal(t, 6.0, out[5])

	_, err = buffer.Read()
	assert.Error(t, err)
}

func TestCircularBufferStereoRead(t *testing.T) {
	buffer := NewCircularBuffer(16)
	for i := 0; i < 4; i++ {
		require.NoError(t, buffer.Write(0.5, false))
	}

	samples := make([][2]float64, 4)
	got := buffer.ReadInto2(samples)
	require.Equal(t, 4, got)
	for _, s := range samples {
		assert.Equal(t, 0.5, s[0])
		assert.Equal(t, 0.5, s[1])
	}
}

func TestFramebufferFlip(t *testing.T) {
	fb := Framebuffer{}
	fb.Init()

	back := fb.Back()
	fb.Flip()
	assert.Equal(t, 1, fb.Frames)
	// yesterday's back buffer is today's front
	assert.Same(t, &back[0], &fb.Front()[0])

	select {
	case <-fb.FrameUpdated:
	default:
		t.Fatal("expected a frame notification")
	}
}
