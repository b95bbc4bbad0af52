package assets

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleResolves(t *testing.T) {
	h := Load("model", func() (string, error) { return "speeder.gltf", nil })

	v, err := h.Wait()
	require.NoError(t, err)
	assert.Equal(t, "speeder.gltf", v)

	got, ok := h.Poll()
	assert.True(t, ok)
	assert.Equal(t, "speeder.gltf", got)
}

func TestHandlePendingPollsFalse(t *testing.T) {
	release := make(chan struct{})
	h := Load("slow", func() (int, error) {
		<-release
		return 7, nil
	})

	_, ok := h.Poll()
	assert.False(t, ok)
	assert.False(t, h.Done())
	assert.NoError(t, h.Err())

	close(release)
	v, err := h.Wait()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFailedHandleNeverResolves(t *testing.T) {
	h := Load("sound", func() (int, error) { return 0, errors.New("missing file") })
	_, err := h.Wait()
	require.Error(t, err)

	for i := 0; i < 3; i++ {
		_, ok := h.Poll()
		assert.False(t, ok)
	}
}

func TestPanicInDecodeIsAFailure(t *testing.T) {
	h := Load("texture", func() (int, error) { panic("bad image") })

	_, err := h.Wait()
	assert.ErrorContains(t, err, "bad image")
}

func TestFinisherRunsFinishOnce(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	f := Then(Ready("model", "speeder.gltf"), zerolog.New(&buf), func(path string) (int, error) {
		calls++
		return len(path), nil
	})

	for i := 0; i < 5; i++ {
		v, ok := f.Poll()
		require.True(t, ok)
		assert.Equal(t, len("speeder.gltf"), v)
	}
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "asset loaded")
}

func TestFinisherWaitsForSource(t *testing.T) {
	release := make(chan struct{})
	src := Load("model", func() (string, error) {
		<-release
		return "ok", nil
	})
	f := Then(src, zerolog.Nop(), func(s string) (string, error) { return s + "!", nil })

	_, ok := f.Poll()
	assert.False(t, ok)

	close(release)
	_, _ = src.Wait()
	v, ok := f.Poll()
	require.True(t, ok)
	assert.Equal(t, "ok!", v)
}

func TestFinisherFailureIsLoggedOnceAndStaysInert(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	f := Then(Ready("sound", "aud.mp3"), zerolog.New(&buf), func(string) (int, error) {
		calls++
		return 0, errors.New("no audio device")
	})

	for i := 0; i < 4; i++ {
		_, ok := f.Poll()
		assert.False(t, ok)
	}
	assert.True(t, f.Failed())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("asset load failed")))
}

func TestFinisherSourceFailureSkipsFinish(t *testing.T) {
	called := false
	src := Load("model", func() (string, error) { return "", errors.New("not found") })
	_, _ = src.Wait()
	f := Then(src, zerolog.Nop(), func(string) (string, error) {
		called = true
		return "", nil
	})

	_, ok := f.Poll()
	assert.False(t, ok)
	assert.False(t, called)
	assert.True(t, f.Failed())
}
