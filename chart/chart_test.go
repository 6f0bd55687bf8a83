package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/stewart"
	"github.com/adammck/stewart/animation"
	"github.com/adammck/stewart/math3d"
	"github.com/adammck/stewart/platform"
)

func newStewart(t *testing.T, layout platform.Layout) *stewart.Stewart {
	c := platform.DefaultConfig()
	c.Layout = layout
	g, err := platform.Build(c)
	require.NoError(t, err)
	return stewart.New(g)
}

func assertFile(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, fi.Size() > 0)
}

func TestTopView(t *testing.T) {
	for _, layout := range []platform.Layout{platform.DefaultCircular(), platform.DefaultHexagonal()} {
		st := newStewart(t, layout)

		var path []math3d.Vector3
		for _, p := range animation.Trace(animation.Interpolate("sq", []animation.Waypoint{
			{X: -30, Y: -30},
			{X: 30, Y: -30, T: 1},
			{X: 30, Y: 30, T: 1},
		}), 10) {
			path = append(path, p.Translation)
		}
		st.Path = path
		st.SetPose(math3d.MakePose(5, 5, 0))

		file := filepath.Join(t.TempDir(), "top.png")
		require.NoError(t, TopView(st.Frame(), file))
		assertFile(t, file)
	}
}

func TestTopViewUnreachable(t *testing.T) {
	st := newStewart(t, platform.DefaultCircular())
	st.SetPose(math3d.MakePose(0, 0, 200))

	file := filepath.Join(t.TempDir(), "top.png")
	require.NoError(t, TopView(st.Frame(), file))
	assertFile(t, file)
}

func TestRecorder(t *testing.T) {
	st := newStewart(t, platform.DefaultCircular())

	now := time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC)
	r := NewRecorder(func() time.Time { return now })

	var _ stewart.Renderer = r

	for i := 0; i < 10; i++ {
		z := float64(i) * 3
		if i == 5 {
			z = 200
		}

		st.SetPose(math3d.MakePose(0, 0, z))
		require.NoError(t, r.Render(st.Frame()))
		now = now.Add(time.Second / 60)
	}

	assert.Equal(t, 10, r.Frames())
	for i := range r.angles {
		assert.Len(t, r.angles[i], 9, "leg %d", i)
	}

	file := filepath.Join(t.TempDir(), "angles.png")
	require.NoError(t, r.Save(file))
	assertFile(t, file)
}
