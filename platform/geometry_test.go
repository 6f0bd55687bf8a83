package platform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/stewart/math3d"
)

func TestBuildDefaultCircular(t *testing.T) {
	g, err := Build(DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, 126.84523876177897, g.T0.Z, 1e-9)
	assert.InDelta(t, 79.37581337834632, g.B[0].X, 1e-9)
	assert.InDelta(t, 9.973978670818216, g.B[0].Y, 1e-9)
	assert.InDelta(t, 30.203515996816183, g.P[0].X, 1e-9)
	assert.InDelta(t, 39.846550935182194, g.P[0].Y, 1e-9)
	assert.InDelta(t, math.Sin(1.6957963267948966), g.SinBeta[0], 1e-12)
	assert.InDelta(t, math.Cos(6.6817840827778845), g.CosBeta[1], 1e-12)

	assert.Nil(t, g.BaseOutline)
	assert.Nil(t, g.PlatformOutline)

	for i := 0; i < NumLegs; i++ {
		assert.Equal(t, 0.0, g.B[i].Z)
		assert.Equal(t, 0.0, g.P[i].Z)
		assert.InDelta(t, 80, g.B[i].Magnitude(), 1e-9)
		assert.InDelta(t, 50, g.P[i].Magnitude(), 1e-9)
	}
}

func TestBuildAbsoluteHeight(t *testing.T) {
	c := DefaultConfig()
	c.AbsoluteHeight = true

	g, err := Build(c)
	require.NoError(t, err)
	assert.Equal(t, math3d.ZeroVector3, g.T0)
}

func TestBuildHornDirection(t *testing.T) {
	c := DefaultConfig()
	c.HornDirection = 1

	g0, err := Build(DefaultConfig())
	require.NoError(t, err)
	g1, err := Build(c)
	require.NoError(t, err)

	// flipping the horn parity turns every motor around
	for i := 0; i < NumLegs; i++ {
		assert.InDelta(t, -g0.SinBeta[i], g1.SinBeta[i], 1e-12)
		assert.InDelta(t, -g0.CosBeta[i], g1.CosBeta[i], 1e-12)
	}
}

func TestBuildErrors(t *testing.T) {
	type eg struct {
		mutate func(*Config)
		err    error
	}

	examples := []eg{
		{func(c *Config) { c.RodLength = 0 }, ErrRodLength},
		{func(c *Config) { c.RodLength = -4 }, ErrRodLength},
		{func(c *Config) { c.RodLength = math.NaN() }, ErrRodLength},
		{func(c *Config) { c.HornLength = 0 }, ErrHornLength},
		{func(c *Config) { c.ServoRange = [2]float64{1, -1} }, ErrServoRange},
		{func(c *Config) { c.Layout = nil }, ErrNoLayout},
		{func(c *Config) { c.RodLength = 10; c.HornLength = 10 }, ErrUnreachableHeight},
	}

	for i, x := range examples {
		c := DefaultConfig()
		x.mutate(&c)

		g, err := Build(c)
		assert.Nil(t, g, "example %d", i+1)
		assert.ErrorIs(t, err, x.err, "example %d", i+1)
	}
}

func TestHexPlate(t *testing.T) {
	pts := hexPlate(80, 110, 0)
	require.Len(t, pts, NumLegs)

	for i, p := range pts {
		r := math.Hypot(p[0], p[1])
		assert.Greater(t, r, 80.0, "vertex %d", i)
	}

	// vertices 0 and 1 straddle the x axis
	assert.InDelta(t, pts[0][0], pts[1][0], 1e-9)
	assert.InDelta(t, -pts[0][1], pts[1][1], 1e-9)
	assert.InDelta(t, 110, pts[0][0], 1e-9)
}

func TestHexagonalPlatformTurn(t *testing.T) {
	h := DefaultHexagonal()
	base := hexPlate(h.BaseRadius, h.BaseRadiusOuter, 0)
	plat := hexPlate(h.PlatformRadius, h.PlatformRadiusOuter, math.Pi)
	_, p, _ := h.joints(0, base, plat)

	c := DefaultConfig()
	c.Layout = h
	g, err := Build(c)
	require.NoError(t, err)

	perm := []int{4, 3, 0, 5, 2, 1}
	for i := 0; i < NumLegs; i++ {
		assert.Equal(t, p[perm[i]][0], g.P[i].X, "leg %d", i)
		assert.Equal(t, p[perm[i]][1], g.P[i].Y, "leg %d", i)
	}

	assert.InDelta(t, -7.679491924311204, g.P[0].X, 1e-9)
	assert.InDelta(t, 53.301270189221924, g.P[0].Y, 1e-9)
	assert.InDelta(t, 133.4291276284121, g.T0.Z, 1e-9)
	assert.Len(t, g.BaseOutline, NumLegs)
	assert.Len(t, g.PlatformOutline, NumLegs)
}

func TestHexagonalNoTurnIsIdentity(t *testing.T) {
	h := DefaultHexagonal()
	h.PlatformTurn = false
	base := hexPlate(h.BaseRadius, h.BaseRadiusOuter, 0)
	plat := hexPlate(h.PlatformRadius, h.PlatformRadiusOuter, 0)
	_, p, _ := h.joints(0, base, plat)

	c := DefaultConfig()
	c.Layout = h
	g, err := Build(c)
	require.NoError(t, err)

	for i := 0; i < NumLegs; i++ {
		assert.Equal(t, p[i][0], g.P[i].X, "leg %d", i)
		assert.Equal(t, p[i][1], g.P[i].Y, "leg %d", i)
	}

	assert.InDelta(t, 136.01470508735443, g.T0.Z, 1e-9)
}
