package platform

import (
	"math"

	"github.com/adammck/stewart/utils"
)

// platformTurnIndex maps each leg to the platform joint it reaches when the
// platform plate is turned. Getting this wrong crosses the rods.
var platformTurnIndex = [NumLegs]int{4, 3, 0, 5, 2, 1}

// hornFlip returns π for legs whose horn points the other way.
func hornFlip(i, hornDirection int) float64 {
	return float64((i+hornDirection)&1) * math.Pi
}

func (c Circular) legs(hornDirection int) ([NumLegs]legDescriptor, outlines) {
	var legs [NumLegs]legDescriptor

	shaft := c.ShaftDistance / c.BaseRadius
	anchor := c.AnchorDistance / c.BaseRadius

	for i := 0; i < NumLegs; i++ {
		pm := utils.Sign(i)
		phiCut := float64(1+i-i%2) * math.Pi / 3
		phiB := float64(i+i%2)*math.Pi/3 + pm*shaft/2
		phiP := phiCut - pm*anchor/2

		legs[i] = legDescriptor{
			base:     [2]float64{math.Cos(phiB) * c.BaseRadius, math.Sin(phiB) * c.BaseRadius},
			platform: [2]float64{math.Cos(phiP) * c.PlatformRadius, math.Sin(phiP) * c.PlatformRadius},
			motor:    phiB + hornFlip(i, hornDirection) + math.Pi/2,
		}
	}

	// Circles have no vertices; renderers draw them from the radii.
	return legs, outlines{}
}

// hexPlate returns the six vertices of a hexagon with alternating long and
// short edges. Vertices 2k and 2k+1 straddle the axis at angle 2kπ/3 + rot.
func hexPlate(rInner, rOuter, rot float64) [][2]float64 {
	ret := make([][2]float64, NumLegs)
	a := (2*rInner - rOuter) / math.Sqrt(3)

	for i := 0; i < NumLegs; i++ {
		phi := float64(i-i%2)/3*math.Pi + rot
		ap := a * utils.Sign(i)

		ret[i] = [2]float64{
			rOuter*math.Cos(phi) + ap*math.Sin(phi),
			rOuter*math.Sin(phi) - ap*math.Cos(phi),
		}
	}

	return ret
}

// joints computes the joints in plate order, before any platform turn is
// applied. Each pair of legs shares an edge, offset either way along it.
func (h Hexagonal) joints(hornDirection int, base, plat [][2]float64) (b, p [NumLegs][2]float64, motor [NumLegs]float64) {
	for i := 0; i < NumLegs; i++ {
		k := i | 1
		n := (k + 1) % NumLegs

		dx := base[n][0] - base[k][0]
		dy := base[n][1] - base[k][1]
		side := math.Hypot(dx, dy)
		dx /= side
		dy /= side

		pm := utils.Sign(i)

		baseMidX := (base[k][0] + base[n][0]) / 2
		baseMidY := (base[k][1] + base[n][1]) / 2
		platMidX := (plat[k][0] + plat[n][0]) / 2
		platMidY := (plat[k][1] + plat[n][1]) / 2

		// Both offsets run along the base edge, even on the platform.
		b[i] = [2]float64{baseMidX + dx*h.ShaftDistance*pm, baseMidY + dy*h.ShaftDistance*pm}
		p[i] = [2]float64{platMidX + dx*h.AnchorDistance*pm, platMidY + dy*h.AnchorDistance*pm}
		motor[i] = math.Atan2(dy, dx) + hornFlip(i, hornDirection)
	}

	return b, p, motor
}

func (h Hexagonal) platformIndex() [NumLegs]int {
	if h.PlatformTurn {
		return platformTurnIndex
	}
	return [NumLegs]int{0, 1, 2, 3, 4, 5}
}

func (h Hexagonal) legs(hornDirection int) ([NumLegs]legDescriptor, outlines) {
	var legs [NumLegs]legDescriptor

	rot := 0.0
	if h.PlatformTurn {
		rot = math.Pi
	}

	base := hexPlate(h.BaseRadius, h.BaseRadiusOuter, 0)
	plat := hexPlate(h.PlatformRadius, h.PlatformRadiusOuter, rot)
	b, p, motor := h.joints(hornDirection, base, plat)

	idx := h.platformIndex()
	for i := range legs {
		legs[i] = legDescriptor{
			base:     b[i],
			platform: p[idx[i]],
			motor:    motor[i],
		}
	}

	return legs, outlines{base: base, platform: plat}
}
