package render

import "math"

// View angles in degrees for the helix plot.
const (
	ViewElevation = 30
	ViewAzimuth   = 60
)

// projection maps the normalized cube [-1,1]^3 onto the screen plane of an
// orthographic camera at the given elevation and azimuth.
type projection struct {
	sinAz, cosAz float64
	sinEl, cosEl float64
}

func newProjection(elevationDeg, azimuthDeg float64) projection {
	el := elevationDeg * math.Pi / 180
	az := azimuthDeg * math.Pi / 180
	return projection{
		sinAz: math.Sin(az), cosAz: math.Cos(az),
		sinEl: math.Sin(el), cosEl: math.Cos(el),
	}
}

// project returns screen coordinates for a point already scaled to the cube.
func (p projection) project(x, y, z float64) (sx, sy float64) {
	sx = -x*p.sinAz + y*p.cosAz
	sy = -x*p.sinEl*p.cosAz - y*p.sinEl*p.sinAz + z*p.cosEl
	return sx, sy
}

// bounds returns the screen extent of the whole cube, so that the plot
// frame does not depend on which points happen to be present.
func (p projection) bounds() (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				sx, sy := p.project(x, y, z)
				minX, maxX = math.Min(minX, sx), math.Max(maxX, sx)
				minY, maxY = math.Min(minY, sy), math.Max(maxY, sy)
			}
		}
	}
	return minX, maxX, minY, maxY
}

// normalizeZ maps helix height [0,1] onto the cube's [-1,1].
func normalizeZ(z float64) float64 {
	return 2*z - 1
}
