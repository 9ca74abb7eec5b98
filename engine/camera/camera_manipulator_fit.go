package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/common"
)

func (m *cameraManipulatorImpl) Fit(boxMin, boxMax mgl32.Vec3, instantFit, tight bool, aspect float32) {
	if !(aspect > 0) || math.IsInf(float64(aspect), 0) {
		aspect = 1
	}

	var lo, hi mgl32.Vec3
	for i := range 3 {
		lo[i] = float32(math.Min(float64(boxMin[i]), float64(boxMax[i])))
		hi[i] = float32(math.Max(float64(boxMin[i]), float64(boxMax[i])))
	}
	halfSize := hi.Sub(lo).Mul(0.5)
	boxCenter := lo.Add(halfSize)

	yfov := float32(math.Tan(float64(mgl32.DegToRad(m.current.Fov * 0.5))))
	xfov := yfov * aspect
	viewDir := common.SafeNormalize(m.current.Eye.Sub(m.current.Center), mgl32.Vec3{0, 0, 1})

	var offset float32
	if !tight {
		// distance at which the bounding sphere touches the narrower frustum side
		halfAngle := math.Atan(math.Min(float64(xfov), float64(yfov)))
		offset = halfSize.Len() / float32(math.Sin(halfAngle))
	} else {
		// rotation-only view matrix with the box center at the origin
		view := common.LookAt(viewDir, mgl32.Vec3{}, m.current.Up)
		for i := range 8 {
			corner := mgl32.Vec3{halfSize[0], halfSize[1], halfSize[2]}
			if i&1 == 0 {
				corner[0] = -corner[0]
			}
			if i&2 == 0 {
				corner[1] = -corner[1]
			}
			if i&4 == 0 {
				corner[2] = -corner[2]
			}
			v := view.Mul4x1(corner.Vec4(0)).Vec3()
			// a corner at view depth z is seen from distance d when |x| <= (d - z) * xfov
			offset = float32(math.Max(float64(offset), float64(abs32(v[0])/xfov+v[2])))
			offset = float32(math.Max(float64(offset), float64(abs32(v[1])/yfov+v[2])))
		}
	}
	if !(offset >= MinDistance) || math.IsInf(float64(offset), 0) {
		offset = MinDistance
	}

	eye := boxCenter.Add(viewDir.Mul(offset))
	m.SetLookat(eye, boxCenter, m.current.Up, instantFit)
}
