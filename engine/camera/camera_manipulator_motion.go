package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/common"
)

// quarterPi scales pan so that at the default speed a full-window drag moves the scene by about
// one eye-center distance per 45 degrees of view.
const quarterPi float32 = math.Pi / 4

func (m *cameraManipulatorImpl) Motion(x, y int, action Action) {
	dx := float32(x-m.mouse[0]) / float32(m.width)
	dy := float32(y-m.mouse[1]) / float32(m.height)

	switch action {
	case Orbit:
		m.orbit(dx, dy, false)
	case Dolly:
		m.dolly(dx, dy)
	case Pan:
		m.pan(dx, dy)
	case LookAround:
		m.orbit(dx, -dy, true)
	}

	// direct manipulation overrides any transition in flight
	m.commit()
	m.mouse = [2]int{x, y}
}

// orbit rotates the eye around the center, or the center around the eye when invert is set.
// The vertical rotation happens first, about the camera right axis, and is clamped to stay
// PoleEpsilon away from the up axis; the horizontal rotation follows, about up.
func (m *cameraManipulatorImpl) orbit(dx, dy float32, invert bool) {
	if dx == 0 && dy == 0 {
		return
	}

	scale := m.speed / m.tbsize
	dx *= scale
	dy *= scale

	origin, position := m.current.Center, m.current.Eye
	if invert {
		origin, position = position, origin
	}

	originToPos := position.Sub(origin)
	radius := originToPos.Len()
	if radius < common.Epsilon {
		return
	}
	dir := originToPos.Mul(1 / radius)
	up := common.SafeNormalize(m.current.Up, mgl32.Vec3{0, 1, 0})

	right := up.Cross(dir)
	if right.Len() > common.Epsilon && dy != 0 {
		right = right.Normalize()
		// rotating about right by a positive angle moves dir away from up
		theta := float32(math.Acos(float64(mgl32.Clamp(dir.Dot(up), -1, 1))))
		lo := float32(math.Min(float64(PoleEpsilon), float64(theta)))
		hi := float32(math.Max(float64(math.Pi-PoleEpsilon), float64(theta)))
		target := mgl32.Clamp(theta-dy, lo, hi)
		dir = mgl32.QuatRotate(target-theta, right).Rotate(dir)
	}
	if dx != 0 {
		dir = mgl32.QuatRotate(-dx, up).Rotate(dir)
	}

	newPosition := origin.Add(dir.Normalize().Mul(radius))
	if invert {
		m.current.Center = newPosition
	} else {
		m.current.Eye = newPosition
	}
}

// pan translates eye and center together in the view plane.
func (m *cameraManipulatorImpl) pan(dx, dy float32) {
	if m.mode == Fly {
		dx, dy = -dx, -dy
	}

	z := m.current.Eye.Sub(m.current.Center)
	length := z.Len()
	if length < common.Epsilon {
		return
	}
	scale := length / quarterPi * (m.speed / DefaultSpeed)

	z = z.Mul(1 / length)
	x := m.current.Up.Cross(z)
	if x.Len() < common.Epsilon {
		x = common.AnyPerpendicular(z)
	} else {
		x = x.Normalize()
	}
	y := z.Cross(x).Normalize()

	offset := x.Mul(-dx * scale).Add(y.Mul(dy * scale))
	m.current.Eye = m.current.Eye.Add(offset)
	m.current.Center = m.current.Center.Add(offset)
}

// dolly picks the dominant delta for the mode and moves along the view direction.
func (m *cameraManipulatorImpl) dolly(dx, dy float32) {
	var dd float32
	switch {
	case m.mode != Examine:
		dd = -dy
	case abs32(dx) > abs32(dy):
		dd = dx
	default:
		dd = -dy
	}
	m.dollyStep(dd)
}

// dollyStep moves towards the center for positive dd and away for negative dd.
func (m *cameraManipulatorImpl) dollyStep(dd float32) {
	z := m.current.Center.Sub(m.current.Eye)
	length := z.Len()
	// at the point of interest there is no direction to move in
	if length < common.Epsilon {
		return
	}
	factor := m.speed * dd
	if factor == 0 {
		return
	}

	switch m.mode {
	case Examine:
		// exponential so that steps of +d and -d cancel out
		newLength := length * float32(math.Exp(-float64(factor)))
		if newLength < MinDistance {
			newLength = float32(math.Min(float64(MinDistance), float64(length)))
		}
		m.current.Eye = m.current.Center.Sub(z.Mul(newLength / length))

	case Fly:
		step := z.Mul(factor / length * 10)
		m.current.Eye = m.current.Eye.Add(step)
		m.current.Center = m.current.Center.Add(step)

	case Walk:
		step := m.flatten(z.Mul(factor / length * 10))
		if factor > 0 {
			limit := m.flatten(z).Len() - MinDistance
			if limit <= 0 {
				return
			}
			if l := step.Len(); l > limit {
				step = step.Mul(limit / l)
			}
		}
		m.current.Eye = m.current.Eye.Add(step)
	}
}

// flatten removes the vertical component of v, vertical being Y or Z depending on which
// dominates the up vector.
func (m *cameraManipulatorImpl) flatten(v mgl32.Vec3) mgl32.Vec3 {
	if abs32(m.current.Up[1]) > abs32(m.current.Up[2]) {
		v[1] = 0
	} else {
		v[2] = 0
	}
	return v
}

func (m *cameraManipulatorImpl) KeyMotion(dx, dy float32, action Action) {
	if action == NoAction {
		m.keyVec = mgl32.Vec3{}
		return
	}

	d := common.SafeNormalize(m.current.Center.Sub(m.current.Eye), mgl32.Vec3{0, 0, -1})
	up := common.SafeNormalize(m.current.Up, mgl32.Vec3{0, 1, 0})
	dx *= m.speed * 2
	dy *= m.speed * 2

	var keyVec mgl32.Vec3
	switch action {
	case Dolly:
		keyVec = d.Mul(dx)
		if m.mode == Walk {
			keyVec = m.flatten(keyVec)
		}
	case Pan:
		r := common.SafeNormalize(d.Cross(up), common.AnyPerpendicular(d))
		keyVec = r.Mul(dx).Add(up.Mul(dy))
	default:
		return
	}

	if m.keyVec == (mgl32.Vec3{}) {
		m.keyTime = m.clock.Now()
	}
	m.keyVec = m.keyVec.Add(keyVec)
}

func (m *cameraManipulatorImpl) Wheel(value int, inputs Inputs) {
	fval := float32(value)
	if inputs.Shift {
		m.SetFov(m.current.Fov + fval)
		return
	}

	dd := fval * abs32(fval) * m.speed / float32(m.width)
	m.dollyStep(dd)
	m.commit()
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
