package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/common"
)

func (m *cameraManipulatorImpl) SetCamera(pose Pose, instantSet bool) {
	pose = sanitizePose(pose)

	if instantSet || pose == m.current {
		m.current = pose
		m.commit()
		return
	}

	m.snapshot = m.current
	m.goal = pose
	m.state = animAnimating
	m.startTime = m.clock.Now()
	m.findBezierPoints()
}

func (m *cameraManipulatorImpl) UpdateAnim() {
	now := m.clock.Now()

	// Key motion takes precedence and ends any transition.
	if m.keyVec != (mgl32.Vec3{}) {
		elapsed := float32(now - m.keyTime)
		m.keyTime = now
		step := m.keyVec.Mul(elapsed)
		m.current.Eye = m.current.Eye.Add(step)
		m.current.Center = m.current.Center.Add(step)
		m.commit()
		return
	}

	if m.state != animAnimating {
		return
	}

	t := float32(1)
	if m.duration > 0 {
		t = mgl32.Clamp(float32((now-m.startTime)/m.duration), 0, 1)
	}
	if t >= 1 {
		m.current = m.goal
		m.commit()
		return
	}

	s := common.Smootherstep(t)
	m.current.Center = common.LerpVec3(m.snapshot.Center, m.goal.Center, s)
	m.current.Up = common.LerpVec3(m.snapshot.Up, m.goal.Up, s)
	m.current.Eye = common.QuadraticBezier(s, m.bezier[0], m.bezier[1], m.bezier[2])
	m.current.Fov = common.Lerp(m.snapshot.Fov, m.goal.Fov, s)
	if m.current.Up.Len() < common.Epsilon {
		// opposite up vectors cross zero half way
		m.current.Up = m.goal.Up
	}
	m.update()
}

// findBezierPoints builds the eye path from snapshot to goal. The middle control point is chosen so
// the curve passes, at t = 0.5, through a point at the average eye distance from the mid point of
// interest, at the height of the straight-line mid point. This keeps the eye swinging around the
// scene instead of cutting through it.
func (m *cameraManipulatorImpl) findBezierPoints() {
	p0 := m.snapshot.Eye
	p2 := m.goal.Eye
	p02 := p0.Add(p2).Mul(0.5)

	interest := m.snapshot.Center.Add(m.goal.Center).Mul(0.5)
	radius := (p0.Sub(interest).Len() + p2.Sub(interest).Len()) * 0.5

	p1 := p02
	if toMid := p02.Sub(interest); toMid.Len() > common.Epsilon {
		pc := interest.Add(toMid.Normalize().Mul(radius))
		p1 = pc.Mul(2).Sub(p0.Mul(0.5)).Sub(p2.Mul(0.5))

		up := common.SafeNormalize(m.goal.Up, mgl32.Vec3{0, 1, 0})
		p1 = p1.Sub(up.Mul(p1.Sub(p02).Dot(up)))
	}

	m.bezier = [3]mgl32.Vec3{p0, p1, p2}
}
