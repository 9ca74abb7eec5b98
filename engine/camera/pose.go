package camera

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a camera placement: where it is, what it looks at, which way is up, and how wide it sees.
// Poses compare with exact component-wise equality.
type Pose struct {
	// Eye is the camera position in world space.
	Eye mgl32.Vec3
	// Center is the point of interest the camera looks at.
	Center mgl32.Vec3
	// Up is the up direction. It does not need to be normalized.
	Up mgl32.Vec3
	// Fov is the vertical field of view in degrees.
	Fov float32
}

// DefaultPose returns the pose a new manipulator starts from.
//
// Returns:
//   - Pose: eye (10,10,10) looking at the origin with +Y up and a 60 degree field of view
func DefaultPose() Pose {
	return Pose{
		Eye:    mgl32.Vec3{10, 10, 10},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Fov:    60,
	}
}

// Distance returns the distance between eye and center.
func (p Pose) Distance() float32 {
	return p.Eye.Sub(p.Center).Len()
}

func (p Pose) String() string {
	return fmt.Sprintf("eye=(%.3f, %.3f, %.3f) center=(%.3f, %.3f, %.3f) up=(%.3f, %.3f, %.3f) fov=%.2f",
		p.Eye[0], p.Eye[1], p.Eye[2],
		p.Center[0], p.Center[1], p.Center[2],
		p.Up[0], p.Up[1], p.Up[2],
		p.Fov,
	)
}

// Mode selects how pointer gestures are interpreted.
type Mode int

const (
	// Examine orbits around the point of interest.
	Examine Mode = iota
	// Fly moves the eye and the point of interest together towards the view direction.
	Fly
	// Walk behaves like Fly for looking around but keeps dolly motion on the ground plane.
	Walk
)

func (m Mode) String() string {
	switch m {
	case Examine:
		return "examine"
	case Fly:
		return "fly"
	case Walk:
		return "walk"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a case-insensitive mode name into a Mode.
//
// Parameters:
//   - s: one of "examine", "fly" or "walk"
//
// Returns:
//   - Mode: the parsed mode (Examine on error)
//   - error: error if the name is unknown
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "examine", "":
		return Examine, nil
	case "fly":
		return Fly, nil
	case "walk":
		return Walk, nil
	}
	return Examine, fmt.Errorf("camera: unknown mode %q", s)
}

// Action is the motion derived from one pointer event. It is never stored.
type Action int

const (
	NoAction Action = iota
	Orbit
	Dolly
	Pan
	LookAround
)

func (a Action) String() string {
	switch a {
	case NoAction:
		return "none"
	case Orbit:
		return "orbit"
	case Dolly:
		return "dolly"
	case Pan:
		return "pan"
	case LookAround:
		return "look-around"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Inputs is the button and modifier state accompanying a pointer event.
type Inputs struct {
	LMB   bool
	MMB   bool
	RMB   bool
	Shift bool
	Ctrl  bool
	Alt   bool
}

// AnyButton reports whether at least one mouse button is held.
func (in Inputs) AnyButton() bool {
	return in.LMB || in.MMB || in.RMB
}
