package camera

import "strings"

// Binding pairs a pointer gesture with the camera motion it triggers.
type Binding struct {
	Gesture string
	Motion  string
}

var bindings = []Binding{
	{"LMB", "Rotate around the target (examine) / look around (fly, walk)"},
	{"RMB", "Dolly in/out"},
	{"MMB", "Pan along view plane"},
	{"LMB + Shift", "Dolly in/out"},
	{"LMB + Ctrl", "Pan"},
	{"LMB + Alt", "Look around (examine) / rotate around the target (fly, walk)"},
	{"LMB + Ctrl + Shift", "Look around (examine) / rotate around the target (fly, walk)"},
	{"Mouse wheel", "Dolly in/out"},
	{"Mouse wheel + Shift", "Zoom in/out (field of view)"},
}

var helpText = func() string {
	var sb strings.Builder
	for _, b := range bindings {
		sb.WriteString(b.Gesture)
		sb.WriteString(": ")
		sb.WriteString(b.Motion)
		sb.WriteString("\n")
	}
	return sb.String()
}()

// Bindings returns the pointer gesture table in display order.
//
// Returns:
//   - []Binding: a copy of the gesture bindings
func Bindings() []Binding {
	out := make([]Binding, len(bindings))
	copy(out, bindings)
	return out
}

func (m *cameraManipulatorImpl) Help() string {
	return helpText
}
