package input

import "github.com/Carmen-Shannon/oxy-rt/engine/camera"

var keyBindings = []camera.Binding{
	{Gesture: "W / Up", Motion: "Move forward"},
	{Gesture: "S / Down", Motion: "Move backward"},
	{Gesture: "A / Left", Motion: "Move left"},
	{Gesture: "D / Right", Motion: "Move right"},
	{Gesture: "E", Motion: "Move up"},
	{Gesture: "Q", Motion: "Move down"},
	{Gesture: "1 / 2 / 3", Motion: "Examine / fly / walk mode"},
	{Gesture: "F", Motion: "Frame the scene bounds"},
	{Gesture: "H", Motion: "Print the controls"},
	{Gesture: "Esc", Motion: "Quit"},
}

// KeyBindings returns the keyboard table handled by the binder, in display order.
//
// Returns:
//   - []camera.Binding: a copy of the key bindings
func KeyBindings() []camera.Binding {
	out := make([]camera.Binding, len(keyBindings))
	copy(out, keyBindings)
	return out
}
