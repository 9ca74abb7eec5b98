package common

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce[float32](0, 0, 2, 3); got != 2 {
		t.Errorf("Coalesce = %v, want 2", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("Coalesce of zero values = %q, want empty", got)
	}
	if got := Coalesce(5); got != 5 {
		t.Errorf("Coalesce single = %v, want 5", got)
	}
}
