package pretty

import "testing"

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.Arrow == "" || d.Bullet == "" || d.ColumnGap <= 0 {
		t.Fatalf("defaults must be non-empty")
	}
	// Spot checks of the external look, not every field.
	if d.Arrow != "->" || d.Bullet != "*" || d.ShowSpin {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
