package event

import "testing"

func TestWindowEventMask(t *testing.T) {
	t.Run("mask builds from kinds", func(t *testing.T) {
		m := Mask(SizeChanged, FocusChanged)
		if !m.Has(SizeChanged) || !m.Has(FocusChanged) {
			t.Error("mask should include the kinds it was built from")
		}
		if m.Has(PositionChanged) {
			t.Error("mask should not include other kinds")
		}
	})

	t.Run("with and without", func(t *testing.T) {
		m := Mask(SizeChanged).With(CloseRequested)
		if !m.Has(CloseRequested) {
			t.Error("With should add the kind")
		}
		m = m.Without(SizeChanged)
		if m.Has(SizeChanged) {
			t.Error("Without should remove the kind")
		}
		if !m.Has(CloseRequested) {
			t.Error("Without should leave other kinds alone")
		}
	})

	t.Run("all covers every kind", func(t *testing.T) {
		for k := PositionChanged; k <= CloseRequested; k <<= 1 {
			if !AllWindowEvents.Has(k) {
				t.Errorf("AllWindowEvents should include %s", k)
			}
		}
	})

	t.Run("kinds are distinct bits", func(t *testing.T) {
		seen := WindowEventMask(0)
		for k := PositionChanged; k <= CloseRequested; k <<= 1 {
			if seen.Has(k) {
				t.Errorf("kind %s overlaps an earlier one", k)
			}
			seen = seen.With(k)
		}
	})
}

func TestMaskString(t *testing.T) {
	tests := []struct {
		name string
		mask WindowEventMask
		want string
	}{
		{"empty", Mask(), "none"},
		{"single", Mask(CloseRequested), "close-requested"},
		{"multiple", Mask(PositionChanged, FocusChanged), "position-changed|focus-changed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if Press.String() != "press" || Release.String() != "release" || Repeat.String() != "repeat" {
		t.Error("action names are wrong")
	}
}
