package measure

import "testing"

func TestMeasureDeterministic(t *testing.T) {
	m := New()
	defer m.Close()

	first := m.Measure("Photosynthesis", 18)
	second := m.Measure("Photosynthesis", 18)
	if first != second {
		t.Errorf("Measure() not deterministic: first = %v, second = %v", first, second)
	}
	if first.Width <= 0 || first.Height <= 0 {
		t.Errorf("Measure() = %v, want positive dimensions", first)
	}
}

func TestMeasureMonotonic(t *testing.T) {
	m := New()
	defer m.Close()

	short := m.Measure("ab", 14)
	long := m.Measure("abcdef", 14)
	if long.Width < short.Width {
		t.Errorf("longer text narrower: %v < %v", long.Width, short.Width)
	}

	small := m.Measure("graph", 10)
	big := m.Measure("graph", 24)
	if big.Width <= small.Width {
		t.Errorf("larger font not wider: %v <= %v", big.Width, small.Width)
	}
	if big.Height <= small.Height {
		t.Errorf("larger font not taller: %v <= %v", big.Height, small.Height)
	}
}

func TestMeasureEmpty(t *testing.T) {
	m := New()
	defer m.Close()

	got := m.Measure("", 14)
	if got.Width != 0 {
		t.Errorf("empty width = %v, want 0", got.Width)
	}
	if got.Height <= 0 {
		t.Errorf("empty height = %v, want one line", got.Height)
	}
	if lh := m.LineHeight(14); lh != got.Height {
		t.Errorf("LineHeight() = %v, want %v", lh, got.Height)
	}
}

func TestMeasureMultiline(t *testing.T) {
	m := New()
	defer m.Close()

	single := m.Measure("water", 14)
	double := m.Measure("water\nwater", 14)
	if double.Height != 2*single.Height {
		t.Errorf("two-line height = %v, want %v", double.Height, 2*single.Height)
	}
	if double.Width != single.Width {
		t.Errorf("two-line width = %v, want %v", double.Width, single.Width)
	}
}

func TestFallbackEstimate(t *testing.T) {
	m := NewFallback()
	defer m.Close()

	tests := []struct {
		name     string
		text     string
		fontSize float64
		want     Size
	}{
		{name: "ascii", text: "abc", fontSize: 10, want: Size{Width: 18, Height: 12}},
		{name: "cjk", text: "光合", fontSize: 10, want: Size{Width: 20, Height: 12}},
		{name: "mixed", text: "a光", fontSize: 10, want: Size{Width: 16, Height: 12}},
		{name: "empty", text: "", fontSize: 10, want: Size{Width: 0, Height: 12}},
		{name: "two lines", text: "ab\n光", fontSize: 10, want: Size{Width: 12, Height: 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Measure(tt.text, tt.fontSize); got != tt.want {
				t.Errorf("Measure(%q, %v) = %v, want %v", tt.text, tt.fontSize, got, tt.want)
			}
		})
	}
}

func TestCloseThenReuse(t *testing.T) {
	m := New()

	before := m.Measure("reusable", 16)
	if err := m.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	after := m.Measure("reusable", 16)
	if before != after {
		t.Errorf("Measure() after Close() = %v, want %v", after, before)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
