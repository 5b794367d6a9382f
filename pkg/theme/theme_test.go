package theme

import "testing"

func TestDefault(t *testing.T) {
	th := Default()
	if th.Topic.Fill != "#4e79a7" {
		t.Errorf("Topic.Fill = %q, want %q", th.Topic.Fill, "#4e79a7")
	}
	if th.Topic.Text != "#ffffff" {
		t.Errorf("Topic.Text = %q, want %q", th.Topic.Text, "#ffffff")
	}
	if th.Similarity.Fill != "#a7c7e7" {
		t.Errorf("Similarity.Fill = %q, want %q", th.Similarity.Fill, "#a7c7e7")
	}
	if th.Difference.Fill != "#f4f6fb" {
		t.Errorf("Difference.Fill = %q, want %q", th.Difference.Fill, "#f4f6fb")
	}
	if th.Watermark.Text != "D3.js_Dify" {
		t.Errorf("Watermark.Text = %q, want %q", th.Watermark.Text, "D3.js_Dify")
	}
	if th.Watermark.Disabled {
		t.Error("Watermark.Disabled = true, want enabled by default")
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	merged := base.Merge(Theme{
		Topic:     Style{Fill: "#123456"},
		Watermark: Watermark{Text: "custom"},
	})

	if merged.Topic.Fill != "#123456" {
		t.Errorf("Topic.Fill = %q, want override %q", merged.Topic.Fill, "#123456")
	}
	if merged.Topic.Text != base.Topic.Text {
		t.Errorf("Topic.Text = %q, want base %q preserved", merged.Topic.Text, base.Topic.Text)
	}
	if merged.Topic.StrokeWidth != base.Topic.StrokeWidth {
		t.Errorf("Topic.StrokeWidth = %v, want base %v preserved", merged.Topic.StrokeWidth, base.Topic.StrokeWidth)
	}
	if merged.Watermark.Text != "custom" {
		t.Errorf("Watermark.Text = %q, want %q", merged.Watermark.Text, "custom")
	}
	if merged.Attribute != base.Attribute {
		t.Errorf("Attribute = %v, want untouched base %v", merged.Attribute, base.Attribute)
	}
}

func TestMergeDisablesWatermark(t *testing.T) {
	merged := Default().Merge(Theme{Watermark: Watermark{Disabled: true}})
	if !merged.Watermark.Disabled {
		t.Error("Watermark.Disabled = false, want true after override")
	}
	// A later merge without the flag must not re-enable it.
	again := merged.Merge(Theme{})
	if !again.Watermark.Disabled {
		t.Error("Watermark.Disabled = false, want disabled to stick")
	}
}

func TestStyleForRole(t *testing.T) {
	th := Default()
	tests := []struct {
		role Role
		want Style
	}{
		{RoleTopic, th.Topic},
		{RoleSimilarity, th.Similarity},
		{RoleDifference, th.Difference},
		{RoleContext, th.Context},
		{RoleBoundary, th.Boundary},
		{RoleAccent, th.Accent},
		{RoleAttribute, th.Attribute},
		{Role("unknown"), th.Attribute},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := th.Style(tt.role); got != tt.want {
				t.Errorf("Style(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestContrastText(t *testing.T) {
	tests := []struct {
		name string
		fill string
		want string
	}{
		{name: "dark blue", fill: "#4e79a7", want: "#ffffff"},
		{name: "near white", fill: "#f4f6fb", want: "#000000"},
		{name: "black", fill: "#000000", want: "#ffffff"},
		{name: "white shorthand", fill: "#fff", want: "#000000"},
		{name: "unparseable", fill: "cornflowerblue", want: "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastText(tt.fill); got != tt.want {
				t.Errorf("ContrastText(%q) = %q, want %q", tt.fill, got, tt.want)
			}
		})
	}
}

func TestStyleTextColor(t *testing.T) {
	explicit := Style{Fill: "#4e79a7", Text: "#2c3e50"}
	if got := explicit.TextColor(); got != "#2c3e50" {
		t.Errorf("TextColor() = %q, want explicit %q", got, "#2c3e50")
	}
	derived := Style{Fill: "#4e79a7"}
	if got := derived.TextColor(); got != "#ffffff" {
		t.Errorf("TextColor() = %q, want derived %q", got, "#ffffff")
	}
}

func TestWatermarkFontSize(t *testing.T) {
	w := Default().Watermark
	tests := []struct {
		name          string
		width, height float64
		want          float64
	}{
		{name: "default canvas", width: 700, height: 500, want: 12.5},
		{name: "small canvas clamps up", width: 200, height: 200, want: 10},
		{name: "large canvas clamps down", width: 1600, height: 1000, want: 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.FontSize(tt.width, tt.height); got != tt.want {
				t.Errorf("FontSize(%v, %v) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}
