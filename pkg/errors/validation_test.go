package errors

import (
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{name: "simple label", label: "Cats", wantErr: false},
		{name: "label with spaces", label: "Four legs", wantErr: false},
		{name: "chinese label", label: "光合作用", wantErr: false},
		{name: "empty", label: "", wantErr: true},
		{name: "whitespace only", label: "   ", wantErr: true},
		{name: "control character", label: "bad\x00label", wantErr: true},
		{name: "max length", label: strings.Repeat("a", MaxLabelLength), wantErr: false},
		{name: "too long", label: strings.Repeat("a", MaxLabelLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel("topic", tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidSpec {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidSpec)
			}
		})
	}
}

func TestValidateLabelList(t *testing.T) {
	many := make([]string, MaxListItems+1)
	for i := range many {
		many[i] = "item"
	}

	tests := []struct {
		name    string
		items   []string
		wantErr bool
	}{
		{name: "valid list", items: []string{"Furry", "Four legs", "Meows"}, wantErr: false},
		{name: "empty list", items: nil, wantErr: true},
		{name: "too many items", items: many, wantErr: true},
		{name: "empty item", items: []string{"ok", ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabelList("attributes", tt.items)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabelList() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLabelListMentionsIndex(t *testing.T) {
	err := ValidateLabelList("attributes", []string{"ok", "  "})
	if err == nil {
		t.Fatal("expected error for blank item")
	}
	if !strings.Contains(err.Error(), "attributes[1]") {
		t.Errorf("error should name the offending index, got %q", err.Error())
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{name: "6 digit hex", color: "#4e79a7", wantErr: false},
		{name: "3 digit hex", color: "#fff", wantErr: false},
		{name: "named color", color: "white", wantErr: false},
		{name: "empty", color: "", wantErr: true},
		{name: "missing hash", color: "4e79a7", wantErr: true},
		{name: "bad hex digits", color: "#zzzzzz", wantErr: true},
		{name: "injection attempt", color: `url("x")`, wantErr: true},
		{name: "uppercase keyword", color: "White", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor("fill", tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFontSize(t *testing.T) {
	tests := []struct {
		name    string
		size    float64
		wantErr bool
	}{
		{name: "normal", size: 14, wantErr: false},
		{name: "zero", size: 0, wantErr: true},
		{name: "negative", size: -3, wantErr: true},
		{name: "huge", size: 500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFontSize("fontSize", tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFontSize(%v) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOpacity(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "zero", value: 0, wantErr: false},
		{name: "one", value: 1, wantErr: false},
		{name: "middle", value: 0.35, wantErr: false},
		{name: "negative", value: -0.1, wantErr: true},
		{name: "above one", value: 1.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOpacity("opacity", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOpacity(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
