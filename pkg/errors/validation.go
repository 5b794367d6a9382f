package errors

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Limits applied to spec content before any drawing happens.
// Oversized input produces a validation error, never a distorted diagram.
const (
	// MaxLabelLength is the longest a single node label may be.
	MaxLabelLength = 100

	// MaxListItems is the largest number of items a secondary collection
	// (attributes, context, causes, ...) may carry.
	MaxListItems = 20
)

// ValidateLabel validates a diagram node label.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only labels
//   - No control characters
//   - Maximum length of MaxLabelLength characters
//
// Labels are rendered into SVG text nodes; escaping is the renderer's job,
// so arbitrary printable text (including CJK) is accepted here.
func ValidateLabel(field, label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidSpec, "%s must be a non-empty string", field)
	}

	if len([]rune(label)) > MaxLabelLength {
		return New(ErrCodeInvalidSpec, "%s cannot be longer than %d characters", field, MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return New(ErrCodeInvalidSpec, "%s contains invalid control characters", field)
		}
	}

	return nil
}

// ValidateLabelList validates a secondary collection of labels.
// The list must be non-empty, hold at most MaxListItems entries, and every
// entry must pass ValidateLabel.
func ValidateLabelList(field string, items []string) error {
	if len(items) == 0 {
		return New(ErrCodeInvalidSpec, "%s cannot be empty", field)
	}
	if len(items) > MaxListItems {
		return New(ErrCodeInvalidSpec, "%s cannot have more than %d items", field, MaxListItems)
	}

	for i, item := range items {
		if err := ValidateLabel(indexedField(field, i), item); err != nil {
			return err
		}
	}

	return nil
}

// hexColorRegex matches 3- and 6-digit hex colors.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// namedColorRegex matches simple CSS color keywords (lowercase letters only).
var namedColorRegex = regexp.MustCompile(`^[a-z]{3,20}$`)

// ValidateColor validates a theme color value.
// Colors end up inside SVG attributes, so only hex notation and plain
// lowercase keywords are accepted. Anything with quotes, parens, or URLs
// is rejected outright.
func ValidateColor(field, color string) error {
	if color == "" {
		return New(ErrCodeInvalidTheme, "%s cannot be empty", field)
	}

	if hexColorRegex.MatchString(color) || namedColorRegex.MatchString(color) {
		return nil
	}

	return New(ErrCodeInvalidTheme, "%s is not a valid color: %q", field, color)
}

// ValidateFontSize validates a font size in pixels.
func ValidateFontSize(field string, size float64) error {
	if size <= 0 {
		return New(ErrCodeInvalidTheme, "%s must be positive", field)
	}
	if size > 200 {
		return New(ErrCodeInvalidTheme, "%s too large (max 200px)", field)
	}
	return nil
}

// ValidateOpacity validates an opacity value in [0, 1].
func ValidateOpacity(field string, opacity float64) error {
	if opacity < 0 || opacity > 1 {
		return New(ErrCodeInvalidTheme, "%s must be between 0 and 1", field)
	}
	return nil
}

// indexedField formats "field[i]" for per-item validation messages.
func indexedField(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
