// Package measure estimates the pixel dimensions of rendered label text.
//
// Layout runs before any SVG exists, so node sizes must be computed from
// text alone. The default Measurer parses the embedded Go Regular font once
// and caches one face per integral font size. A heuristic per-rune estimate
// keeps measurement working, and deterministic, when face construction is
// unavailable.
package measure

import (
	"math"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// defaultFontSize is used when a caller passes a non-positive size.
const defaultFontSize = 14

// Size holds the measured pixel dimensions of a text label.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measurer computes text dimensions for layout. It is safe for concurrent
// use; the font is parsed lazily and faces are cached per font size.
type Measurer struct {
	mu       sync.Mutex
	parsed   *opentype.Font
	faces    map[int]font.Face
	fallback bool
}

// New returns a Measurer backed by the embedded Go Regular font.
func New() *Measurer {
	return &Measurer{faces: make(map[int]font.Face)}
}

// NewFallback returns a Measurer that always uses the heuristic per-rune
// estimate instead of real font metrics.
func NewFallback() *Measurer {
	return &Measurer{faces: make(map[int]font.Face), fallback: true}
}

// Measure returns the pixel dimensions of text at the given font size.
// Multi-line labels (embedded '\n') measure as the widest line wide and
// the sum of line heights tall. The empty string measures zero wide and
// one line tall.
func (m *Measurer) Measure(text string, fontSize float64) Size {
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}
	lines := strings.Split(text, "\n")

	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.faceLocked(fontSize)
	if face == nil {
		return estimate(lines, fontSize)
	}

	metrics := face.Metrics()
	lineHeight := float64((metrics.Ascent + metrics.Descent).Ceil())
	var width float64
	for _, line := range lines {
		if w := float64(font.MeasureString(face, line).Ceil()); w > width {
			width = w
		}
	}
	return Size{Width: width, Height: lineHeight * float64(len(lines))}
}

// LineHeight returns the height of a single text line at fontSize.
func (m *Measurer) LineHeight(fontSize float64) float64 {
	return m.Measure("", fontSize).Height
}

// Close releases all cached font faces. The Measurer stays usable;
// later calls rebuild faces on demand.
func (m *Measurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for size, face := range m.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.faces, size)
	}
	return firstErr
}

// faceLocked returns a cached face for the given size, creating it on
// first use. Returns nil when the Measurer runs in fallback mode or face
// construction fails. Callers must hold m.mu.
func (m *Measurer) faceLocked(fontSize float64) font.Face {
	if m.fallback {
		return nil
	}
	key := int(math.Round(fontSize))
	if face, ok := m.faces[key]; ok {
		return face
	}
	if m.parsed == nil {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			m.fallback = true
			return nil
		}
		m.parsed = fnt
	}
	face, err := opentype.NewFace(m.parsed, &opentype.FaceOptions{
		Size:    float64(key),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		m.fallback = true
		return nil
	}
	m.faces[key] = face
	return face
}

// estimate approximates dimensions without font metrics: wide (CJK) runes
// advance a full em, everything else 0.6em, line height 1.2em.
func estimate(lines []string, fontSize float64) Size {
	var width float64
	for _, line := range lines {
		var w float64
		for _, r := range line {
			if wideRune(r) {
				w += fontSize
			} else {
				w += 0.6 * fontSize
			}
		}
		if w = math.Ceil(w); w > width {
			width = w
		}
	}
	return Size{Width: width, Height: math.Ceil(1.2*fontSize) * float64(len(lines))}
}

// wideRune reports whether r typically renders at a full em width.
func wideRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		(r >= 0x3000 && r <= 0x303F) || // CJK symbols and punctuation
		(r >= 0xFF00 && r <= 0xFFEF) // fullwidth forms
}
