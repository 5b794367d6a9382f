package render

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Error artifact geometry. The canvas grows with the message but keeps a
// fixed width so artifacts embed predictably wherever a diagram would.
const (
	errorWidth    = 420
	errorWrapCols = 48
	errorLineH    = 20
	errorPad      = 30
)

// ErrorArtifact renders a failure message as a small self-contained SVG.
// Callers that must always produce an image substitute it for the diagram
// when parsing, layout, or rendering fails.
func ErrorArtifact(message string) []byte {
	lines := wrapText(message, errorWrapCols)
	height := 2*errorPad + errorLineH*(len(lines)+1)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(errorWidth, height)
	canvas.Rect(0, 0, errorWidth, height, "fill:#ffffff")
	canvas.Roundrect(10, 10, errorWidth-20, height-20, cornerRadius, cornerRadius,
		"fill:#fdecea;stroke:#f5c6cb;stroke-width:1.5")
	canvas.Text(errorWidth/2, errorPad+errorLineH/2, "Error",
		"text-anchor:middle;font-family:Inter, Segoe UI, sans-serif;font-size:16px;font-weight:bold;fill:#c0392b")
	for i, line := range lines {
		canvas.Text(errorWidth/2, errorPad+errorLineH/2+errorLineH*(i+1), line,
			"text-anchor:middle;font-family:Inter, Segoe UI, sans-serif;font-size:13px;fill:#c0392b")
	}
	canvas.End()
	return buf.Bytes()
}

// wrapText breaks a message into lines of at most cols characters,
// splitting on spaces. A single word longer than cols keeps its own line.
func wrapText(message string, cols int) []string {
	words := strings.Fields(message)
	if len(words) == 0 {
		return []string{"unknown error"}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > cols {
			lines = append(lines, current)
			current = word
			continue
		}
		current = fmt.Sprintf("%s %s", current, word)
	}
	return append(lines, current)
}
