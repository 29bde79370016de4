package export

import (
	"fmt"
	"io"
	"strings"
)

const svgCell = 12

// SVG draws the animation as a space-time diagram: one row per frame, one
// square per chamber position, empty cells left unpainted.
func SVG(w io.Writer, a Animation) error {
	cols := 0
	if len(a.Frames) > 0 {
		cols = len(a.Frames[0])
	}
	width := cols * svgCell
	height := len(a.Frames) * svgCell

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for row, frame := range a.Frames {
		for col := 0; col < len(frame); col++ {
			color, ok := cellColors[frame[col]]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, col*svgCell, row*svgCell, svgCell, svgCell, color))
		}
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
