package export

import (
	"fmt"
	"math"
	"strings"
)

// ProfileToSVG draws values against cell index as a polyline. Non-finite
// samples break the line. Returns "" when fewer than two samples are finite.
func ProfileToSVG(values []float64, width, height int, strokeColor string) string {
	minY, maxY := math.Inf(1), math.Inf(-1)
	finite := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
		finite++
	}
	if finite < 2 {
		return ""
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = math.Max(math.Abs(maxY), 1)
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, strokeColor))

	pen := false
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			pen = false
			continue
		}
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if pen {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" M%.1f,%.1f", x, y))
			pen = true
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
