package geometry

import (
	"strconv"
	"strings"
)

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["Q", cx, cy, x, y],
// ["C", x1, y1, x2, y2, x, y], ["Z"].
type PathCommand []interface{}

func MoveTo(p Point) PathCommand    { return PathCommand{"M", p.X, p.Y} }
func LineTo(p Point) PathCommand    { return PathCommand{"L", p.X, p.Y} }
func QuadTo(c, p Point) PathCommand { return PathCommand{"Q", c.X, c.Y, p.X, p.Y} }
func ClosePath() PathCommand        { return PathCommand{"Z"} }

func CubicTo(c1, c2, p Point) PathCommand {
	return PathCommand{"C", c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y}
}

// PathData formats commands as an SVG path string with two decimals per
// coordinate, e.g. "M0.00,0.00 Q1.00,0.00 1.50,0.00 Z".
func PathData(cmds []PathCommand) string {
	var b strings.Builder
	for _, cmd := range cmds {
		if len(cmd) == 0 {
			continue
		}
		op, ok := cmd[0].(string)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(op)

		args := cmd[1:]
		for j := 0; j+1 < len(args); j += 2 {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatCoord(args[j]))
			b.WriteByte(',')
			b.WriteString(formatCoord(args[j+1]))
		}
	}
	return b.String()
}

func formatCoord(v interface{}) string {
	f, _ := v.(float64)
	return strconv.FormatFloat(f, 'f', 2, 64)
}
