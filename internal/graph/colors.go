package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// Palette holds the category colors, assigned round-robin by category index.
var Palette = []string{
	"#1f77b4", // blue
	"#ff7f0e", // orange
	"#2ca02c", // green
	"#d62728", // red
	"#9467bd", // purple
	"#8c564b", // brown
	"#e377c2", // pink
	"#7f7f7f", // gray
	"#bcbd22", // olive
	"#17becf", // cyan
}

// CentralColor is the fixed background of the central node.
const CentralColor = "#87CEEB"

// Lighten blends the given hex color toward white by factor (0..1).
// Shorthand colors ("#abc") are expanded. On a malformed input the
// original color is returned unchanged.
func Lighten(hexColor string, factor float64) string {
	hex := strings.TrimPrefix(hexColor, "#")
	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	}
	if len(hex) != 6 {
		return hexColor
	}

	channels := make([]int64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseInt(hex[i*2:i*2+2], 16, 0)
		if err != nil {
			return hexColor
		}
		channels[i] = v + int64(float64(255-v)*factor)
	}
	return fmt.Sprintf("#%02X%02X%02X", channels[0], channels[1], channels[2])
}
