package shared

import (
	"fmt"
	"strings"
)

type BadgeValues struct {
	Key   string
	Value int
	Color string
}

func digitCount(v int) int {
	if v < 0 {
		v = -v
	}
	count := 1
	for v >= 10 {
		v /= 10
		count++
	}
	return count
}

// GetBadgeSVG renders a shields.io style flat badge. A single value shows only
// its key (used for the all-clear badge), multiple values render as key:value
// boxes whose width grows with the digit count.
func GetBadgeSVG(label string, values []BadgeValues) string {
	labelWidth := 40
	boxHeight := 20

	boxWidths := make([]int, len(values))
	totalWidth := labelWidth
	for i, val := range values {
		boxWidths[i] = 25 + (digitCount(val.Value)-1)*10
		if len(values) == 1 {
			boxWidths[i] = 60 // single value badges carry a word, not a count
		}
		totalWidth += boxWidths[i]
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s">`,
		totalWidth, boxHeight, label,
	))

	sb.WriteString(fmt.Sprintf(`
<linearGradient id="s" x2="0" y2="100%%">
	<stop offset="0" stop-color="#bbb" stop-opacity=".1"/>
	<stop offset="1" stop-opacity=".1"/>
</linearGradient>
<clipPath id="r"><rect width="%d" height="%d" rx="3" fill="#fff"/></clipPath>
<g clip-path="url(#r)">`, totalWidth, boxHeight))

	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#000"/>`, labelWidth, boxHeight))

	x := labelWidth
	for i, val := range values {
		sb.WriteString(fmt.Sprintf(`<rect x="%d" width="%d" height="%d" fill="%s"/>`, x, boxWidths[i], boxHeight, val.Color))
		x += boxWidths[i]
	}

	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="url(#s)"/>`, totalWidth, boxHeight))
	sb.WriteString(`</g>`)

	sb.WriteString(`<g fill="#fff" font-family="Verdana,Geneva,DejaVu Sans,sans-serif" font-size="11" text-rendering="geometricPrecision">`)
	sb.WriteString(fmt.Sprintf(`<text x="4" y="14">%s</text>`, label))

	x = labelWidth
	for i, val := range values {
		center := float64(x) + float64(boxWidths[i])/2
		// if there is only one value, just show the key, it's unknown or all clear
		content := val.Key
		if len(values) > 1 {
			content = fmt.Sprintf(`%s:%d`, val.Key, val.Value)
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="14" text-anchor="middle">%s</text>`, center, content))
		x += boxWidths[i]
	}

	sb.WriteString(`</g></svg>`)

	return sb.String()
}
