// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"github.com/netscope-ml/netscope/internal/analyzer"
)

// kindColors assigns each layer kind its box color in the diagram.
var kindColors = map[string]string{
	"Conv2D":          "#FF6B6B",
	"MaxPool2D":       "#4ECDC4",
	"AvgPool2D":       "#45B7D1",
	"BatchNorm2D":     "#96CEB4",
	"Dropout":         "#FFEAA7",
	"GlobalAvgPool2D": "#DDA0DD",
	"Flatten":         "#FF9F43",
	"Dense":           "#6C5CE7",
	"Activation":      "#A29BFE",
}

const (
	inputColor  = "#74B9FF"
	outputColor = "#FD79A8"

	boxWidth   = 150
	boxHeight  = 90
	boxSpacing = 40
	marginX    = 30
	marginY    = 40
)

// Diagram renders the architecture as a left-to-right SVG: an input
// box, one colored box per layer annotated with its output shape and
// parameter count, an output box, and connecting arrows.
func Diagram(details []analyzer.Record, summary analyzer.Summary) string {
	boxes := len(details) + 2
	width := marginX*2 + boxes*boxWidth + (boxes-1)*boxSpacing
	height := marginY*2 + boxHeight + 60

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	b.WriteString(`<defs><marker id="arrow" markerWidth="10" markerHeight="8" refX="9" refY="4" orient="auto"><path d="M0,0 L10,4 L0,8 z" fill="#2D3436"/></marker></defs>` + "\n")

	x := marginX
	box(&b, x, marginY, inputColor, "Input", summary.InputShape.String(), "")

	for _, r := range details {
		prev := x
		x += boxWidth + boxSpacing
		arrow(&b, prev+boxWidth, x, marginY+boxHeight/2)

		kind, _ := r.Config["type"].(string)
		color, ok := kindColors[kind]
		if !ok {
			color = "#B2BEC3"
		}
		box(&b, x, marginY, color, r.Name,
			r.OutputShape.String(),
			fmt.Sprintf("params: %d  rf: %s", r.Params, r.ReceptiveField))
	}

	prev := x
	x += boxWidth + boxSpacing
	arrow(&b, prev+boxWidth, x, marginY+boxHeight/2)
	box(&b, x, marginY, outputColor, "Output", summary.OutputShape.String(),
		fmt.Sprintf("total params: %d", summary.TotalParams))

	fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="12" fill="#636E72">layers: %d  parameters: %d  receptive field: %s</text>`+"\n",
		marginX, marginY+boxHeight+40, summary.TotalLayers, summary.TotalParams, summary.ReceptiveField)

	b.WriteString("</svg>\n")
	return b.String()
}

func box(b *strings.Builder, x, y int, color, title, shape, note string) {
	fmt.Fprintf(b, `<rect x="%d" y="%d" rx="8" width="%d" height="%d" fill="%s" stroke="#2D3436"/>`+"\n",
		x, y, boxWidth, boxHeight, color)
	fmt.Fprintf(b, `<text x="%d" y="%d" font-family="sans-serif" font-size="12" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
		x+boxWidth/2, y+24, escape(title))
	fmt.Fprintf(b, `<text x="%d" y="%d" font-family="sans-serif" font-size="11" text-anchor="middle">%s</text>`+"\n",
		x+boxWidth/2, y+44, escape(shape))
	if note != "" {
		fmt.Fprintf(b, `<text x="%d" y="%d" font-family="sans-serif" font-size="10" text-anchor="middle">%s</text>`+"\n",
			x+boxWidth/2, y+64, escape(note))
	}
}

func arrow(b *strings.Builder, x1, x2, y int) {
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#2D3436" stroke-width="2" marker-end="url(#arrow)"/>`+"\n",
		x1, y, x2, y)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
