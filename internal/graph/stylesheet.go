package graph

import "strconv"

// StyleRule is one cytoscape stylesheet entry.
type StyleRule struct {
	Selector string         `json:"selector"`
	Style    map[string]any `json:"style"`
}

// Stylesheet returns the cytoscape stylesheet for the map: base node and
// edge styling, per-category colors from the palette, and the highlight
// and selection states.
func Stylesheet() []StyleRule {
	rules := []StyleRule{
		{
			Selector: "node",
			Style: map[string]any{
				"label":               "data(label)",
				"text-valign":         "center",
				"text-halign":         "center",
				"color":               "#000",
				"font-size":           "12px",
				"shape":               "roundrectangle",
				"width":               "label",
				"height":              "label",
				"padding":             "20px",
				"border-width":        2,
				"border-color":        "#555",
				"text-wrap":           "wrap",
				"text-max-width":      "150px",
				"transition-property": "background-color, border-color, width, height",
				"transition-duration": "0.3s",
			},
		},
		{
			Selector: "." + ClassCentral,
			Style: map[string]any{
				"background-color": CentralColor,
				"font-size":        "16px",
				"font-weight":      "bold",
			},
		},
		{
			Selector: "." + ClassSub,
			Style: map[string]any{
				"background-color": Lighten("#708090", 0.6),
			},
		},
		{
			Selector: "edge",
			Style: map[string]any{
				"line-color":          "#888",
				"width":               2,
				"target-arrow-shape":  "triangle",
				"target-arrow-color":  "#888",
				"curve-style":         "bezier",
				"transition-property": "line-color, width",
				"transition-duration": "0.3s",
			},
		},
	}

	for i, color := range Palette {
		rules = append(rules, StyleRule{
			Selector: "." + ClassPrimary + ".color-" + strconv.Itoa(i),
			Style:    map[string]any{"background-color": color},
		})
	}

	rules = append(rules,
		StyleRule{
			Selector: "." + ClassHighlighted,
			Style: map[string]any{
				"background-color": "#FFFF00",
				"border-width":     4,
				"border-color":     "#000",
				"width":            "label",
				"height":           "label",
			},
		},
		StyleRule{
			Selector: ":selected",
			Style: map[string]any{
				"border-width": 4,
				"border-color": "#000",
			},
		},
	)

	return rules
}
