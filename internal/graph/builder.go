package graph

import (
	"math"
	"strconv"

	"github.com/git-kubik/azure-architecture-map/internal/content"
)

// Layout controls the two rings of the initial circular placement.
type Layout struct {
	PrimaryRadius float64
	SubRadius     float64
}

// DefaultLayout is the placement used when no layout config is given.
var DefaultLayout = Layout{PrimaryRadius: 300, SubRadius: 120}

// Build transforms the catalog into the flat element list the widget
// renders: the root at the origin, categories on a circle around it,
// each category's services on a smaller circle around that category,
// and an edge per parent/child pair. Output is deterministic for a
// given catalog.
func Build(cat content.Catalog, lay Layout) []Element {
	var nodes []Element
	var edges []Element

	rootLabel := cat.Root.Label
	if rootLabel == "" {
		rootLabel = content.Label(cat.Root.ID)
	}
	nodes = append(nodes, Element{
		Data: Data{
			ID:          cat.Root.ID,
			Label:       rootLabel,
			Description: cat.Root.Description,
		},
		Position: &Position{X: 0, Y: 0},
		Classes:  ClassCentral,
	})

	for i, category := range cat.Categories {
		angle := float64(i) * (360.0 / float64(len(cat.Categories)))
		rad := angle * math.Pi / 180
		pos := Position{
			X: lay.PrimaryRadius * math.Cos(rad),
			Y: lay.PrimaryRadius * math.Sin(rad),
		}
		nodes = append(nodes, Element{
			Data: Data{
				ID:          category.ID,
				Label:       content.Label(category.ID),
				Description: category.Description,
			},
			Position: &pos,
			Classes:  ClassPrimary + " " + colorClass(i),
		})
		edges = append(edges, edge(cat.Root.ID, category.ID))

		// A category without services contributes no sub ring.
		if len(category.Services) == 0 {
			continue
		}
		step := 360.0 / float64(len(category.Services))
		for j, svc := range category.Services {
			srad := float64(j) * step * math.Pi / 180
			nodes = append(nodes, Element{
				Data: Data{
					ID:          svc.ID,
					Label:       content.Label(svc.ID),
					Description: svc.Description,
				},
				Position: &Position{
					X: pos.X + lay.SubRadius*math.Cos(srad),
					Y: pos.Y + lay.SubRadius*math.Sin(srad),
				},
				Classes: ClassSub,
			})
			edges = append(edges, edge(category.ID, svc.ID))
		}
	}

	return append(nodes, edges...)
}

func edge(source, target string) Element {
	return Element{
		Data: Data{
			ID:     source + "_to_" + target,
			Source: source,
			Target: target,
		},
	}
}

func colorClass(i int) string {
	return "color-" + strconv.Itoa(i%len(Palette))
}
