package graph

import "strings"

// Class tags recognized by the stylesheet.
const (
	ClassCentral     = "central-node"
	ClassPrimary     = "primary-node"
	ClassSub         = "sub-node"
	ClassHighlighted = "highlighted"
)

// Position is a point in the widget's coordinate space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Data is the payload of a graph element. Nodes carry ID/Label/Description/
// Notes; edges carry ID/Source/Target.
type Data struct {
	ID          string `json:"id"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes"`
	Source      string `json:"source,omitempty"`
	Target      string `json:"target,omitempty"`
}

// Element is one cytoscape element, node or edge. Position and Classes are
// set on nodes only.
type Element struct {
	Data     Data      `json:"data"`
	Position *Position `json:"position,omitempty"`
	Classes  string    `json:"classes,omitempty"`
}

// IsEdge reports whether the element is an edge record.
func (e *Element) IsEdge() bool {
	return e.Data.Source != "" || e.Data.Target != ""
}

// HasClass reports whether the element carries the given class tag.
func (e *Element) HasClass(class string) bool {
	for _, c := range strings.Fields(e.Classes) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends the class tag if not already present.
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	if e.Classes == "" {
		e.Classes = class
		return
	}
	e.Classes += " " + class
}

// RemoveClass drops the class tag, preserving the order of the rest.
func (e *Element) RemoveClass(class string) {
	if !e.HasClass(class) {
		return
	}
	kept := make([]string, 0, 2)
	for _, c := range strings.Fields(e.Classes) {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.Classes = strings.Join(kept, " ")
}

// Snapshot is the complete view state: elements plus zoom and pan. It is the
// unit of persistence and the unit the reconciler operates on.
type Snapshot struct {
	Elements []Element `json:"elements"`
	Zoom     float64   `json:"zoom"`
	Pan      Position  `json:"pan"`
}

// Clone returns a deep copy. The reconciler works on a clone so the caller's
// snapshot is never mutated in place.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Elements: make([]Element, len(s.Elements)),
		Zoom:     s.Zoom,
		Pan:      s.Pan,
	}
	for i, e := range s.Elements {
		out.Elements[i] = e
		if e.Position != nil {
			p := *e.Position
			out.Elements[i].Position = &p
		}
	}
	return out
}

// NodeByID returns the node element with the given id, or nil.
func (s *Snapshot) NodeByID(id string) *Element {
	for i := range s.Elements {
		e := &s.Elements[i]
		if !e.IsEdge() && e.Data.ID == id {
			return e
		}
	}
	return nil
}

// NodeLabels returns the labels of all node elements in element order.
func (s *Snapshot) NodeLabels() []string {
	var labels []string
	for i := range s.Elements {
		if !s.Elements[i].IsEdge() {
			labels = append(labels, s.Elements[i].Data.Label)
		}
	}
	return labels
}
