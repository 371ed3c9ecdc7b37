package navigation

import "slices"

// Node is a node of the navigation tree: either a *Group or an *Entry.
type Node interface {
	Label() string

	node()
}

// Group is a navigation node that holds child nodes but no content of its
// own.
type Group struct {
	label        string
	collapsed    bool
	autogenerate string
	children     []Node
}

func (g *Group) node() {}

// Label returns the display label.
func (g *Group) Label() string { return g.label }

// Collapsed reports whether the group should render collapsed by default.
func (g *Group) Collapsed() bool { return g.collapsed }

// Autogenerate returns the content directory the group is generated from, or
// "" for a group with declared items.
func (g *Group) Autogenerate() string { return g.autogenerate }

// Children returns the group's children in declaration order. The returned
// slice is a copy.
func (g *Group) Children() []Node { return slices.Clone(g.children) }

// Entry is a leaf node that references exactly one content document.
type Entry struct {
	label string
	slug  string
	badge string
}

func (e *Entry) node() {}

// Label returns the display label.
func (e *Entry) Label() string { return e.label }

// Slug returns the relative identifier of the referenced document.
func (e *Entry) Slug() string { return e.slug }

// Badge returns optional badge text shown next to the label.
func (e *Entry) Badge() string { return e.badge }

func (e *Entry) String() string {
	return e.label + " (" + e.slug + ")"
}
