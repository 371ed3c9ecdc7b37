package navigation

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// SiteMetadata holds site-wide values shown alongside the sidebar.
type SiteMetadata struct {
	Title string

	// Social maps a platform name (e.g., "github") to an absolute URL.
	Social map[string]string
}

// Platforms returns the social platform names in sorted order.
func (m SiteMetadata) Platforms() []string {
	return slices.Sorted(maps.Keys(m.Social))
}

// Site is the validated output of Build: the navigation tree and the site
// metadata that came with it. A Site is immutable and safe for concurrent
// use.
type Site struct {
	Metadata SiteMetadata
	Tree     *Tree
}

// Tree is an ordered sequence of top-level navigation nodes.
type Tree struct {
	nodes  []Node
	bySlug map[string]*Entry
	depth  int
}

// SlugSet is a set of slugs known to exist in the content collection.
type SlugSet interface {
	Contains(slug string) bool
}

// Slugs is a SlugSet backed by a map.
type Slugs map[string]struct{}

// NewSlugs returns a Slugs containing slugs.
func NewSlugs(slugs ...string) Slugs {
	s := make(Slugs, len(slugs))
	for _, slug := range slugs {
		s[slug] = struct{}{}
	}
	return s
}

func (s Slugs) Contains(slug string) bool {
	_, ok := s[slug]
	return ok
}

// UnresolvedSlug is an entry whose slug has no matching content document.
type UnresolvedSlug struct {
	Entry *Entry

	// Groups holds the labels of the enclosing groups, outermost first.
	Groups []string
}

// Nodes returns the top-level nodes in declaration order. The returned slice
// is a copy.
func (t *Tree) Nodes() []Node {
	return slices.Clone(t.nodes)
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	return len(t.bySlug)
}

// Depth returns the number of nesting levels. A tree with only top-level
// entries has depth 1; an empty tree has depth 0.
func (t *Tree) Depth() int {
	return t.depth
}

// FlattenEntries returns every entry in depth-first declaration order. The
// sequence is lazy and may be iterated any number of times.
func (t *Tree) FlattenEntries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		walk(t.nodes, nil, func(e *Entry, _ []string) bool {
			return yield(e)
		})
	}
}

// ResolveAgainst returns the entries whose slug is not in existing, in
// declaration order. The tree is not modified.
func (t *Tree) ResolveAgainst(existing SlugSet) []UnresolvedSlug {
	var missing []UnresolvedSlug
	walk(t.nodes, nil, func(e *Entry, groups []string) bool {
		if !existing.Contains(e.slug) {
			missing = append(missing, UnresolvedSlug{
				Entry:  e,
				Groups: slices.Clone(groups),
			})
		}
		return true
	})
	return missing
}

// FindBySlug returns the entry declaring slug.
func (t *Tree) FindBySlug(slug string) (*Entry, error) {
	entry, ok := t.bySlug[slug]
	if !ok {
		return nil, &Error{
			Op:  "FindBySlug",
			Err: ErrNotFound,
			Msg: fmt.Sprintf("slug %q", slug),
		}
	}
	return entry, nil
}

// Autogenerated returns the groups that are filled from a content directory,
// in declaration order.
func (t *Tree) Autogenerated() []*Group {
	var groups []*Group
	var visit func(nodes []Node)
	visit = func(nodes []Node) {
		for _, n := range nodes {
			if g, ok := n.(*Group); ok {
				if g.autogenerate != "" {
					groups = append(groups, g)
				}
				visit(g.children)
			}
		}
	}
	visit(t.nodes)
	return groups
}

// walk visits entries depth-first, passing the labels of the enclosing
// groups. It stops early and returns false once fn returns false.
func walk(nodes []Node, groups []string, fn func(*Entry, []string) bool) bool {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Entry:
			if !fn(n, groups) {
				return false
			}
		case *Group:
			if !walk(n.children, append(groups, n.label), fn) {
				return false
			}
		}
	}
	return true
}

// Declaration converts the site back into a declaration. Building the result
// yields an equivalent site.
func (s *Site) Declaration() Declaration {
	decl := Declaration{
		Title:   s.Metadata.Title,
		Sidebar: declareNodes(s.Tree.nodes),
	}
	if len(s.Metadata.Social) > 0 {
		decl.Social = maps.Clone(s.Metadata.Social)
	}
	return decl
}

func declareNodes(nodes []Node) []NodeDeclaration {
	decls := make([]NodeDeclaration, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *Entry:
			decls = append(decls, NodeDeclaration{
				Label: n.label,
				Slug:  n.slug,
				Badge: n.badge,
			})
		case *Group:
			d := NodeDeclaration{
				Label:     n.label,
				Collapsed: n.collapsed,
			}
			if n.autogenerate != "" {
				d.Autogenerate = &AutogenerateDeclaration{Directory: n.autogenerate}
			} else {
				d.Items = declareNodes(n.children)
			}
			decls = append(decls, d)
		}
	}
	return decls
}
