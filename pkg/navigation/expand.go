package navigation

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultOrder is the sort order of documents that do not declare one; they
// sort after every ordered document.
const DefaultOrder = math.MaxInt32

// Document is a content document offered for an autogenerated group.
type Document struct {
	Slug   string
	Label  string
	Order  int
	Hidden bool
}

// DocumentSource lists the documents below a content directory.
type DocumentSource interface {
	// DocumentsUnder returns the documents whose slug is dir or starts with
	// dir + "/".
	DocumentsUnder(dir string) []Document
}

// Expand returns a new site where every autogenerated group is replaced by a
// group holding the documents src lists for its directory. Documents directly
// in the directory become entries ordered by Order then Slug; subdirectories
// become nested groups after them, ordered by name. The expanded declaration
// is validated again, so a generated slug that duplicates a declared one, or
// a directory without documents, fails like any other declaration error.
func (s *Site) Expand(src DocumentSource) (*Site, error) {
	if len(s.Tree.Autogenerated()) == 0 {
		return s, nil
	}
	decl := s.Declaration()
	decl.Sidebar = expandDeclarations(decl.Sidebar, src)
	return Build(decl)
}

func expandDeclarations(decls []NodeDeclaration, src DocumentSource) []NodeDeclaration {
	out := make([]NodeDeclaration, 0, len(decls))
	for _, d := range decls {
		switch {
		case d.Autogenerate != nil:
			dir := d.Autogenerate.Directory
			var docs []Document
			for _, doc := range src.DocumentsUnder(dir) {
				if !doc.Hidden {
					docs = append(docs, doc)
				}
			}
			out = append(out, NodeDeclaration{
				Label:     d.Label,
				Collapsed: d.Collapsed,
				Items:     generateItems(dir, docs),
			})
		case d.Items != nil:
			d.Items = expandDeclarations(d.Items, src)
			out = append(out, d)
		default:
			out = append(out, d)
		}
	}
	return out
}

// generateItems lays out docs, all below dir, as entries followed by one
// group per subdirectory.
func generateItems(dir string, docs []Document) []NodeDeclaration {
	var direct []Document
	nested := make(map[string][]Document)
	for _, doc := range docs {
		rel := strings.TrimPrefix(strings.TrimPrefix(doc.Slug, dir), "/")
		sub, _, found := strings.Cut(rel, "/")
		if !found {
			direct = append(direct, doc)
			continue
		}
		nested[sub] = append(nested[sub], doc)
	}

	slices.SortStableFunc(direct, func(a, b Document) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})

	items := make([]NodeDeclaration, 0, len(direct)+len(nested))
	for _, doc := range direct {
		items = append(items, NodeDeclaration{Label: doc.Label, Slug: doc.Slug})
	}

	subdirs := make([]string, 0, len(nested))
	for sub := range nested {
		subdirs = append(subdirs, sub)
	}
	slices.Sort(subdirs)
	for _, sub := range subdirs {
		subdir := sub
		if dir != "" {
			subdir = dir + "/" + sub
		}
		items = append(items, NodeDeclaration{
			Label: directoryLabel(sub),
			Items: generateItems(subdir, nested[sub]),
		})
	}

	return items
}

// directoryLabel turns a directory name such as "http-handlers" into
// "Http Handlers".
func directoryLabel(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(name)
}
