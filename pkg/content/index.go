package content

import (
	"slices"
	"strings"
	"time"

	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
)

// Document is a single indexed content file.
type Document struct {
	// Slug is the document's path from the content root, see Slugify.
	Slug string `json:"slug" yaml:"slug"`

	// Path is the file path relative to the content root, slash separated.
	Path string `json:"path" yaml:"path"`

	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Label is the sidebar label: sidebar.label, then title, then a label
	// derived from the file name.
	Label string `json:"label" yaml:"label"`

	Order       int       `json:"order" yaml:"order"`
	Hidden      bool      `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Draft       bool      `json:"draft,omitempty" yaml:"draft,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitzero" yaml:"lastUpdated,omitempty"`
}

// Index is an immutable set of documents keyed by slug. It satisfies both
// navigation.SlugSet and navigation.DocumentSource.
type Index struct {
	docs   []*Document
	bySlug map[string]*Document
}

var (
	_ navigation.SlugSet        = (*Index)(nil)
	_ navigation.DocumentSource = (*Index)(nil)
)

func newIndex() *Index {
	return &Index{bySlug: make(map[string]*Document)}
}

// NewIndex builds an index from docs. Later documents with an already indexed
// slug are ignored.
func NewIndex(docs ...Document) *Index {
	idx := newIndex()
	for _, d := range docs {
		if _, ok := idx.bySlug[d.Slug]; ok {
			continue
		}
		idx.add(&d)
	}
	idx.sort()
	return idx
}

func (idx *Index) add(doc *Document) {
	idx.docs = append(idx.docs, doc)
	idx.bySlug[doc.Slug] = doc
}

func (idx *Index) sort() {
	slices.SortFunc(idx.docs, func(a, b *Document) int {
		return strings.Compare(a.Slug, b.Slug)
	})
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.docs)
}

// Contains reports whether a document with slug exists. Drafts exist.
func (idx *Index) Contains(slug string) bool {
	_, ok := idx.bySlug[slug]
	return ok
}

// Lookup returns the document with slug.
func (idx *Index) Lookup(slug string) (Document, bool) {
	doc, ok := idx.bySlug[slug]
	if !ok {
		return Document{}, false
	}
	return *doc, true
}

// Documents returns every document ordered by slug.
func (idx *Index) Documents() []Document {
	out := make([]Document, 0, len(idx.docs))
	for _, d := range idx.docs {
		out = append(out, *d)
	}
	return out
}

// DocumentsUnder returns the documents whose slug is dir or lies below it.
// Drafts are reported as hidden.
func (idx *Index) DocumentsUnder(dir string) []navigation.Document {
	dir = strings.Trim(dir, "/")
	prefix := dir + "/"

	var out []navigation.Document
	for _, d := range idx.docs {
		if d.Slug != dir && !strings.HasPrefix(d.Slug, prefix) {
			continue
		}
		out = append(out, navigation.Document{
			Slug:   d.Slug,
			Label:  d.Label,
			Order:  d.Order,
			Hidden: d.Hidden || d.Draft,
		})
	}
	return out
}

// Orphans returns the documents no entry of tree links to, ordered by slug.
// Drafts are never orphans.
func (idx *Index) Orphans(tree *navigation.Tree) []Document {
	linked := make(navigation.Slugs, tree.Len())
	for e := range tree.FlattenEntries() {
		linked[e.Slug()] = struct{}{}
	}

	var out []Document
	for _, d := range idx.docs {
		if d.Draft || linked.Contains(d.Slug) {
			continue
		}
		out = append(out, *d)
	}
	return out
}
