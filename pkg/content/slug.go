package content

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extensions lists the file extensions treated as documents.
var Extensions = []string{".md", ".mdx"}

// IsDocument reports whether name has a document extension.
func IsDocument(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// Slugify converts a path relative to the content root into a slug.
//
//	getting-started/Router.md   -> getting-started/router
//	reference/http handlers.mdx -> reference/http-handlers
//	guides/index.md             -> guides
//	index.md                    -> index
func Slugify(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	slug := strings.ToLower(strings.ReplaceAll(rel, " ", "-"))

	if slug != "index" {
		slug = strings.TrimSuffix(slug, "/index")
	}
	return slug
}

// titleFromSlug derives a label from the last slug segment.
func titleFromSlug(slug string) string {
	base := path.Base(slug)
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(base)
}
