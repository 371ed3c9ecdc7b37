package navigation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource []Document

func (s staticSource) DocumentsUnder(dir string) []Document {
	var docs []Document
	for _, d := range s {
		if d.Slug == dir || strings.HasPrefix(d.Slug, dir+"/") {
			docs = append(docs, d)
		}
	}
	return docs
}

func referenceSite(t *testing.T) *Site {
	t.Helper()
	decl := gettingStarted()
	decl.Sidebar = append(decl.Sidebar, NodeDeclaration{
		Label:        "Reference",
		Collapsed:    true,
		Autogenerate: &AutogenerateDeclaration{Directory: "reference"},
	})
	site, err := Build(decl)
	require.NoError(t, err)
	return site
}

func TestSite_Expand(t *testing.T) {
	site := referenceSite(t)
	require.Len(t, site.Tree.Autogenerated(), 1)

	src := staticSource{
		{Slug: "reference/context", Label: "Context", Order: DefaultOrder},
		{Slug: "reference/app", Label: "App", Order: 1},
		{Slug: "reference/http-handlers/middleware", Label: "Middleware", Order: DefaultOrder},
		{Slug: "reference/http-handlers/cors", Label: "CORS", Order: DefaultOrder},
		{Slug: "reference/internal", Label: "Internal", Order: DefaultOrder, Hidden: true},
		{Slug: "guides/example", Label: "Example", Order: DefaultOrder},
	}

	expanded, err := site.Expand(src)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"getting-started/getting-started",
		"getting-started/router",
		"reference/app",
		"reference/context",
		"reference/http-handlers/cors",
		"reference/http-handlers/middleware",
	}, slugsOf(expanded.Tree))
	assert.Empty(t, expanded.Tree.Autogenerated())

	nodes := expanded.Tree.Nodes()
	require.Len(t, nodes, 2)
	reference, ok := nodes[1].(*Group)
	require.True(t, ok)
	assert.Equal(t, "Reference", reference.Label())
	assert.True(t, reference.Collapsed())

	children := reference.Children()
	require.Len(t, children, 3)
	sub, ok := children[2].(*Group)
	require.True(t, ok)
	assert.Equal(t, "Http Handlers", sub.Label())

	t.Run("original site is untouched", func(t *testing.T) {
		assert.Len(t, site.Tree.Autogenerated(), 1)
		assert.Equal(t, 2, site.Tree.Len())
	})

	t.Run("deterministic", func(t *testing.T) {
		again, err := site.Expand(src)
		require.NoError(t, err)
		assert.Equal(t, slugsOf(expanded.Tree), slugsOf(again.Tree))
	})
}

func TestSite_ExpandEmptyDirectory(t *testing.T) {
	site := referenceSite(t)

	_, err := site.Expand(staticSource{
		{Slug: "reference/internal", Label: "Internal", Hidden: true},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDeclaration)
	assert.Contains(t, err.Error(), "sidebar[1].items")
}

func TestSite_ExpandDuplicatesDeclaredSlug(t *testing.T) {
	site := referenceSite(t)

	_, err := site.Expand(staticSource{
		{Slug: "reference/router", Label: "Router Reference"},
	})
	require.NoError(t, err)

	decl := site.Declaration()
	decl.Sidebar[1].Autogenerate.Directory = "getting-started"
	site, err = Build(decl)
	require.NoError(t, err)

	_, err = site.Expand(staticSource{
		{Slug: "getting-started/router", Label: "Router"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate slug "getting-started/router"`)
}

func TestSite_ExpandWithoutAutogeneratedGroups(t *testing.T) {
	site, err := Build(gettingStarted())
	require.NoError(t, err)

	expanded, err := site.Expand(staticSource{})
	require.NoError(t, err)
	assert.Same(t, site, expanded)
}

func TestDirectoryLabel(t *testing.T) {
	assert.Equal(t, "Http Handlers", directoryLabel("http-handlers"))
	assert.Equal(t, "Getting Started", directoryLabel("getting_started"))
	assert.Equal(t, "Api", directoryLabel("api"))
}
