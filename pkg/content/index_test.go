package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
)

func TestIndex_DocumentsUnder(t *testing.T) {
	idx := NewIndex(
		Document{Slug: "reference/app", Label: "App", Order: 2},
		Document{Slug: "reference/ctx", Label: "Context", Order: navigation.DefaultOrder, Draft: true},
		Document{Slug: "reference/internal", Label: "Internal", Hidden: true},
		Document{Slug: "referenced", Label: "Not Below"},
		Document{Slug: "guides/intro", Label: "Intro"},
	)

	assert.Equal(t, []navigation.Document{
		{Slug: "reference/app", Label: "App", Order: 2},
		{Slug: "reference/ctx", Label: "Context", Order: navigation.DefaultOrder, Hidden: true},
		{Slug: "reference/internal", Label: "Internal", Hidden: true},
	}, idx.DocumentsUnder("/reference/"))

	assert.Empty(t, idx.DocumentsUnder("missing"))
}

func TestIndex_NewIndexIgnoresDuplicates(t *testing.T) {
	idx := NewIndex(
		Document{Slug: "b", Label: "First"},
		Document{Slug: "a", Label: "A"},
		Document{Slug: "b", Label: "Second"},
	)

	require.Equal(t, 2, idx.Len())
	doc, ok := idx.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "First", doc.Label)
	assert.Equal(t, "a", idx.Documents()[0].Slug)

	_, ok = idx.Lookup("c")
	assert.False(t, ok)
}

func TestIndex_ResolveAndOrphans(t *testing.T) {
	site, err := navigation.Build(navigation.Declaration{
		Title: "Diesel",
		Sidebar: []navigation.NodeDeclaration{
			{
				Label: "Getting-Started",
				Items: []navigation.NodeDeclaration{
					{Label: "Getting Started", Slug: "getting-started/getting-started"},
					{Label: "Router", Slug: "getting-started/router"},
					{Label: "Middleware", Slug: "getting-started/middleware"},
				},
			},
		},
	})
	require.NoError(t, err)

	idx, err := NewScanner(dieselDocs(t), "docs", nil).Scan(context.Background())
	require.NoError(t, err)

	unresolved := site.Tree.ResolveAgainst(idx)
	require.Len(t, unresolved, 1)
	assert.Equal(t, "getting-started/middleware", unresolved[0].Entry.Slug())
	assert.Equal(t, []string{"Getting-Started"}, unresolved[0].Groups)

	var orphans []string
	for _, d := range idx.Orphans(site.Tree) {
		orphans = append(orphans, d.Slug)
	}
	assert.Equal(t, []string{
		"getting-started/ctx",
		"guides",
		"index",
		"reference/app",
		"reference/http-handlers/cors",
		"reference/internal",
	}, orphans)
}

func TestIndex_ExpandsAutogeneratedGroups(t *testing.T) {
	site, err := navigation.Build(navigation.Declaration{
		Title: "Diesel",
		Sidebar: []navigation.NodeDeclaration{
			{Label: "Router", Slug: "getting-started/router"},
			{
				Label:        "Reference",
				Collapsed:    true,
				Autogenerate: &navigation.AutogenerateDeclaration{Directory: "reference"},
			},
		},
	})
	require.NoError(t, err)

	idx, err := NewScanner(dieselDocs(t), "docs", nil).Scan(context.Background())
	require.NoError(t, err)

	expanded, err := site.Expand(idx)
	require.NoError(t, err)

	var slugs []string
	for e := range expanded.Tree.FlattenEntries() {
		slugs = append(slugs, e.Slug())
	}
	assert.Equal(t, []string{
		"getting-started/router",
		"reference/app",
		"reference/http-handlers/cors",
	}, slugs)

	reference, ok := expanded.Tree.Nodes()[1].(*navigation.Group)
	require.True(t, ok)
	assert.True(t, reference.Collapsed())

	children := reference.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "App", children[0].Label())
	assert.Equal(t, "Http Handlers", children[1].Label())

	assert.Empty(t, site.Tree.ResolveAgainst(idx))
}
