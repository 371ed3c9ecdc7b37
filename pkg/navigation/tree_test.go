package navigation

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gettingStarted() Declaration {
	return Declaration{
		Title: "Diesel",
		Social: map[string]string{
			"github": "https://github.com/pradeepbgs/diesel",
		},
		Sidebar: []NodeDeclaration{
			{
				Label: "Getting-Started",
				Items: []NodeDeclaration{
					{Label: "Getting Started", Slug: "getting-started/getting-started"},
					{Label: "Router", Slug: "getting-started/router"},
				},
			},
		},
	}
}

func slugsOf(t *Tree) []string {
	var slugs []string
	for e := range t.FlattenEntries() {
		slugs = append(slugs, e.Slug())
	}
	return slugs
}

func TestBuild_GettingStarted(t *testing.T) {
	site, err := Build(gettingStarted())
	require.NoError(t, err)

	assert.Equal(t, "Diesel", site.Metadata.Title)
	assert.Equal(t, "https://github.com/pradeepbgs/diesel", site.Metadata.Social["github"])
	assert.Equal(t, []string{
		"getting-started/getting-started",
		"getting-started/router",
	}, slugsOf(site.Tree))
	assert.Equal(t, 2, site.Tree.Len())
	assert.Equal(t, 2, site.Tree.Depth())
}

func TestBuild_DuplicateSlug(t *testing.T) {
	decl := gettingStarted()
	decl.Sidebar[0].Items = append(decl.Sidebar[0].Items,
		NodeDeclaration{Label: "Router Again", Slug: "getting-started/router"})

	site, err := Build(decl)
	require.Error(t, err)
	assert.Nil(t, site)
	assert.ErrorIs(t, err, ErrInvalidDeclaration)
	assert.Contains(t, err.Error(), `"getting-started/router"`)
	assert.Contains(t, err.Error(), `"Router"`)
	assert.Contains(t, err.Error(), `"Router Again"`)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "sidebar[0].items[2].slug", verrs[0].Path)
}

func TestTree_FlattenEntries(t *testing.T) {
	site, err := Build(Declaration{
		Title: "Docs",
		Sidebar: []NodeDeclaration{
			{Label: "Intro", Slug: "intro"},
			{
				Label: "Guides",
				Items: []NodeDeclaration{
					{Label: "Zebra", Slug: "guides/zebra"},
					{
						Label: "Advanced",
						Items: []NodeDeclaration{
							{Label: "Internals", Slug: "guides/advanced/internals"},
						},
					},
					{Label: "Apple", Slug: "guides/apple"},
				},
			},
			{Label: "FAQ", Slug: "faq"},
		},
	})
	require.NoError(t, err)

	want := []string{"intro", "guides/zebra", "guides/advanced/internals", "guides/apple", "faq"}

	t.Run("declaration order is preserved", func(t *testing.T) {
		assert.Equal(t, want, slugsOf(site.Tree))
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := site.Tree.FlattenEntries()
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		assert.Equal(t, first, second)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		var seen []string
		for e := range site.Tree.FlattenEntries() {
			seen = append(seen, e.Slug())
			if len(seen) == 2 {
				break
			}
		}
		assert.Equal(t, want[:2], seen)
	})

	t.Run("depth", func(t *testing.T) {
		assert.Equal(t, 3, site.Tree.Depth())
	})
}

func TestTree_ResolveAgainst(t *testing.T) {
	site, err := Build(gettingStarted())
	require.NoError(t, err)

	existing := NewSlugs("getting-started/getting-started")

	missing := site.Tree.ResolveAgainst(existing)
	require.Len(t, missing, 1)
	assert.Equal(t, "getting-started/router", missing[0].Entry.Slug())
	assert.Equal(t, "Router", missing[0].Entry.Label())
	assert.Equal(t, []string{"Getting-Started"}, missing[0].Groups)

	t.Run("is pure", func(t *testing.T) {
		again := site.Tree.ResolveAgainst(existing)
		assert.Equal(t, missing, again)
		assert.Equal(t, []string{
			"getting-started/getting-started",
			"getting-started/router",
		}, slugsOf(site.Tree))
	})

	t.Run("all present", func(t *testing.T) {
		all := NewSlugs("getting-started/getting-started", "getting-started/router")
		assert.Empty(t, site.Tree.ResolveAgainst(all))
	})

	t.Run("nothing present", func(t *testing.T) {
		assert.Len(t, site.Tree.ResolveAgainst(NewSlugs()), 2)
	})
}

func TestTree_FindBySlug(t *testing.T) {
	site, err := Build(gettingStarted())
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		entry, err := site.Tree.FindBySlug("getting-started/router")
		require.NoError(t, err)
		assert.Equal(t, "Router", entry.Label())
	})

	t.Run("not found", func(t *testing.T) {
		entry, err := site.Tree.FindBySlug("getting-started/ctx")
		assert.Nil(t, entry)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "getting-started/ctx")
	})
}

func TestTree_NodesAreCopies(t *testing.T) {
	site, err := Build(gettingStarted())
	require.NoError(t, err)

	nodes := site.Tree.Nodes()
	nodes[0] = &Entry{label: "Injected", slug: "injected"}

	group, ok := site.Tree.Nodes()[0].(*Group)
	require.True(t, ok)
	assert.Equal(t, "Getting-Started", group.Label())

	children := group.Children()
	children[0] = nil
	assert.NotNil(t, group.Children()[0])
}

func TestSite_DeclarationRoundTrip(t *testing.T) {
	decl := gettingStarted()
	decl.Sidebar = append(decl.Sidebar, NodeDeclaration{
		Label:        "Reference",
		Collapsed:    true,
		Autogenerate: &AutogenerateDeclaration{Directory: "reference"},
	})
	decl.Sidebar[0].Items[1].Badge = "New"

	site, err := Build(decl)
	require.NoError(t, err)

	assert.Equal(t, decl, site.Declaration())

	rebuilt, err := Build(site.Declaration())
	require.NoError(t, err)
	assert.Equal(t, slugsOf(site.Tree), slugsOf(rebuilt.Tree))
}

func TestBuild_EmptySidebar(t *testing.T) {
	site, err := Build(Declaration{Title: "Empty"})
	require.NoError(t, err)
	assert.Equal(t, 0, site.Tree.Len())
	assert.Equal(t, 0, site.Tree.Depth())
	assert.Empty(t, slugsOf(site.Tree))
}
