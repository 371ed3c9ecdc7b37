// Package navigation models the documentation sidebar: an ordered tree of
// groups and entries, validated eagerly when it is built and immutable
// afterwards.
//
// A Site is built once from a Declaration:
//
//	site, err := navigation.Build(decl)
//	if err != nil {
//		// err is a ValidationErrors listing every violation.
//	}
//	for entry := range site.Tree.FlattenEntries() {
//		fmt.Println(entry.Slug())
//	}
//
// Read operations on a built Site may run concurrently.
package navigation
