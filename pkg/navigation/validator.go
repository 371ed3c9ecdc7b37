package navigation

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Build validates decl and constructs the site it describes. Either the whole
// site is returned, or nil and a ValidationErrors holding every violation.
func Build(decl Declaration) (*Site, error) {
	v := newValidator()

	meta := v.validateMetadata(decl)
	nodes, depth := v.buildNodes(decl.Sidebar, "sidebar", 1)

	if len(v.errors) > 0 {
		return nil, v.errors
	}

	tree := &Tree{
		nodes:  nodes,
		bySlug: make(map[string]*Entry, len(v.seen)),
		depth:  depth,
	}
	for slug, owner := range v.seen {
		tree.bySlug[slug] = owner.entry
	}

	return &Site{
		Metadata: meta,
		Tree:     tree,
	}, nil
}

type slugOwner struct {
	entry *Entry
	path  string
}

// validator builds nodes while collecting every violation in a single
// depth-first pass.
type validator struct {
	errors ValidationErrors
	seen   map[string]slugOwner
}

func newValidator() *validator {
	return &validator{
		errors: make(ValidationErrors, 0),
		seen:   make(map[string]slugOwner),
	}
}

func (v *validator) validateMetadata(decl Declaration) SiteMetadata {
	meta := SiteMetadata{
		Title:  strings.TrimSpace(decl.Title),
		Social: make(map[string]string, len(decl.Social)),
	}

	if err := validation.Validate(meta.Title, validation.Required); err != nil {
		v.addError("title", "title is required")
	}

	for platform, link := range decl.Social {
		meta.Social[platform] = link
	}
	for _, platform := range meta.Platforms() {
		field := fmt.Sprintf("social.%s", platform)
		if strings.TrimSpace(platform) == "" {
			v.addError("social", "platform name must not be empty")
			continue
		}
		if err := validation.Validate(meta.Social[platform],
			validation.Required.Error("URL is required"),
			validation.By(absoluteURL),
		); err != nil {
			v.addError(field, err.Error())
		}
	}

	return meta
}

// buildNodes validates and constructs decls, returning the nodes and the
// depth of the deepest one.
func (v *validator) buildNodes(decls []NodeDeclaration, prefix string, level int) ([]Node, int) {
	nodes := make([]Node, 0, len(decls))
	depth := 0
	if len(decls) > 0 {
		depth = level
	}

	for i, decl := range decls {
		p := fmt.Sprintf("%s[%d]", prefix, i)
		if decl.IsGroup() {
			group, groupDepth := v.buildGroup(decl, p, level)
			nodes = append(nodes, group)
			depth = max(depth, groupDepth)
		} else {
			nodes = append(nodes, v.buildEntry(decl, p))
		}
	}

	return nodes, depth
}

func (v *validator) buildGroup(decl NodeDeclaration, p string, level int) (*Group, int) {
	group := &Group{
		label:     strings.TrimSpace(decl.Label),
		collapsed: decl.Collapsed,
	}
	v.validateLabel(group.label, p)

	if decl.Slug != "" {
		v.addError(p+".slug", "a group cannot declare a slug; use an entry inside items instead")
	}

	if decl.Autogenerate != nil {
		group.autogenerate = strings.Trim(strings.TrimSpace(decl.Autogenerate.Directory), "/")
		if err := validation.Validate(group.autogenerate,
			validation.Required.Error("autogenerate directory is required"),
			validation.By(relativePath),
		); err != nil {
			v.addError(p+".autogenerate.directory", err.Error())
		}
		if len(decl.Items) > 0 {
			v.addError(p+".items", "an autogenerated group cannot also declare items")
		}
		return group, level
	}

	if len(decl.Items) == 0 {
		v.addError(p+".items", "group must contain at least one item")
		return group, level
	}

	children, depth := v.buildNodes(decl.Items, p+".items", level+1)
	group.children = children
	return group, depth
}

func (v *validator) buildEntry(decl NodeDeclaration, p string) *Entry {
	entry := &Entry{
		label: strings.TrimSpace(decl.Label),
		slug:  decl.Slug,
		badge: strings.TrimSpace(decl.Badge),
	}
	v.validateLabel(entry.label, p)

	if err := validation.Validate(entry.slug,
		validation.Required.Error("slug is required"),
		validation.By(relativePath),
	); err != nil {
		v.addError(p+".slug", err.Error())
		return entry
	}

	if owner, ok := v.seen[entry.slug]; ok {
		v.addError(p+".slug", fmt.Sprintf(
			"duplicate slug %q: declared by %q at %s and again by %q",
			entry.slug, owner.entry.label, owner.path, entry.label))
		return entry
	}
	v.seen[entry.slug] = slugOwner{entry: entry, path: p}

	return entry
}

func (v *validator) validateLabel(label, p string) {
	if err := validation.Validate(label, validation.Required); err != nil {
		v.addError(p+".label", "label must not be empty")
	}
}

func (v *validator) addError(field, message string) {
	v.errors = append(v.errors, &ValidationError{
		Path:    field,
		Message: message,
	})
}

// Validation rules

// absoluteURL requires a parseable URL with a scheme and a host.
func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.New("must be an absolute URL with a scheme and host")
	}
	return nil
}

// relativePath requires a clean, relative, slash-separated path with no
// whitespace.
func relativePath(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return errors.New("must not contain whitespace")
	}
	if strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/") {
		return errors.New("must be relative, without leading or trailing slashes")
	}
	if path.Clean(s) != s || strings.HasPrefix(s, "../") || s == ".." {
		return errors.New("must be a clean path without empty, '.' or '..' segments")
	}
	return nil
}
