package navigation

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Declaration is the raw, unvalidated site declaration as written by hand.
//
// Example (YAML):
//
//	title: Diesel
//	social:
//	  github: https://github.com/pradeepbgs/diesel
//	sidebar:
//	  - label: Getting-Started
//	    items:
//	      - label: Getting Started
//	        slug: getting-started/getting-started
//	      - label: Router
//	        slug: getting-started/router
type Declaration struct {
	Title   string            `json:"title" yaml:"title" mapstructure:"title"`
	Social  map[string]string `json:"social,omitempty" yaml:"social,omitempty" mapstructure:"social"`
	Sidebar []NodeDeclaration `json:"sidebar" yaml:"sidebar" mapstructure:"sidebar"`
}

// NodeDeclaration describes either a group or an entry. A node with items or
// an autogenerate directory is a group; anything else is an entry.
type NodeDeclaration struct {
	Label string `json:"label" yaml:"label" mapstructure:"label"`

	// Entry fields
	Slug  string `json:"slug,omitempty" yaml:"slug,omitempty" mapstructure:"slug"`
	Badge string `json:"badge,omitempty" yaml:"badge,omitempty" mapstructure:"badge"`

	// Group fields
	Collapsed    bool                     `json:"collapsed,omitempty" yaml:"collapsed,omitempty" mapstructure:"collapsed"`
	Autogenerate *AutogenerateDeclaration `json:"autogenerate,omitempty" yaml:"autogenerate,omitempty" mapstructure:"autogenerate"`
	Items        []NodeDeclaration        `json:"items,omitempty" yaml:"items,omitempty" mapstructure:"items"`
}

// AutogenerateDeclaration asks for a group to be filled from a content
// directory instead of listing its items.
type AutogenerateDeclaration struct {
	Directory string `json:"directory" yaml:"directory" mapstructure:"directory"`
}

// IsGroup reports whether the node declares a group.
func (n NodeDeclaration) IsGroup() bool {
	return n.Items != nil || n.Autogenerate != nil
}

// DecodeMap decodes a raw nested declaration, such as one produced by a
// generic JSON or HCL decoder, into a Declaration. Unknown keys are rejected.
func DecodeMap(raw map[string]any) (Declaration, error) {
	var decl Declaration
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &decl,
	})
	if err != nil {
		return Declaration{}, fmt.Errorf("error creating declaration decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Declaration{}, fmt.Errorf("error decoding declaration: %w", err)
	}
	return decl, nil
}

// BuildMap decodes raw and builds it.
func BuildMap(raw map[string]any) (*Site, error) {
	decl, err := DecodeMap(raw)
	if err != nil {
		return nil, err
	}
	return Build(decl)
}
