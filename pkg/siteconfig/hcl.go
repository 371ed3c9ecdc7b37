package siteconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
)

// HCL schemas. Blocks are read with hcl.Body.Content, which keeps groups and
// entries in source order.
var (
	nodeBlocks = []hcl.BlockHeaderSchema{
		{Type: "group", LabelNames: []string{"label"}},
		{Type: "entry", LabelNames: []string{"label"}},
	}

	rootSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "title", Required: true},
			{Name: "social"},
		},
		Blocks: nodeBlocks,
	}

	groupSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "collapsed"},
			{Name: "autogenerate"},
		},
		Blocks: nodeBlocks,
	}

	entrySchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "slug", Required: true},
			{Name: "badge"},
		},
	}
)

// envFunc implements env("NAME"), returning "" for unset variables.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

// DecodeHCL decodes an HCL site declaration.
//
// Example:
//
//	title  = "Diesel"
//	social = { github = "https://github.com/pradeepbgs/diesel" }
//
//	group "Getting-Started" {
//	  entry "Getting Started" { slug = "getting-started/getting-started" }
//	  entry "Router" { slug = "getting-started/router" }
//	}
//
//	group "Reference" {
//	  collapsed    = true
//	  autogenerate = "reference"
//	}
func DecodeHCL(src []byte, filename string) (navigation.Declaration, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return navigation.Declaration{}, fmt.Errorf("error parsing %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return navigation.Declaration{}, fmt.Errorf("error decoding %s: %w", filename, diags)
	}

	ctx := evalContext()
	var decl navigation.Declaration

	diags = append(diags, gohcl.DecodeExpression(content.Attributes["title"].Expr, ctx, &decl.Title)...)
	if attr, ok := content.Attributes["social"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, ctx, &decl.Social)...)
	}

	sidebar, nodeDiags := decodeNodes(content.Blocks, ctx)
	diags = append(diags, nodeDiags...)
	decl.Sidebar = sidebar

	if diags.HasErrors() {
		return navigation.Declaration{}, fmt.Errorf("error decoding %s: %w", filename, diags)
	}
	return decl, nil
}

func decodeNodes(blocks hcl.Blocks, ctx *hcl.EvalContext) ([]navigation.NodeDeclaration, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	nodes := make([]navigation.NodeDeclaration, 0, len(blocks))

	for _, block := range blocks {
		switch block.Type {
		case "group":
			node, groupDiags := decodeGroup(block, ctx)
			diags = append(diags, groupDiags...)
			nodes = append(nodes, node)
		case "entry":
			node, entryDiags := decodeEntry(block, ctx)
			diags = append(diags, entryDiags...)
			nodes = append(nodes, node)
		}
	}

	return nodes, diags
}

func decodeGroup(block *hcl.Block, ctx *hcl.EvalContext) (navigation.NodeDeclaration, hcl.Diagnostics) {
	node := navigation.NodeDeclaration{Label: block.Labels[0]}

	content, diags := block.Body.Content(groupSchema)
	if diags.HasErrors() {
		return node, diags
	}

	if attr, ok := content.Attributes["collapsed"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, ctx, &node.Collapsed)...)
	}
	if attr, ok := content.Attributes["autogenerate"]; ok {
		var dir string
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, ctx, &dir)...)
		node.Autogenerate = &navigation.AutogenerateDeclaration{Directory: dir}
	}

	items, itemDiags := decodeNodes(content.Blocks, ctx)
	diags = append(diags, itemDiags...)

	// An empty group block must still decode as a group.
	if node.Autogenerate == nil || len(items) > 0 {
		node.Items = items
	}

	return node, diags
}

func decodeEntry(block *hcl.Block, ctx *hcl.EvalContext) (navigation.NodeDeclaration, hcl.Diagnostics) {
	node := navigation.NodeDeclaration{Label: block.Labels[0]}

	content, diags := block.Body.Content(entrySchema)
	if diags.HasErrors() {
		return node, diags
	}

	diags = append(diags, gohcl.DecodeExpression(content.Attributes["slug"].Expr, ctx, &node.Slug)...)
	if attr, ok := content.Attributes["badge"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, ctx, &node.Badge)...)
	}

	return node, diags
}
