package sidebar

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
)

type EntriesCommand struct {
	siteCommand

	flagTree bool
}

func NewEntriesCommand(b *base.Command) *EntriesCommand {
	return &EntriesCommand{siteCommand: siteCommand{Command: b}}
}

func (c *EntriesCommand) Synopsis() string {
	return "List sidebar entries in reading order"
}

func (c *EntriesCommand) Help() string {
	return `Usage: navtree entries [options]

  Prints every sidebar entry in the order a reader pages through them, one
  "slug<TAB>label" line per entry. With -content, autogenerated groups are
  expanded first.` + c.Flags().Help()
}

func (c *EntriesCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("entries", flag.ContinueOnError))
	c.addConfigFlag(f)
	c.addContentFlag(f, "")
	f.BoolVar(
		&c.flagTree, "tree", false,
		"Print the whole tree, groups included, indented by depth.",
	)
	return f
}

func (c *EntriesCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	site, _, err := c.loadSite(context.Background())
	if err != nil {
		reportError(c.UI, err)
		return 1
	}

	if c.flagTree {
		c.printTree(site.Tree.Nodes(), 0)
		return 0
	}

	for e := range site.Tree.FlattenEntries() {
		c.UI.Output(fmt.Sprintf("%s\t%s", e.Slug(), e.Label()))
	}
	return 0
}

func (c *EntriesCommand) printTree(nodes []navigation.Node, level int) {
	indent := strings.Repeat("  ", level)
	for _, n := range nodes {
		switch n := n.(type) {
		case *navigation.Group:
			line := indent + n.Label() + "/"
			if dir := n.Autogenerate(); dir != "" {
				line += fmt.Sprintf(" (autogenerated from %s)", dir)
			}
			c.UI.Output(line)
			c.printTree(n.Children(), level+1)
		case *navigation.Entry:
			c.UI.Output(fmt.Sprintf("%s%s -> %s", indent, n.Label(), n.Slug()))
		}
	}
}
