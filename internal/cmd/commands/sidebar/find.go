package sidebar

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
)

type FindCommand struct {
	siteCommand
}

func NewFindCommand(b *base.Command) *FindCommand {
	return &FindCommand{siteCommand: siteCommand{Command: b}}
}

func (c *FindCommand) Synopsis() string {
	return "Look up a sidebar entry by slug"
}

func (c *FindCommand) Help() string {
	return `Usage: navtree find [options] <slug>

  Prints the sidebar entry declared for slug. Exits with status 2 when no
  entry has that slug.` + c.Flags().Help()
}

func (c *FindCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("find", flag.ContinueOnError))
	c.addConfigFlag(f)
	c.addContentFlag(f, "")
	return f
}

func (c *FindCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("find expects exactly one slug argument")
		return 1
	}
	slug := f.Arg(0)

	site, _, err := c.loadSite(context.Background())
	if err != nil {
		reportError(c.UI, err)
		return 1
	}

	entry, err := site.Tree.FindBySlug(slug)
	if errors.Is(err, navigation.ErrNotFound) {
		c.UI.Error(fmt.Sprintf("no sidebar entry has slug %q", slug))
		return 2
	} else if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("Label: %s", entry.Label()))
	c.UI.Output(fmt.Sprintf("Slug:  %s", entry.Slug()))
	if badge := entry.Badge(); badge != "" {
		c.UI.Output(fmt.Sprintf("Badge: %s", badge))
	}
	return 0
}
