package sidebar

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
)

type CheckCommand struct {
	siteCommand

	flagStrict  bool
	flagOrphans bool
}

func NewCheckCommand(b *base.Command) *CheckCommand {
	return &CheckCommand{siteCommand: siteCommand{Command: b}}
}

func (c *CheckCommand) Synopsis() string {
	return "Check sidebar entries against the content directory"
}

func (c *CheckCommand) Help() string {
	return `Usage: navtree check [options]

  Validates the site declaration, expands autogenerated groups from the
  content directory and reports entries whose slug has no document.
  Unresolved entries are warnings unless -strict is set.` + c.Flags().Help()
}

func (c *CheckCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("check", flag.ContinueOnError))
	c.addConfigFlag(f)
	c.addContentFlag(f, DefaultContentDir)
	f.BoolVar(
		&c.flagStrict, "strict", false,
		"Exit with an error when an entry has no matching document.",
	)
	f.BoolVar(
		&c.flagOrphans, "orphans", false,
		"Also list documents that no sidebar entry links to.",
	)
	return f
}

func (c *CheckCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagContent == "" {
		c.UI.Error("content flag is required")
		return 1
	}

	site, idx, err := c.loadSite(context.Background())
	if err != nil {
		reportError(c.UI, err)
		return 1
	}

	unresolved := site.Tree.ResolveAgainst(idx)
	for _, u := range unresolved {
		where := strings.Join(append(u.Groups, u.Entry.Label()), " > ")
		msg := fmt.Sprintf("no document for %q (%s)", u.Entry.Slug(), where)
		if c.flagStrict {
			c.UI.Error(msg)
		} else {
			c.UI.Warn(msg)
		}
	}

	if c.flagOrphans {
		for _, d := range idx.Orphans(site.Tree) {
			c.UI.Warn(fmt.Sprintf("document %q (%s) is not in the sidebar", d.Slug, d.Path))
		}
	}

	if len(unresolved) > 0 && c.flagStrict {
		c.UI.Error(fmt.Sprintf("%d of %d entries have no document", len(unresolved), site.Tree.Len()))
		return 1
	}

	c.UI.Output(fmt.Sprintf(
		"checked %d entries against %d documents, %d unresolved",
		site.Tree.Len(), idx.Len(), len(unresolved)))
	return 0
}
