package sidebar

import (
	"context"
	"flag"
	"fmt"

	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
)

type ValidateCommand struct {
	siteCommand
}

func NewValidateCommand(b *base.Command) *ValidateCommand {
	return &ValidateCommand{siteCommand: siteCommand{Command: b}}
}

func (c *ValidateCommand) Synopsis() string {
	return "Validate the site declaration"
}

func (c *ValidateCommand) Help() string {
	return `Usage: navtree validate [options]

  Builds the navigation tree from the site declaration and reports every
  problem found: missing labels, malformed slugs, duplicate slugs, empty
  groups and invalid social links.` + c.Flags().Help()
}

func (c *ValidateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("validate", flag.ContinueOnError))
	c.addConfigFlag(f)
	return f
}

func (c *ValidateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	site, _, err := c.loadSite(context.Background())
	if err != nil {
		reportError(c.UI, err)
		return 1
	}

	c.UI.Output(fmt.Sprintf(
		"%s is valid: %d entries, %d levels deep",
		c.flagConfig, site.Tree.Len(), site.Tree.Depth()))
	if auto := site.Tree.Autogenerated(); len(auto) > 0 {
		c.UI.Info(fmt.Sprintf(
			"%d autogenerated group(s) are expanded from content; run 'navtree check' to verify them",
			len(auto)))
	}
	return 0
}
