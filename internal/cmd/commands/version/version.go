package version

import (
	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
	"github.com/pradeepbgs/diesel-docs/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the navtree version"
}

func (c *Command) Help() string {
	return `Usage: navtree version

  Prints the navtree version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("navtree " + version.Version)
	return 0
}
