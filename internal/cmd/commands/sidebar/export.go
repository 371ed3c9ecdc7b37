package sidebar

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
)

type ExportCommand struct {
	siteCommand

	flagFormat string
}

func NewExportCommand(b *base.Command) *ExportCommand {
	return &ExportCommand{siteCommand: siteCommand{Command: b}}
}

func (c *ExportCommand) Synopsis() string {
	return "Print the normalized site declaration"
}

func (c *ExportCommand) Help() string {
	return `Usage: navtree export [options]

  Validates the site declaration and prints it back in canonical form as
  JSON or YAML. With -content, autogenerated groups are replaced by the
  entries generated from the content directory.` + c.Flags().Help()
}

func (c *ExportCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("export", flag.ContinueOnError))
	c.addConfigFlag(f)
	c.addContentFlag(f, "")
	f.StringVar(
		&c.flagFormat, "format", "json",
		"Output `format`: json or yaml",
	)
	return f
}

func (c *ExportCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var marshal func(any) ([]byte, error)
	switch c.flagFormat {
	case "json":
		marshal = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	case "yaml":
		marshal = yaml.Marshal
	default:
		c.UI.Error(fmt.Sprintf("unsupported format %q: must be json or yaml", c.flagFormat))
		return 1
	}

	site, _, err := c.loadSite(context.Background())
	if err != nil {
		reportError(c.UI, err)
		return 1
	}

	out, err := marshal(site.Declaration())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding declaration: %v", err))
		return 1
	}
	c.UI.Output(strings.TrimRight(string(out), "\n"))
	return 0
}
