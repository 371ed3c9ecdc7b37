package watch

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
	"github.com/pradeepbgs/diesel-docs/pkg/siteconfig"
)

type Command struct {
	*base.Command

	flagConfig   string
	flagDebounce time.Duration

	// ctx, when set, replaces the signal-bound context.
	ctx context.Context
}

func New(b *base.Command) *Command {
	return &Command{Command: b}
}

func (c *Command) Synopsis() string {
	return "Rebuild the navigation tree whenever the declaration changes"
}

func (c *Command) Help() string {
	return `Usage: navtree watch [options]

  Loads the site declaration and rebuilds it every time the file is saved.
  Invalid edits are reported and the previous tree is kept. Stops on
  interrupt.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("watch", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", siteconfig.ConfigPathFromEnv(),
		"[NAVTREE_CONFIG] Path to the site declaration `file` (.hcl, .yaml or .json)",
	)
	f.DurationVar(
		&c.flagDebounce, "debounce", 500*time.Millisecond,
		"How long to wait after the last change before rebuilding.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagDebounce <= 0 {
		c.UI.Error("debounce must be positive")
		return 1
	}

	ctx := c.ctx
	if ctx == nil {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	w := siteconfig.NewWatcher(c.flagConfig, c.Log,
		siteconfig.WithDebounce(c.flagDebounce),
		siteconfig.WithOnChange(func(site *navigation.Site) {
			c.UI.Output(fmt.Sprintf("rebuilt %s: %d entries", c.flagConfig, site.Tree.Len()))
		}),
	)

	c.UI.Info(fmt.Sprintf("watching %s for changes", c.flagConfig))
	if err := w.Run(ctx); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
