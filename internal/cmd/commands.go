package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
	"github.com/pradeepbgs/diesel-docs/internal/cmd/commands/sidebar"
	"github.com/pradeepbgs/diesel-docs/internal/cmd/commands/version"
	"github.com/pradeepbgs/diesel-docs/internal/cmd/commands/watch"
)

// Commands is the mapping of all available navtree commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"check": func() (cli.Command, error) {
			return sidebar.NewCheckCommand(b), nil
		},
		"entries": func() (cli.Command, error) {
			return sidebar.NewEntriesCommand(b), nil
		},
		"export": func() (cli.Command, error) {
			return sidebar.NewExportCommand(b), nil
		},
		"find": func() (cli.Command, error) {
			return sidebar.NewFindCommand(b), nil
		},
		"validate": func() (cli.Command, error) {
			return sidebar.NewValidateCommand(b), nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
		"watch": func() (cli.Command, error) {
			return watch.New(b), nil
		},
	}
}
