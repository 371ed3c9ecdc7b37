package cmd

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommands(t *testing.T) {
	ui := cli.NewMockUi()
	initCommands(hclog.NewNullLogger(), ui)

	for _, name := range []string{"check", "entries", "export", "find", "validate", "version", "watch"} {
		t.Run(name, func(t *testing.T) {
			factory, ok := Commands[name]
			require.True(t, ok)

			c, err := factory()
			require.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis())
			assert.Contains(t, c.Help(), "Usage: navtree "+name)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	ui := cli.NewMockUi()
	initCommands(hclog.NewNullLogger(), ui)

	c, err := Commands["version"]()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Run(nil))
	assert.Contains(t, ui.OutputWriter.String(), "navtree ")
}
