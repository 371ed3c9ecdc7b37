package sidebar

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/pradeepbgs/diesel-docs/internal/cmd/base"
	"github.com/pradeepbgs/diesel-docs/pkg/content"
	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
	"github.com/pradeepbgs/diesel-docs/pkg/siteconfig"
)

// DefaultContentDir is where documents live relative to the project root.
const DefaultContentDir = "src/content/docs"

// siteCommand holds the flags and helpers shared by the sidebar commands.
type siteCommand struct {
	*base.Command

	// Fs is the file system content is scanned from. Nil means the OS file
	// system.
	Fs afero.Fs

	flagConfig  string
	flagContent string
}

func (c *siteCommand) addConfigFlag(f *base.FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", siteconfig.ConfigPathFromEnv(),
		"[NAVTREE_CONFIG] Path to the site declaration `file` (.hcl, .yaml or .json)",
	)
}

func (c *siteCommand) addContentFlag(f *base.FlagSet, def string) {
	f.StringVar(
		&c.flagContent, "content", def,
		"Content `directory` holding the .md and .mdx documents",
	)
}

func (c *siteCommand) fs() afero.Fs {
	if c.Fs == nil {
		return afero.NewOsFs()
	}
	return c.Fs
}

// loadSite loads the declaration and, when a content directory is set,
// expands autogenerated groups from it. The index is nil without one.
func (c *siteCommand) loadSite(ctx context.Context) (*navigation.Site, *content.Index, error) {
	site, err := siteconfig.Load(c.flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if c.flagContent == "" {
		return site, nil, nil
	}

	idx, err := c.scan(ctx)
	if err != nil {
		return nil, nil, err
	}

	expanded, err := site.Expand(idx)
	if err != nil {
		return nil, nil, fmt.Errorf("error expanding autogenerated groups: %w", err)
	}
	return expanded, idx, nil
}

func (c *siteCommand) scan(ctx context.Context) (*content.Index, error) {
	idx, err := content.NewScanner(c.fs(), c.flagContent, c.Log).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("error indexing content: %w", err)
	}
	c.Log.Debug("indexed content", "dir", c.flagContent, "documents", idx.Len())
	return idx, nil
}

// reportError writes err to ui, one line per validation violation.
func reportError(ui cli.Ui, err error) {
	var verrs navigation.ValidationErrors
	if !errors.As(err, &verrs) {
		ui.Error(err.Error())
		return
	}

	ui.Error(fmt.Sprintf("site declaration is invalid (%d errors):", len(verrs)))
	for _, v := range verrs {
		ui.Error(fmt.Sprintf("  %s: %s", v.Path, v.Message))
	}
}
