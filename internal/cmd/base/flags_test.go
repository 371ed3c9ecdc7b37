package base

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSet_Help(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	var config string
	var strict bool
	f.StringVar(&config, "config", "site.hcl", "Path to the site `file`")
	f.BoolVar(&strict, "strict", false, "Fail on warnings")

	help := f.Help()
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-config=<file>\n      Path to the site file (default: site.hcl)")
	assert.Contains(t, help, "-strict\n      Fail on warnings\n")
	assert.NotContains(t, help, "default: false")
}

func TestFlagSet_HelpEmpty(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	assert.Empty(t, f.Help())
}

func TestFlagSet_ParseErrorIsNotPrinted(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	err := f.Parse([]string{"-unknown"})
	assert.ErrorContains(t, err, "flag provided but not defined: -unknown")
}
