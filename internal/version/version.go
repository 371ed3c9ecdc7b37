package version

// Version is the navtree version, overridden at build time with
// -ldflags "-X github.com/pradeepbgs/diesel-docs/internal/version.Version=...".
var Version = "0.1.0-dev"
