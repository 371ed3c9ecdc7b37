// Package siteconfig loads site declarations from HCL, YAML or JSON files and
// keeps a built navigation.Site up to date as the file changes.
package siteconfig
