package content

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
)

// frontMatter is the subset of document front matter the index reads.
type frontMatter struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Draft       bool   `yaml:"draft" toml:"draft" json:"draft"`
	LastUpdated any    `yaml:"lastUpdated" toml:"lastUpdated" json:"lastUpdated"`
	Sidebar     struct {
		Label  string `yaml:"label" toml:"label" json:"label"`
		Order  *int   `yaml:"order" toml:"order" json:"order"`
		Hidden bool   `yaml:"hidden" toml:"hidden" json:"hidden"`
	} `yaml:"sidebar" toml:"sidebar" json:"sidebar"`
}

// Scanner indexes the documents below a content root.
type Scanner struct {
	fs     afero.Fs
	root   string
	logger hclog.Logger
}

// NewScanner returns a scanner for the documents below root on fs.
func NewScanner(fs afero.Fs, root string, logger hclog.Logger) *Scanner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scanner{
		fs:     fs,
		root:   filepath.Clean(root),
		logger: logger.Named("content"),
	}
}

// Scan walks the content root and indexes every document. Files that cannot
// be read are collected into a single error; the returned index still holds
// every document that was read.
func (s *Scanner) Scan(ctx context.Context) (*Index, error) {
	idx := newIndex()
	var result *multierror.Error

	walkErr := afero.Walk(s.fs, s.root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == s.root {
				return err
			}
			result = multierror.Append(result, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}
		if info.IsDir() || !IsDocument(info.Name()) {
			return nil
		}

		doc, err := s.readDocument(path)
		if err != nil {
			result = multierror.Append(result, err)
			return nil
		}

		if prev, ok := idx.bySlug[doc.Slug]; ok {
			s.logger.Warn("skipping document with duplicate slug",
				"slug", doc.Slug, "path", doc.Path, "indexed", prev.Path)
			return nil
		}
		idx.add(doc)
		return nil
	})
	if walkErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("error scanning content directory %s: %w", s.root, walkErr)
	}

	idx.sort()
	s.logger.Debug("scanned content directory", "root", s.root, "documents", idx.Len())

	return idx, result.ErrorOrNil()
}

func (s *Scanner) readDocument(path string) (*Document, error) {
	src, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return nil, fmt.Errorf("error resolving %s: %w", path, err)
	}

	doc := &Document{
		Slug:  Slugify(rel),
		Path:  filepath.ToSlash(rel),
		Order: navigation.DefaultOrder,
	}

	var fm frontMatter
	if _, err := frontmatter.Parse(bytes.NewReader(src), &fm); err != nil {
		s.logger.Warn("could not parse front matter, indexing without it",
			"path", path, "error", err)
		fm = frontMatter{}
	}

	doc.Title = strings.TrimSpace(fm.Title)
	doc.Draft = fm.Draft
	doc.Hidden = fm.Sidebar.Hidden
	if fm.Sidebar.Order != nil {
		doc.Order = *fm.Sidebar.Order
	}

	doc.Label = strings.TrimSpace(fm.Sidebar.Label)
	if doc.Label == "" {
		doc.Label = doc.Title
	}
	if doc.Label == "" {
		doc.Label = titleFromSlug(doc.Slug)
	}

	if fm.LastUpdated != nil {
		updated, err := parseDate(fm.LastUpdated)
		if err != nil {
			s.logger.Warn("could not parse lastUpdated", "path", path, "error", err)
		} else {
			doc.LastUpdated = updated
		}
	}

	return doc, nil
}

// parseDate accepts the decoded front matter value, which is already a
// time.Time for unquoted YAML and TOML dates.
func parseDate(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return dateparse.ParseAny(t)
	default:
		return dateparse.ParseAny(fmt.Sprint(t))
	}
}
