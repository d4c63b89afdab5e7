package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"controlstates/pkg/models"
)

// Document is one analyzed report ready for extraction.
type Document struct {
	Name   string
	Tables []models.RawTable
	Lines  []string
}

// DocumentSource lists and fetches analyzed reports. The production
// collaborator lists the bucket and drives the analysis service; this core
// only ever sees the interface.
type DocumentSource interface {
	List(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, name string) (*Document, error)
}

// LocalSource serves saved analysis responses from a directory: block-graph
// JSON exports (.json) and HTML renditions (.html).
type LocalSource struct {
	dir string
}

// NewLocalSource creates a source over a directory of saved documents.
func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{dir: dir}
}

// List returns the document filenames in sorted order.
func (s *LocalSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list documents in %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".html":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Fetch reads and decodes one saved document.
func (s *LocalSource) Fetch(ctx context.Context, name string) (*Document, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}

	if strings.EqualFold(filepath.Ext(name), ".html") {
		tables, lines, err := ParseHTMLReport(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse HTML rendition %s: %w", name, err)
		}
		return &Document{Name: name, Tables: tables, Lines: lines}, nil
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("decode document %s: %w", name, err)
	}
	return &Document{Name: name, Tables: doc.Tables(), Lines: doc.Lines()}, nil
}
