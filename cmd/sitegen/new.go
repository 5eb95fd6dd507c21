package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pzulian/sitegen"
)

// descriptorTemplate is the starter descriptor written for a new entry.
const descriptorTemplate = `# {{.Title}}
title: "{{.Title}}"
description: "
  Describe the project here. Blank lines start a new paragraph.
"
images:
  # - src: teaser.png
  #   caption: "Figure caption"
# paper:
#   - status: submitted
#   - url: https://example.org/paper.pdf
# videos:
#   - url: https://example.org/video
`

func runNew(app *sitegen.App, title string) error {
	slug := sitegen.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", title)
	}

	dir := filepath.Join(app.Config.EntriesPath(), slug)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("entry %q already exists", slug)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create entry dir: %w", err)
	}

	tmpl, err := template.New("descriptor").Parse(descriptorTemplate)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, app.Config.EntryFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, struct{ Title string }{title}); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}

	fmt.Printf("created %s\n", path)
	return nil
}
