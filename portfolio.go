package sitegen

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pzulian/sitegen/entry"
)

// GeneratePortfolio parses every entry descriptor and writes the rendered
// portfolio page. Entries render in reverse lexicographic order of their
// directory names, so date-prefixed folders come out newest first.
func (a *App) GeneratePortfolio() error {
	entries, err := a.readEntries()
	if err != nil {
		return err
	}

	page := a.renderPage(entries)
	out := a.Config.HTMLPath()
	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Fprintf(a.Out, "wrote %s (%d entries)\n", out, len(entries))
	return nil
}

// readEntries collects the parsed descriptors of every entry directory that
// has one. Directories without a descriptor are ignored.
func (a *App) readEntries() ([]*entry.Entry, error) {
	dir := a.Config.EntriesPath()
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read entries dir: %w", err)
	}

	var names []string
	for _, d := range dirents {
		if d.IsDir() {
			names = append(names, d.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var entries []*entry.Entry
	for _, name := range names {
		path := filepath.Join(dir, name, a.Config.EntryFile)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		e, err := entry.ParseFile(path)
		if err != nil {
			fmt.Fprintf(a.Errw, "warning: %s: %v\n", path, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (a *App) renderPage(entries []*entry.Entry) string {
	cards := make([]string, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, a.renderCard(e))
	}
	return fill(pageTemplate, map[string]string{"CARDS": strings.Join(cards, "\n")})
}

func (a *App) renderCard(e *entry.Entry) string {
	title := e.Text("title")
	if !e.Has("title") {
		title = "Untitled"
	}
	escapedTitle := html.EscapeString(title)

	var description string
	if paragraphs := formatDescription(e.Text("description")); paragraphs != "" {
		description = fill(descriptionTemplate, map[string]string{"CONTENT": paragraphs})
	}

	gallery := a.renderGallery(e, escapedTitle)

	paperItems := e.Items("paper")
	status := firstItemValue(paperItems, "status")
	paperURL := firstItemValue(paperItems, "url")

	videoURL := e.Text("video")
	if videoURL == "" {
		videoURL = firstItemValue(e.Items("videos"), "url")
	}

	// Paper button and status badge are mutually exclusive; an accepted
	// paper with a URL wins over any badge.
	var paperButton, statusBadge string
	switch {
	case strings.EqualFold(status, "accepted") && paperURL != "":
		paperButton = fill(paperButtonTemplate, map[string]string{"URL": html.EscapeString(paperURL)})
	case status != "":
		statusBadge = fill(statusBadgeTemplate, map[string]string{"STATUS": html.EscapeString(strings.TrimSpace(status))})
	}

	var videoButton string
	if videoURL != "" {
		videoButton = fill(videoButtonTemplate, map[string]string{"URL": html.EscapeString(videoURL)})
	}

	return fill(cardTemplate, map[string]string{
		"TITLE":       escapedTitle,
		"GALLERY":     gallery,
		"DESCRIPTION": description,
		"LINKS":       renderLinks(paperButton, statusBadge, videoButton),
	})
}

// renderGallery builds the figure block for an entry. Image sources are
// re-expressed relative to the project root; the caption doubles as alt
// text, falling back to the (already escaped) entry title.
func (a *App) renderGallery(e *entry.Entry, fallbackAlt string) string {
	var figures []string
	for _, img := range e.Items("images") {
		src := img.Get("src")
		if src == "" {
			continue
		}
		rel := a.rootRelative(filepath.Join(e.Dir, filepath.FromSlash(src)))

		var caption string
		if c := img.Get("caption"); c != "" {
			caption = html.EscapeString(c)
		}
		alt := caption
		if alt == "" {
			alt = fallbackAlt
		}

		var captionHTML string
		if caption != "" {
			captionHTML = fill(figureCaptionTemplate, map[string]string{"TEXT": caption})
		}

		figures = append(figures, fill(figureTemplate, map[string]string{
			"SRC":     html.EscapeString(rel),
			"ALT":     alt,
			"CAPTION": captionHTML,
		}))
	}
	if len(figures) == 0 {
		return ""
	}
	return fill(galleryTemplate, map[string]string{"FIGURES": strings.Join(figures, "\n")})
}

func renderLinks(components ...string) string {
	var items []string
	for _, c := range components {
		if c != "" {
			items = append(items, c)
		}
	}
	if len(items) == 0 {
		return ""
	}
	return fill(linksTemplate, map[string]string{"ITEMS": strings.Join(items, "\n")})
}

// firstItemValue returns key's value from the first item that carries it.
func firstItemValue(items []entry.Item, key string) string {
	for _, it := range items {
		if it.Has(key) {
			return it.Get(key)
		}
	}
	return ""
}

// formatDescription splits plain text on blank lines and wraps each
// paragraph in an escaped <p> element.
func formatDescription(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var paragraphs []string
	for _, part := range splitParagraphs(text) {
		paragraphs = append(paragraphs, "<p>"+html.EscapeString(part)+"</p>")
	}
	return strings.Join(paragraphs, "\n")
}

// splitParagraphs joins consecutive non-blank lines with spaces and starts a
// new paragraph at every blank line.
func splitParagraphs(text string) []string {
	var parts []string
	var buffer []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(buffer) > 0 {
				parts = append(parts, strings.Join(buffer, " "))
				buffer = nil
			}
			continue
		}
		buffer = append(buffer, line)
	}
	if len(buffer) > 0 {
		parts = append(parts, strings.Join(buffer, " "))
	}
	return parts
}
