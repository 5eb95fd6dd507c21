// Package entry parses the constrained descriptor format used by portfolio
// entries. The grammar is a deliberately narrow subset of a key/value block
// format: scalar lines, multi-line double-quoted blocks, and two-space
// indented lists of sub-mappings. It is not YAML and must not grow toward
// it; descriptor files depend on exactly these continuation and indentation
// rules.
package entry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is an ordered-insertion mapping parsed from one descriptor file.
// Dir is the directory the descriptor was read from; relative image paths
// inside the entry resolve against it.
type Entry struct {
	Dir string

	keys   []string
	fields map[string]Field
}

// Field is one descriptor value: either scalar/block text or a list of items.
type Field struct {
	Text  string
	Items []Item
	List  bool
}

// Item is one ordered sub-mapping inside a list block.
type Item struct {
	keys []string
	vals map[string]string
}

// ParseFile reads and parses the descriptor at path, recording its
// directory on the returned entry.
func ParseFile(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	e := Parse(string(data))
	e.Dir = filepath.Dir(path)
	return e, nil
}

// Parse parses src. It never fails: blank lines, comments and unrecognized
// lines are skipped and the best-effort result is returned.
func Parse(src string) *Entry {
	e := &Entry{fields: make(map[string]Field)}
	lines := splitLines(src)

	idx := 0
	for idx < len(lines) {
		line := lines[idx]
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			idx++
			continue
		}
		colon := strings.Index(line, ":")
		if colon < 0 {
			idx++
			continue
		}
		key := strings.TrimSpace(line[:colon])
		value := strings.TrimLeft(line[colon+1:], " \t")

		switch {
		case strings.HasPrefix(value, `"`):
			text, next := parseQuotedBlock(lines, idx, value)
			e.set(key, Field{Text: normalizeMultiline(text)})
			idx = next
		case value == "":
			items, next := parseListBlock(lines, idx+1)
			e.set(key, Field{Items: items, List: true})
			idx = next
		default:
			e.set(key, Field{Text: cleanScalar(value)})
			idx++
		}
	}
	return e
}

// Keys returns the field names in insertion order.
func (e *Entry) Keys() []string {
	return append([]string(nil), e.keys...)
}

// Has reports whether key was present in the descriptor.
func (e *Entry) Has(key string) bool {
	_, ok := e.fields[key]
	return ok
}

// Text returns the scalar or block text stored under key, or "".
func (e *Entry) Text(key string) string {
	return e.fields[key].Text
}

// Items returns the list items stored under key, or nil.
func (e *Entry) Items(key string) []Item {
	return e.fields[key].Items
}

// IsList reports whether key holds a list block.
func (e *Entry) IsList(key string) bool {
	return e.fields[key].List
}

func (e *Entry) set(key string, f Field) {
	if _, ok := e.fields[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.fields[key] = f
}

// Keys returns the sub-keys of the item in insertion order.
func (it Item) Keys() []string {
	return append([]string(nil), it.keys...)
}

// Has reports whether the item carries key.
func (it Item) Has(key string) bool {
	_, ok := it.vals[key]
	return ok
}

// Get returns the item's value for key, or "".
func (it Item) Get(key string) string {
	return it.vals[key]
}

func (it *Item) set(key, val string) {
	if _, ok := it.vals[key]; !ok {
		it.keys = append(it.keys, key)
	}
	it.vals[key] = val
}

// parseQuotedBlock consumes a `key: "text` value that may span lines. The
// block ends at a line whose stripped form ends in an unescaped quote;
// embedded blank lines are kept as paragraph breaks and comment lines are
// dropped. It returns the raw block text and the index of the next line.
func parseQuotedBlock(lines []string, idx int, value string) (string, int) {
	text := value[1:]
	if closesQuote(text) {
		return text[:len(text)-1], idx + 1
	}

	var pieces []string
	if text != "" {
		pieces = append(pieces, text)
	}
	idx++

	for idx < len(lines) {
		segment := lines[idx]
		stripped := strings.TrimSpace(segment)
		if stripped == "" {
			pieces = append(pieces, "")
			idx++
			continue
		}
		if strings.HasPrefix(stripped, "#") {
			idx++
			continue
		}
		if closesQuote(stripped) {
			trimmed := strings.TrimRight(segment, " \t")
			pieces = append(pieces, trimmed[:len(trimmed)-1])
			idx++
			break
		}
		pieces = append(pieces, strings.TrimRight(segment, " \t"))
		idx++
	}

	return strings.Join(pieces, "\n"), idx
}

// parseListBlock consumes the lines of a `key:` list. Items start at
// two-space indented dashes, optionally with an inline `sub: value`; deeper
// four-space lines add more sub-pairs until the indentation drops.
func parseListBlock(lines []string, idx int) ([]Item, int) {
	var items []Item
	for idx < len(lines) {
		line := lines[idx]
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			idx++
			continue
		}
		if !strings.HasPrefix(line, "  ") {
			break
		}
		if !strings.HasPrefix(stripped, "-") {
			idx++
			continue
		}

		item := Item{vals: make(map[string]string)}
		inline := strings.TrimSpace(strings.TrimPrefix(stripped, "-"))
		if inline != "" {
			if k, v, ok := strings.Cut(inline, ":"); ok {
				item.set(strings.TrimSpace(k), cleanScalar(v))
			}
		}
		idx++

		for idx < len(lines) {
			detail := lines[idx]
			strippedDetail := strings.TrimSpace(detail)
			if strippedDetail == "" || strings.HasPrefix(strippedDetail, "#") {
				idx++
				continue
			}
			if !strings.HasPrefix(detail, "    ") {
				break
			}
			if k, v, ok := strings.Cut(strippedDetail, ":"); ok {
				item.set(strings.TrimSpace(k), cleanScalar(v))
			}
			idx++
		}

		items = append(items, item)
	}
	return items, idx
}

// closesQuote reports whether s ends in a double quote that is not escaped.
func closesQuote(s string) bool {
	return strings.HasSuffix(s, `"`) && !strings.HasSuffix(s, `\"`)
}

func cleanScalar(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		v = v[1 : len(v)-1]
	}
	return strings.TrimSpace(v)
}

// normalizeMultiline trims blank edge lines, removes the common leading
// indentation and strips the result.
func normalizeMultiline(text string) string {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(strings.Join(dedent(lines), "\n"))
}

// dedent removes the longest common leading whitespace of the non-blank
// lines. Blank lines do not participate in the margin.
func dedent(lines []string) []string {
	margin := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			margin = indent
			first = false
			continue
		}
		margin = commonPrefix(margin, indent)
	}
	if margin == "" {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		out[i] = strings.TrimPrefix(line, margin)
	}
	return out
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

func splitLines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
