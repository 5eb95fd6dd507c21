package sitegen

import (
	"path/filepath"
	"strings"
)

// Slugify converts a title to a filesystem and URL safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// rootRelative re-expresses path relative to the project root using slash
// separators, falling back to the cleaned path when no relative form exists.
func (a *App) rootRelative(path string) string {
	rel, err := filepath.Rel(a.Config.Root, path)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(path))
	}
	return filepath.ToSlash(rel)
}
