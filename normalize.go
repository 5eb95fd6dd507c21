package sitegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NormalizeImages reads the portfolio page, finds every local thumbnail it
// references, trims blank borders and pads each one to the target aspect
// ratio in place. Only the absence of the page itself is fatal; individual
// images are skipped with a warning on Errw.
func (a *App) NormalizeImages() error {
	htmlPath := a.Config.HTMLPath()
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", htmlPath, err)
	}

	var normalized int
	for _, src := range ExtractImageSources(string(data)) {
		if !isLocalSource(src) {
			continue
		}
		path := filepath.Join(a.Config.Root, filepath.FromSlash(src))
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(a.Errw, "warning: skipping missing image %s\n", src)
			continue
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(path))] {
			fmt.Fprintf(a.Errw, "warning: skipping unsupported format %s\n", src)
			continue
		}
		wrote, err := a.normalizeFile(path, src)
		if err != nil {
			fmt.Fprintf(a.Errw, "warning: %s: %v\n", src, err)
			continue
		}
		if wrote {
			normalized++
		}
	}

	fmt.Fprintf(a.Out, "done. normalized %d image(s).\n", normalized)
	return nil
}

// normalizeFile trims and pads a single image, overwriting it in place when
// anything changed. It reports whether the file was rewritten.
func (a *App) normalizeFile(path, src string) (bool, error) {
	img, format, err := decodeImage(path)
	if err != nil {
		return false, err
	}

	working := img
	box, cropped := trimBounds(img)
	if cropped {
		if box.Empty() {
			// Nothing left after trimming; leave the file alone.
			fmt.Fprintf(a.Errw, "warning: %s trims to an empty image, leaving it untouched\n", src)
			return false, nil
		}
		working = cropImage(img, box)
	}

	padded, didPad := padToRatio(working, a.Config.RatioWidth, a.Config.RatioHeight, a.Config.RatioTolerance)
	if !cropped && !didPad {
		return false, nil
	}

	out, err := encodeImage(padded, format)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, fmt.Errorf("write image: %w", err)
	}

	if didPad {
		fmt.Fprintf(a.Out, "padded %s\n", src)
	} else {
		fmt.Fprintf(a.Out, "cropped %s\n", src)
	}
	return true, nil
}
