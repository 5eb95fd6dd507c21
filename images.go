package sitegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"
	_ "golang.org/x/image/webp"
)

// supportedExtensions lists the thumbnail formats the normalizer rewrites.
var supportedExtensions = map[string]bool{
	".png":  true,
	".webp": true,
}

// White-border detection amplifies the per-channel difference against pure
// white as v = whiteDiffScale*d + whiteDiffBias, clamped to 8 bits. A pixel
// counts as content when any amplified channel is positive, which drops
// near-white scan noise while keeping real edges. The net channel threshold
// is 50; treat it as tunable rather than contractual.
const (
	whiteDiffScale = 2
	whiteDiffBias  = -100
)

func decodeImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

func encodeImage(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	case "webp":
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("encode webp: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return buf.Bytes(), nil
}

// trimBounds returns the content bounding box of img and whether that box is
// smaller than the full canvas. The alpha channel wins when the image has
// one and it actually marks a border; otherwise content is whatever differs
// from a pure white background. The returned box may be empty when nothing
// in the image qualifies as content.
func trimBounds(img image.Image) (image.Rectangle, bool) {
	full := img.Bounds()
	if hasAlpha(img) {
		if box := contentBox(img, alphaContent); box != full {
			return box, true
		}
	}
	if box := contentBox(img, whiteDiffContent); box != full {
		return box, true
	}
	return full, false
}

// hasAlpha reports whether img carries a usable alpha channel: an
// alpha-capable color model with at least one non-opaque pixel.
func hasAlpha(img image.Image) bool {
	if !alphaCapable(img.ColorModel()) {
		return false
	}
	if op, ok := img.(interface{ Opaque() bool }); ok {
		return !op.Opaque()
	}
	return true
}

// alphaCapable reports whether the color model can express transparency.
// Lossy webp decodes to NYCbCrA and indexed png to Paletted, so both count
// alongside the plain alpha models.
func alphaCapable(m color.Model) bool {
	switch m {
	case color.NRGBAModel, color.NRGBA64Model, color.RGBAModel, color.RGBA64Model,
		color.AlphaModel, color.Alpha16Model, color.NYCbCrAModel:
		return true
	}
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

func alphaContent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a != 0
}

func whiteDiffContent(c color.Color) bool {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	for _, ch := range [...]uint8{nc.R, nc.G, nc.B} {
		d := int(0xff - ch)
		if clamp8(whiteDiffScale*d+whiteDiffBias) > 0 {
			return true
		}
	}
	return false
}

// contentBox computes the bounding box of the pixels content accepts.
// The zero rectangle means no pixel qualified.
func contentBox(img image.Image, content func(color.Color) bool) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !content(img.At(x, y)) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

func cropImage(img image.Image, box image.Rectangle) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(dst, dst.Bounds(), img, box.Min, draw.Src)
	return dst
}

// padToRatio centers img on a transparent canvas grown to the target
// width/height ratio and reports whether padding happened. Images already
// within tolerance of the target ratio are returned unchanged.
func padToRatio(img image.Image, ratioW, ratioH int, tolerance float64) (image.Image, bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img, false
	}

	target := float64(ratioW) / float64(ratioH)
	current := float64(w) / float64(h)
	if diff := math.Abs(current - target); diff <= math.Max(tolerance, tolerance*target) {
		return img, false
	}

	newW, newH := w, h
	if current > target {
		// Too wide: grow the canvas height.
		newH = int(math.Round(float64(w) * float64(ratioH) / float64(ratioW)))
	} else {
		// Too narrow or tall: grow the canvas width.
		newW = int(math.Round(float64(h) * float64(ratioW) / float64(ratioH)))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	offset := image.Pt((newW-w)/2, (newH-h)/2)
	draw.Draw(dst, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(w, h))}, img, b.Min, draw.Src)
	return dst, true
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
