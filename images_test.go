package sitegen

import (
	"image"
	"image/color"
	"testing"
)

// filled returns an image of the given size with every pixel set to c.
func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// paint sets every pixel of the rectangle to c.
func paint(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

var (
	transparent = color.NRGBA{}
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	nearWhite   = color.NRGBA{R: 215, G: 215, B: 215, A: 255}
	black       = color.NRGBA{A: 255}
	red         = color.NRGBA{R: 255, A: 255}
)

func TestTrimBoundsTransparentBorder(t *testing.T) {
	img := filled(100, 100, transparent)
	paint(img, image.Rect(20, 30, 80, 70), red)

	box, cropped := trimBounds(img)
	if !cropped {
		t.Fatal("expected a crop for a transparent border")
	}
	if want := image.Rect(20, 30, 80, 70); box != want {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestTrimBoundsLossyWebPAlphaBorder(t *testing.T) {
	// Lossy webp with an alpha channel decodes to NYCbCrA; its transparent
	// border must be trimmed just like an NRGBA one.
	img := image.NewNYCbCrA(image.Rect(0, 0, 100, 100), image.YCbCrSubsampleRatio444)
	for y := 30; y < 70; y++ {
		for x := 20; x < 80; x++ {
			img.Y[img.YOffset(x, y)] = 128
			img.A[img.AOffset(x, y)] = 255
		}
	}

	box, cropped := trimBounds(img)
	if !cropped {
		t.Fatal("expected a crop for a transparent NYCbCrA border")
	}
	if want := image.Rect(20, 30, 80, 70); box != want {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestTrimBoundsPalettedTransparentBorder(t *testing.T) {
	// Indexed pngs decode to Paletted; a transparent palette entry used for
	// the border must trigger the alpha path.
	img := image.NewPaletted(image.Rect(0, 0, 50, 50), color.Palette{transparent, red})
	for y := 10; y < 40; y++ {
		for x := 10; x < 40; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}

	box, cropped := trimBounds(img)
	if !cropped {
		t.Fatal("expected a crop for a transparent paletted border")
	}
	if want := image.Rect(10, 10, 40, 40); box != want {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestTrimBoundsOpaquePaletteStaysOnWhiteDiff(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 40, 40), color.Palette{white, black})
	for y := 5; y < 35; y++ {
		for x := 5; x < 35; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}

	box, cropped := trimBounds(img)
	if !cropped {
		t.Fatal("expected a crop around the dark center")
	}
	if want := image.Rect(5, 5, 35, 35); box != want {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestTrimBoundsWhiteBorder(t *testing.T) {
	img := filled(100, 100, white)
	paint(img, image.Rect(10, 10, 50, 60), black)

	box, cropped := trimBounds(img)
	if !cropped {
		t.Fatal("expected a crop for a white border")
	}
	if want := image.Rect(10, 10, 50, 60); box != want {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestTrimBoundsIgnoresNearWhiteNoise(t *testing.T) {
	// Channel difference 40 stays below the amplified threshold, so the
	// near-white margin is treated as background.
	img := filled(100, 100, nearWhite)
	paint(img, image.Rect(25, 25, 75, 75), black)

	box, cropped := trimBounds(img)
	if !cropped {
		t.Fatal("expected a crop around the dark center")
	}
	if want := image.Rect(25, 25, 75, 75); box != want {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestTrimBoundsNoBorder(t *testing.T) {
	img := filled(64, 64, black)

	box, cropped := trimBounds(img)
	if cropped {
		t.Fatalf("expected no crop, got box %v", box)
	}
	if box != img.Bounds() {
		t.Errorf("box = %v, want full bounds %v", box, img.Bounds())
	}
}

func TestTrimBoundsFullyTransparent(t *testing.T) {
	img := filled(32, 32, transparent)

	box, cropped := trimBounds(img)
	if !cropped {
		t.Fatal("expected the empty box to be reported as a crop")
	}
	if !box.Empty() {
		t.Errorf("box = %v, want empty", box)
	}
}

func TestTrimBoundsOpaqueAlphaFallsThroughToWhiteDiff(t *testing.T) {
	// Fully opaque NRGBA has no usable alpha signal; the white border must
	// still be found.
	img := filled(80, 40, white)
	paint(img, image.Rect(15, 5, 65, 35), red)

	box, cropped := trimBounds(img)
	if !cropped {
		t.Fatal("expected a crop via the white-difference path")
	}
	if want := image.Rect(15, 5, 65, 35); box != want {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestCropImage(t *testing.T) {
	img := filled(50, 50, transparent)
	paint(img, image.Rect(10, 20, 30, 40), red)

	got := cropImage(img, image.Rect(10, 20, 30, 40))
	if w, h := got.Bounds().Dx(), got.Bounds().Dy(); w != 20 || h != 20 {
		t.Fatalf("cropped size = %dx%d, want 20x20", w, h)
	}
	if got.NRGBAAt(0, 0) != red {
		t.Errorf("corner pixel = %v, want %v", got.NRGBAAt(0, 0), red)
	}
}

func TestPadToRatioSquare(t *testing.T) {
	img := filled(800, 800, red)

	out, padded := padToRatio(img, 16, 9, 0.01)
	if !padded {
		t.Fatal("expected padding for a square image")
	}
	if w, h := out.Bounds().Dx(), out.Bounds().Dy(); w != 1422 || h != 800 {
		t.Fatalf("padded size = %dx%d, want 1422x800", w, h)
	}

	nrgba := out.(*image.NRGBA)
	if got := nrgba.NRGBAAt(310, 400); got.A != 0 {
		t.Errorf("pixel left of content = %v, want transparent", got)
	}
	if got := nrgba.NRGBAAt(311, 400); got != red {
		t.Errorf("first content pixel = %v, want %v", got, red)
	}
	if got := nrgba.NRGBAAt(1110, 400); got != red {
		t.Errorf("last content pixel = %v, want %v", got, red)
	}
	if got := nrgba.NRGBAAt(1111, 400); got.A != 0 {
		t.Errorf("pixel right of content = %v, want transparent", got)
	}
}

func TestPadToRatioTooWide(t *testing.T) {
	img := filled(2000, 1000, red)

	out, padded := padToRatio(img, 16, 9, 0.01)
	if !padded {
		t.Fatal("expected padding for a 2:1 image")
	}
	if w, h := out.Bounds().Dx(), out.Bounds().Dy(); w != 2000 || h != 1125 {
		t.Fatalf("padded size = %dx%d, want 2000x1125", w, h)
	}

	nrgba := out.(*image.NRGBA)
	if got := nrgba.NRGBAAt(1000, 61); got.A != 0 {
		t.Errorf("pixel above content = %v, want transparent", got)
	}
	if got := nrgba.NRGBAAt(1000, 62); got != red {
		t.Errorf("first content row = %v, want %v", got, red)
	}
}

func TestPadToRatioAlreadyAtTarget(t *testing.T) {
	img := filled(1920, 1080, red)

	out, padded := padToRatio(img, 16, 9, 0.01)
	if padded {
		t.Fatal("expected a no-op at exactly 16:9")
	}
	if out != image.Image(img) {
		t.Error("no-op should return the original image")
	}
}

func TestPadToRatioWithinTolerance(t *testing.T) {
	// 1920x1082 is about 0.2% off the target, inside the 1% tolerance.
	img := filled(1920, 1082, red)

	if _, padded := padToRatio(img, 16, 9, 0.01); padded {
		t.Fatal("expected a no-op within tolerance")
	}
}

func TestPadToRatioDegenerate(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))

	if _, padded := padToRatio(img, 16, 9, 0.01); padded {
		t.Fatal("expected a no-op for a zero-size image")
	}
}

func TestEncodeImageUnsupported(t *testing.T) {
	if _, err := encodeImage(filled(1, 1, red), "gif"); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}
