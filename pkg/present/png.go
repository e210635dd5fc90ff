// 19 Oct 2026

package present

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/andrew-torda/seqalign/pkg/align"
)

const (
	fontSize = 14.0 // points
	dpi      = 72.0
	spacing  = 1.4 // line height as a multiple of the font size
	margin   = 10  // pixels
)

// WritePNG draws the alignment block, with the score above it, in a
// monospaced font and writes it as a png.
func WritePNG(w io.Writer, r *align.Result, opts *Options) error {
	fnt, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	lines := append([]string{fmt.Sprintf("score %d", r.Score), ""}, Lines(r, opts)...)

	face := truetype.NewFace(fnt, &truetype.Options{Size: fontSize, DPI: dpi})
	defer face.Close()
	width := 0
	for _, l := range lines {
		if n := font.MeasureString(face, l).Ceil(); n > width {
			width = n
		}
	}
	lineHt := int(math.Round(fontSize * spacing * dpi / 72.0))
	img := image.NewRGBA(image.Rect(0, 0, width+2*margin, len(lines)*lineHt+2*margin))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(fnt)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	pt := freetype.Pt(margin, margin+int(c.PointToFixed(fontSize)>>6))
	for _, l := range lines {
		if _, err := c.DrawString(l, pt); err != nil {
			return fmt.Errorf("drawing %q: %w", l, err)
		}
		pt.Y += c.PointToFixed(fontSize * spacing)
	}
	return png.Encode(w, img)
}
