// Package render produces the summary bitmap regenerated after each refresh.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	imageWidth  = 800
	imageHeight = 600

	marginX     = 10
	statusY     = 10
	refreshY    = 40
	headerY     = 80
	firstLineY  = 110
	lineSpacing = 30

	fontSize = 20
)

// TopCountry is one ranked line on the summary image.
type TopCountry struct {
	Name         string
	EstimatedGDP float64
}

// Summary is everything the image displays. HasStatus false renders the N/A
// placeholders; an empty Top renders the no-countries line.
type Summary struct {
	HasStatus      bool
	TotalCountries int64
	LastRefreshed  *time.Time
	Top            []TopCountry
}

// SummaryRenderer draws Summary values onto a fixed 800x600 white canvas.
type SummaryRenderer struct {
	face    font.Face
	printer *message.Printer
}

// NewSummaryRenderer builds a renderer using the bundled Go Mono face. If the
// face cannot be constructed it falls back to the basic bitmap font, so
// rendering never fails for lack of a font.
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{
		face:    loadFace(),
		printer: message.NewPrinter(language.English),
	}
}

func loadFace() font.Face {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// Render draws the summary and returns the encoded PNG.
func (r *SummaryRenderer) Render(s Summary) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	if s.HasStatus {
		r.drawText(img, marginX, statusY, r.printer.Sprintf("Total Countries: %d", s.TotalCountries))
		r.drawText(img, marginX, refreshY, "Last Refresh: "+formatRefreshTime(s.LastRefreshed))
	} else {
		r.drawText(img, marginX, statusY, "Total Countries: N/A")
		r.drawText(img, marginX, refreshY, "Last Refresh: N/A")
	}

	r.drawText(img, marginX, headerY, "Top 5 Countries by GDP:")

	if len(s.Top) == 0 {
		r.drawText(img, marginX, firstLineY, "- No top countries available.")
	} else {
		y := firstLineY
		for _, tc := range s.Top {
			r.drawText(img, marginX, y, r.printer.Sprintf("- %s: %.2f", tc.Name, tc.EstimatedGDP))
			y += lineSpacing
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawText draws a line with (x, y) as the top-left corner of the text box.
func (r *SummaryRenderer) drawText(img *image.RGBA, x, y int, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: r.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + r.face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

func formatRefreshTime(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02 15:04:05")
}
