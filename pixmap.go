package curveart

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// circleKappa is the control point distance for approximating a quarter
// circle with one cubic Bezier.
const circleKappa = 0.5522847498307936

// Pixmap represents a rectangular pixel buffer with premultiplied RGBA
// pixels. It implements Canvas and SegmentCanvas.
//
// A Pixmap is not safe for concurrent use.
type Pixmap struct {
	img *image.RGBA
	z   *vector.Rasterizer // reused across fills
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA, 4 bytes per pixel).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return
	}
	p.img.SetRGBA(x, y, c.premultiplied())
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	pc := c.premultiplied()
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = pc.R
		pix[i+1] = pc.G
		pix[i+2] = pc.B
		pix[i+3] = pc.A
	}
}

// FillPolygon fills the closed polygon through points with c, compositing
// over the existing pixels. Fewer than three points draw nothing.
func (p *Pixmap) FillPolygon(points []Point, c RGBA) {
	if len(points) < 3 {
		return
	}
	minP, maxP := points[0], points[0]
	for _, pt := range points {
		if !pt.IsFinite() {
			return
		}
		minP = Point{X: math.Min(minP.X, pt.X), Y: math.Min(minP.Y, pt.Y)}
		maxP = Point{X: math.Max(maxP.X, pt.X), Y: math.Max(maxP.Y, pt.Y)}
	}

	z, r, ok := p.rasterizer(minP, maxP)
	if !ok {
		return
	}
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	z.MoveTo(float32(points[0].X-ox), float32(points[0].Y-oy))
	for _, pt := range points[1:] {
		z.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
	}
	z.ClosePath()
	p.composite(z, r, c)
}

// FillCircle fills the disc of the given radius around center with c.
func (p *Pixmap) FillCircle(center Point, radius float64, c RGBA) {
	if radius <= 0 || !center.IsFinite() || math.IsInf(radius, 0) {
		return
	}
	z, r, ok := p.rasterizer(
		Point{X: center.X - radius, Y: center.Y - radius},
		Point{X: center.X + radius, Y: center.Y + radius},
	)
	if !ok {
		return
	}
	cx := float32(center.X - float64(r.Min.X))
	cy := float32(center.Y - float64(r.Min.Y))
	rr := float32(radius)
	k := float32(circleKappa) * rr

	z.MoveTo(cx+rr, cy)
	z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	z.ClosePath()
	p.composite(z, r, c)
}

// DrawAntialiasedSegment draws a one pixel wide antialiased line from p1
// to p2. A zero-length segment draws a single pixel-sized dot.
func (p *Pixmap) DrawAntialiasedSegment(p1, p2 Point, c RGBA) {
	d := Distance(p1, p2)
	if d == 0 {
		h := Point{X: 0.5, Y: 0.5}
		p.FillPolygon([]Point{
			p1.Sub(h), {X: p1.X + 0.5, Y: p1.Y - 0.5}, p1.Add(h), {X: p1.X - 0.5, Y: p1.Y + 0.5},
		}, c)
		return
	}
	o := Point{X: -(p2.Y - p1.Y) / d, Y: (p2.X - p1.X) / d}.Mul(0.5)
	p.FillPolygon([]Point{p1.Sub(o), p1.Add(o), p2.Add(o), p2.Sub(o)}, c)
}

// rasterizer returns the shared rasterizer reset to the canvas area
// covered by the box [minP, maxP], and that area. ok is false when the box
// lies outside the canvas.
func (p *Pixmap) rasterizer(minP, maxP Point) (z *vector.Rasterizer, r image.Rectangle, ok bool) {
	b := p.img.Rect
	x0 := math.Max(math.Floor(minP.X), float64(b.Min.X))
	y0 := math.Max(math.Floor(minP.Y), float64(b.Min.Y))
	x1 := math.Min(math.Ceil(maxP.X), float64(b.Max.X))
	y1 := math.Min(math.Ceil(maxP.Y), float64(b.Max.Y))
	if x1 <= x0 || y1 <= y0 {
		return nil, image.Rectangle{}, false
	}
	r = image.Rect(int(x0), int(y0), int(x1), int(y1))

	if p.z == nil {
		p.z = vector.NewRasterizer(r.Dx(), r.Dy())
	} else {
		p.z.Reset(r.Dx(), r.Dy())
	}
	return p.z, r, true
}

func (p *Pixmap) composite(z *vector.Rasterizer, r image.Rectangle, c RGBA) {
	z.DrawOp = xdraw.Over
	z.Draw(p.img, r, image.NewUniform(c.premultiplied()), image.Point{})
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// Thumbnail returns a copy scaled so that its longer side is maxSide
// pixels, preserving the aspect ratio. The pixmap is returned unscaled when
// it already fits.
func (p *Pixmap) Thumbnail(maxSide int) *image.RGBA {
	w, h := p.Width(), p.Height()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return p.ToImage()
	}
	tw, th := maxSide, maxSide
	if w >= h {
		th = max(1, h*maxSide/w)
	} else {
		tw = max(1, w*maxSide/h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Rect, p.img, p.img.Rect, xdraw.Src, nil)
	return dst
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return savePNG(path, p.img)
}

// SaveThumbnailPNG saves Thumbnail(maxSide) to a PNG file.
func (p *Pixmap) SaveThumbnailPNG(path string, maxSide int) error {
	return savePNG(path, p.Thumbnail(maxSide))
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
