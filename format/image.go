package format

import (
	"image"
	"image/color"

	"deedles.dev/xraster/geom"
)

// Model implements color.Model using a Format.
type Model struct {
	Format Format
}

func (m Model) Convert(c color.Color) color.Color {
	fc := Color{Format: m.Format}
	r, g, b, a := c.RGBA()
	m.Format.Write(fc.Slice(), r, g, b, a)
	return &fc
}

// Color implements color.Color using a Format.
type Color struct {
	Format Format

	// Data contains the pixel data for the color. Only some bytes of
	// the array are used, dependant on the return value of Format.Size.
	Data [8]byte
}

// Slice returns a slice of Data correctly sized for the color's format.
func (c *Color) Slice() []byte {
	size := c.Format.Size()
	return c.slice(size)
}

func (c *Color) slice(size int) []byte {
	return c.Data[:size:size]
}

func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.Format.Read(c.Slice())
}

// Image is an image with a color format defined by Format. Besides
// implementing draw.Image, it can be drawn to through the geom
// types and is a valid xraster.DrawTarget.
type Image struct {
	Format Format
	Rect   image.Rectangle
	Pix    []byte
}

// NewImage allocates an image covering r in the given format.
func NewImage(f Format, r geom.Rectangle) *Image {
	return &Image{
		Format: f,
		Rect:   r.ImageRect(),
		Pix:    make([]byte, r.Size.Area()*uint64(f.Size())),
	}
}

func (img *Image) Bounds() image.Rectangle { return img.Rect }

// BoundingBox returns the bounds of the image as a geom.Rectangle.
func (img *Image) BoundingBox() geom.Rectangle {
	return geom.FromImageRect(img.Rect)
}

func (img *Image) ColorModel() color.Model { return Model{Format: img.Format} }

func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Rect)) {
		return &Color{Format: img.Format}
	}

	size := img.Format.Size()
	c := Color{Format: img.Format}

	i := img.pixOffset(x, y, img.stride(size), size)
	s := img.Pix[i : i+size : i+size]
	copy(c.slice(size), s)

	return &c
}

func (img *Image) Stride() int {
	return img.stride(img.Format.Size())
}

func (img *Image) stride(size int) int {
	return size * img.Rect.Dx()
}

func (img *Image) PixOffset(x, y int) int {
	return img.pixOffset(x, y, img.Stride(), img.Format.Size())
}

func (img *Image) pixOffset(x, y, stride, size int) int {
	x -= img.Rect.Min.X
	y -= img.Rect.Min.Y
	return (stride * y) + (x * size)
}

// convert returns the raw pixel data for c in the image's format.
func (img *Image) convert(c color.Color, size int) []byte {
	if fc, ok := c.(*Color); ok && fc.Format == img.Format {
		return fc.slice(size)
	}
	return img.ColorModel().Convert(c).(*Color).slice(size)
}

func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}

	size := img.Format.Size()
	i := img.pixOffset(x, y, img.stride(size), size)
	s := img.Pix[i : i+size : i+size]
	copy(s, img.convert(c, size))
}

// SetPixel sets the pixel at p. Pixels outside of the image are
// ignored.
func (img *Image) SetPixel(p geom.Point, c color.Color) {
	img.Set(int(p.X), int(p.Y), c)
}

// FillRect sets every pixel of r that lies within the image to c. It
// converts c only once and copies whole rows at a time.
func (img *Image) FillRect(r geom.Rectangle, c color.Color) {
	r = r.Intersection(img.BoundingBox())
	if r.IsZeroSized() {
		return
	}

	size := img.Format.Size()
	stride := img.stride(size)
	px := img.convert(c, size)

	cols := r.Columns()
	for y := range r.Rows().All() {
		i := img.pixOffset(int(cols.Start), int(y), stride, size)
		row := img.Pix[i : i+int(cols.Len())*size]
		for len(row) > 0 {
			row = row[copy(row, px):]
		}
	}
}
