package xraster_test

import (
	"image/color"
	"testing"

	"deedles.dev/xraster"
	"deedles.dev/xraster/format"
	"deedles.dev/xraster/geom"
	"deedles.dev/xraster/mock"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	var d mock.Display
	xraster.Fill(&d, geom.Rt(geom.Pt(1, 1), geom.Sz(3, 2)), mock.On)
	d.AssertPattern(t, []string{
		"    ",
		" ###",
		" ###",
	})
}

func TestFillClipped(t *testing.T) {
	var d mock.Display
	xraster.Fill(&d, geom.Rt(geom.Pt(-5, 62), geom.Sz(7, 10)), mock.On)
	require.Equal(t, geom.Rt(geom.Pt(0, 62), geom.Sz(2, 2)), d.AffectedArea())
}

func TestFillUsesRectFiller(t *testing.T) {
	img := format.NewImage(format.Gray8, geom.RectAtOrigin(geom.Sz(3, 2)))
	xraster.Fill(img, geom.Rt(geom.Pt(1, 0), geom.Sz(5, 5)), color.White)
	require.Equal(t, []byte{0, 0xFF, 0xFF, 0, 0xFF, 0xFF}, img.Pix)
}

func TestDraw(t *testing.T) {
	var d mock.Display
	xraster.Draw(&d, geom.Rt(geom.Pt(2, 0), geom.Sz(2, 2)), mock.Off)
	d.AssertPattern(t, []string{
		"  ..",
		"  ..",
	})

	var none mock.Display
	xraster.Draw(&none, geom.Rt(geom.Pt(100, 100), geom.Sz(2, 2)), mock.On)
	require.Nil(t, none.Pattern())
}

func TestStroke(t *testing.T) {
	var d mock.Display
	xraster.Stroke(&d, geom.Rt(geom.Pt(0, 0), geom.Sz(5, 4)), 1, xraster.StrokeInside, mock.On)
	d.AssertPattern(t, []string{
		"#####",
		"#   #",
		"#   #",
		"#####",
	})
}

func TestStrokeWide(t *testing.T) {
	var d mock.Display
	xraster.Stroke(&d, geom.Rt(geom.Pt(2, 2), geom.Sz(3, 3)), 2, xraster.StrokeOutside, mock.On)
	d.AssertPattern(t, []string{
		"#######",
		"#######",
		"##   ##",
		"##   ##",
		"##   ##",
		"#######",
		"#######",
	})

	var full mock.Display
	xraster.Stroke(&full, geom.Rt(geom.Pt(0, 0), geom.Sz(3, 3)), 2, xraster.StrokeInside, mock.Off)
	full.AssertPattern(t, []string{
		"...",
		"...",
		"...",
	})
}

func TestStrokeBounds(t *testing.T) {
	r := geom.Rt(geom.Pt(10, 10), geom.Sz(5, 5))
	require.Equal(t, r, xraster.StrokeBounds(r, 3, xraster.StrokeInside))
	require.Equal(t, geom.Rt(geom.Pt(9, 9), geom.Sz(7, 7)), xraster.StrokeBounds(r, 3, xraster.StrokeCenter))
	require.Equal(t, geom.Rt(geom.Pt(7, 7), geom.Sz(11, 11)), xraster.StrokeBounds(r, 3, xraster.StrokeOutside))
}
