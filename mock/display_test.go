package mock_test

import (
	"testing"

	"deedles.dev/xraster"
	"deedles.dev/xraster/geom"
	"deedles.dev/xraster/mock"
	"github.com/stretchr/testify/require"
)

func TestIntersectionPattern(t *testing.T) {
	d := mock.Display{AllowOverdraw: true}

	r1 := geom.Rt(geom.Pt(0, 0), geom.Sz(7, 8))
	r2 := geom.Rt(geom.Pt(2, 3), geom.Sz(10, 7))

	xraster.Stroke(&d, r1, 1, xraster.StrokeInside, mock.Off)
	xraster.Stroke(&d, r2, 1, xraster.StrokeInside, mock.Off)
	xraster.Stroke(&d, r1.Intersection(r2), 1, xraster.StrokeInside, mock.On)

	d.AssertPattern(t, []string{
		".......     ",
		".     .     ",
		".     .     ",
		". #####.....",
		". #   #    .",
		". #   #    .",
		". #   #    .",
		"..#####    .",
		"  .        .",
		"  ..........",
	})
}

func TestEnvelopePattern(t *testing.T) {
	d := mock.Display{AllowOverdraw: true}

	r1 := geom.Rt(geom.Pt(0, 0), geom.Sz(7, 8))
	r2 := geom.Rt(geom.Pt(2, 3), geom.Sz(10, 7))

	xraster.Stroke(&d, r1, 1, xraster.StrokeInside, mock.Off)
	xraster.Stroke(&d, r2, 1, xraster.StrokeInside, mock.Off)
	xraster.Stroke(&d, r1.Envelope(r2), 1, xraster.StrokeInside, mock.On)

	d.AssertPattern(t, []string{
		"############",
		"#     .    #",
		"#     .    #",
		"# .........#",
		"# .   .    #",
		"# .   .    #",
		"# .   .    #",
		"#......    #",
		"# .        #",
		"############",
	})
}

func TestOverdrawPanics(t *testing.T) {
	var d mock.Display
	d.SetPixel(geom.Pt(1, 1), mock.On)
	require.Panics(t, func() { d.SetPixel(geom.Pt(1, 1), mock.Off) })

	d.AllowOverdraw = true
	require.NotPanics(t, func() { d.SetPixel(geom.Pt(1, 1), mock.Off) })

	on, drawn := d.Get(geom.Pt(1, 1))
	require.False(t, on)
	require.True(t, drawn)
}

func TestOutOfBounds(t *testing.T) {
	var d mock.Display
	require.Panics(t, func() { d.SetPixel(geom.Pt(mock.Size, 0), mock.On) })
	require.Panics(t, func() { d.SetPixel(geom.Pt(-1, 0), mock.On) })

	d.AllowOutOfBounds = true
	require.NotPanics(t, func() { d.SetPixel(geom.Pt(-1, 0), mock.On) })
	require.Nil(t, d.Pattern())
	require.Equal(t, geom.ZeroRect(), d.AffectedArea())
}
