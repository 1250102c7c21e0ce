package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/xraster/geom"
	"github.com/stretchr/testify/require"
)

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.Rectangle, 4)
	geom.TileRightThenDown(tiles, geom.RectAtOrigin(geom.Sz(100, 80)))
	require.Equal(t, []geom.Rectangle{
		geom.Rt(geom.Pt(0, 0), geom.Sz(50, 80)),
		geom.Rt(geom.Pt(50, 0), geom.Sz(50, 40)),
		geom.Rt(geom.Pt(50, 40), geom.Sz(25, 40)),
		geom.Rt(geom.Pt(75, 40), geom.Sz(25, 40)),
	}, tiles)

	single := slices.Collect(geom.TiledRightThenDown(1, geom.RectAtOrigin(geom.Sz(10, 10))))
	require.Equal(t, []geom.Rectangle{geom.RectAtOrigin(geom.Sz(10, 10))}, single)
	require.Empty(t, slices.Collect(geom.TiledRightThenDown(0, geom.RectAtOrigin(geom.Sz(10, 10)))))
}

func TestTileTwoThirdsSidebar(t *testing.T) {
	tiles := make([]geom.Rectangle, 3)
	geom.TileTwoThirdsSidebar(tiles, geom.Rt(geom.Pt(10, 10), geom.Sz(90, 60)))
	require.Equal(t, []geom.Rectangle{
		geom.Rt(geom.Pt(10, 10), geom.Sz(60, 60)),
		geom.Rt(geom.Pt(70, 10), geom.Sz(30, 30)),
		geom.Rt(geom.Pt(70, 40), geom.Sz(30, 30)),
	}, tiles)
}

func TestTileEven(t *testing.T) {
	r := geom.Rt(geom.Pt(0, 0), geom.Sz(30, 31))

	tiles := make([]geom.Rectangle, 3)
	geom.TileEvenVertically(tiles, r)
	require.Equal(t, []geom.Rectangle{
		geom.Rt(geom.Pt(0, 0), geom.Sz(30, 10)),
		geom.Rt(geom.Pt(0, 10), geom.Sz(30, 10)),
		geom.Rt(geom.Pt(0, 20), geom.Sz(30, 10)),
	}, tiles)

	geom.TileEvenHorizontally(tiles, r)
	require.Equal(t, []geom.Rectangle{
		geom.Rt(geom.Pt(0, 0), geom.Sz(10, 31)),
		geom.Rt(geom.Pt(10, 0), geom.Sz(10, 31)),
		geom.Rt(geom.Pt(20, 0), geom.Sz(10, 31)),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Rectangle, 5)
	geom.TileRows(tiles, geom.RectAtOrigin(geom.Sz(60, 40)), 3)
	require.Equal(t, []geom.Rectangle{
		geom.Rt(geom.Pt(0, 0), geom.Sz(20, 20)),
		geom.Rt(geom.Pt(20, 0), geom.Sz(20, 20)),
		geom.Rt(geom.Pt(40, 0), geom.Sz(20, 20)),
		geom.Rt(geom.Pt(0, 20), geom.Sz(30, 20)),
		geom.Rt(geom.Pt(30, 20), geom.Sz(30, 20)),
	}, tiles)
}

func TestVerticalStack(t *testing.T) {
	var got []geom.Rectangle
	for r := range geom.VerticalStack(geom.Rt(geom.Pt(5, 5), geom.Sz(10, 4))) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []geom.Rectangle{
		geom.Rt(geom.Pt(5, 5), geom.Sz(10, 4)),
		geom.Rt(geom.Pt(5, 9), geom.Sz(10, 4)),
		geom.Rt(geom.Pt(5, 13), geom.Sz(10, 4)),
	}, got)
}

func TestArrangeVerticalStack(t *testing.T) {
	rects := []geom.Rectangle{
		geom.Rt(geom.Pt(2, 3), geom.Sz(5, 2)),
		geom.Rt(geom.Pt(50, 50), geom.Sz(8, 3)),
		geom.Rt(geom.Pt(0, 0), geom.Sz(1, 4)),
	}
	geom.ArrangeVerticalStack(rects)
	require.Equal(t, []geom.Rectangle{
		geom.Rt(geom.Pt(2, 3), geom.Sz(8, 2)),
		geom.Rt(geom.Pt(2, 5), geom.Sz(8, 3)),
		geom.Rt(geom.Pt(2, 8), geom.Sz(8, 4)),
	}, rects)
}

func TestAlign(t *testing.T) {
	outer := geom.Rt(geom.Pt(0, 0), geom.Sz(20, 10))
	inner := geom.Rt(geom.Pt(100, 100), geom.Sz(4, 4))

	require.Equal(t, geom.Rt(geom.Pt(0, 0), geom.Sz(4, 4)), geom.Align(outer, inner, geom.TopLeft))
	require.Equal(t, geom.Rt(geom.Pt(16, 6), geom.Sz(4, 4)), geom.Align(outer, inner, geom.BottomRight))
	require.Equal(t, geom.Rt(geom.Pt(8, 3), geom.Sz(4, 4)), geom.Align(outer, inner, geom.Center))
	require.Equal(t, geom.Rt(geom.Pt(0, 3), geom.Sz(4, 4)), geom.Align(outer, inner, geom.CenterLeft))
}
