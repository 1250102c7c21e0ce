// Package xraster draws shapes built on top of the integer geometry in
// the geom package onto anything that can set individual pixels.
//
// The geometry itself lives in geom. This package only ties it to
// pixels: a DrawTarget provides its drawable area as a geom.Rectangle
// and accepts pixel writes, and the functions here enumerate the
// points of a shape, clip them to that area, and write them. The
// format package provides an in-memory DrawTarget with a choice of
// pixel formats, and the mock package provides one for tests.
package xraster
