package main

import (
	"image"
	"image/color"

	"github.com/samber/lo"
)

// outlineColor is painted on transparent pixels touching a colored one.
var outlineColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// neighbours are the 4-connected offsets: up, down, left, right.
// Diagonals are deliberately absent.
var neighbours = []image.Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// isColored reports whether a pixel is visible at all.
func isColored(c color.NRGBA) bool {
	return c.A != 0
}

// hasColoredNeighbour checks the 4-connected neighbours of p in src.
// Positions outside the image count as not colored.
func hasColoredNeighbour(src *image.NRGBA, p image.Point) bool {
	bounds := src.Bounds()
	return lo.SomeBy(neighbours, func(d image.Point) bool {
		q := p.Add(d)
		return q.In(bounds) && isColored(src.NRGBAAt(q.X, q.Y))
	})
}

// outline builds the selection image of src. Colored pixels are copied,
// transparent pixels next to a colored one become opaque black and the rest
// stay transparent. Decisions only read src, so the scan order does not
// matter and src is left untouched.
func outline(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			switch {
			case isColored(c):
				dst.SetNRGBA(x, y, c)
			case hasColoredNeighbour(src, image.Pt(x, y)):
				dst.SetNRGBA(x, y, outlineColor)
			}
		}
	}
	return dst
}
