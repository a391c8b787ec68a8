//go:build ignore

package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	// A 32x48 transparent sprite with a crude figure in the middle:
	// a head, a body and two legs, leaving gaps the outline has to follow.
	width, height := 32, 48
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	skin := color.NRGBA{240, 200, 160, 255}
	shirt := color.NRGBA{40, 90, 200, 255}
	trousers := color.NRGBA{60, 60, 60, 255}

	draw.Draw(img, image.Rect(12, 4, 20, 12), &image.Uniform{skin}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(9, 12, 23, 28), &image.Uniform{shirt}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(10, 28, 15, 44), &image.Uniform{trousers}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(17, 28, 22, 44), &image.Uniform{trousers}, image.Point{}, draw.Src)

	out := filepath.Join("..", "assets", "human.png")
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		panic(err)
	}

	f, err := os.Create(out)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}
