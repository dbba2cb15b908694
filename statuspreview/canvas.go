package main

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// canvas is a drivers.Displayer backed by an image, so the status bar can
// be rendered on a host.
type canvas struct {
	img *image.RGBA
}

func newCanvas(width, height int16) *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, int(width), int(height)))}
}

func (c *canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

// Display is a no-op; the image is always current.
func (c *canvas) Display() error {
	return nil
}

func (c *canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height))
	if !r.In(c.img.Bounds()) {
		return errors.New("rectangle outside canvas")
	}
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
	return nil
}
