// Package icon draws the placeholder extension icon: a white cross on a
// dark-green square with a darker-green border.
package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	// Background fills the whole canvas first.
	Background = color.RGBA{R: 46, G: 125, B: 50, A: 255}

	// Cross is the color of both bars of the plus sign.
	Cross = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Border is the outline drawn last, along every edge.
	Border = color.RGBA{R: 27, G: 94, B: 32, A: 255}
)

// Layout is the geometry derived from a canvas size.
type Layout struct {
	Size        int
	Margin      int
	Thickness   int
	BorderWidth int
}

// NewLayout computes margins and thicknesses for size using integer
// division. The border is never thinner than one pixel.
func NewLayout(size int) Layout {
	return Layout{
		Size:        size,
		Margin:      size / 4,
		Thickness:   size / 6,
		BorderWidth: max(1, size/32),
	}
}

// HorizontalBar returns the horizontal arm of the cross. Both end rows and
// columns are painted, so the rectangle max is one past the last pixel.
func (l Layout) HorizontalBar() image.Rectangle {
	mid, half := l.Size/2, l.Thickness/2
	return image.Rect(l.Margin, mid-half, l.Size-l.Margin+1, mid+half+1)
}

// VerticalBar returns the vertical arm of the cross.
func (l Layout) VerticalBar() image.Rectangle {
	mid, half := l.Size/2, l.Thickness/2
	return image.Rect(mid-half, l.Margin, mid+half+1, l.Size-l.Margin+1)
}

// BorderStrips returns the top, bottom, left and right edges of the outline.
func (l Layout) BorderStrips() []image.Rectangle {
	s, w := l.Size, l.BorderWidth
	return []image.Rectangle{
		image.Rect(0, 0, s, w),
		image.Rect(0, s-w, s, s),
		image.Rect(0, 0, w, s),
		image.Rect(s-w, 0, s, s),
	}
}

// Draw renders a size×size icon. size must be positive.
func Draw(size int) *image.RGBA {
	l := NewLayout(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	fill(img, img.Bounds(), Background)
	fill(img, l.HorizontalBar(), Cross)
	fill(img, l.VerticalBar(), Cross)
	for _, r := range l.BorderStrips() {
		fill(img, r, Border)
	}
	return img
}

// fill paints r (clipped to img) with a solid color.
func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}
