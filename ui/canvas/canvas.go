// Package canvas provides titled image panes for side-by-side previews.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ImagePane shows an image under a title, in a fixed-size square area.
type ImagePane struct {
	title  *widget.Label
	image  *fynecanvas.Image
	box    *fyne.Container
	source image.Image
}

// NewImagePane creates a pane whose image area is size x size.
func NewImagePane(title string, size float32) *ImagePane {
	p := &ImagePane{
		title: widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		image: fynecanvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1))),
	}
	p.image.FillMode = fynecanvas.ImageFillContain
	p.image.ScaleMode = fynecanvas.ImageScaleSmooth
	p.image.SetMinSize(fyne.NewSize(size, size))

	p.box = container.NewBorder(p.title, nil, nil, nil, p.image)
	return p
}

// SetImage replaces the displayed image.
func (p *ImagePane) SetImage(img image.Image) {
	p.source = img
	p.image.Image = img
	p.image.Refresh()
}

// Image returns the currently displayed image.
func (p *ImagePane) Image() image.Image {
	return p.source
}

// Title returns the pane heading.
func (p *ImagePane) Title() string {
	return p.title.Text
}

// Container returns the pane's canvas object for layout.
func (p *ImagePane) Container() fyne.CanvasObject {
	return p.box
}
