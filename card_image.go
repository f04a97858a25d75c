package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// cardImage is a custom widget that renders a card face and reports taps.
// Unplayable cards are drawn dimmed so the human can see the legal-play set
// at a glance.
type cardImage struct {
	widget.BaseWidget
	Resource fyne.Resource
	Dimmed   bool
	minSize  fyne.Size
	onTapped func()
}

// newCardImage creates a card-sized tappable image. A nil handler makes the
// widget display-only.
func newCardImage(onTapped func()) *cardImage {
	img := &cardImage{
		minSize:  fyne.NewSize(75, 99),
		onTapped: onTapped,
	}
	img.ExtendBaseWidget(img)
	return img
}

// CreateRenderer is a mandatory part of the Widget interface.
func (c *cardImage) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromResource(c.Resource)
	img.FillMode = canvas.ImageFillContain
	return &cardImageRenderer{
		image:  img,
		widget: c,
	}
}

// Tapped is called when the user taps the widget.
func (c *cardImage) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil && !c.Dimmed {
		c.onTapped()
	}
}

type cardImageRenderer struct {
	image  *canvas.Image
	widget *cardImage
}

func (r *cardImageRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
}

func (r *cardImageRenderer) MinSize() fyne.Size {
	return r.widget.minSize
}

func (r *cardImageRenderer) Refresh() {
	r.image.Resource = r.widget.Resource
	switch {
	case r.widget.Resource == nil:
		r.image.Image = nil
		r.image.Translucency = 1.0 // Fully transparent.
	case r.widget.Dimmed:
		r.image.Translucency = 0.55
	default:
		r.image.Translucency = 0.0
	}
	r.image.Refresh()
	canvas.Refresh(r.image)
}

func (r *cardImageRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *cardImageRenderer) Destroy() {}
