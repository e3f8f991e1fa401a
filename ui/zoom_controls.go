package ui

import (
	"bytes"
	stdimage "image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ZoomControls is the on-screen zoom overlay: zoom in, zoom out and reset
// buttons at the bottom right, and the scheme name above them.
type ZoomControls struct {
	UI *ebitenui.UI

	OnZoomIn     func()
	OnZoomOut    func()
	OnReset      func()
	OnNextScheme func()

	panel       *widget.Container
	schemeLabel *widget.Label

	buttonFace text.Face
	labelFace  text.Face
}

func NewZoomControls(onZoomIn, onZoomOut, onReset, onNextScheme func()) (*ZoomControls, error) {
	zc := &ZoomControls{
		OnZoomIn:     onZoomIn,
		OnZoomOut:    onZoomOut,
		OnReset:      onReset,
		OnNextScheme: onNextScheme,
	}
	if err := zc.loadFonts(); err != nil {
		return nil, err
	}
	zc.buildUI()
	return zc, nil
}

func (zc *ZoomControls) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	zc.buttonFace = &text.GoTextFace{Source: fontSource, Size: 20}
	zc.labelFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (zc *ZoomControls) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(12)),
		)),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 6, Right: 6}
	zc.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 180})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	zc.schemeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &zc.labelFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	zc.panel.AddChild(zc.schemeLabel)

	zc.panel.AddChild(zc.button("+", 44, zc.zoomIn))
	zc.panel.AddChild(zc.button("−", 44, zc.zoomOut))
	zc.panel.AddChild(zc.smallButton("reset", zc.reset))
	zc.panel.AddChild(zc.smallButton("next", zc.nextScheme))

	rootContainer.AddChild(zc.panel)
	zc.UI = &ebitenui.UI{Container: rootContainer}
}

func (zc *ZoomControls) button(label string, size int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(size, size)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 110, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &zc.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 230, 150, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (zc *ZoomControls) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(44, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{70, 70, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 30, 50, 255}),
		}),
		widget.ButtonOpts.Text(label, &zc.labelFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 220, 220, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{180, 180, 180, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (zc *ZoomControls) zoomIn() {
	if zc.OnZoomIn != nil {
		zc.OnZoomIn()
	}
}

func (zc *ZoomControls) zoomOut() {
	if zc.OnZoomOut != nil {
		zc.OnZoomOut()
	}
}

func (zc *ZoomControls) reset() {
	if zc.OnReset != nil {
		zc.OnReset()
	}
}

func (zc *ZoomControls) nextScheme() {
	if zc.OnNextScheme != nil {
		zc.OnNextScheme()
	}
}

// SetScheme updates the scheme label.
func (zc *ZoomControls) SetScheme(name string) {
	zc.schemeLabel.Label = name
}

// Contains reports whether a screen point is over the control panel.
func (zc *ZoomControls) Contains(x, y int) bool {
	return stdimage.Pt(x, y).In(zc.panel.GetWidget().Rect)
}
