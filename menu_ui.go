package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/render"
	"github.com/milk9111/speedrun/session"
)

// menuUI holds the clickable widgets of the main menu and the level-complete
// overlay. The widget tree is rebuilt whenever the offered buttons change.
type menuUI struct {
	session *session.Session
	face    ebtext.Face

	ui  *ebitenui.UI
	key string
}

func newMenuUI(s *session.Session, face ebtext.Face) *menuUI {
	return &menuUI{session: s, face: face}
}

func (m *menuUI) Update() {
	buttons := render.Buttons(m.session)
	if len(buttons) == 0 {
		m.ui, m.key = nil, ""
		return
	}
	if key := buttonsKey(buttons); key != m.key || m.ui == nil {
		m.ui = m.build(buttons)
		m.key = key
	}
	m.ui.Update()
}

func (m *menuUI) Draw(screen *ebiten.Image) {
	if m.ui != nil {
		m.ui.Draw(screen)
	}
}

func (m *menuUI) build(buttons []render.Button) *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(fixedLayout{}))
	textColor := &widget.ButtonTextColor{Idle: color.White}

	for _, b := range buttons {
		base := color.RGBAModel.Convert(b.Color).(color.RGBA)
		img := &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(base),
			Hover:   imageui.NewNineSliceColor(common.Brighten(base, 40)),
			Pressed: imageui.NewNineSliceColor(common.Brighten(base, 80)),
		}
		root.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(img),
			widget.ButtonOpts.Text(b.Text, &m.face, textColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widgetRect(b.Rect))),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if err := press(m.session, b); err != nil {
					log.Printf("menu: %s: %v", b.Text, err)
				}
			}),
		))
	}

	return &ebitenui.UI{Container: root}
}

// press performs the session transition a button stands for.
func press(s *session.Session, b render.Button) error {
	if b.Level > 0 {
		return s.SelectLevel(b.Level)
	}
	return s.Choose(b.Action)
}

func buttonsKey(buttons []render.Button) string {
	key := ""
	for _, b := range buttons {
		key += fmt.Sprintf("%s@%v,%v;", b.Text, b.Rect.X, b.Rect.Y)
	}
	return key
}

func widgetRect(r common.Rect) image.Rectangle {
	return image.Rect(int(r.Left()), int(r.Top()), int(r.Right()), int(r.Bottom()))
}

// fixedLayout places each child at the image.Rectangle stored in its
// LayoutData, relative to the container.
type fixedLayout struct{}

func (fixedLayout) PreferredSize(widgets []widget.PreferredSizeLocateableWidget) (int, int) {
	var bounds image.Rectangle
	for _, w := range widgets {
		if r, ok := w.GetWidget().LayoutData.(image.Rectangle); ok {
			bounds = bounds.Union(r)
		}
	}
	return bounds.Max.X, bounds.Max.Y
}

func (fixedLayout) Layout(widgets []widget.PreferredSizeLocateableWidget, rect image.Rectangle) {
	for _, w := range widgets {
		if r, ok := w.GetWidget().LayoutData.(image.Rectangle); ok {
			w.SetLocation(r.Add(rect.Min))
		}
	}
}
