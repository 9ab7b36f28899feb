package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/speedrun/besttimes"
	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/session"
)

const controlsHint = "Arrows: Move | Space: Jump (x2) | R: Reset | ESC: Menu"

// label is one line of UI text. X is the left edge, the centre or the
// right edge depending on Align.
type label struct {
	Text  string
	X, Y  float64
	Color color.Color
	Align text.Align
	Title bool
}

// Button is a clickable menu or overlay button. Level is set for main-menu
// buttons; overlay buttons carry their Action instead.
type Button struct {
	Rect   common.Rect
	Text   string
	Color  color.Color
	Level  int
	Action session.Action
}

// Buttons lists the buttons the current phase offers, in layout order.
func Buttons(s *session.Session) []Button {
	switch s.Phase() {
	case session.PhaseMainMenu:
		return levelButtons(s.Config().MaxLevel, s.LevelButton)
	case session.PhaseLevelComplete:
		return optionButtons(s.Options())
	}
	return nil
}

func levelButtons(maxLevel int, buttonFor func(int) common.Rect) []Button {
	buttons := make([]Button, 0, maxLevel)
	for n := 1; n <= maxLevel; n++ {
		buttons = append(buttons, Button{Rect: buttonFor(n), Text: fmt.Sprintf("Level %d", n), Color: playerColor, Level: n})
	}
	return buttons
}

func hudLabels(h session.HUD, width, height float64) []label {
	labels := []label{
		{Text: "Time: " + besttimes.FormatTime(h.Elapsed), X: 10, Y: 10, Color: whiteColor},
		{Text: "Best: " + besttimes.FormatTime(h.Best), X: 10, Y: 40, Color: yellowColor},
		{Text: fmt.Sprintf("Coins: %d/%d", h.Collected, h.TotalCoins), X: 10, Y: 70, Color: yellowColor},
		{Text: fmt.Sprintf("Level %d", h.Level), X: width - 10, Y: 10, Color: whiteColor, Align: text.AlignEnd},
	}
	if h.BoostActive {
		labels = append(labels, label{Text: fmt.Sprintf("Speed Boost: %ds", h.BoostSeconds), X: width - 10, Y: 40, Color: boltColor, Align: text.AlignEnd})
	}
	if h.Message != "" {
		labels = append(labels, label{Text: h.Message, X: width / 2, Y: 100, Color: boltColor, Align: text.AlignCenter})
	}
	return append(labels, label{Text: controlsHint, X: width / 2, Y: height - 30, Color: whiteColor, Align: text.AlignCenter})
}

func menuLabels(store *besttimes.Store, maxLevel int, width float64, buttonFor func(int) common.Rect) []label {
	labels := []label{{Text: "SPEEDRUN CHALLENGE", X: width / 2, Y: 100, Color: yellowColor, Align: text.AlignCenter, Title: true}}
	for n := 1; n <= maxLevel; n++ {
		r := buttonFor(n)
		labels = append(labels, label{
			Text:  "Best: " + besttimes.FormatTime(store.Best(n)),
			X:     r.Center().X,
			Y:     r.Bottom() + 10,
			Color: yellowColor,
			Align: text.AlignCenter,
		})
	}
	labels = append(labels,
		label{Text: "Click a level to begin!", X: width / 2, Y: 500, Color: whiteColor, Align: text.AlignCenter},
		label{Text: "Total Best Time: " + besttimes.FormatTime(store.Total()), X: width / 2, Y: 540, Color: greenColor, Align: text.AlignCenter},
		label{Text: "C: copy best times", X: width / 2, Y: 570, Color: grayColor, Align: text.AlignCenter},
	)
	return labels
}

func levelCompleteLabels(h session.HUD, newRecord bool, width float64) []label {
	labels := []label{
		{Text: fmt.Sprintf("LEVEL %d COMPLETE!", h.Level), X: width / 2, Y: 150, Color: yellowColor, Align: text.AlignCenter, Title: true},
		{Text: "Time: " + besttimes.FormatTime(h.Elapsed), X: width / 2, Y: 220, Color: whiteColor, Align: text.AlignCenter},
		{Text: fmt.Sprintf("Coins: %d/%d", h.Collected, h.TotalCoins), X: width / 2, Y: 260, Color: yellowColor, Align: text.AlignCenter},
	}
	if newRecord {
		labels = append(labels, label{Text: "NEW RECORD!", X: width / 2, Y: 300, Color: greenColor, Align: text.AlignCenter})
	}
	return labels
}

func optionButtons(opts []session.Option) []Button {
	buttons := make([]Button, 0, len(opts))
	for _, o := range opts {
		clr := color.Color(grayColor)
		switch o.Action {
		case session.ActionNext:
			clr = greenColor
		case session.ActionRetry:
			clr = playerColor
		}
		buttons = append(buttons, Button{Rect: o.Rect, Text: o.Action.String(), Color: clr, Action: o.Action})
	}
	return buttons
}

func (r *Renderer) drawHUD(dst *ebiten.Image, h session.HUD) {
	r.drawLabels(dst, hudLabels(h, r.width, r.height))
}

// Buttons themselves are widgets drawn over the renderer's output.
func (r *Renderer) drawMenu(dst *ebiten.Image, s *session.Session) {
	r.drawLabels(dst, menuLabels(s.Store(), s.Config().MaxLevel, r.width, s.LevelButton))
}

func (r *Renderer) drawLevelComplete(dst *ebiten.Image, s *session.Session) {
	fillRect(dst, common.Rect{Width: r.width, Height: r.height}, overlayColor)
	r.drawLabels(dst, levelCompleteLabels(s.HUD(), s.NewRecord(), r.width))
}

func (r *Renderer) drawLabels(dst *ebiten.Image, labels []label) {
	for _, l := range labels {
		face := r.font
		if l.Title {
			face = r.titleFont
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.X, l.Y)
		op.ColorScale.ScaleWithColor(l.Color)
		op.PrimaryAlign = l.Align
		text.Draw(dst, l.Text, face, op)
	}
}
