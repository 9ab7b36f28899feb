// Package render draws a game session onto an ebiten screen. It reads the
// session's world and HUD snapshot and never mutates either.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/speedrun/session"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 40, A: 255}
	grayColor       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	playerColor     = color.RGBA{B: 255, A: 255}
	eyeColor        = color.RGBA{G: 255, B: 255, A: 255}
	boltColor       = color.RGBA{G: 255, B: 255, A: 255}
	glowColor       = color.RGBA{G: 100, B: 100, A: 100}
	overlayColor    = color.RGBA{A: 180}
	hazardColor     = color.RGBA{R: 255, A: 255}
	greenColor      = color.RGBA{G: 255, A: 255}
	yellowColor     = color.RGBA{R: 255, G: 255, A: 255}
	orangeColor     = colornames.Orange
	whiteColor      = colornames.White
)

// Context is the per-frame drawing target.
type Context struct {
	Screen *ebiten.Image
}

type Renderer struct {
	width  float64
	height float64

	font      text.Face
	titleFont text.Face

	stars []Star
}

type Options struct {
	ScreenWidth  float64
	ScreenHeight float64
	StarCount    int
	StarSeed     int64
}

func NewRenderer(opts Options) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}

	return &Renderer{
		width:     opts.ScreenWidth,
		height:    opts.ScreenHeight,
		font:      &text.GoTextFace{Source: src, Size: 24},
		titleFont: &text.GoTextFace{Source: src, Size: 48},
		stars:     NewStarfield(opts.StarCount, opts.StarSeed, opts.ScreenWidth, opts.ScreenHeight),
	}, nil
}

// Font is the body face, shared with the button widgets.
func (r *Renderer) Font() text.Face { return r.font }

func (r *Renderer) Draw(ctx Context, s *session.Session) {
	if r == nil || ctx.Screen == nil || s == nil {
		return
	}
	dst := ctx.Screen

	r.drawBackground(dst)

	switch s.Phase() {
	case session.PhaseMainMenu:
		r.drawMenu(dst, s)
	case session.PhasePlaying:
		r.drawWorld(dst, s)
		r.drawHUD(dst, s.HUD())
	case session.PhaseLevelComplete:
		r.drawWorld(dst, s)
		r.drawLevelComplete(dst, s)
	}
}
