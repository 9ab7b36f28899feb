package main

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/speedrun/levels"
	"github.com/milk9111/speedrun/prefabs"
	"github.com/milk9111/speedrun/render"
	"github.com/milk9111/speedrun/session"
)

type Game struct {
	spec     prefabs.GameSpec
	session  *session.Session
	renderer *render.Renderer
	menu     *menuUI
	watcher  *prefabs.Watcher
}

func NewGame(spec prefabs.GameSpec, s *session.Session) (*Game, error) {
	renderer, err := render.NewRenderer(render.Options{
		ScreenWidth:  float64(spec.ScreenWidth),
		ScreenHeight: float64(spec.ScreenHeight),
		StarCount:    spec.StarCount,
		StarSeed:     spec.StarSeed,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:     spec,
		session:  s,
		renderer: renderer,
		menu:     newMenuUI(s, renderer.Font()),
	}

	// Only directories present next to the binary override embedded data,
	// so only those are worth watching.
	if dirs := prefabs.ExistingDirs(levels.Dir, prefabs.Dir, filepath.FromSlash(prefabs.ScriptsDir)); len(dirs) > 0 {
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.hotReload()

	if g.session.Phase() == session.PhaseMainMenu && copyPressed() {
		copyText(g.session.Store().Summary(g.spec.Title))
	}

	g.menu.Update()

	if err := g.session.Update(pollInput()); err != nil {
		if errors.Is(err, session.ErrQuit) {
			return ebiten.Termination
		}
		log.Printf("session: %v", err)
	}
	return nil
}

func (g *Game) hotReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("watcher: %v", err)
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	log.Printf("reloading after change to %v", changed)
	if err := g.session.Reload(); err != nil {
		log.Printf("reload failed: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(render.Context{Screen: screen}, g.session)
	g.menu.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.ScreenWidth, g.spec.ScreenHeight
}
