package main

import (
	"log"
	"os"

	"github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/fonts"
	"github.com/automoto/viewmodel/scenes"
	"github.com/automoto/viewmodel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load HUD fonts: %v", err)
	}

	return &Game{
		scene: scenes.NewViewmodelScene(os.DirFS("."), saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("viewmodel sandbox")
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	systems.ApplySavedSettingsGlobal(saved)

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatalf("viewmodel sandbox: %v", err)
	}
}
