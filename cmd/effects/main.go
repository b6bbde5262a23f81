// Package main provides an effect viewer for tuning the explosion and
// thruster emitters outside the game.
//
// Usage:
//
//	go run ./cmd/effects [flags]
//
// Flags:
//
//	--config <path>   Game config to read effect settings from (default data/game.yaml)
//	--effect <name>   Start with a specific effect (explosion, ship_explosion, thruster)
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Mouse Click       - Spawn the current effect at the cursor
//	Left/Right Arrow  - Switch effect
//	Space             - Spawn at screen center
//	P                 - Toggle pause
//	R                 - Clear all active effects
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/alienwave/pkg/components"
	"github.com/decker502/alienwave/pkg/config"
	"github.com/decker502/alienwave/pkg/entities"
	"github.com/decker502/alienwave/pkg/game"
	"github.com/decker502/alienwave/pkg/systems"
	"github.com/decker502/alienwave/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"
)

var (
	configFlag  = flag.String("config", config.DefaultConfigPath, "Game config file")
	effectFlag  = flag.String("effect", "", "Start with specific effect name")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var effectNames = []string{"explosion", "ship_explosion", "thruster"}

// EffectViewer implements ebiten.Game for the effect viewer
type EffectViewer struct {
	cfg     *config.GameConfig
	clock   *game.ManualClock
	active  []*systems.Emitter
	current int
	paused  bool
	width   int
	height  int
}

// NewEffectViewer creates a viewer using the effect settings from cfg
func NewEffectViewer(cfg *config.GameConfig) *EffectViewer {
	v := &EffectViewer{
		cfg:    cfg,
		clock:  game.NewManualClock(float64(ebiten.DefaultTPS)),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	for i, name := range effectNames {
		if name == *effectFlag {
			v.current = i
		}
	}
	v.spawn(float64(v.width)/2, float64(v.height)/2)
	return v
}

func (v *EffectViewer) effect(name string) config.EffectConfig {
	fx := v.cfg.Effects
	switch name {
	case "ship_explosion":
		return fx.ShipExplosion
	case "thruster":
		return fx.Thruster
	default:
		return fx.Explosion
	}
}

// spawn 在 (x, y) 处创建当前效果
func (v *EffectViewer) spawn(x, y float64) {
	name := effectNames[v.current]
	e := entities.NewEffectEmitter(name, v.effect(name), v.cfg.Effects.Forces, v.clock)
	e.Position = components.Vec2{X: x, Y: y}
	e.Start()
	v.active = append(v.active, e)
	log.Printf("Spawned %s at (%.0f, %.0f)", name, x, y)
}

// Update implements ebiten.Game
func (v *EffectViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.current = (v.current + len(effectNames) - 1) % len(effectNames)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.current = (v.current + 1) % len(effectNames)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.active = v.active[:0]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.spawn(float64(v.width)/2, float64(v.height)/2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		v.spawn(float64(x), float64(y))
	}

	if v.paused {
		return nil
	}
	v.clock.Step()

	// 一次性效果的粒子全部消失后移除
	kept := v.active[:0]
	for _, e := range v.active {
		e.Update()
		if e.Mode == systems.SpawnOneShot && e.SpawnedTotal() > 0 && e.System().Len() == 0 {
			continue
		}
		kept = append(kept, e)
	}
	v.active = kept
	return nil
}

// Draw implements ebiten.Game
func (v *EffectViewer) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	particles := 0
	for _, e := range v.active {
		e.Draw(screen)
		particles += e.System().Len()
	}

	status := fmt.Sprintf("Effect: %s (%d/%d)\nActive emitters: %d  Particles: %d\nTPS: %.1f",
		effectNames[v.current], v.current+1, len(effectNames), len(v.active), particles, ebiten.ActualTPS())
	if v.paused {
		status += "  [PAUSED]"
	}
	ebitenutil.DebugPrint(screen, status)
	utils.DrawText(screen, "Click/Space spawn  Left/Right switch  P pause  R clear  Q quit",
		10, float64(v.height)-utils.LineHeight-10, colornames.Lightgray)
}

// Layout implements ebiten.Game
func (v *EffectViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func loadConfig(path string) *config.GameConfig {
	cfg, err := config.LoadGameConfigFile(path)
	if err != nil {
		log.Printf("Warning: %v (using built-in defaults)", err)
		return config.DefaultGameConfig()
	}
	return cfg
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	viewer := NewEffectViewer(loadConfig(*configFlag))

	ebiten.SetWindowSize(viewer.width, viewer.height)
	ebiten.SetWindowTitle("Alien Wave - Effect Viewer")
	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
