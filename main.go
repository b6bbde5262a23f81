package main

import (
	"flag"
	"log"

	"github.com/decker502/alienwave/pkg/app"
	"github.com/decker502/alienwave/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag  = flag.String("config", "data/game.yaml", "Game config file (falls back to the embedded copy)")
	assetsFlag  = flag.String("assets", "", "Override the assets base directory")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		AssetsDir:  *assetsFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	cfg := gameApp.Config()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	if !gameApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] Warning: settings not saved on exit")
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
