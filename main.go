package main

import (
	"flag"
	"log"

	"github.com/decker502/pvcovid/pkg/app"
	"github.com/decker502/pvcovid/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	resourcesDir := flag.String("resources", "", "图片资源目录（默认使用资源清单中的 base_path）")
	manifest := flag.String("manifest", app.DefaultManifestPath, "资源清单路径")
	fullscreen := flag.Bool("fullscreen", false, "以全屏模式启动")
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ResourcesDir: *resourcesDir,
		ManifestPath: *manifest,
		Fullscreen:   *fullscreen,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(gameApp.Settings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
