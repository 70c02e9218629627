// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析命令行参数和启动主循环。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/pvcovid/pkg/config"
	"github.com/decker502/pvcovid/pkg/game"
	"github.com/decker502/pvcovid/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultManifestPath 资源清单的默认路径
const DefaultManifestPath = "assets/config/resources.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ResourcesDir 图片资源目录，为空时使用资源清单中的 base_path
	ResourcesDir string
	// ManifestPath 资源清单路径，为空时使用 DefaultManifestPath
	ManifestPath string
	// Fullscreen 以全屏模式启动（同时写入用户设置）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 所有图片在此一次性加载，任何图片缺失或无法解码都会返回错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 创建资源管理器
	resourceManager := game.NewResourceManager()

	manifestPath := cfg.ManifestPath
	if manifestPath == "" {
		manifestPath = DefaultManifestPath
	}
	if err := resourceManager.LoadResourceConfig(manifestPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if cfg.ResourcesDir != "" {
		resourceManager.SetBasePath(cfg.ResourcesDir)
	}

	if err := resourceManager.LoadAll(); err != nil {
		return nil, fmt.Errorf("图片资源加载失败: %w", err)
	}
	log.Printf("[App] 图片资源加载完成: %s", resourceManager.BasePath())

	// 用户设置（gdata 不可用时降级为内存设置）
	settingsManager := game.NewSettingsManager(game.OpenSettingsStorage(game.SettingsAppName))
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(resourceManager, settingsManager))

	log.Printf("[App] 初始化完成 (fullscreen=%v, persistent settings=%v)",
		settingsManager.GetSettings().Fullscreen, settingsManager.IsPersistent())

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次），步长固定
func (a *App) Update() error {
	// 窗口关闭时先让场景保存设置
	if ebiten.IsWindowBeingClosed() {
		return a.handleWindowClose()
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F3 切换调试信息
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		enabled := a.settingsManager.ToggleDebug()
		log.Printf("[App] Debug overlay: %v", enabled)
	}

	a.sceneManager.Update()
	return nil
}

// handleWindowClose 通知场景窗口即将关闭，然后结束主循环
// 场景保存失败只记录日志，窗口总是可以关闭
func (a *App) handleWindowClose() error {
	if !a.sceneManager.Close() {
		log.Printf("[App] Scene failed to save on close, exiting anyway")
	}
	log.Printf("[App] Window closed")
	return ebiten.Termination
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}

	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Settings 返回用户设置
func (a *App) Settings() *game.GameSettings {
	return a.settingsManager.GetSettings()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
