// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析参数和启动循环。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/alienwave/pkg/config"
	"github.com/decker502/alienwave/pkg/game"
	"github.com/decker502/alienwave/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

// 存储目录名与音频采样率
const (
	storageAppName = "alienwave"
	sampleRate     = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空使用 config.DefaultConfigPath
	ConfigPath string
	// AssetsDir 覆盖配置中的资源根目录
	AssetsDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.GameConfig
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool

	wasFullscreen            bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath
	}
	gameConfig, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	audioContext := audio.NewContext(sampleRate)
	resourceManager := game.NewResourceManager(audioContext)
	resourceManager.SetAssets(gameConfig.Assets, cfg.AssetsDir)
	if base := cfg.AssetsDir; base != "" && !fileExists(base) {
		log.Printf("[App] Warning: assets directory %s does not exist", base)
	}
	if err := resourceManager.LoadImages(); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	// gdata 不可用时设置只保存在内存中
	store, err := gdata.Open(gdata.Config{AppName: storageAppName})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v", err)
		store = nil
	}
	settings := game.NewSettingsManager(store)

	audioManager := game.NewAudioManager(resourceManager, settings)
	audioManager.Preload(soundIDs(gameConfig)...)
	log.Printf("[App] AudioManager initialized")

	clock := game.NewEbitenClock()
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewGameScene(scenes.SceneDeps{
			Config:    gameConfig,
			Clock:     clock,
			Resources: resourceManager,
			Audio:     audioManager,
			Settings:  settings,
		})
	})
	if !sceneManager.Restart() {
		return nil, fmt.Errorf("无法创建游戏场景")
	}

	fullscreen := settings.GetSettings().Fullscreen
	ebiten.SetFullscreen(fullscreen)

	return &App{
		cfg:           gameConfig,
		sceneManager:  sceneManager,
		settings:      settings,
		verbose:       cfg.Verbose,
		wasFullscreen: fullscreen,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.trackFullscreen()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// trackFullscreen 退出全屏后等几帧再恢复窗口大小，让窗口管理器有时间处理
func (a *App) trackFullscreen() {
	fullscreen := ebiten.IsFullscreen()
	if a.wasFullscreen && !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
	a.wasFullscreen = fullscreen

	if !a.pendingWindowSizeReset {
		return
	}
	a.windowSizeResetCountdown--
	if a.windowSizeResetCountdown <= 0 {
		w, h := a.cfg.Window.Width, a.cfg.Window.Height
		ebiten.SetWindowSize(w, h)
		log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
		a.pendingWindowSizeReset = false
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Config 返回生效的游戏配置
func (a *App) Config() *config.GameConfig {
	return a.cfg
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存最高分
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// soundIDs 配置中引用到的全部声音
func soundIDs(cfg *config.GameConfig) []string {
	ids := make([]string, 0, len(cfg.Assets.Sounds))
	for _, s := range cfg.Assets.Sounds {
		ids = append(ids, s.ID)
	}
	return ids
}
