package app

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/pvcovid/pkg/config"
	"github.com/decker502/pvcovid/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// writeTestResources 在 dir 下为内置清单中的每张图片写入一个 4x4 PNG
func writeTestResources(t *testing.T, dir string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}

	for _, res := range game.DefaultResourceConfig().Images {
		path := filepath.Join(dir, res.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		file, err := os.Create(path)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", path, err)
		}
		if err := png.Encode(file, img); err != nil {
			file.Close()
			t.Fatalf("Failed to encode %s: %v", path, err)
		}
		file.Close()
	}
}

// isolateSettings 把 gdata 的存储目录指向临时目录
func isolateSettings(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestNewApp(t *testing.T) {
	isolateSettings(t)
	dir := t.TempDir()
	writeTestResources(t, dir)

	a, err := NewApp(Config{
		ResourcesDir: dir,
		ManifestPath: filepath.Join(dir, "missing.yaml"),
		Fullscreen:   true,
	})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if a.sceneManager.GetCurrentScene() == nil {
		t.Error("NewApp should start the game scene")
	}
	if !a.Settings().Fullscreen {
		t.Error("Fullscreen flag should be written to settings")
	}
	if a.IsVerbose() {
		t.Error("IsVerbose: got true, want false")
	}

	w, h := a.Layout(1920, 1080)
	if w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("Layout: got %dx%d, want %dx%d", w, h, config.GameWindowWidth, config.GameWindowHeight)
	}
}

// TestNewApp_MissingImages 缺少图片时初始化失败
func TestNewApp_MissingImages(t *testing.T) {
	isolateSettings(t)
	dir := t.TempDir()

	if _, err := NewApp(Config{ResourcesDir: dir, ManifestPath: filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Error("NewApp should fail when images are missing")
	}
}

// TestNewApp_InvalidManifest 资源清单格式错误时初始化失败
func TestNewApp_InvalidManifest(t *testing.T) {
	isolateSettings(t)
	dir := t.TempDir()
	manifest := filepath.Join(dir, "resources.yaml")
	if err := os.WriteFile(manifest, []byte("images: [oops"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	if _, err := NewApp(Config{ManifestPath: manifest}); err == nil {
		t.Error("NewApp should fail with an invalid manifest")
	}
}

// closingScene 记录 OnClose 调用并返回预设结果
type closingScene struct {
	closeResult bool
	closeCalled bool
}

func (s *closingScene) Update()                   {}
func (s *closingScene) Draw(screen *ebiten.Image) {}
func (s *closingScene) OnClose() bool {
	s.closeCalled = true
	return s.closeResult
}

// TestHandleWindowClose 场景保存失败时窗口也必须能关闭
func TestHandleWindowClose(t *testing.T) {
	for _, saved := range []bool{true, false} {
		scene := &closingScene{closeResult: saved}
		sm := game.NewSceneManager()
		sm.SwitchTo(scene)
		a := &App{sceneManager: sm}

		err := a.handleWindowClose()

		if !errors.Is(err, ebiten.Termination) {
			t.Errorf("saved=%v: got %v, want ebiten.Termination", saved, err)
		}
		if !scene.closeCalled {
			t.Errorf("saved=%v: OnClose was not called", saved)
		}
	}
}
