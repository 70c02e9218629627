package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
	}
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Close 通知当前场景窗口即将关闭
// 当前场景未实现 Closer 时直接返回 true
func (sm *SceneManager) Close() bool {
	closer, ok := sm.currentScene.(Closer)
	if !ok {
		return true
	}
	if !closer.OnClose() {
		log.Printf("[SceneManager] 当前场景关闭时保存失败")
		return false
	}
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update() {
	if sm.currentScene != nil {
		sm.currentScene.Update()
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
