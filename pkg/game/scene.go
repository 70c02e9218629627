package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by exactly one tick.
	// The game runs on a fixed step, so no elapsed time is passed in.
	Update()

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，用于支持场景在窗口关闭时保存状态
//
// 实现此接口的场景会在以下时机被调用 OnClose()：
//   - 游戏窗口关闭
//   - 用户通过 OS 命令关闭程序
type Closer interface {
	// OnClose 在窗口关闭前调用
	// 返回 false 表示保存失败，App 只记录日志，程序仍会退出
	OnClose() bool
}
