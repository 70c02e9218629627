package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/pvcovid/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	debugPanelX       = 8.0
	debugPanelY       = 60.0
	debugPanelPadding = 6.0
)

// debugLines 调试面板的文字内容
func (s *GameScene) debugLines() []string {
	gs := s.state
	return []string{
		fmt.Sprintf("Frame: %d  TPS: %.0f", gs.Frame(), ebiten.ActualTPS()),
		fmt.Sprintf("Phase: %s  Transition: %s", gs.Phase, gs.Transition.Stage),
		fmt.Sprintf("Player: (%.0f, %.0f) HP %d", gs.Player.X, gs.Player.Y, gs.Player.Health),
		fmt.Sprintf("Enemy: (%.0f, %.0f) HP %d", gs.Enemy.X, gs.Enemy.Y, gs.Enemy.Health),
		fmt.Sprintf("Projectiles: %d", len(gs.Player.Projectiles)),
	}
}

// drawDebugInfo 绘制调试面板（F3 切换）
// 半透明黑底，白色等宽字体
func (s *GameScene) drawDebugInfo(screen *ebiten.Image) {
	lines := s.debugLines()

	width := utils.MaxLineWidth(s.debugFace, lines) + 2*debugPanelPadding
	height := float64(len(lines))*utils.DebugLineHeight + 2*debugPanelPadding
	vector.FillRect(screen, debugPanelX, debugPanelY, float32(width), float32(height), color.RGBA{A: 160}, false)

	utils.DrawTextLines(screen, s.debugFace, lines,
		debugPanelX+debugPanelPadding, debugPanelY+debugPanelPadding,
		utils.DebugLineHeight, color.White)
}
