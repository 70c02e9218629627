package scenes

import (
	"log"

	"github.com/decker502/pvcovid/pkg/config"
	"github.com/decker502/pvcovid/pkg/game"
	"github.com/decker502/pvcovid/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameScene 游戏主场景
//
// 欢迎界面、游戏中和结算界面都在同一个场景中绘制，
// 具体绘制哪些图片由 GameState.Phase 决定。
// 场景独占 GameState，输入处理和状态更新都在 Update 中同步完成。
type GameScene struct {
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	state           *game.GameState
	input           *utils.InputPoller
	debugFace       *text.GoXFace
}

// drawCommand 一次图片绘制：资源ID和左上角坐标
type drawCommand struct {
	ID   string
	X, Y float64
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - rm: 已加载全部图片的资源管理器
//   - settings: 用户设置（调试信息开关），可以为 nil
func NewGameScene(rm *game.ResourceManager, settings *game.SettingsManager) *GameScene {
	return &GameScene{
		resourceManager: rm,
		settingsManager: settings,
		state:           game.NewGameState(),
		input:           utils.NewInputPoller(),
		debugFace:       utils.NewDebugFace(),
	}
}

// State 返回场景持有的游戏状态
func (s *GameScene) State() *game.GameState {
	return s.state
}

// Update 处理本帧输入，然后推进一帧游戏状态
func (s *GameScene) Update() {
	s.applyInput(s.input.PollInput())
	s.state.Update()
}

// applyInput 把输入事件转换为游戏状态的操作
func (s *GameScene) applyInput(events utils.InputEvents) {
	x, y := float64(events.X), float64(events.Y)

	if events.CursorMoved {
		s.state.MoveCursor(x, y)
	}
	if events.LeftClick {
		s.state.LeftClick(x, y)
	}
	if events.RightClick {
		s.state.RightClick()
	}
	if events.Fire {
		s.state.Fire()
	}
}

// Draw 按当前阶段绘制画面
// 背景最先绘制，鼠标手指最后绘制
func (s *GameScene) Draw(screen *ebiten.Image) {
	for _, cmd := range s.drawCommands() {
		s.drawImage(screen, cmd)
	}

	if s.showDebug() {
		s.drawDebugInfo(screen)
	}
}

// drawCommands 计算本帧的绘制列表（按绘制顺序）
func (s *GameScene) drawCommands() []drawCommand {
	gs := s.state
	cmds := []drawCommand{{ID: game.ImageBackground}}

	switch gs.Phase {
	case game.PhaseWelcome:
		slideX := gs.Transition.SlideX
		cmds = append(cmds,
			drawCommand{ID: game.ImageWelcomeGirl, X: config.WelcomeGirlX + slideX, Y: config.WelcomeGirlY},
			drawCommand{ID: game.ImageDialog, X: config.WelcomeDialogX + slideX, Y: config.WelcomeDialogY},
			drawCommand{ID: game.ImageStartButton, X: config.WelcomeStartButtonX + slideX, Y: config.WelcomeStartButtonY},
			drawCommand{ID: game.ImageDropBar, X: config.DropBarX, Y: config.DropBarHiddenY + gs.Transition.DropY},
		)

	case game.PhasePlaying:
		cmds = append(cmds,
			drawCommand{ID: game.ImagePlayer, X: gs.Player.SpriteX(), Y: gs.Player.SpriteY()},
			drawCommand{ID: game.ImageEnemy, X: gs.Enemy.X, Y: gs.Enemy.Y},
		)
		cmds = append(cmds, healthIcons(gs.Player.Health, false)...)
		cmds = append(cmds, healthIcons(gs.Enemy.Health, true)...)
		cmds = append(cmds, drawCommand{ID: game.ImageClickMarker, X: gs.Target.X, Y: gs.Target.Y})
		for _, p := range gs.Player.Projectiles {
			cmds = append(cmds, drawCommand{ID: game.ImageProjectile, X: p.X, Y: p.Y})
		}

	case game.PhaseWin:
		restartX, restartY := config.GetResultRestartPosition()
		cmds = append(cmds,
			drawCommand{ID: game.ImageWin, X: config.ResultImageX, Y: config.ResultImageY},
			drawCommand{ID: game.ImageRestart, X: restartX, Y: restartY},
		)

	case game.PhaseLose:
		cmds = append(cmds, drawCommand{ID: game.ImageLose, X: config.ResultImageX, Y: config.ResultImageY})
	}

	cmds = append(cmds, drawCommand{
		ID: game.ImageMouse,
		X:  gs.Cursor.X - config.CursorDrawOffset,
		Y:  gs.Cursor.Y - config.CursorDrawOffset,
	})
	return cmds
}

// healthIcons 血量图标
// 玩家的图标从左向右排列，病毒的图标从右向左排列
func healthIcons(health uint8, rightAligned bool) []drawCommand {
	icons := make([]drawCommand, 0, health)
	for i := 0; i < int(health); i++ {
		offset := config.PlayerHealthIconStartX + float64(i)*config.HealthIconSpacing
		x := offset
		if rightAligned {
			x = config.EnemyHealthIconAnchorX - offset
		}
		icons = append(icons, drawCommand{ID: game.ImageHealth, X: x, Y: config.HealthIconY})
	}
	return icons
}

// drawImage 在指定位置绘制一张图片，未加载的图片会被跳过
func (s *GameScene) drawImage(screen *ebiten.Image, cmd drawCommand) {
	img := s.resourceManager.GetImageByID(cmd.ID)
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cmd.X, cmd.Y)
	screen.DrawImage(img, op)
}

// showDebug 是否显示调试信息
func (s *GameScene) showDebug() bool {
	return s.settingsManager != nil && s.settingsManager.GetSettings().ShowDebug
}

// OnClose 窗口关闭时保存用户设置
// 保存失败只记录日志，不阻止退出
func (s *GameScene) OnClose() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] 保存设置失败: %v", err)
	}
	return true
}
