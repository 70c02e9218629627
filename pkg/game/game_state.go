package game

import (
	"log"

	"github.com/decker502/pvcovid/pkg/config"
)

// PointerTarget 豌豆射手的移动目标（最后一次左键点击的地面位置）
// X <= 0 表示没有目标（初始值或右键隐藏后的屏幕外坐标）
type PointerTarget struct {
	X, Y float64
}

// IsSet 是否存在有效的移动目标
func (t PointerTarget) IsSet() bool {
	return t.X > 0
}

// Cursor 鼠标指针位置，仅用于绘制鼠标手指
type Cursor struct {
	X, Y float64
}

// GameState 存储一局游戏的全部状态
//
// GameState 由 GameScene 独占持有，输入处理和每帧更新都在主循环中同步执行，
// 因此不需要任何锁。所有方法都是对内存状态的纯计算，不会失败。
type GameState struct {
	Phase      Phase
	Player     Actor
	Enemy      Actor
	Target     PointerTarget
	Cursor     Cursor
	Transition Transition

	// frame 已执行的更新帧数（用于调试信息）
	frame uint64
}

// NewGameState 创建处于欢迎界面的初始游戏状态
func NewGameState() *GameState {
	return &GameState{
		Phase:  PhaseWelcome,
		Player: NewPlayer(),
		Enemy:  NewEnemy(),
		Cursor: Cursor{X: config.CursorInitialX, Y: config.CursorInitialY},
	}
}

// Frame 返回已执行的更新帧数
func (gs *GameState) Frame() uint64 {
	return gs.frame
}

// Update 推进一帧游戏状态
//
// 每个 tick 调用一次，步长固定，不使用 deltaTime。
// 执行顺序：
//  1. 豌豆射手向点击目标移动
//  2. 病毒追踪豌豆射手
//  3. 子弹命中检测（每帧最多命中一颗）
//  4. 子弹移动与越界删除
//  5. 胜负判定（失败优先）
//  6. 欢迎界面过渡动画（任何阶段都会推进）
func (gs *GameState) Update() {
	gs.frame++

	if gs.Phase == PhasePlaying {
		gs.updatePlayerMovement()
		gs.updateEnemyPursuit()
		gs.updateHitDetection()
		gs.updateProjectiles()
		gs.checkGameResult()
	}

	if gs.Transition.Step() {
		gs.setPhase(PhasePlaying)
	}
}

// updatePlayerMovement 豌豆射手自动走向点击位置
// 两个轴独立步进，不做对角线归一化；先前进后回退的判断会在目标附近来回抖动
func (gs *GameState) updatePlayerMovement() {
	if !gs.Target.IsSet() {
		return
	}

	p := &gs.Player
	targetX := gs.Target.X - config.TargetArriveOffset
	targetY := gs.Target.Y - config.TargetArriveOffset

	// 目标在右边
	if p.SpriteX() < targetX {
		p.X += config.PlayerStep
	}
	// 目标在左边
	if p.SpriteX() >= targetX {
		p.X -= config.PlayerStep
	}
	// 目标在下边
	if p.SpriteY() < targetY {
		p.Y += config.PlayerStep
	}
	// 目标在上边
	if p.SpriteY() >= targetY {
		p.Y -= config.PlayerStep
	}
}

// updateEnemyPursuit 病毒每帧向豌豆射手移动，永远不会停下
func (gs *GameState) updateEnemyPursuit() {
	p := &gs.Player
	e := &gs.Enemy

	if p.SpriteX() <= e.X {
		e.X -= config.EnemyStep
	} else {
		e.X += config.EnemyStep
	}

	if p.SpriteY() >= e.Y {
		e.Y += config.EnemyStep
	} else {
		e.Y -= config.EnemyStep
	}
}

// updateHitDetection 子弹击中病毒的检测
// 只处理第一颗落在病毒命中区间内的子弹，同一帧内其余子弹不受影响
func (gs *GameState) updateHitDetection() {
	index := gs.Player.FindHit(gs.Enemy.X, gs.Enemy.X+config.EnemyHitWidth)
	if index < 0 || gs.Enemy.IsDead() {
		return
	}

	gs.Player.RemoveProjectile(index)
	gs.Enemy.Damage()
	log.Printf("[GameState] 子弹命中病毒，病毒剩余生命值: %d", gs.Enemy.Health)
}

// updateProjectiles 子弹向右移动，越过删除边界的子弹被删除
func (gs *GameState) updateProjectiles() {
	gs.Player.AdvanceProjectiles(config.PeaBulletSpeed, gs.projectileBoundary())
}

// projectileBoundary 子弹删除边界
// 取屏幕右边界和病毒命中区间右端中较大的一个，还可能命中病毒的子弹不会被删除
func (gs *GameState) projectileBoundary() float64 {
	return max(config.PeaBulletDeletionBoundary, gs.Enemy.X+config.EnemyHitWidth)
}

// checkGameResult 胜负判定
// 两者同时归零时判定为失败
func (gs *GameState) checkGameResult() {
	if gs.Player.IsDead() {
		gs.setPhase(PhaseLose)
		return
	}
	if gs.Enemy.IsDead() {
		gs.setPhase(PhaseWin)
	}
}

// setPhase 切换游戏阶段并记录日志
func (gs *GameState) setPhase(phase Phase) {
	if gs.Phase == phase {
		return
	}
	log.Printf("[GameState] 阶段切换: %s -> %s (frame %d)", gs.Phase, phase, gs.frame)
	gs.Phase = phase
}

// LeftClick 处理鼠标左键抬起
//
// 参数：
//   - x, y: 点击的屏幕坐标
func (gs *GameState) LeftClick(x, y float64) {
	gs.Cursor = Cursor{X: x, Y: y}
	gs.Target = PointerTarget{
		X: x - config.ClickMarkerOffset,
		Y: y - config.ClickMarkerOffset,
	}

	// 第一次点击总会开始欢迎界面的过渡动画
	if gs.Transition.Start() {
		log.Printf("[GameState] 开始欢迎界面过渡动画")
	}

	if gs.Phase.IsTerminal() {
		gs.Restart()
	}
}

// RightClick 处理鼠标右键抬起，隐藏点击标记并取消移动目标
func (gs *GameState) RightClick() {
	gs.Target = PointerTarget{X: config.ClickMarkerHidden, Y: config.ClickMarkerHidden}
}

// Fire 豌豆射手发射一颗子弹
// 任何阶段都可以发射；子弹只在游戏进行中移动
func (gs *GameState) Fire() {
	x, y := gs.Player.Muzzle()
	gs.Player.Projectiles = append(gs.Player.Projectiles, Projectile{X: x, Y: y})
}

// MoveCursor 更新鼠标手指位置
func (gs *GameState) MoveCursor(x, y float64) {
	gs.Cursor = Cursor{X: x, Y: y}
}

// Restart 重新开始：双方生命值恢复满值并回到游戏中
// 位置和已发射的子弹保持不变
func (gs *GameState) Restart() {
	gs.Player.ResetHealth()
	gs.Enemy.ResetHealth()
	gs.setPhase(PhasePlaying)
}
