package game

import "github.com/decker502/pvcovid/pkg/config"

// TransitionStage 欢迎界面过渡动画的阶段
//
// 阶段严格按顺序推进，不能跳过、中断或回退：
//
//	Idle → SlidingOut → DroppingDown → RisingUp → Done
type TransitionStage int

const (
	// TransitionIdle 尚未点击开始
	TransitionIdle TransitionStage = iota
	// TransitionSlidingOut 欢迎女孩、对话框和按钮向右滑出
	TransitionSlidingOut
	// TransitionDroppingDown 顶部下拉条下拉
	TransitionDroppingDown
	// TransitionRisingUp 顶部下拉条回收
	TransitionRisingUp
	// TransitionDone 过渡完成，已进入游戏
	TransitionDone
)

// String 返回阶段名称
func (s TransitionStage) String() string {
	switch s {
	case TransitionIdle:
		return "Idle"
	case TransitionSlidingOut:
		return "SlidingOut"
	case TransitionDroppingDown:
		return "DroppingDown"
	case TransitionRisingUp:
		return "RisingUp"
	case TransitionDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Transition 欢迎界面 → 游戏界面的过渡动画状态
type Transition struct {
	Stage TransitionStage
	// SlideX 欢迎界面向右平移的长度（0 ~ WelcomeSlideDistance）
	SlideX float64
	// DropY 顶部下拉条下拉的长度（0 ~ DropBarDistance，再回落到 DropBarRiseStop）
	DropY float64
}

// Start 开始过渡动画
// 只有处于 Idle 阶段时才会生效，返回是否真正开始
func (t *Transition) Start() bool {
	if t.Stage != TransitionIdle {
		return false
	}
	t.Stage = TransitionSlidingOut
	return true
}

// Step 推进一帧过渡动画
//
// 返回：
//   - bool: 本帧是否刚刚完成整个过渡（仅在进入 Done 的那一帧返回 true）
func (t *Transition) Step() bool {
	switch t.Stage {
	case TransitionSlidingOut:
		if t.SlideX < config.WelcomeSlideDistance {
			t.SlideX++
			return false
		}
		// 平移完成的同一帧开始下拉
		t.Stage = TransitionDroppingDown
		return t.Step()

	case TransitionDroppingDown:
		t.DropY++
		if t.DropY >= config.DropBarDistance {
			t.DropY = config.DropBarDistance
			t.Stage = TransitionRisingUp
		}
		return false

	case TransitionRisingUp:
		t.DropY--
		if t.DropY <= config.DropBarRiseStop {
			t.DropY = config.DropBarRiseStop
			t.Stage = TransitionDone
			return true
		}
		return false
	}

	return false
}

// IsActive 过渡动画是否正在播放
func (t *Transition) IsActive() bool {
	return t.Stage != TransitionIdle && t.Stage != TransitionDone
}
