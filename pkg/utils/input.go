// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputEvents 一帧内收集到的输入事件
// 只包含普通数值，游戏逻辑不需要依赖 ebiten 的输入 API
type InputEvents struct {
	// LeftClick 鼠标左键刚刚抬起（或触摸刚刚结束）
	LeftClick bool
	// RightClick 鼠标右键刚刚抬起
	RightClick bool
	// Fire 空格键刚刚按下
	Fire bool
	// X, Y 指针位置（触摸优先）
	X, Y int
	// CursorMoved 指针位置与上一帧不同
	CursorMoved bool
}

// RawInput 从 ebiten 读取的原始输入状态
type RawInput struct {
	CursorX, CursorY int

	LeftReleased  bool
	RightReleased bool
	SpacePressed  bool

	// TouchActive 当前是否有触摸
	TouchActive    bool
	TouchX, TouchY int
	// TouchReleased 本帧有触摸结束
	TouchReleased bool
}

// InputPoller 把 ebiten 的鼠标、触摸和键盘状态转换为 InputEvents
//
// 触摸结束时 ebiten 已经无法查询触摸位置，因此需要记住最后一次触摸位置。
type InputPoller struct {
	lastX, lastY           int
	lastTouchX, lastTouchY int
	hasLast                bool
}

// NewInputPoller 创建输入轮询器
func NewInputPoller() *InputPoller {
	return &InputPoller{}
}

// PollInput 读取本帧的输入状态并转换为事件
// 每个 tick 调用一次
func (p *InputPoller) PollInput() InputEvents {
	raw := RawInput{
		LeftReleased:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		SpacePressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		TouchReleased: len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0,
	}
	raw.CursorX, raw.CursorY = ebiten.CursorPosition()

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		raw.TouchActive = true
		raw.TouchX, raw.TouchY = ebiten.TouchPosition(touchIDs[0])
	}

	return p.Resolve(raw)
}

// Resolve 根据原始输入计算事件
//
// 参数：
//   - raw: 本帧的原始输入状态
//
// 返回：
//   - InputEvents: 左键抬起和触摸结束都视为左键点击，位置优先取触摸
func (p *InputPoller) Resolve(raw RawInput) InputEvents {
	x, y := raw.CursorX, raw.CursorY
	if raw.TouchActive {
		p.lastTouchX, p.lastTouchY = raw.TouchX, raw.TouchY
		x, y = raw.TouchX, raw.TouchY
	} else if raw.TouchReleased {
		x, y = p.lastTouchX, p.lastTouchY
	}

	events := InputEvents{
		LeftClick:   raw.LeftReleased || raw.TouchReleased,
		RightClick:  raw.RightReleased,
		Fire:        raw.SpacePressed,
		X:           x,
		Y:           y,
		CursorMoved: !p.hasLast || x != p.lastX || y != p.lastY,
	}

	p.lastX, p.lastY = x, y
	p.hasLast = true
	return events
}
