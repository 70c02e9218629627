package game

// Phase 游戏阶段
// 决定当前帧执行哪些更新逻辑，以及绘制哪个界面
type Phase int

const (
	// PhaseWelcome 欢迎界面，等待玩家点击开始
	PhaseWelcome Phase = iota
	// PhasePlaying 游戏进行中
	PhasePlaying
	// PhaseWin 病毒生命值归零，玩家胜利
	PhaseWin
	// PhaseLose 豌豆射手生命值归零，玩家失败
	PhaseLose
)

// String 返回阶段名称（用于日志和调试信息）
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "Welcome"
	case PhasePlaying:
		return "Playing"
	case PhaseWin:
		return "Win"
	case PhaseLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// IsTerminal 是否为结算阶段（胜利或失败）
func (p Phase) IsTerminal() bool {
	return p == PhaseWin || p == PhaseLose
}
