package config

// 布局配置常量
// 本文件定义了游戏窗口、欢迎界面、HUD 和结算界面的位置参数
// 所有坐标都是逻辑屏幕坐标（左上角为原点，Ebitengine 负责缩放）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1200

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 800

	// GameWindowTitle 窗口标题
	GameWindowTitle = "植物大战新冠病毒"
)

// Welcome Screen Configuration (欢迎界面配置)
const (
	// WelcomeGirlX 欢迎女孩的初始X坐标，实际绘制位置为 WelcomeGirlX + SlideX
	WelcomeGirlX = 800.0
	// WelcomeGirlY 欢迎女孩的Y坐标
	WelcomeGirlY = 210.0

	// WelcomeDialogX 对话框的初始X坐标
	WelcomeDialogX = 500.0
	// WelcomeDialogY 对话框的Y坐标
	WelcomeDialogY = 210.0

	// WelcomeStartButtonX "开始游戏"按钮的初始X坐标
	WelcomeStartButtonX = 580.0
	// WelcomeStartButtonY "开始游戏"按钮的Y坐标
	WelcomeStartButtonY = 360.0

	// DropBarX 顶部下拉条的X坐标
	DropBarX = 410.0
	// DropBarHiddenY 顶部下拉条完全收起时的Y坐标，实际绘制位置为 DropBarHiddenY + DropY
	DropBarHiddenY = -290.0
)

// HUD Configuration (血量图标配置)
const (
	// HealthIconY 血量图标的Y坐标
	HealthIconY = 20.0

	// HealthIconSpacing 相邻血量图标的水平间距
	HealthIconSpacing = 40.0

	// PlayerHealthIconStartX 玩家血量图标的起始X坐标（从左向右排列）
	PlayerHealthIconStartX = 20.0

	// EnemyHealthIconAnchorX 敌人血量图标的锚点X坐标（从右向左排列）
	// 第 i 个图标绘制在 EnemyHealthIconAnchorX - (PlayerHealthIconStartX + i*HealthIconSpacing)
	EnemyHealthIconAnchorX = 1170.0
)

// Result Screen Configuration (结算界面配置)
const (
	// ResultImageX 胜利/失败图片的X坐标
	ResultImageX = 400.0
	// ResultImageY 胜利/失败图片的Y坐标
	ResultImageY = 200.0

	// RestartButtonOffsetX 重新开始按钮相对结算图片的X偏移
	RestartButtonOffsetX = 81.0
	// RestartButtonOffsetY 重新开始按钮相对结算图片的Y偏移
	RestartButtonOffsetY = 200.0
)

// Pointer Configuration (鼠标与点击标记配置)
const (
	// CursorDrawOffset 鼠标手指图片相对鼠标位置的偏移（图片中心对齐指针）
	CursorDrawOffset = 50.0

	// CursorInitialX 鼠标手指的初始位置（屏幕外）
	CursorInitialX = -100.0
	// CursorInitialY 鼠标手指的初始位置（屏幕外）
	CursorInitialY = -100.0

	// ClickMarkerOffset 点击标记相对点击位置的偏移
	// 点击标记绘制在 (clickX - ClickMarkerOffset, clickY - ClickMarkerOffset)
	ClickMarkerOffset = CursorDrawOffset + TargetArriveOffset

	// ClickMarkerHidden 右键隐藏点击标记时使用的屏幕外坐标
	ClickMarkerHidden = -80.0
)

// GetResultRestartPosition 返回重新开始按钮的绘制坐标
func GetResultRestartPosition() (float64, float64) {
	return ResultImageX + RestartButtonOffsetX, ResultImageY + RestartButtonOffsetY
}
