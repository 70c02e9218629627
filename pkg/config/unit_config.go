package config

// 单位配置常量
// 本文件定义了豌豆射手、病毒和豌豆子弹的位置偏移和行为参数
// 所有速度都是"每帧"的固定步长，更新循环不使用 deltaTime

// Player Configuration (豌豆射手配置)
const (
	// PlayerStartX 豌豆射手的初始位置X
	PlayerStartX = 200.0
	// PlayerStartY 豌豆射手的初始位置Y
	PlayerStartY = 700.0

	// PlayerSpriteOffsetX 豌豆射手的绘制偏移，绘制位置为 (X + PlayerSpriteOffsetX, Y + PlayerSpriteOffsetY)
	PlayerSpriteOffsetX = 200.0
	// PlayerSpriteOffsetY 豌豆射手的绘制偏移Y
	PlayerSpriteOffsetY = 650.0

	// PlayerStep 豌豆射手每帧在每个轴上的移动步长
	PlayerStep = 4.0

	// TargetArriveOffset 点击目标的判定偏移
	// 豌豆射手比较的是 (目标 - TargetArriveOffset)，而不是目标本身
	TargetArriveOffset = 40.0
)

// Enemy Configuration (病毒配置)
const (
	// EnemyStartX 病毒的初始位置X
	EnemyStartX = 1200.0
	// EnemyStartY 病毒的初始位置Y
	EnemyStartY = 600.0

	// EnemyStep 病毒每帧在每个轴上的移动步长（永远在移动）
	EnemyStep = 1.0

	// EnemyHitWidth 病毒的命中宽度，子弹X在 [enemy.X, enemy.X+EnemyHitWidth] 内即命中
	EnemyHitWidth = 200.0
)

// Health Configuration (生命值配置)
const (
	// MaxHealth 豌豆射手和病毒的最大生命值，重新开始时也会重置为该值
	MaxHealth = 5
)

// Projectile Configuration (子弹配置)
const (
	// PeaBulletSpeed 豌豆子弹每帧的水平移动步长
	PeaBulletSpeed = 3.0

	// PeaBulletOffsetX 子弹相对豌豆射手位置的水平偏移量（155 嘴部偏移 + 200 绘制偏移）
	PeaBulletOffsetX = 155.0 + PlayerSpriteOffsetX

	// PeaBulletOffsetY 子弹相对豌豆射手位置的垂直偏移量（50 嘴部偏移 + 650 绘制偏移）
	PeaBulletOffsetY = 50.0 + PlayerSpriteOffsetY

	// PeaBulletDeletionBoundary 子弹删除边界的最小值（屏幕X）
	// 病毒命中区间超出屏幕时，边界延伸到命中区间右端
	PeaBulletDeletionBoundary = float64(GameWindowWidth)
)

// Transition Configuration (欢迎界面过渡动画配置)
const (
	// WelcomeSlideDistance 欢迎界面向右平移的总长度（每帧 1 像素）
	WelcomeSlideDistance = 700.0

	// DropBarDistance 顶部下拉条下拉的总长度（每帧 1 像素）
	DropBarDistance = 288.0

	// DropBarRiseStop 下拉条回收到该值时过渡结束，进入游戏
	DropBarRiseStop = 1.0
)
