package game

import "github.com/decker502/pvcovid/pkg/config"

// Projectile 豌豆子弹，只记录屏幕坐标
type Projectile struct {
	X, Y float64
}

// Actor 游戏角色（豌豆射手或病毒）
//
// 两个角色共用同一结构，病毒的 Projectiles 始终为空。
type Actor struct {
	X, Y        float64
	Health      uint8
	Projectiles []Projectile
}

// NewPlayer 创建处于初始位置的豌豆射手
func NewPlayer() Actor {
	return Actor{
		X:      config.PlayerStartX,
		Y:      config.PlayerStartY,
		Health: config.MaxHealth,
	}
}

// NewEnemy 创建处于初始位置的病毒
func NewEnemy() Actor {
	return Actor{
		X:      config.EnemyStartX,
		Y:      config.EnemyStartY,
		Health: config.MaxHealth,
	}
}

// Damage 扣除 1 点生命值，生命值不会低于 0
// 返回是否真正扣除了生命值
func (a *Actor) Damage() bool {
	if a.Health == 0 {
		return false
	}
	a.Health--
	return true
}

// IsDead 生命值是否已归零
func (a *Actor) IsDead() bool {
	return a.Health == 0
}

// ResetHealth 将生命值恢复为满值
func (a *Actor) ResetHealth() {
	a.Health = config.MaxHealth
}

// SpriteX 返回角色锚点对应的豌豆射手绘制X坐标
func (a *Actor) SpriteX() float64 {
	return a.X + config.PlayerSpriteOffsetX
}

// SpriteY 返回角色锚点对应的豌豆射手绘制Y坐标
func (a *Actor) SpriteY() float64 {
	return a.Y + config.PlayerSpriteOffsetY
}

// Muzzle 返回豌豆射手嘴部（子弹出生点）的坐标
func (a *Actor) Muzzle() (float64, float64) {
	return a.X + config.PeaBulletOffsetX, a.Y + config.PeaBulletOffsetY
}

// FindHit 查找第一颗落在 [minX, maxX] 区间内的子弹
//
// 返回：
//   - int: 子弹下标，没有命中时为 -1
func (a *Actor) FindHit(minX, maxX float64) int {
	for i, p := range a.Projectiles {
		if p.X >= minX && p.X <= maxX {
			return i
		}
	}
	return -1
}

// RemoveProjectile 移除指定下标的子弹，保持其余子弹的顺序
func (a *Actor) RemoveProjectile(index int) {
	if index < 0 || index >= len(a.Projectiles) {
		return
	}
	a.Projectiles = append(a.Projectiles[:index], a.Projectiles[index+1:]...)
}

// AdvanceProjectiles 所有子弹向右移动 step，并删除越过 boundary 的子弹
//
// 返回：
//   - int: 被删除的子弹数量
func (a *Actor) AdvanceProjectiles(step, boundary float64) int {
	kept := a.Projectiles[:0]
	for _, p := range a.Projectiles {
		p.X += step
		if p.X > boundary {
			continue
		}
		kept = append(kept, p)
	}
	removed := len(a.Projectiles) - len(kept)
	a.Projectiles = kept
	return removed
}
