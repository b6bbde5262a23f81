package systems

import (
	"github.com/decker502/alienwave/pkg/components"
)

// Force 作用在粒子上的力（这里直接以加速度表示，质量视为 1）
type Force interface {
	// Acceleration 返回该力对精灵产生的加速度（像素/秒²）
	Acceleration(s *components.Sprite, rng Random) components.Vec2
	// Once 为 true 时只在精灵第一次积分时生效
	Once() bool
}

// TurbulenceForce 每帧随机扰动
type TurbulenceForce struct {
	Min components.Vec2
	Max components.Vec2
}

func (f TurbulenceForce) Acceleration(_ *components.Sprite, rng Random) components.Vec2 {
	return components.Vec2{
		X: RandRange(rng, f.Min.X, f.Max.X),
		Y: RandRange(rng, f.Min.Y, f.Max.Y),
	}
}

func (TurbulenceForce) Once() bool { return false }

// GravityForce 恒定加速度
type GravityForce struct {
	G components.Vec2
}

func (f GravityForce) Acceleration(*components.Sprite, Random) components.Vec2 {
	return f.G
}

func (GravityForce) Once() bool { return false }

// ImpulseRadialForce 出生时沿随机方向的一次性冲量
type ImpulseRadialForce struct {
	Magnitude float64
}

func (f ImpulseRadialForce) Acceleration(_ *components.Sprite, rng Random) components.Vec2 {
	return RandomUnit(rng).Scale(f.Magnitude)
}

func (ImpulseRadialForce) Once() bool { return true }
