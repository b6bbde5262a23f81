package entities

import (
	"log"

	"github.com/decker502/alienwave/pkg/components"
	"github.com/decker502/alienwave/pkg/config"
	"github.com/decker502/alienwave/pkg/game"
	"github.com/decker502/alienwave/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource 按资源 ID 提供图片，*game.ResourceManager 满足该接口
type ImageSource interface {
	GetImageByID(id string) *ebiten.Image
}

func imageOf(images ImageSource, id string) *ebiten.Image {
	if images == nil || id == "" {
		return nil
	}
	return images.GetImageByID(id)
}

// NewPlayerEmitter 创建玩家飞船
//
// 飞船本身可绘制，子精灵是向上发射的导弹。初始位置在屏幕底部中央，
// 入场动画会把它推到 IntroStopY 处。
//
// 参数:
//   - cfg: 游戏配置
//   - clock: 模拟时钟
//   - images: 图片来源，可为 nil（使用占位绘制）
func NewPlayerEmitter(cfg *config.GameConfig, clock game.Clock, images ImageSource) *systems.Emitter {
	w, h := cfg.WindowSize()
	p := cfg.Player

	e := systems.NewEmitter("player", clock)
	e.SetImage(imageOf(images, p.Image))
	if p.Size.X > 0 && p.Size.Y > 0 {
		e.Width, e.Height = p.Size.X, p.Size.Y
	}
	e.SetChildImage(imageOf(images, p.MissileImage))
	e.Position = components.Vec2{X: w / 2, Y: h}
	e.SpawnVelocity = p.SpawnVelocity
	e.Rate = p.Rate
	e.Lifespan = cfg.MissileLifespan()
	e.Damping = p.Damping
	e.Speed = 0
	return e
}

// NewBonusEmitter 创建奖励掉落发射器：不可见，每次启动落下 Count 个奖励
func NewBonusEmitter(cfg *config.GameConfig, clock game.Clock, images ImageSource) *systems.Emitter {
	b := cfg.Bonus

	e := systems.NewEmitter("bonus", clock)
	e.Drawable = false
	e.Mode = systems.SpawnBurst
	e.NoChild = max(1, b.Count)
	e.SetChildImage(imageOf(images, b.Image))
	e.SetChildSize(b.ChildSize.X, b.ChildSize.Y)
	e.SpawnVelocity = b.SpawnVelocity
	e.Lifespan = b.LifespanMs
	e.Position = components.Vec2{}
	return e
}

// NewWaveEmitter 创建一波敌人
//
// 发射速率随累计游戏时长增长：rate = BaseRate + RatePerMinute * minutes。
func NewWaveEmitter(cfg *config.GameConfig, wave config.WaveConfig, minutesPlayed float64, clock game.Clock, images ImageSource) *systems.Emitter {
	w, h := cfg.WindowSize()

	e := systems.NewEmitter(wave.Name, clock)
	e.Drawable = false
	e.Position = wave.Anchor.Resolve(w, h)
	e.SetChildImage(imageOf(images, wave.Image))
	if wave.ChildSize.X > 0 && wave.ChildSize.Y > 0 {
		e.SetChildSize(wave.ChildSize.X, wave.ChildSize.Y)
	}
	e.SpawnVelocity = wave.SpawnVelocity
	e.Lifespan = wave.LifespanMs
	e.Rate = wave.BaseRate + wave.RatePerMinute*minutesPlayed
	e.MuzzleOffset = 0
	return e
}

// NewEffectEmitter 创建粒子特效
//
// Rate > 0 时为持续发射（如尾焰），否则为每次 Start 爆发一组（如爆炸）。
// 特效的子系统按配置挂载力并使用配置的阻尼。
func NewEffectEmitter(name string, effect config.EffectConfig, forces config.ForcesConfig, clock game.Clock) *systems.Emitter {
	e := systems.NewEmitter(name, clock)
	e.Drawable = false
	e.MuzzleOffset = 0
	e.GroupSize = max(1, effect.GroupSize)
	e.Lifespan = effect.LifespanMs
	e.SpawnVelocity = effect.Velocity
	e.ParticleRadius = effect.ParticleRadius
	e.ParticleColor = effect.ParticleColor()
	e.DiscRadius = effect.DiscRadius
	e.SetChildSize(effect.ParticleRadius*2, effect.ParticleRadius*2)

	if effect.Rate > 0 {
		e.Mode = systems.SpawnRate
		e.Rate = effect.Rate
	} else {
		e.Mode = systems.SpawnOneShot
	}

	switch effect.Shape {
	case config.ShapeRadial:
		e.Shape = systems.ShapeRadial
	case config.ShapeDisc:
		e.Shape = systems.ShapeDisc
	default:
		e.Shape = systems.ShapeDirectional
	}

	sys := e.System()
	if effect.Damping > 0 {
		sys.Damping = effect.Damping
	}
	for _, f := range effect.Forces {
		switch f {
		case config.ForceTurbulence:
			sys.AddForce(systems.TurbulenceForce{Min: forces.TurbulenceMin, Max: forces.TurbulenceMax})
		case config.ForceGravity:
			sys.AddForce(systems.GravityForce{G: forces.Gravity})
		case config.ForceRadial:
			sys.AddForce(systems.ImpulseRadialForce{Magnitude: forces.RadialImpulse})
		default:
			log.Printf("[EffectFactory] Warning: unknown force %q on %s", f, name)
		}
	}
	return e
}
