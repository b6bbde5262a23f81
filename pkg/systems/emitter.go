package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/alienwave/pkg/components"
	"github.com/decker502/alienwave/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpawnMode 发射模式
type SpawnMode int

const (
	// SpawnRate 按速率持续发射，两次发射间隔严格大于 1000/Rate 毫秒
	SpawnRate SpawnMode = iota
	// SpawnBurst 每帧发射一个，直到总数达到 NoChild
	SpawnBurst
	// SpawnOneShot 每次 Start 后一次性发射 GroupSize 个
	SpawnOneShot
)

func (m SpawnMode) String() string {
	switch m {
	case SpawnRate:
		return "rate"
	case SpawnBurst:
		return "burst"
	case SpawnOneShot:
		return "oneshot"
	default:
		return fmt.Sprintf("SpawnMode(%d)", int(m))
	}
}

// EmitterShape 子精灵的初始位置/速度分布
type EmitterShape int

const (
	// ShapeDirectional 在发射器位置以 SpawnVelocity 发射
	ShapeDirectional EmitterShape = iota
	// ShapeRadial 在发射器位置沿随机方向发射，速率为 |SpawnVelocity|
	ShapeRadial
	// ShapeDisc 在以发射器为圆心、DiscRadius 为半径的圆盘内随机位置发射
	ShapeDisc
)

// DefaultMuzzleOffset 定向速率模式下子精灵沿发射方向的出生偏移（像素）
const DefaultMuzzleOffset = 30.0

// Emitter 发射器：既是一个可移动、可绘制的对象，也拥有一个 SpriteSystem
//
// 玩家飞船、敌人波次、奖励掉落和粒子特效都是 Emitter，区别只在配置。
// 发射器自身的运动（Velocity/Acceleration/Damping）与子精灵的发射速度
// （SpawnVelocity）是两组独立字段。
type Emitter struct {
	components.Transform
	Name string

	// 自身运动学
	Velocity     components.Vec2
	Acceleration components.Vec2
	HorVelocity  components.Vec2 // 水平操控分量
	VerVelocity  components.Vec2 // 垂直操控分量
	Damping      float64
	Speed        float64 // 松开方向键后继续滑行的速度阈值

	// 发射模板
	Mode           SpawnMode
	Shape          EmitterShape
	Rate           float64 // 个/秒
	NoChild        int     // 突发模式总数
	GroupSize      int     // 每次发射的数量
	SpawnVelocity  components.Vec2
	Lifespan       float64 // 子精灵寿命（毫秒）
	ChildImage     *ebiten.Image
	ChildWidth     float64
	ChildHeight    float64
	ParticleRadius float64
	ParticleColor  color.Color
	DiscRadius     float64
	MuzzleOffset   float64

	// 自身外观
	Image    *ebiten.Image
	Width    float64
	Height   float64
	Drawable bool

	started     bool
	armed       bool
	lastSpawned float64
	count       int
	spawned     int

	sys   *SpriteSystem
	clock game.Clock
	rng   Random
}

// NewEmitter 创建一个带默认值的发射器
//
// 默认：未启动、速率模式 1 个/秒、子精灵永生、发射速度 (100,100)、
// 自身 50x50、子精灵 10x10、可绘制。
func NewEmitter(name string, clock game.Clock) *Emitter {
	return &Emitter{
		Transform:     components.NewTransform(),
		Name:          name,
		Damping:       1,
		Mode:          SpawnRate,
		Rate:          1,
		NoChild:       1,
		GroupSize:     1,
		SpawnVelocity: components.Vec2{X: 100, Y: 100},
		Lifespan:      components.Immortal,
		ChildWidth:    10,
		ChildHeight:   10,
		MuzzleOffset:  DefaultMuzzleOffset,
		Width:         50,
		Height:        50,
		Drawable:      true,
		sys:           NewSpriteSystem(clock),
		clock:         clock,
		rng:           DefaultRandom,
	}
}

// SetRandom 替换随机源，同时作用于子系统的力
func (e *Emitter) SetRandom(r Random) {
	e.rng = orDefault(r)
	e.sys.SetRandom(r)
}

// System 返回子精灵系统
func (e *Emitter) System() *SpriteSystem {
	return e.sys
}

// Started 是否处于发射状态
func (e *Emitter) Started() bool {
	return e.started
}

// LastSpawned 最近一次发射的时钟读数
func (e *Emitter) LastSpawned() float64 {
	return e.lastSpawned
}

// Count 当前突发/一次性计数
func (e *Emitter) Count() int {
	return e.count
}

// SpawnedTotal 创建以来发射的子精灵总数
func (e *Emitter) SpawnedTotal() int {
	return e.spawned
}

// Start 开始发射：重置发射计时与计数，一次性模式重新上膛
func (e *Emitter) Start() {
	e.started = true
	e.armed = true
	e.lastSpawned = e.clock.ElapsedMillis()
	e.count = 0
}

// Resume 恢复发射，不重置计时器
// 距上次发射已超过间隔时，下一次 Update 立即发射
func (e *Emitter) Resume() {
	e.started = true
}

// Stop 停止发射；下一次 Update 清空所有子精灵
func (e *Emitter) Stop() {
	e.started = false
	e.armed = false
}

// SetImage 设置发射器自身的图片
func (e *Emitter) SetImage(img *ebiten.Image) {
	e.Image = img
	if img == nil {
		return
	}
	b := img.Bounds()
	e.Width = float64(b.Dx())
	e.Height = float64(b.Dy())
}

// SetChildImage 设置子精灵图片，子精灵尺寸取图片尺寸
func (e *Emitter) SetChildImage(img *ebiten.Image) {
	e.ChildImage = img
	if img == nil {
		return
	}
	b := img.Bounds()
	e.ChildWidth = float64(b.Dx())
	e.ChildHeight = float64(b.Dy())
}

// SetChildSize 覆盖子精灵尺寸
func (e *Emitter) SetChildSize(w, h float64) {
	e.ChildWidth = w
	e.ChildHeight = h
}

// Update 发射新精灵并推进子系统
//
// 未启动时子系统被清空。
func (e *Emitter) Update() {
	if !e.started {
		e.sys.Clear()
		e.sys.Update()
		return
	}

	now := e.clock.ElapsedMillis()
	switch e.Mode {
	case SpawnBurst:
		if e.count < e.NoChild {
			e.spawn(now)
			e.count++
			e.lastSpawned = now
		}
	case SpawnOneShot:
		if e.armed {
			for i := 0; i < max(1, e.GroupSize); i++ {
				e.spawn(now)
			}
			e.count += max(1, e.GroupSize)
			e.armed = false
			e.lastSpawned = now
		}
	default:
		if e.Rate > 0 && now-e.lastSpawned > 1000/e.Rate {
			for i := 0; i < max(1, e.GroupSize); i++ {
				e.spawn(now)
			}
			e.lastSpawned = now
		}
	}

	e.sys.Update()
}

// Integrate 按自身速度、加速度和阻尼推进发射器一帧
// 位置先用旧速度推进，再更新速度
func (e *Emitter) Integrate() {
	fps := e.clock.FrameRate()
	if fps <= 0 {
		return
	}
	dt := 1 / fps
	e.Position = e.Position.Add(e.Velocity.Scale(dt))
	e.Velocity = e.Velocity.Add(e.Acceleration.Scale(dt)).Scale(e.Damping)
}

// Draw 绘制发射器自身（可选）和全部子精灵
func (e *Emitter) Draw(screen *ebiten.Image) {
	if e.Drawable && e.Image != nil {
		components.DrawImageCentered(screen, e.Image, e.Position, e.Width, e.Height, e.RotationRadians())
	}
	e.sys.Draw(screen)
}

func (e *Emitter) spawn(now float64) {
	s := components.NewSprite()
	if e.ChildImage != nil {
		s.SetImage(e.ChildImage)
	}
	s.Width = e.ChildWidth
	s.Height = e.ChildHeight
	s.Lifespan = e.Lifespan
	s.BirthTime = now
	s.Radius = e.ParticleRadius
	s.Tint = e.ParticleColor
	s.Name = e.Name

	switch e.Shape {
	case ShapeRadial:
		s.Position = e.Position
		s.Velocity = RandomUnit(e.rng).Scale(e.SpawnVelocity.Len())
	case ShapeDisc:
		s.Position = e.Position.Add(RandomInDisc(e.rng, e.DiscRadius))
		s.Velocity = e.SpawnVelocity
	default:
		s.Position = e.Position
		s.Velocity = e.SpawnVelocity
		if e.Mode == SpawnRate && e.MuzzleOffset != 0 {
			s.Position = s.Position.Add(e.SpawnVelocity.Normalize().Scale(e.MuzzleOffset))
		}
	}

	e.sys.Add(s)
	e.spawned++
}
