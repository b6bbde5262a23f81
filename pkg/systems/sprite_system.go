package systems

import (
	"fmt"

	"github.com/decker502/alienwave/pkg/components"
	"github.com/decker502/alienwave/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSystem 持有一组精灵，负责过期移除、积分和邻近移除
//
// 精灵按插入顺序保存；所有移除操作都保持剩余精灵的相对顺序。
// 可选的力列表只用于粒子特效，游戏实体的系统不挂任何力。
type SpriteSystem struct {
	Sprites []components.Sprite

	// CollideSound RemoveNear 每移除一个精灵播放一次，可为 nil
	CollideSound game.Sound

	// Damping 每帧速度衰减系数，1 表示无衰减；只在挂有力时生效
	Damping float64

	forces []Force
	clock  game.Clock
	rng    Random
}

// NewSpriteSystem 创建空的精灵系统
func NewSpriteSystem(clock game.Clock) *SpriteSystem {
	return &SpriteSystem{
		Damping: 1,
		clock:   clock,
		rng:     DefaultRandom,
	}
}

// SetRandom 替换随机源（测试用）
func (ss *SpriteSystem) SetRandom(r Random) {
	ss.rng = orDefault(r)
}

// AddForce 挂载一个力
func (ss *SpriteSystem) AddForce(f Force) {
	ss.forces = append(ss.forces, f)
}

// Forces 返回已挂载的力
func (ss *SpriteSystem) Forces() []Force {
	return ss.forces
}

// Len 返回精灵数量
func (ss *SpriteSystem) Len() int {
	return len(ss.Sprites)
}

// Add 追加一个精灵
func (ss *SpriteSystem) Add(s components.Sprite) {
	ss.Sprites = append(ss.Sprites, s)
}

// Remove 按下标移除一个精灵
// 下标越界属于调用方错误，直接 panic
func (ss *SpriteSystem) Remove(i int) {
	if i < 0 || i >= len(ss.Sprites) {
		panic(fmt.Sprintf("systems: SpriteSystem.Remove index %d out of range [0,%d)", i, len(ss.Sprites)))
	}
	copy(ss.Sprites[i:], ss.Sprites[i+1:])
	ss.Sprites[len(ss.Sprites)-1] = components.Sprite{}
	ss.Sprites = ss.Sprites[:len(ss.Sprites)-1]
}

// Clear 移除全部精灵
func (ss *SpriteSystem) Clear() {
	clear(ss.Sprites)
	ss.Sprites = ss.Sprites[:0]
}

// RemoveNear 移除所有与 point 距离严格小于 dist 的精灵
//
// 每移除一个精灵播放一次碰撞音效。
//
// 返回：
//   - int: 移除的精灵数
func (ss *SpriteSystem) RemoveNear(point components.Vec2, dist float64) int {
	removed := ss.filter(func(s *components.Sprite) bool {
		return s.Position.DistanceTo(point) < dist
	})
	if ss.CollideSound != nil {
		for i := 0; i < removed; i++ {
			ss.CollideSound.Play()
		}
	}
	return removed
}

// Update 移除过期精灵，然后推进剩余精灵一帧
func (ss *SpriteSystem) Update() {
	if len(ss.Sprites) == 0 {
		return
	}

	now := ss.clock.ElapsedMillis()
	ss.filter(func(s *components.Sprite) bool {
		return s.Expired(now)
	})

	fps := ss.clock.FrameRate()
	if fps <= 0 {
		return
	}
	dt := 1 / fps
	applyForces := len(ss.forces) > 0

	for i := range ss.Sprites {
		s := &ss.Sprites[i]
		if applyForces {
			var acc components.Vec2
			for _, f := range ss.forces {
				if f.Once() && s.Launched {
					continue
				}
				acc = acc.Add(f.Acceleration(s, ss.rng))
			}
			s.Velocity = s.Velocity.Add(acc.Scale(dt)).Scale(ss.Damping)
		}
		s.Launched = true
		s.Position = s.Position.Add(s.Velocity.Scale(dt))
	}
}

// Draw 按插入顺序绘制所有精灵
func (ss *SpriteSystem) Draw(screen *ebiten.Image) {
	for i := range ss.Sprites {
		ss.Sprites[i].Draw(screen)
	}
}

// filter 原地移除 drop 返回 true 的精灵，保持剩余精灵顺序
func (ss *SpriteSystem) filter(drop func(s *components.Sprite) bool) int {
	kept := ss.Sprites[:0]
	for i := range ss.Sprites {
		if drop(&ss.Sprites[i]) {
			continue
		}
		kept = append(kept, ss.Sprites[i])
	}
	removed := len(ss.Sprites) - len(kept)
	clear(ss.Sprites[len(kept):])
	ss.Sprites = kept
	return removed
}
