package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/alienwave/pkg/components"
)

// Random 随机数来源，*rand.Rand 满足该接口
type Random interface {
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// DefaultRandom 使用 math/rand 全局源
var DefaultRandom Random = globalRandom{}

// RandRange 返回 [lo, hi) 内的均匀随机数
func RandRange(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandomUnit 返回随机方向的单位向量
func RandomUnit(r Random) components.Vec2 {
	a := r.Float64() * 2 * math.Pi
	return components.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// RandomInDisc 返回半径 radius 的圆盘内均匀分布的偏移
func RandomInDisc(r Random, radius float64) components.Vec2 {
	d := radius * math.Sqrt(r.Float64())
	return RandomUnit(r).Scale(d)
}

func orDefault(r Random) Random {
	if r == nil {
		return DefaultRandom
	}
	return r
}
