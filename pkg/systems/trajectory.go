package systems

import (
	"math"

	"github.com/decker502/alienwave/pkg/components"
)

// 轨迹斜率采样参数：速度 = SlopeGain * (f(t+SlopeStep) - f(t))
const (
	SlopeStep = 2.0
	SlopeGain = 60.0
)

// Curve 以窗口尺寸为周期基准的正弦轨迹
//
// Eval 沿 X 推进：y = -scale*sin(cycles*x*π/W) + H/2
// EvalY 沿 Y 推进：x = -scale*sin(cycles*y*π/H) + W/2
type Curve struct {
	Width  float64
	Height float64
}

// Eval 返回 X 方向轨迹上横坐标为 x 的点
func (c Curve) Eval(x, scale, cycles float64) components.Vec2 {
	u := cycles * x * math.Pi / c.Width
	return components.Vec2{X: x, Y: -scale*math.Sin(u) + c.Height/2}
}

// EvalY 返回 Y 方向轨迹上纵坐标为 y 的点
func (c Curve) EvalY(y, scale, cycles float64) components.Vec2 {
	u := cycles * y * math.Pi / c.Height
	return components.Vec2{X: -scale*math.Sin(u) + c.Width/2, Y: y}
}

// SlopeX 在 X 轨迹上 x 处的有限差分速度
// reverse 为 true 时沿 X 负方向推进
func (c Curve) SlopeX(x, scale, cycles float64, reverse bool) components.Vec2 {
	d := c.Eval(x+SlopeStep, scale, cycles).Sub(c.Eval(x, scale, cycles)).Scale(SlopeGain)
	if reverse {
		return d.Scale(-1)
	}
	return d
}

// SlopeY 在 Y 轨迹上 y 处的有限差分速度
func (c Curve) SlopeY(y, scale, cycles float64, reverse bool) components.Vec2 {
	d := c.EvalY(y+SlopeStep, scale, cycles).Sub(c.EvalY(y, scale, cycles)).Scale(SlopeGain)
	if reverse {
		return d.Scale(-1)
	}
	return d
}
