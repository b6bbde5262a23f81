package systems

import (
	"math"

	"github.com/decker502/alienwave/pkg/components"
)

// Direction 方向键输入
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// PlayerController 把方向键输入转换为玩家飞船的运动
//
// 按住方向键时该轴的速度分量按 Thrust 加速；松开后加速度归零，
// 若分量仍高于 Speed 阈值则按阻尼衰减，并沿最后的方向继续滑行。
// 两个轴分别记忆最后的方向，反向时沿用已有的速度大小。
type PlayerController struct {
	Thrust float64

	dir      Direction
	lastVert Direction
	lastHorz Direction
}

// NewPlayerController 创建控制器
func NewPlayerController(thrust float64) *PlayerController {
	return &PlayerController{Thrust: thrust}
}

// Press 按下方向键
func (pc *PlayerController) Press(d Direction) {
	pc.dir = d
	switch d {
	case DirUp, DirDown:
		pc.lastVert = d
	case DirLeft, DirRight:
		pc.lastHorz = d
	}
}

// Release 松开方向键
func (pc *PlayerController) Release() {
	pc.dir = DirNone
}

// Direction 当前按下的方向
func (pc *PlayerController) Direction() Direction {
	return pc.dir
}

// Update 推进玩家发射器一帧
func (pc *PlayerController) Update(e *Emitter) {
	fps := e.clock.FrameRate()
	if fps <= 0 {
		return
	}
	dt := 1 / fps

	switch pc.dir {
	case DirUp, DirDown:
		e.Acceleration = components.Vec2{X: 0, Y: pc.Thrust}
		e.VerVelocity = e.VerVelocity.Add(e.Acceleration.Scale(dt))
		e.Position = e.Position.Add(signed(pc.dir == DirUp, e.VerVelocity).Scale(dt))
	case DirLeft, DirRight:
		e.Acceleration = components.Vec2{X: pc.Thrust, Y: 0}
		e.HorVelocity = e.HorVelocity.Add(e.Acceleration.Scale(dt))
		e.Position = e.Position.Add(signed(pc.dir == DirLeft, e.HorVelocity).Scale(dt))
	default:
		e.Acceleration = components.Vec2{}
		if math.Abs(e.VerVelocity.Y) > e.Speed {
			e.VerVelocity = e.VerVelocity.Scale(e.Damping)
			e.Position = e.Position.Add(signed(pc.lastVert == DirUp, e.VerVelocity).Scale(dt))
		}
		if math.Abs(e.HorVelocity.X) > e.Speed {
			e.HorVelocity = e.HorVelocity.Scale(e.Damping)
			e.Position = e.Position.Add(signed(pc.lastHorz == DirLeft, e.HorVelocity).Scale(dt))
		}
	}
}

func signed(negate bool, v components.Vec2) components.Vec2 {
	if negate {
		return v.Scale(-1)
	}
	return v
}

// PlayArea 玩家可活动的矩形区域（闭区间）
type PlayArea struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewPlayArea 以窗口尺寸和边距构造活动区域：[margin, w] x [margin, h]
func NewPlayArea(w, h, margin float64) PlayArea {
	return PlayArea{MinX: margin, MinY: margin, MaxX: w, MaxY: h}
}

// Clamp 把点限制在区域内
func (a PlayArea) Clamp(p components.Vec2) components.Vec2 {
	return components.Vec2{
		X: math.Max(a.MinX, math.Min(a.MaxX, p.X)),
		Y: math.Max(a.MinY, math.Min(a.MaxY, p.Y)),
	}
}

// Contains 点是否在区域内
func (a PlayArea) Contains(p components.Vec2) bool {
	return p.X >= a.MinX && p.X <= a.MaxX && p.Y >= a.MinY && p.Y <= a.MaxY
}
