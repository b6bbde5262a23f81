package systems

import (
	"github.com/decker502/alienwave/pkg/config"
)

// WaveSteering 每帧驱动一个敌人波次
//
// 发射器按 Jitter 在某一轴上随机重定位；子精灵的速度按 Trajectory 重新计算。
type WaveSteering struct {
	Config config.WaveConfig
	Curve  Curve
	rng    Random
}

// NewWaveSteering 创建波次驱动
func NewWaveSteering(cfg config.WaveConfig, width, height float64) *WaveSteering {
	return &WaveSteering{
		Config: cfg,
		Curve:  Curve{Width: width, Height: height},
		rng:    DefaultRandom,
	}
}

// SetRandom 替换随机源
func (w *WaveSteering) SetRandom(r Random) {
	w.rng = orDefault(r)
}

// Step 先发射并推进，再为下一帧重定位发射器并更新子精灵速度
// 本帧新精灵出现在上一帧抖动后的位置
func (w *WaveSteering) Step(e *Emitter, level int) {
	e.Update()
	w.SteerEmitter(e)
	w.SteerSprites(e, level)
}

// SteerEmitter 调整下一次发射使用的发射器位置和发射速度
func (w *WaveSteering) SteerEmitter(e *Emitter) {
	j := w.Config.Jitter
	switch j.Axis {
	case config.JitterX:
		e.Position.X = RandRange(w.rng, j.Min*w.Curve.Width, j.Max*w.Curve.Width)
	case config.JitterY:
		e.Position.Y = RandRange(w.rng, j.Min*w.Curve.Height, j.Max*w.Curve.Height)
	}

	if w.Config.Trajectory.Kind == config.TrajectoryDrift {
		vy := w.Config.SpawnVelocity.Y
		e.SpawnVelocity.X = RandRange(w.rng, -vy/2, vy/2)
	}
}

// SteerSprites 让波次中的每个精灵沿轨迹运动
func (w *WaveSteering) SteerSprites(e *Emitter, level int) {
	tr := w.Config.Trajectory
	cycles := tr.Cycles
	if tr.CyclesFromLevel {
		cycles = float64(level)
	}

	sprites := e.System().Sprites
	switch tr.Kind {
	case config.TrajectoryCurveX:
		for i := range sprites {
			sprites[i].Velocity = w.Curve.SlopeX(sprites[i].Position.X, tr.Scale, cycles, tr.Reverse)
		}
	case config.TrajectoryCurveY:
		for i := range sprites {
			sprites[i].Velocity = w.Curve.SlopeY(sprites[i].Position.Y, tr.Scale, cycles, tr.Reverse)
		}
	}
}
