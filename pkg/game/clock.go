package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFrameRate 帧率读数不可用时的回退值
const DefaultFrameRate = 60.0

// Clock 模拟时钟
//
// 精灵年龄、发射间隔以毫秒计，积分步长为 1/FrameRate 秒。
// 所有模拟代码都通过 Clock 读取时间，测试中可以替换为 ManualClock。
type Clock interface {
	// ElapsedMillis 返回自时钟启动以来经过的毫秒数（单调递增）
	ElapsedMillis() float64
	// FrameRate 返回当前帧率，保证大于 0
	FrameRate() float64
}

// EbitenClock 基于墙上时间和 ebiten 实测 TPS 的时钟
type EbitenClock struct {
	start time.Time
}

// NewEbitenClock 创建从当前时刻开始计时的时钟
func NewEbitenClock() *EbitenClock {
	return &EbitenClock{start: time.Now()}
}

// ElapsedMillis 返回经过的毫秒数
func (c *EbitenClock) ElapsedMillis() float64 {
	return float64(time.Since(c.start).Microseconds()) / 1000
}

// FrameRate 返回 ebiten 实测 TPS
// 启动初期实测值为 0，此时回退到目标 TPS
func (c *EbitenClock) FrameRate() float64 {
	if tps := ebiten.ActualTPS(); tps >= 1 {
		return tps
	}
	if tps := ebiten.TPS(); tps > 0 {
		return float64(tps)
	}
	return DefaultFrameRate
}

// ManualClock 手动推进的时钟，用于测试和离线模拟
type ManualClock struct {
	Millis float64
	FPS    float64
}

// NewManualClock 创建帧率为 fps、时间为 0 的手动时钟
func NewManualClock(fps float64) *ManualClock {
	return &ManualClock{FPS: fps}
}

// ElapsedMillis 返回当前时间
func (c *ManualClock) ElapsedMillis() float64 {
	return c.Millis
}

// FrameRate 返回配置的帧率，非正数时回退到 DefaultFrameRate
func (c *ManualClock) FrameRate() float64 {
	if c.FPS <= 0 {
		return DefaultFrameRate
	}
	return c.FPS
}

// Advance 推进 ms 毫秒
func (c *ManualClock) Advance(ms float64) {
	c.Millis += ms
}

// Step 推进一帧
func (c *ManualClock) Step() {
	c.Millis += 1000 / c.FrameRate()
}
