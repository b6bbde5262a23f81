package scenes

import (
	"github.com/decker502/alienwave/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// 调试路径参数：幅度与周期数
const (
	debugPathScale  = 100.0
	debugPathCycles = 4.0
)

// drawDebugPaths 绘制两条参考曲线和可移动区域
func (s *GameScene) drawDebugPaths(screen *ebiten.Image) {
	curve := systems.Curve{Width: s.w, Height: s.h}
	for y := 0.0; y < s.h; y++ {
		p := curve.EvalY(y, debugPathScale, debugPathCycles)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 1, colornames.Lime, false)
	}
	for x := 0.0; x < s.w; x++ {
		p := curve.Eval(x, debugPathScale, debugPathCycles)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 1, colornames.Yellow, false)
	}

	a := s.area
	vector.StrokeRect(screen, float32(a.MinX), float32(a.MinY),
		float32(a.MaxX-a.MinX), float32(a.MaxY-a.MinY), 1, colornames.Red, false)
}
