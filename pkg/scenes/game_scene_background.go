package scenes

import (
	"github.com/decker502/alienwave/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// scrollBackground 开局后背景向下滚动，超过窗口高度后回到 0
func (s *GameScene) scrollBackground() {
	if !s.state.Started {
		return
	}
	if s.bgOffset > s.h {
		s.bgOffset = 0
	}
	s.bgOffset += s.cfg.Rules.BackgroundScroll * s.deps.Clock.FrameRate()
}

// drawBackground 上下拼接两张背景实现无缝滚动；没有背景图时填充纯色
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	if s.background == nil {
		screen.Fill(colornames.Midnightblue)
		return
	}
	for _, y := range []float64{s.bgOffset, s.bgOffset - s.h} {
		center := components.Vec2{X: s.w / 2, Y: y + s.h/2}
		components.DrawImageCentered(screen, s.background, center, s.w, s.h, 0)
	}
}
