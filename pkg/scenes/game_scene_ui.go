package scenes

import (
	"fmt"

	"github.com/decker502/alienwave/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// 居中面板相对屏幕中心的水平偏移
const panelOffsetX = 85.0

// Draw 绘制整个场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	if s.showPath {
		s.drawDebugPaths(screen)
	}

	s.explosion.Draw(screen)
	s.shipExplosion.Draw(screen)
	s.thruster.Draw(screen)

	for _, e := range s.activeWaves() {
		e.Draw(screen)
	}

	if s.state.GameOver {
		s.drawGameOver(screen)
		return
	}

	s.player.Draw(screen)
	s.bonus.Draw(screen)

	if !s.state.Started {
		s.drawTitle(screen)
	}
	if s.showInstructions {
		s.drawInstructions(screen)
	}
	if s.state.Started && !s.hideHUD {
		s.drawHUD(screen)
	}
	s.drawBanner(screen)
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	utils.DrawHighlightedText(screen, fmt.Sprintf("Score: %d", s.state.Score), 10, 20)
	utils.DrawHighlightedText(screen, fmt.Sprintf("Lives: %d", s.state.Lives), 10, 40)
	utils.DrawHighlightedText(screen, fmt.Sprintf("Level %d", s.state.Level), 10, 60)
}

func (s *GameScene) drawTitle(screen *ebiten.Image) {
	x, y := s.w/2-panelOffsetX, s.h/2
	if title := s.cfg.Rules.TitleText; title != "" {
		utils.DrawCenteredText(screen, title, s.w/2, y-120, colornames.Gold, 1)
	}
	utils.DrawHighlightedText(screen, "Press spacebar to begin!", x, y-50)
	utils.DrawHighlightedText(screen, "Press i for instruction", x, y-30)
}

func (s *GameScene) drawInstructions(screen *ebiten.Image) {
	const help = "Press space bar to fire\nRelease to stop\n" +
		"Arrow keys to move\n" +
		"F fullscreen  H hide HUD\n" +
		"Shift show paths  X give up"
	utils.DrawHighlightedText(screen, help, s.w/2-panelOffsetX, s.h/2+20)
}

func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	x, y := s.w/2-panelOffsetX, s.h/2
	utils.DrawHighlightedText(screen, "GAME OVER", x, y-50)
	utils.DrawHighlightedText(screen, fmt.Sprintf("Your High Score: %d", s.state.Score), x, y-20)
	if st := s.deps.Settings; st != nil {
		utils.DrawHighlightedText(screen, fmt.Sprintf("Best Score: %d", st.GetSettings().BestScore), x, y+10)
	}
	utils.DrawHighlightedText(screen, fmt.Sprintf("Your Level: %d", s.state.Level), x, y+40)
	utils.DrawHighlightedText(screen, fmt.Sprintf("Total play time: %d", int(s.state.PlayTime)), x, y+60)
	utils.DrawHighlightedText(screen, "Press Enter to start again", x, y+80)
}

// drawBanner 升级提示，透明度由补间动画驱动
func (s *GameScene) drawBanner(screen *ebiten.Image) {
	if s.bannerAlpha <= 0 {
		return
	}
	msg := fmt.Sprintf("LEVEL %d  FIRE RATE UP", s.state.Level)
	utils.DrawCenteredText(screen, msg, s.w/2, s.h/3, colornames.Orange, s.bannerAlpha)
}
