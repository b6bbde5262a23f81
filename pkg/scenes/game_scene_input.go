package scenes

import (
	"log"

	"github.com/decker502/alienwave/pkg/systems"
	"github.com/decker502/alienwave/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Command 场景可以处理的输入指令
type Command int

const (
	CmdNone Command = iota
	CmdFirePress
	CmdFireRelease
	CmdUpPress
	CmdDownPress
	CmdLeftPress
	CmdRightPress
	CmdMoveRelease
	CmdToggleFullscreen
	CmdToggleHUD
	CmdToggleInstructions
	CmdTogglePath
	CmdGiveUp
	CmdRestart
	CmdDropBonus
)

// keyBinding 按键 -> 按下/松开时的指令
type keyBinding struct {
	keys      []ebiten.Key
	onPress   Command
	onRelease Command
}

var keyBindings = []keyBinding{
	{keys: []ebiten.Key{ebiten.KeySpace}, onPress: CmdFirePress, onRelease: CmdFireRelease},
	{keys: []ebiten.Key{ebiten.KeyArrowUp}, onPress: CmdUpPress, onRelease: CmdMoveRelease},
	{keys: []ebiten.Key{ebiten.KeyArrowDown}, onPress: CmdDownPress, onRelease: CmdMoveRelease},
	{keys: []ebiten.Key{ebiten.KeyArrowLeft}, onPress: CmdLeftPress, onRelease: CmdMoveRelease},
	{keys: []ebiten.Key{ebiten.KeyArrowRight}, onPress: CmdRightPress, onRelease: CmdMoveRelease},
	{keys: []ebiten.Key{ebiten.KeyF}, onPress: CmdToggleFullscreen},
	{keys: []ebiten.Key{ebiten.KeyH}, onPress: CmdToggleHUD},
	{keys: []ebiten.Key{ebiten.KeyI}, onPress: CmdToggleInstructions},
	{keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}, onPress: CmdTogglePath},
	{keys: []ebiten.Key{ebiten.KeyX}, onPress: CmdGiveUp},
	{keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, onPress: CmdRestart},
	{keys: []ebiten.Key{ebiten.KeyM}, onPress: CmdDropBonus},
}

// pollCommands 读取本帧的按键变化
func pollCommands() []Command {
	var cmds []Command
	for _, b := range keyBindings {
		if b.onPress != CmdNone && utils.AnyJustPressed(b.keys...) {
			cmds = append(cmds, b.onPress)
		}
		if b.onRelease != CmdNone && utils.AnyJustReleased(b.keys...) {
			cmds = append(cmds, b.onRelease)
		}
	}
	return cmds
}

// HandleCommand 执行一条输入指令
func (s *GameScene) HandleCommand(cmd Command) {
	switch cmd {
	case CmdFirePress:
		if s.state.GameOver {
			return
		}
		// 第一次按下空格只开局，之后才开火
		if !s.state.Started {
			s.startGame()
			return
		}
		s.player.Resume()
		if s.fireSound != nil {
			s.fireSound.Play()
		}
	case CmdFireRelease:
		if !s.state.Started || s.state.GameOver {
			return
		}
		s.player.Stop()
		if s.fireSound != nil {
			s.fireSound.Stop()
		}
	case CmdUpPress:
		s.controller.Press(systems.DirUp)
	case CmdDownPress:
		s.controller.Press(systems.DirDown)
	case CmdLeftPress:
		s.controller.Press(systems.DirLeft)
	case CmdRightPress:
		s.controller.Press(systems.DirRight)
	case CmdMoveRelease:
		s.controller.Release()
	case CmdToggleFullscreen:
		on := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(on)
		if s.deps.Settings != nil {
			s.deps.Settings.SetFullscreen(on)
		}
	case CmdToggleHUD:
		s.hideHUD = !s.hideHUD
	case CmdToggleInstructions:
		s.showInstructions = !s.showInstructions
		if s.deps.Settings != nil {
			s.deps.Settings.SetShowInstructions(s.showInstructions)
		}
	case CmdTogglePath:
		s.showPath = !s.showPath
	case CmdGiveUp:
		if s.state.Started {
			s.endGame()
		}
	case CmdRestart:
		if s.state.GameOver {
			log.Printf("[GameScene] Restarting (last game %.1fs)", s.state.PlayTime)
			s.setup()
		}
	case CmdDropBonus:
		if s.state.Started && !s.state.GameOver {
			s.dropBonus()
		}
	}
}
