package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the game with its own update and rendering logic.
type Scene interface {
	// Update advances the scene. deltaTime is the time since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时持久化状态
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
