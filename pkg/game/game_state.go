package game

import (
	"log"

	"github.com/google/uuid"
)

// ScorePerLevel 每升一级需要的分数
const ScorePerLevel = 10

// GameState 一局游戏的状态：分数、生命、等级和计时
//
// 由 GameScene 持有；按 Enter 重开时整体重建。
type GameState struct {
	RunID string // 本局唯一标识，仅用于日志

	Score int
	Lives int
	Level int

	Started  bool // 玩家是否已按下空格开始
	GameOver bool

	GameStartTime   float64 // 开始时的时钟读数（毫秒）
	CurrentPlayTime float64 // 本局已进行的时间（毫秒）
	PlayTime        float64 // 结束时记录的时长（秒）

	scorePerLevel int
	levelUpArmed  bool
}

// NewGameState 创建新一局的状态
//
// 参数：
//   - lives: 初始生命数
//   - scorePerLevel: 每级所需分数，<= 0 时使用 ScorePerLevel
func NewGameState(lives, scorePerLevel int) *GameState {
	if scorePerLevel <= 0 {
		scorePerLevel = ScorePerLevel
	}
	gs := &GameState{
		RunID:         uuid.NewString(),
		Lives:         lives,
		Level:         1,
		scorePerLevel: scorePerLevel,
		levelUpArmed:  true,
	}
	log.Printf("[GameState] New run %s (lives=%d)", gs.RunID, lives)
	return gs
}

// Start 记录开始时间
func (gs *GameState) Start(now float64) {
	gs.Started = true
	gs.GameStartTime = now
	log.Printf("[GameState] Run %s started at %.0fms", gs.RunID, now)
}

// Tick 更新本局时长
func (gs *GameState) Tick(now float64) {
	if gs.Started && !gs.GameOver {
		gs.CurrentPlayTime = now - gs.GameStartTime
	}
}

// UpdateLevel 根据分数重新计算等级：level = score/scorePerLevel + 1
func (gs *GameState) UpdateLevel() int {
	gs.Level = gs.Score/gs.scorePerLevel + 1
	return gs.Level
}

// CheckLevelUp 检查是否触发"升级奖励"
//
// 等级为 every 的倍数时只触发一次，离开该等级后重新上膛。
// every <= 0 时从不触发。
func (gs *GameState) CheckLevelUp(every int) bool {
	if every <= 0 {
		return false
	}
	if gs.Level%every == 0 {
		if gs.levelUpArmed {
			gs.levelUpArmed = false
			return true
		}
		return false
	}
	gs.levelUpArmed = true
	return false
}

// ActiveWaveCount 返回当前等级下活跃的波次数：min(level, total)
func (gs *GameState) ActiveWaveCount(total int) int {
	return max(0, min(gs.Level, total))
}

// AddScore 加分
func (gs *GameState) AddScore(n int) {
	gs.Score += n
}

// AddLives 增减生命，生命不会低于 0
func (gs *GameState) AddLives(n int) {
	gs.Lives = max(0, gs.Lives+n)
}

// IsOutOfLives 生命是否耗尽
func (gs *GameState) IsOutOfLives() bool {
	return gs.Lives <= 0
}

// EndGame 结束本局并记录时长
// 重复调用无效
func (gs *GameState) EndGame(now float64) {
	if gs.GameOver {
		return
	}
	gs.Tick(now)
	gs.GameOver = true
	gs.PlayTime = gs.CurrentPlayTime / 1000
	log.Printf("[GameState] Run %s over: score=%d level=%d time=%.1fs", gs.RunID, gs.Score, gs.Level, gs.PlayTime)
}
