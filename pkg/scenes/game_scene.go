// Package scenes 提供游戏场景实现
package scenes

import (
	"log"

	"github.com/decker502/alienwave/pkg/components"
	"github.com/decker502/alienwave/pkg/config"
	"github.com/decker502/alienwave/pkg/entities"
	"github.com/decker502/alienwave/pkg/game"
	"github.com/decker502/alienwave/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SceneDeps 场景依赖；除 Config 和 Clock 外都可以为 nil
type SceneDeps struct {
	Config    *config.GameConfig
	Clock     game.Clock
	Resources *game.ResourceManager
	Audio     *game.AudioManager
	Settings  *game.SettingsManager
	Random    systems.Random
}

// GameScene 主游戏场景
//
// 持有玩家飞船、奖励、敌人波次和特效发射器，每帧按固定顺序推进：
// 背景 -> 入场动画 -> 玩家 -> 特效 -> （开局后）升级/掉落/波次/碰撞/结算。
// 按 Enter 时整个场景状态重建。
type GameScene struct {
	deps SceneDeps
	cfg  *config.GameConfig
	w, h float64
	area systems.PlayArea

	state      *game.GameState
	world      donburi.World
	collisions *systems.CollisionSystem
	controller *systems.PlayerController

	player        *systems.Emitter
	bonus         *systems.Emitter
	waves         []*systems.Emitter
	steering      []*systems.WaveSteering
	explosion     *systems.Emitter
	shipExplosion *systems.Emitter
	thruster      *systems.Emitter

	fireSound game.Sound

	introTween  *gween.Tween
	introDone   bool
	bannerTween *gween.Tween
	bannerAlpha float32

	background *ebiten.Image
	bgOffset   float64

	showPath         bool
	showInstructions bool
	hideHUD          bool

	lastDrop     int
	lastPlayTime float64 // 上一局时长（毫秒），重开后用于提高波次速率
}

// NewGameScene 创建并初始化游戏场景
func NewGameScene(deps SceneDeps) *GameScene {
	if deps.Random == nil {
		deps.Random = systems.DefaultRandom
	}
	s := &GameScene{
		deps:             deps,
		cfg:              deps.Config,
		showInstructions: true,
	}
	s.w, s.h = s.cfg.WindowSize()
	s.area = systems.NewPlayArea(s.w, s.h, s.cfg.PlayArea.Margin)
	if deps.Settings != nil {
		s.showInstructions = deps.Settings.GetSettings().ShowInstructions
	}
	s.setup()
	return s
}

// setup 重建一局游戏的全部状态
func (s *GameScene) setup() {
	cfg := s.cfg
	clock := s.deps.Clock
	images := s.imageSource()

	if s.state != nil {
		s.lastPlayTime = s.state.CurrentPlayTime
	}
	minutes := s.lastPlayTime / 60000

	s.state = game.NewGameState(cfg.Player.Lives, cfg.Rules.ScorePerLevel)
	s.world = donburi.NewWorld()
	s.collisions = systems.NewCollisionSystem(s.world)
	s.controller = systems.NewPlayerController(cfg.Player.Thrust)
	s.subscribeEvents()

	s.player = entities.NewPlayerEmitter(cfg, clock, images)
	s.player.SetRandom(s.deps.Random)

	s.bonus = entities.NewBonusEmitter(cfg, clock, images)
	s.bonus.SetRandom(s.deps.Random)
	s.bonus.System().CollideSound = s.sound(cfg.Bonus.CollectSound)

	s.waves = s.waves[:0]
	s.steering = s.steering[:0]
	for _, wc := range cfg.Waves {
		e := entities.NewWaveEmitter(cfg, wc, minutes, clock, images)
		e.SetRandom(s.deps.Random)
		e.System().CollideSound = s.sound(wc.CollideSound)
		st := systems.NewWaveSteering(wc, s.w, s.h)
		st.SetRandom(s.deps.Random)
		s.waves = append(s.waves, e)
		s.steering = append(s.steering, st)
	}

	fx := cfg.Effects
	s.explosion = entities.NewEffectEmitter("explosion", fx.Explosion, fx.Forces, clock)
	s.shipExplosion = entities.NewEffectEmitter("ship_explosion", fx.ShipExplosion, fx.Forces, clock)
	s.thruster = entities.NewEffectEmitter("thruster", fx.Thruster, fx.Forces, clock)
	for _, e := range []*systems.Emitter{s.explosion, s.shipExplosion, s.thruster} {
		e.SetRandom(s.deps.Random)
	}
	s.thruster.Position = s.thrusterPosition()
	s.thruster.Start()

	s.fireSound = s.sound(cfg.Player.FireSound)

	s.introTween = gween.New(float32(s.h), float32(s.h*cfg.Player.IntroStopY), float32(cfg.Player.IntroSeconds), ease.OutQuad)
	s.introDone = cfg.Player.IntroSeconds <= 0
	s.bannerTween = nil
	s.bannerAlpha = 0
	s.lastDrop = -1
	s.bgOffset = 0

	if s.deps.Resources != nil {
		s.background = s.deps.Resources.GetImageByID(cfg.Rules.BackgroundImage)
	}
	if s.deps.Audio != nil {
		s.deps.Audio.PlayMusic(cfg.Rules.BackgroundMusic)
		s.deps.Audio.PlaySound(cfg.Rules.OpeningSound)
	}

	log.Printf("[GameScene] Setup complete: %d waves, wave rate bonus %.2f/s", len(s.waves), minutes*0.1)
}

// Update 轮询输入并推进模拟
func (s *GameScene) Update(deltaTime float64) {
	for _, cmd := range pollCommands() {
		s.HandleCommand(cmd)
	}
	s.simulate(deltaTime)
}

// simulate 推进一帧模拟（不读取输入）
func (s *GameScene) simulate(dt float64) {
	now := s.deps.Clock.ElapsedMillis()
	s.scrollBackground()

	if !s.state.Started && !s.introDone {
		y, done := s.introTween.Update(float32(dt))
		s.player.Position.Y = float64(y)
		s.introDone = done
	}

	if !s.state.GameOver {
		s.player.Update()
		s.controller.Update(s.player)
		s.player.Position = s.area.Clamp(s.player.Position)
	}

	s.thruster.Position = s.thrusterPosition()
	s.thruster.Update()
	s.explosion.Update()
	s.shipExplosion.Update()
	s.updateBanner(dt)

	if !s.state.Started || s.state.GameOver {
		return
	}

	s.state.Tick(now)

	if s.state.CheckLevelUp(s.cfg.Rules.LevelUpEvery) {
		s.levelUp()
	}

	s.checkBonusDrop()
	s.bonus.Update()

	active := s.activeWaves()
	for i, e := range active {
		if !e.Started() {
			e.Start()
			continue
		}
		s.steering[i].Step(e, s.state.Level)
	}

	s.collisions.Check(s.player, s.bonus, active)
	game.ProcessGameEvents(s.world)

	if s.state.IsOutOfLives() {
		s.endGame()
		return
	}
	s.state.UpdateLevel()
}

// activeWaves 当前等级下参与游戏的波次
func (s *GameScene) activeWaves() []*systems.Emitter {
	return s.waves[:s.state.ActiveWaveCount(len(s.waves))]
}

// startGame 第一次按下空格：开局并放出当前等级的波次
func (s *GameScene) startGame() {
	s.state.Start(s.deps.Clock.ElapsedMillis())
	s.introDone = true
	for _, e := range s.activeWaves() {
		e.Resume()
	}
}

// levelUp 提升射速并播放提示
func (s *GameScene) levelUp() {
	s.player.Rate *= s.cfg.Rules.FireRateMultiplier
	s.playSound(s.cfg.Rules.LevelUpSound)
	s.bannerTween = gween.New(1, 0, 1.5, ease.InQuad)
	s.bannerAlpha = 1
	log.Printf("[GameScene] Level %d: fire rate %.2f/s", s.state.Level, s.player.Rate)
}

// checkBonusDrop 每 DropIntervalMs 掉落一次奖励
func (s *GameScene) checkBonusDrop() {
	b := s.cfg.Bonus
	if b.DropIntervalMs <= 0 {
		return
	}
	t := s.state.CurrentPlayTime
	slot := int(t / b.DropIntervalMs)
	if slot > s.lastDrop && t-float64(slot)*b.DropIntervalMs <= b.DropWindowMs {
		s.lastDrop = slot
		s.dropBonus()
	}
}

// dropBonus 在顶部随机位置放出奖励
func (s *GameScene) dropBonus() {
	s.bonus.Position = components.Vec2{X: systems.RandRange(s.deps.Random, 0, s.w), Y: 0}
	s.bonus.Start()
	s.playSound(s.cfg.Bonus.DropSound)
}

// endGame 生命耗尽或主动放弃
func (s *GameScene) endGame() {
	if s.state.GameOver {
		return
	}
	now := s.deps.Clock.ElapsedMillis()
	s.state.EndGame(now)

	s.shipExplosion.Position = s.player.Position
	s.shipExplosion.Start()
	s.playSound(s.cfg.Effects.ShipExplosion.Sound)

	s.thruster.Stop()
	s.player.Stop()
	s.player.Update()
	s.bonus.Stop()
	s.bonus.Update()
	if s.fireSound != nil {
		s.fireSound.Stop()
	}
	for _, e := range s.waves {
		e.Stop()
		e.Update()
	}

	if st := s.deps.Settings; st != nil {
		if st.RecordScore(s.state.Score) {
			log.Printf("[GameScene] New best score: %d", s.state.Score)
		}
		if err := st.Save(); err != nil {
			log.Printf("[GameScene] Warning: %v", err)
		}
	}
}

// SaveOnExit 退出时记录最高分
func (s *GameScene) SaveOnExit() bool {
	st := s.deps.Settings
	if st == nil {
		return true
	}
	st.RecordScore(s.state.Score)
	if err := st.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save on exit: %v", err)
		return false
	}
	return true
}

// State 当前局状态
func (s *GameScene) State() *game.GameState {
	return s.state
}

// Player 玩家发射器
func (s *GameScene) Player() *systems.Emitter {
	return s.player
}

// Waves 全部敌人波次
func (s *GameScene) Waves() []*systems.Emitter {
	return s.waves
}

func (s *GameScene) updateBanner(dt float64) {
	if s.bannerTween == nil {
		return
	}
	a, done := s.bannerTween.Update(float32(dt))
	s.bannerAlpha = a
	if done {
		s.bannerTween = nil
		s.bannerAlpha = 0
	}
}

func (s *GameScene) thrusterPosition() components.Vec2 {
	return s.player.Position.Add(components.Vec2{Y: s.player.Height / 2})
}

func (s *GameScene) imageSource() entities.ImageSource {
	if s.deps.Resources == nil {
		return nil
	}
	return s.deps.Resources
}

func (s *GameScene) sound(id string) game.Sound {
	if s.deps.Audio == nil {
		return nil
	}
	return s.deps.Audio.Sound(id)
}

func (s *GameScene) playSound(id string) {
	if s.deps.Audio != nil && id != "" {
		s.deps.Audio.PlaySound(id)
	}
}
