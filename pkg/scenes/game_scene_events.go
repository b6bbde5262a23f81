package scenes

import (
	"log"

	"github.com/decker502/alienwave/pkg/game"
	"github.com/yohamta/donburi"
)

// subscribeEvents 订阅碰撞事件，每个新世界调用一次
func (s *GameScene) subscribeEvents() {
	game.EnemyDestroyedEvent.Subscribe(s.world, s.onEnemyDestroyed)
	game.PlayerHitEvent.Subscribe(s.world, s.onPlayerHit)
	game.BonusCollectedEvent.Subscribe(s.world, s.onBonusCollected)
}

// onEnemyDestroyed 每次命中加一分，并在导弹处爆炸
// 一枚导弹同时消灭多个敌人也只算一次命中，Count 仅用于日志
func (s *GameScene) onEnemyDestroyed(_ donburi.World, e game.EnemyDestroyed) {
	s.state.AddScore(1)
	if e.Count > 1 {
		log.Printf("[GameScene] Missile removed %d %s at once", e.Count, e.Wave)
	}
	s.explosion.Position = e.Position
	s.explosion.Start()
	s.playSound(s.cfg.Effects.Explosion.Sound)
}

// onPlayerHit 每个波次每帧的撞击扣一条命，不论撞上几个敌人
func (s *GameScene) onPlayerHit(_ donburi.World, e game.PlayerHit) {
	s.state.AddLives(-1)
	log.Printf("[GameScene] Hit by %s (%d removed), lives=%d", e.Wave, e.Count, s.state.Lives)
}

// onBonusCollected 拾取奖励加一条命
func (s *GameScene) onBonusCollected(_ donburi.World, _ game.BonusCollected) {
	s.state.AddLives(1)
}
