package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/alienwave/pkg/components"
	"github.com/decker502/alienwave/pkg/game"
	"github.com/yohamta/donburi"
)

// 玩家以 3 发/秒开火 2 秒，静止不动：约 6 发，出生时间递增，起点在飞船上方 30 像素
func TestScenarioPlayerFires(t *testing.T) {
	clock := game.NewManualClock(60)
	gun := NewEmitter("player", clock)
	gun.Position = components.Vec2{X: 512, Y: 512}
	gun.SpawnVelocity = components.Vec2{X: 0, Y: -1000}
	gun.Rate = 3
	gun.Lifespan = 768

	gun.Start()
	var births []float64
	for i := 0; i < 120; i++ {
		clock.Step()
		before := gun.SpawnedTotal()
		gun.Update()
		if gun.SpawnedTotal() > before {
			newest := gun.System().Sprites[gun.System().Len()-1]
			births = append(births, newest.BirthTime)

			origin := newest.Position.Sub(newest.Velocity.Scale(1.0 / 60))
			if !approxVec(origin, components.Vec2{X: 512, Y: 482}) {
				t.Errorf("missile spawned at %v, want {512 482}", origin)
			}
		}
	}

	if n := len(births); n < 5 || n > 7 {
		t.Fatalf("fired %d missiles, want 6 +/- 1", n)
	}
	for i := 1; i < len(births); i++ {
		if births[i] <= births[i-1] {
			t.Errorf("birth times not increasing: %v", births)
		}
	}
}

// 导弹与两个敌人重叠：只有一个命中事件，分数 +1，两个敌人都移除
func TestScenarioScoreOnHit(t *testing.T) {
	clock := game.NewManualClock(60)
	world := donburi.NewWorld()
	state := game.NewGameState(3, 10)
	game.EnemyDestroyedEvent.Subscribe(world, func(_ donburi.World, e game.EnemyDestroyed) {
		state.AddScore(1)
	})

	player, bonus, wave := collisionFixture(clock)
	player.System().Add(spriteAt("missile", 300, 300))
	wave.System().Add(spriteAt("alien", 300, 300))
	wave.System().Add(spriteAt("alien", 310, 300))

	NewCollisionSystem(world).Check(player, bonus, []*Emitter{wave})
	game.ProcessGameEvents(world)

	if state.Score != 1 {
		t.Errorf("score = %d, want 1", state.Score)
	}
	if wave.System().Len() != 0 {
		t.Errorf("enemies not removed: %d left", wave.System().Len())
	}
}

// 奖励从顶部落下，飞船在正下方：生命恰好 +1，奖励被移除
func TestScenarioBonusDrop(t *testing.T) {
	clock := game.NewManualClock(60)
	world := donburi.NewWorld()
	state := game.NewGameState(3, 10)
	game.BonusCollectedEvent.Subscribe(world, func(_ donburi.World, e game.BonusCollected) {
		state.AddLives(1)
	})

	rng := rand.New(rand.NewSource(21))
	player, bonus, _ := collisionFixture(clock)
	bonus.Mode = SpawnBurst
	bonus.NoChild = 1
	bonus.SpawnVelocity = components.Vec2{X: 0, Y: 200}
	bonus.Lifespan = 7000
	bonus.Position = components.Vec2{X: RandRange(rng, 0, 1024), Y: 0}
	player.Position = components.Vec2{X: bonus.Position.X, Y: 300}

	cs := NewCollisionSystem(world)
	bonus.Start()
	for i := 0; i < 200; i++ {
		clock.Step()
		bonus.Update()
		cs.Check(player, bonus, nil)
		game.ProcessGameEvents(world)
	}

	if state.Lives != 4 {
		t.Errorf("lives = %d, want 4", state.Lives)
	}
	if bonus.System().Len() != 0 {
		t.Errorf("bonus sprite should be gone, %d left", bonus.System().Len())
	}
}
