package entities

import (
	"testing"

	"github.com/decker502/alienwave/pkg/components"
	"github.com/decker502/alienwave/pkg/config"
	"github.com/decker502/alienwave/pkg/game"
	"github.com/decker502/alienwave/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeImages 按 ID 返回预置图片
type fakeImages map[string]*ebiten.Image

func (f fakeImages) GetImageByID(id string) *ebiten.Image { return f[id] }

func TestNewPlayerEmitter(t *testing.T) {
	cfg := config.DefaultGameConfig()
	images := fakeImages{config.ImageMissile: ebiten.NewImage(6, 20)}

	e := NewPlayerEmitter(cfg, game.NewManualClock(60), images)

	if e.Position != (components.Vec2{X: 512, Y: 768}) {
		t.Errorf("position = %v, want bottom center", e.Position)
	}
	if e.SpawnVelocity != (components.Vec2{X: 0, Y: -1000}) || e.Rate != 3 {
		t.Errorf("spawn velocity/rate = %v/%v", e.SpawnVelocity, e.Rate)
	}
	if e.Lifespan != 768 {
		t.Errorf("missile lifespan = %v, want window height 768", e.Lifespan)
	}
	if e.ChildWidth != 6 || e.ChildHeight != 20 {
		t.Errorf("missile size = %vx%v, want 6x20", e.ChildWidth, e.ChildHeight)
	}
	if e.Width != 60 || e.Height != 90 {
		t.Errorf("ship size = %vx%v, want 60x90", e.Width, e.Height)
	}
	if e.Damping != 0.99 || e.Started() {
		t.Errorf("damping/started = %v/%v", e.Damping, e.Started())
	}
}

func TestNewBonusEmitter(t *testing.T) {
	e := NewBonusEmitter(config.DefaultGameConfig(), game.NewManualClock(60), nil)

	if e.Drawable {
		t.Error("bonus emitter should be hidden")
	}
	if e.Mode != systems.SpawnBurst || e.NoChild != 1 {
		t.Errorf("mode/noChild = %v/%d, want burst/1", e.Mode, e.NoChild)
	}
	if e.ChildHeight != 50 || e.Lifespan != 7000 {
		t.Errorf("child height/lifespan = %v/%v", e.ChildHeight, e.Lifespan)
	}
}

func TestNewWaveEmitter(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name     string
		wave     int
		minutes  float64
		wantPos  components.Vec2
		wantRate float64
	}{
		{"alien1", 0, 0, components.Vec2{X: 512, Y: 10}, 1},
		{"alien3 两分钟后", 2, 2, components.Vec2{X: 1024, Y: 256}, 0.7},
		{"alien5", 4, 0, components.Vec2{X: 0, Y: 512}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewWaveEmitter(cfg, cfg.Waves[tt.wave], tt.minutes, game.NewManualClock(60), nil)
			if !approx(e.Position.X, tt.wantPos.X) || !approx(e.Position.Y, tt.wantPos.Y) {
				t.Errorf("position = %v, want %v", e.Position, tt.wantPos)
			}
			if !approx(e.Rate, tt.wantRate) {
				t.Errorf("rate = %v, want %v", e.Rate, tt.wantRate)
			}
			if e.Drawable || e.MuzzleOffset != 0 {
				t.Errorf("wave emitters are hidden without muzzle offset")
			}
			if e.ChildWidth != cfg.Waves[tt.wave].ChildSize.X {
				t.Errorf("child width = %v", e.ChildWidth)
			}
		})
	}
}

func TestNewEffectEmitter(t *testing.T) {
	cfg := config.DefaultGameConfig()

	explosion := NewEffectEmitter("explosion", cfg.Effects.Explosion, cfg.Effects.Forces, game.NewManualClock(60))
	if explosion.Mode != systems.SpawnOneShot || explosion.Shape != systems.ShapeRadial {
		t.Errorf("explosion mode/shape = %v/%v", explosion.Mode, explosion.Shape)
	}
	if explosion.GroupSize != 50 || explosion.Lifespan != 500 {
		t.Errorf("explosion group/lifespan = %d/%v", explosion.GroupSize, explosion.Lifespan)
	}
	if n := len(explosion.System().Forces()); n != 3 {
		t.Errorf("explosion forces = %d, want 3", n)
	}
	if explosion.System().Damping != 0.99 {
		t.Errorf("explosion damping = %v", explosion.System().Damping)
	}

	thruster := NewEffectEmitter("thruster", cfg.Effects.Thruster, cfg.Effects.Forces, game.NewManualClock(60))
	if thruster.Mode != systems.SpawnRate || thruster.Rate != 5 || thruster.Shape != systems.ShapeDisc {
		t.Errorf("thruster mode/rate/shape = %v/%v/%v", thruster.Mode, thruster.Rate, thruster.Shape)
	}
	if thruster.DiscRadius != 5 || thruster.GroupSize != 100 {
		t.Errorf("thruster disc/group = %v/%d", thruster.DiscRadius, thruster.GroupSize)
	}
}

// 爆炸：Start 后一次发射 50 个，全部在寿命后消失
func TestExplosionLifecycle(t *testing.T) {
	cfg := config.DefaultGameConfig()
	clock := game.NewManualClock(60)
	e := NewEffectEmitter("explosion", cfg.Effects.Explosion, cfg.Effects.Forces, clock)
	e.Position = components.Vec2{X: 200, Y: 200}

	e.Start()
	e.Update()
	if e.System().Len() != 50 {
		t.Fatalf("explosion spawned %d, want 50", e.System().Len())
	}

	for i := 0; i < 40; i++ {
		clock.Step()
		e.Update()
	}
	if e.System().Len() != 0 {
		t.Errorf("%d particles outlived 500ms", e.System().Len())
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
