package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/alienwave/pkg/components"
	"github.com/decker502/alienwave/pkg/game"
	"pgregory.net/rapid"
)

func TestNewEmitterDefaults(t *testing.T) {
	e := NewEmitter("test", game.NewManualClock(60))

	if e.Started() {
		t.Error("new emitter should not be started")
	}
	if e.Mode != SpawnRate || e.Rate != 1 {
		t.Errorf("mode/rate = %v/%v, want rate/1", e.Mode, e.Rate)
	}
	if e.Lifespan != components.Immortal {
		t.Errorf("child lifespan = %v, want immortal", e.Lifespan)
	}
	if e.SpawnVelocity != (components.Vec2{X: 100, Y: 100}) {
		t.Errorf("spawn velocity = %v, want {100 100}", e.SpawnVelocity)
	}
	if e.Width != 50 || e.Height != 50 || e.ChildWidth != 10 || e.ChildHeight != 10 {
		t.Errorf("sizes = %vx%v child %vx%v", e.Width, e.Height, e.ChildWidth, e.ChildHeight)
	}
	if !e.Drawable {
		t.Error("new emitter should be drawable")
	}
}

func TestEmitterBurstMode(t *testing.T) {
	clock := game.NewManualClock(60)
	e := NewEmitter("bonus", clock)
	e.Mode = SpawnBurst
	e.NoChild = 3
	e.SpawnVelocity = components.Vec2{}
	e.Position = components.Vec2{X: 100, Y: 50}

	e.Start()
	for i := 0; i < 10; i++ {
		clock.Step()
		e.Update()
	}

	if e.Count() != 3 || e.SpawnedTotal() != 3 {
		t.Errorf("count/spawned = %d/%d, want 3/3", e.Count(), e.SpawnedTotal())
	}
	for _, s := range e.System().Sprites {
		if s.Position != e.Position {
			t.Errorf("burst sprite at %v, want emitter position %v", s.Position, e.Position)
		}
	}

	// 重新 Start 重置计数
	e.Start()
	clock.Step()
	e.Update()
	if e.Count() != 1 || e.SpawnedTotal() != 4 {
		t.Errorf("after restart count/spawned = %d/%d, want 1/4", e.Count(), e.SpawnedTotal())
	}
}

func TestEmitterRateModeInterval(t *testing.T) {
	clock := game.NewManualClock(60)
	e := NewEmitter("gun", clock)
	e.Rate = 3
	e.Start()

	var births []float64
	for i := 0; i < 120; i++ {
		clock.Step()
		before := e.SpawnedTotal()
		e.Update()
		spawned := e.SpawnedTotal() - before
		if spawned > 1 {
			t.Fatalf("frame %d spawned %d sprites, want at most 1", i, spawned)
		}
		if spawned == 1 {
			births = append(births, e.System().Sprites[e.System().Len()-1].BirthTime)
		}
	}

	if len(births) < 5 || len(births) > 7 {
		t.Fatalf("spawned %d sprites in 2s at rate 3, want about 6", len(births))
	}
	for i := 1; i < len(births); i++ {
		if gap := births[i] - births[i-1]; gap <= 1000.0/3 {
			t.Errorf("gap %d = %vms, want > %vms", i, gap, 1000.0/3)
		}
	}
}

func TestEmitterRateZeroNeverSpawns(t *testing.T) {
	clock := game.NewManualClock(60)
	e := NewEmitter("idle", clock)
	e.Rate = 0
	e.Start()
	for i := 0; i < 600; i++ {
		clock.Step()
		e.Update()
	}
	if e.SpawnedTotal() != 0 {
		t.Errorf("rate 0 spawned %d sprites", e.SpawnedTotal())
	}
}

func TestEmitterMuzzleOffset(t *testing.T) {
	tests := []struct {
		name     string
		velocity components.Vec2
		want     components.Vec2
	}{
		{"向上发射", components.Vec2{X: 0, Y: -1000}, components.Vec2{X: 100, Y: 470}},
		{"零速度不偏移", components.Vec2{}, components.Vec2{X: 100, Y: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := game.NewManualClock(60)
			e := NewEmitter("gun", clock)
			e.Position = components.Vec2{X: 100, Y: 500}
			e.SpawnVelocity = tt.velocity
			e.Start()
			clock.Advance(1001)
			e.Update()

			if e.System().Len() != 1 {
				t.Fatalf("expected one sprite, got %d", e.System().Len())
			}
			s := e.System().Sprites[0]
			// 出生帧已经积分一次
			origin := s.Position.Sub(s.Velocity.Scale(1.0 / 60))
			if !approxVec(origin, tt.want) {
				t.Errorf("spawn position = %v, want %v", origin, tt.want)
			}
		})
	}
}

func TestEmitterStopDrainsAllSprites(t *testing.T) {
	clock := game.NewManualClock(60)
	e := NewEmitter("wave", clock)
	e.Mode = SpawnBurst
	e.NoChild = 5
	e.Start()
	for i := 0; i < 5; i++ {
		clock.Step()
		e.Update()
	}
	if e.System().Len() != 5 {
		t.Fatalf("setup: want 5 sprites, got %d", e.System().Len())
	}

	e.Stop()
	e.Update()

	if e.System().Len() != 0 {
		t.Errorf("stopped emitter kept %d sprites", e.System().Len())
	}
}

func TestEmitterResumeKeepsTimer(t *testing.T) {
	clock := game.NewManualClock(60)
	e := NewEmitter("gun", clock)
	e.Rate = 3
	e.SpawnVelocity = components.Vec2{X: 0, Y: -1000}

	clock.Advance(5000)
	e.Resume()
	e.Update()

	// 计时器从未重置，第一次 Update 立即发射
	if e.SpawnedTotal() != 1 {
		t.Errorf("resume should fire immediately, spawned %d", e.SpawnedTotal())
	}

	e.Stop()
	clock.Step()
	e.Resume()
	e.Update()
	if e.SpawnedTotal() != 1 {
		t.Errorf("resume within interval should not fire, spawned %d", e.SpawnedTotal())
	}
}

func TestEmitterOneShot(t *testing.T) {
	clock := game.NewManualClock(60)
	e := NewEmitter("explosion", clock)
	e.SetRandom(rand.New(rand.NewSource(1)))
	e.Mode = SpawnOneShot
	e.Shape = ShapeRadial
	e.GroupSize = 50
	e.Lifespan = 500
	e.SpawnVelocity = components.Vec2{X: 0, Y: 200}
	e.Position = components.Vec2{X: 300, Y: 300}

	// 未 Start 不发射
	e.Update()
	if e.SpawnedTotal() != 0 {
		t.Fatalf("unstarted one-shot spawned %d", e.SpawnedTotal())
	}

	e.Start()
	e.Update()
	if e.System().Len() != 50 {
		t.Fatalf("one-shot spawned %d, want 50", e.System().Len())
	}
	for _, s := range e.System().Sprites {
		if math.Abs(s.Velocity.Len()-200) > 1e-6 {
			t.Errorf("radial speed = %v, want 200", s.Velocity.Len())
		}
	}

	for i := 0; i < 10; i++ {
		clock.Step()
		e.Update()
	}
	if e.SpawnedTotal() != 50 {
		t.Errorf("one-shot refired: spawned %d", e.SpawnedTotal())
	}
	if !e.Started() {
		t.Error("one-shot emitter should stay started so particles keep updating")
	}

	// 再次 Start：已有粒子保留，新增一组
	e.Start()
	clock.Step()
	e.Update()
	if e.System().Len() != 100 {
		t.Errorf("after second Start len = %d, want 100", e.System().Len())
	}

	// 寿命结束后全部移除
	clock.Advance(600)
	e.Update()
	if e.System().Len() != 0 {
		t.Errorf("expired particles remain: %d", e.System().Len())
	}
}

func TestEmitterDiscShape(t *testing.T) {
	clock := game.NewManualClock(60)
	e := NewEmitter("thruster", clock)
	e.SetRandom(rand.New(rand.NewSource(7)))
	e.Shape = ShapeDisc
	e.DiscRadius = 5
	e.GroupSize = 100
	e.Rate = 5
	e.SpawnVelocity = components.Vec2{}
	e.Position = components.Vec2{X: 40, Y: 40}
	e.Start()
	clock.Advance(201)
	e.Update()

	if e.System().Len() != 100 {
		t.Fatalf("disc spawned %d, want 100", e.System().Len())
	}
	for _, s := range e.System().Sprites {
		if d := s.Position.DistanceTo(e.Position); d > 5+1e-9 {
			t.Errorf("disc sprite %v is %v from center, want <= 5", s.Position, d)
		}
	}
}

func TestEmitterIntegrate(t *testing.T) {
	e := NewEmitter("body", game.NewManualClock(10))
	e.Velocity = components.Vec2{X: 10, Y: 0}
	e.Acceleration = components.Vec2{X: 0, Y: 20}
	e.Damping = 0.5

	e.Integrate()

	// 位置用旧速度推进
	if !approxVec(e.Position, components.Vec2{X: 1, Y: 0}) {
		t.Errorf("position = %v, want {1 0}", e.Position)
	}
	// v = (10, 0 + 20/10) * 0.5
	if !approxVec(e.Velocity, components.Vec2{X: 5, Y: 1}) {
		t.Errorf("velocity = %v, want {5 1}", e.Velocity)
	}
}

func TestEmitterChildImageAndSize(t *testing.T) {
	e := NewEmitter("wave", game.NewManualClock(60))
	e.SetChildSize(40, 30)
	if e.ChildWidth != 40 || e.ChildHeight != 30 {
		t.Errorf("child size = %vx%v, want 40x30", e.ChildWidth, e.ChildHeight)
	}
	e.SetChildImage(nil)
	if e.ChildWidth != 40 {
		t.Errorf("nil child image should keep size")
	}
}

// 属性：速率模式下任意两次连续发射的间隔都严格大于 1000/R
func TestEmitterRateIntervalProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rate := rapid.Float64Range(0.1, 30).Draw(t, "rate")
		fps := rapid.Float64Range(10, 240).Draw(t, "fps")
		frames := rapid.IntRange(1, 600).Draw(t, "frames")

		clock := game.NewManualClock(fps)
		e := NewEmitter("gun", clock)
		e.Rate = rate
		e.Start()

		last := math.Inf(-1)
		for i := 0; i < frames; i++ {
			clock.Step()
			before := e.SpawnedTotal()
			e.Update()
			if e.SpawnedTotal()-before > 1 {
				t.Fatalf("more than one spawn in a frame")
			}
			if e.SpawnedTotal() > before {
				now := clock.ElapsedMillis()
				if now-last <= 1000/rate {
					t.Fatalf("spawn gap %v <= %v", now-last, 1000/rate)
				}
				last = now
			}
		}
	})
}

func TestSpawnModeString(t *testing.T) {
	for mode, want := range map[SpawnMode]string{SpawnRate: "rate", SpawnBurst: "burst", SpawnOneShot: "oneshot", 9: "SpawnMode(9)"} {
		if got := mode.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(mode), got, want)
		}
	}
}
