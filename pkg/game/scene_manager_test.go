package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene records calls made by the SceneManager.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	saved        bool
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) SaveOnExit() bool {
	m.saved = true
	return true
}

type plainScene struct{}

func (plainScene) Update(float64) {}

func (plainScene) Draw(*ebiten.Image) {}

func TestSceneManagerEmpty(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}
	// 无场景时 Update/Draw 不应 panic
	sm.Update(1.0 / 60)
	sm.Draw(ebiten.NewImage(10, 10))
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should succeed")
	}
}

func TestSceneManagerDelegates(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	sm.Update(0.5)
	sm.Draw(ebiten.NewImage(10, 10))

	if !scene.updateCalled || scene.deltaTime != 0.5 {
		t.Errorf("Update not delegated: %+v", scene)
	}
	if !scene.drawCalled {
		t.Error("Draw not delegated")
	}
	if !sm.SaveOnExit() || !scene.saved {
		t.Error("SaveOnExit not delegated to Saveable scene")
	}
}

func TestSceneManagerSaveOnExitNonSaveable(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(plainScene{})
	if !sm.SaveOnExit() {
		t.Error("non-saveable scene should report success")
	}
}

func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()
	if sm.Restart() {
		t.Error("Restart without factory should fail")
	}

	created := 0
	sm.SetSceneFactory(func() Scene {
		created++
		return &MockScene{}
	})
	if !sm.Restart() || !sm.Restart() {
		t.Fatal("Restart with factory should succeed")
	}
	if created != 2 {
		t.Errorf("factory called %d times, want 2", created)
	}

	sm.SetSceneFactory(func() Scene { return nil })
	if sm.Restart() {
		t.Error("Restart should fail when factory returns nil")
	}
}
