package config

import "github.com/decker502/alienwave/pkg/components"

// 资源 ID
const (
	ImageBackground = "IMAGE_BACKGROUND"
	ImageRocket     = "IMAGE_ROCKET"
	ImageMissile    = "IMAGE_MISSILE"
	ImagePill       = "IMAGE_PILL"
	ImageAlien1     = "IMAGE_ALIEN1"
	ImageAlien2     = "IMAGE_ALIEN2"
	ImageAlien3     = "IMAGE_ALIEN3"
	ImageAlien4     = "IMAGE_ALIEN4"
	ImageAlien5     = "IMAGE_ALIEN5"

	SoundBackground = "SOUND_BACKGROUND"
	SoundOpening    = "SOUND_OPENING"
	SoundBlast      = "SOUND_BLAST"
	SoundLevelUp    = "SOUND_LEVELUP"
	SoundMissile    = "SOUND_MISSILE"
	SoundBonus      = "SOUND_BONUS"
	SoundBonusDrop  = "SOUND_BONUS_DROP"
)

// DefaultGameConfig 返回内置默认配置
// 与 data/game.yaml 保持一致，用于 YAML 缺省字段和测试
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  "Alien Wave",
		},
		PlayArea: PlayAreaConfig{Margin: 20},
		Player: PlayerConfig{
			Image:         ImageRocket,
			MissileImage:  ImageMissile,
			Size:          components.Vec2{X: 60, Y: 90},
			SpawnVelocity: components.Vec2{X: 0, Y: -1000},
			Rate:          3,
			Damping:       0.99,
			Thrust:        250,
			Lives:         3,
			IntroSeconds:  1.4,
			IntroStopY:    2.0 / 3.0,
			FireSound:     SoundMissile,
		},
		Bonus: BonusConfig{
			Image:          ImagePill,
			ChildSize:      components.Vec2{X: 50, Y: 50},
			SpawnVelocity:  components.Vec2{X: 0, Y: 200},
			Count:          1,
			LifespanMs:     7000,
			DropIntervalMs: 20000,
			DropWindowMs:   20,
			CollectSound:   SoundBonus,
			DropSound:      SoundBonusDrop,
		},
		Waves: defaultWaves(),
		Effects: EffectsConfig{
			Forces: ForcesConfig{
				TurbulenceMin: components.Vec2{X: -20, Y: -20},
				TurbulenceMax: components.Vec2{X: 20, Y: 20},
				Gravity:       components.Vec2{X: 0, Y: -10},
				RadialImpulse: 2000,
			},
			Explosion: EffectConfig{
				Shape:          ShapeRadial,
				GroupSize:      50,
				LifespanMs:     500,
				Velocity:       components.Vec2{X: 0, Y: 200},
				ParticleRadius: 1,
				Color:          "orangered",
				Damping:        0.99,
				Forces:         []string{ForceTurbulence, ForceGravity, ForceRadial},
				Sound:          SoundBlast,
			},
			ShipExplosion: EffectConfig{
				Shape:          ShapeRadial,
				GroupSize:      100,
				LifespanMs:     1000,
				Velocity:       components.Vec2{X: 0, Y: 400},
				ParticleRadius: 2,
				Color:          "gold",
				Damping:        0.99,
				Forces:         []string{ForceTurbulence, ForceGravity, ForceRadial},
				Sound:          SoundBlast,
			},
			Thruster: EffectConfig{
				Shape:          ShapeDisc,
				GroupSize:      100,
				Rate:           5,
				LifespanMs:     500,
				Velocity:       components.Vec2{X: 0, Y: 100},
				ParticleRadius: 1,
				DiscRadius:     5,
				Color:          "deepskyblue",
				Damping:        0.99,
				Forces:         []string{ForceTurbulence},
			},
		},
		Rules: RulesConfig{
			ScorePerLevel:      10,
			LevelUpEvery:       3,
			FireRateMultiplier: 1.5,
			BackgroundScroll:   0.01,
			LevelUpSound:       SoundLevelUp,
			OpeningSound:       SoundOpening,
			BackgroundMusic:    SoundBackground,
			BackgroundImage:    ImageBackground,
			TitleText:          "ALIEN WAVE",
		},
		Assets: AssetsConfig{
			BasePath: "assets",
			Images: []ImageAsset{
				{ID: ImageBackground, Path: "images/background.png"},
				{ID: ImageRocket, Path: "images/rocket.png"},
				{ID: ImageMissile, Path: "images/missile.png", Required: true},
				{ID: ImagePill, Path: "images/pill.png"},
				{ID: ImageAlien1, Path: "images/alien1.png"},
				{ID: ImageAlien2, Path: "images/alien2.png"},
				{ID: ImageAlien3, Path: "images/alien3.png"},
				{ID: ImageAlien4, Path: "images/alien4.png"},
				{ID: ImageAlien5, Path: "images/alien5.png"},
			},
			Sounds: []SoundAsset{
				{ID: SoundBackground, Path: "sounds/background.mp3", Loop: true, Volume: 0.3},
				{ID: SoundOpening, Path: "sounds/opening.mp3"},
				{ID: SoundBlast, Path: "sounds/blast.mp3", Volume: 0.3},
				{ID: SoundLevelUp, Path: "sounds/up.mp3"},
				{ID: SoundMissile, Path: "sounds/missle.mp3", Loop: true, Volume: 0.3},
				{ID: SoundBonus, Path: "sounds/bonus.mp3"},
				{ID: SoundBonusDrop, Path: "sounds/bonus_drop.mp3"},
			},
		},
	}
}

func defaultWaves() []WaveConfig {
	return []WaveConfig{
		{
			Name:          "alien1",
			Image:         ImageAlien1,
			ChildSize:     components.Vec2{X: 50, Y: 50},
			Anchor:        Anchor{XRatio: 0.5, YOffset: 10},
			SpawnVelocity: components.Vec2{X: 0, Y: 200},
			LifespanMs:    5000,
			BaseRate:      1,
			RatePerMinute: 0.1,
			Jitter:        JitterConfig{Axis: JitterX, Min: 0, Max: 1},
			Trajectory:    TrajectoryConfig{Kind: TrajectoryDrift},
			CollideSound:  SoundBlast,
		},
		{
			Name:          "alien2",
			Image:         ImageAlien2,
			ChildSize:     components.Vec2{X: 40, Y: 40},
			Anchor:        Anchor{XRatio: 1.0 / 3.0, YOffset: 10},
			SpawnVelocity: components.Vec2{X: 0, Y: 300},
			LifespanMs:    7000,
			BaseRate:      0.5,
			RatePerMinute: 0.1,
			Jitter:        JitterConfig{Axis: JitterX, Min: 0, Max: 1},
			Trajectory:    TrajectoryConfig{Kind: TrajectoryCurveY, Scale: 150, Cycles: 4},
			CollideSound:  SoundBlast,
		},
		{
			Name:          "alien3",
			Image:         ImageAlien3,
			ChildSize:     components.Vec2{X: 50, Y: 50},
			Anchor:        Anchor{XRatio: 1, YRatio: 1.0 / 3.0},
			SpawnVelocity: components.Vec2{X: 0, Y: 400},
			LifespanMs:    7000,
			BaseRate:      0.5,
			RatePerMinute: 0.1,
			Jitter:        JitterConfig{Axis: JitterY, Min: 0, Max: 0.75},
			Trajectory:    TrajectoryConfig{Kind: TrajectoryCurveX, Scale: 100, Cycles: 4, Reverse: true},
			CollideSound:  SoundBlast,
		},
		{
			Name:          "alien4",
			Image:         ImageAlien4,
			ChildSize:     components.Vec2{X: 40, Y: 40},
			Anchor:        Anchor{XRatio: 1.0 / 3.0, YOffset: 10},
			SpawnVelocity: components.Vec2{X: 0, Y: 500},
			LifespanMs:    7000,
			BaseRate:      0.5,
			RatePerMinute: 0.1,
			Trajectory:    TrajectoryConfig{Kind: TrajectoryCurveY, Scale: 50, Cycles: 10},
			CollideSound:  SoundBlast,
		},
		{
			Name:          "alien5",
			Image:         ImageAlien5,
			ChildSize:     components.Vec2{X: 50, Y: 50},
			Anchor:        Anchor{YRatio: 2.0 / 3.0},
			SpawnVelocity: components.Vec2{X: 0, Y: 400},
			LifespanMs:    7000,
			BaseRate:      0.5,
			RatePerMinute: 0.1,
			Jitter:        JitterConfig{Axis: JitterY, Min: 0.25, Max: 0.75},
			Trajectory:    TrajectoryConfig{Kind: TrajectoryCurveX, Scale: 10, CyclesFromLevel: true},
			CollideSound:  SoundBlast,
		},
	}
}
