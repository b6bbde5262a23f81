package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/alienwave/pkg/components"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// 默认窗口尺寸
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
)

// DefaultConfigPath 内嵌的游戏配置路径
const DefaultConfigPath = "data/game.yaml"

// GameConfig 游戏全部可调参数
// 由 data/game.yaml 提供，缺省字段使用 DefaultGameConfig 的值
type GameConfig struct {
	Window   WindowConfig   `yaml:"window"`
	PlayArea PlayAreaConfig `yaml:"play_area"`
	Player   PlayerConfig   `yaml:"player"`
	Bonus    BonusConfig    `yaml:"bonus"`
	Waves    []WaveConfig   `yaml:"waves"`
	Effects  EffectsConfig  `yaml:"effects"`
	Rules    RulesConfig    `yaml:"rules"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayAreaConfig 玩家活动区域
// 区域为 [Margin, Width] x [Margin, Height]
type PlayAreaConfig struct {
	Margin float64 `yaml:"margin"`
}

// PlayerConfig 玩家飞船（同时也是导弹发射器）
type PlayerConfig struct {
	Image         string          `yaml:"image"`
	MissileImage  string          `yaml:"missile_image"`
	Size          components.Vec2 `yaml:"size"`
	SpawnVelocity components.Vec2 `yaml:"spawn_velocity"`
	Rate          float64         `yaml:"rate"`
	LifespanMs    float64         `yaml:"lifespan_ms"` // 0 表示使用窗口高度的数值
	Damping       float64         `yaml:"damping"`
	Thrust        float64         `yaml:"thrust"`
	Lives         int             `yaml:"lives"`
	IntroSeconds  float64         `yaml:"intro_seconds"`
	IntroStopY    float64         `yaml:"intro_stop_y"` // 相对窗口高度的比例
	FireSound     string          `yaml:"fire_sound"`
}

// BonusConfig 奖励掉落
type BonusConfig struct {
	Image          string          `yaml:"image"`
	ChildSize      components.Vec2 `yaml:"child_size"`
	SpawnVelocity  components.Vec2 `yaml:"spawn_velocity"`
	Count          int             `yaml:"count"`
	LifespanMs     float64         `yaml:"lifespan_ms"`
	DropIntervalMs float64         `yaml:"drop_interval_ms"`
	DropWindowMs   float64         `yaml:"drop_window_ms"`
	CollectSound   string          `yaml:"collect_sound"`
	DropSound      string          `yaml:"drop_sound"`
}

// Anchor 以窗口尺寸比例加偏移描述的位置
type Anchor struct {
	XRatio  float64 `yaml:"x_ratio"`
	YRatio  float64 `yaml:"y_ratio"`
	XOffset float64 `yaml:"x_offset"`
	YOffset float64 `yaml:"y_offset"`
}

// Resolve 在给定窗口尺寸下求出绝对坐标
func (a Anchor) Resolve(w, h float64) components.Vec2 {
	return components.Vec2{X: a.XRatio*w + a.XOffset, Y: a.YRatio*h + a.YOffset}
}

// 抖动轴
const (
	JitterNone = ""
	JitterX    = "x"
	JitterY    = "y"
)

// JitterConfig 每帧把发射器在某一轴上随机重定位
// Min/Max 为窗口对应边长的比例
type JitterConfig struct {
	Axis string  `yaml:"axis"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// 轨迹类型
const (
	TrajectoryNone   = ""
	TrajectoryDrift  = "drift"   // 出生时随机水平漂移
	TrajectoryCurveX = "curve_x" // 沿 X 方向推进的正弦轨迹
	TrajectoryCurveY = "curve_y" // 沿 Y 方向推进的正弦轨迹
)

// TrajectoryConfig 波次中敌人的运动轨迹
type TrajectoryConfig struct {
	Kind            string  `yaml:"kind"`
	Scale           float64 `yaml:"scale"`
	Cycles          float64 `yaml:"cycles"`
	CyclesFromLevel bool    `yaml:"cycles_from_level"` // 用当前等级作为周期数
	Reverse         bool    `yaml:"reverse"`           // 沿轴反向推进
}

// WaveConfig 一波敌人的发射器配置
type WaveConfig struct {
	Name          string           `yaml:"name"`
	Image         string           `yaml:"image"`
	ChildSize     components.Vec2  `yaml:"child_size"`
	Anchor        Anchor           `yaml:"anchor"`
	SpawnVelocity components.Vec2  `yaml:"spawn_velocity"`
	LifespanMs    float64          `yaml:"lifespan_ms"`
	BaseRate      float64          `yaml:"base_rate"`
	RatePerMinute float64          `yaml:"rate_per_minute"`
	Jitter        JitterConfig     `yaml:"jitter"`
	Trajectory    TrajectoryConfig `yaml:"trajectory"`
	CollideSound  string           `yaml:"collide_sound"`
}

// 特效发射形状
const (
	ShapeDirectional = "directional"
	ShapeRadial      = "radial"
	ShapeDisc        = "disc"
)

// 力的名字
const (
	ForceTurbulence = "turbulence"
	ForceGravity    = "gravity"
	ForceRadial     = "radial_impulse"
)

// EffectConfig 一个粒子特效
type EffectConfig struct {
	Shape          string          `yaml:"shape"`
	GroupSize      int             `yaml:"group_size"`
	Rate           float64         `yaml:"rate"` // > 0 时为持续发射，否则为一次性爆发
	LifespanMs     float64         `yaml:"lifespan_ms"`
	Velocity       components.Vec2 `yaml:"velocity"`
	ParticleRadius float64         `yaml:"particle_radius"`
	DiscRadius     float64         `yaml:"disc_radius"`
	Color          string          `yaml:"color"` // colornames 中的名字
	Damping        float64         `yaml:"damping"`
	Forces         []string        `yaml:"forces"`
	Sound          string          `yaml:"sound"`
}

// ForcesConfig 特效共用的力参数
type ForcesConfig struct {
	TurbulenceMin components.Vec2 `yaml:"turbulence_min"`
	TurbulenceMax components.Vec2 `yaml:"turbulence_max"`
	Gravity       components.Vec2 `yaml:"gravity"`
	RadialImpulse float64         `yaml:"radial_impulse"`
}

// EffectsConfig 所有特效
type EffectsConfig struct {
	Forces        ForcesConfig `yaml:"forces"`
	Explosion     EffectConfig `yaml:"explosion"`
	ShipExplosion EffectConfig `yaml:"ship_explosion"`
	Thruster      EffectConfig `yaml:"thruster"`
}

// RulesConfig 进度规则
type RulesConfig struct {
	ScorePerLevel      int     `yaml:"score_per_level"`
	LevelUpEvery       int     `yaml:"level_up_every"`
	FireRateMultiplier float64 `yaml:"fire_rate_multiplier"`
	BackgroundScroll   float64 `yaml:"background_scroll"` // 每帧滚动 = scroll * fps 像素
	LevelUpSound       string  `yaml:"level_up_sound"`
	OpeningSound       string  `yaml:"opening_sound"`
	BackgroundMusic    string  `yaml:"background_music"`
	BackgroundImage    string  `yaml:"background_image"`
	TitleText          string  `yaml:"title_text"`
}

// ImageAsset 图片资源
type ImageAsset struct {
	ID       string `yaml:"id"`
	Path     string `yaml:"path"`
	Required bool   `yaml:"required"` // 加载失败即中止启动
}

// SoundAsset 声音资源
type SoundAsset struct {
	ID     string  `yaml:"id"`
	Path   string  `yaml:"path"`
	Loop   bool    `yaml:"loop"`
	Volume float64 `yaml:"volume"` // 相对设置音量的倍率，0 视为 1
}

// AssetsConfig 资源表
type AssetsConfig struct {
	BasePath string       `yaml:"base_path"`
	Images   []ImageAsset `yaml:"images"`
	Sounds   []SoundAsset `yaml:"sounds"`
}

// ParseGameConfig 解析 YAML，未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// LoadGameConfigFile 从磁盘加载配置
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// Validate 检查配置是否可用
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Player.Rate < 0 {
		return fmt.Errorf("player rate must not be negative, got %v", c.Player.Rate)
	}
	if c.Player.MissileImage == "" {
		return fmt.Errorf("player missile_image is required")
	}
	if c.Rules.ScorePerLevel <= 0 {
		return fmt.Errorf("rules.score_per_level must be positive, got %d", c.Rules.ScorePerLevel)
	}
	if len(c.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}
	for i, w := range c.Waves {
		if w.BaseRate < 0 {
			return fmt.Errorf("wave %d (%s): base_rate must not be negative", i, w.Name)
		}
		switch w.Trajectory.Kind {
		case TrajectoryNone, TrajectoryDrift, TrajectoryCurveX, TrajectoryCurveY:
		default:
			return fmt.Errorf("wave %d (%s): unknown trajectory kind %q", i, w.Name, w.Trajectory.Kind)
		}
		switch w.Jitter.Axis {
		case JitterNone, JitterX, JitterY:
		default:
			return fmt.Errorf("wave %d (%s): unknown jitter axis %q", i, w.Name, w.Jitter.Axis)
		}
	}
	for name, e := range map[string]EffectConfig{
		"explosion":      c.Effects.Explosion,
		"ship_explosion": c.Effects.ShipExplosion,
		"thruster":       c.Effects.Thruster,
	} {
		if err := e.validate(); err != nil {
			return fmt.Errorf("effect %s: %w", name, err)
		}
	}
	return nil
}

func (e EffectConfig) validate() error {
	switch e.Shape {
	case ShapeDirectional, ShapeRadial, ShapeDisc:
	default:
		return fmt.Errorf("unknown shape %q", e.Shape)
	}
	if e.GroupSize <= 0 {
		return fmt.Errorf("group_size must be positive, got %d", e.GroupSize)
	}
	if e.Color != "" {
		if _, ok := colornames.Map[e.Color]; !ok {
			return fmt.Errorf("unknown color %q", e.Color)
		}
	}
	for _, f := range e.Forces {
		switch f {
		case ForceTurbulence, ForceGravity, ForceRadial:
		default:
			return fmt.Errorf("unknown force %q", f)
		}
	}
	return nil
}

// ParticleColor 返回特效颜色，未配置时为白色
func (e EffectConfig) ParticleColor() color.Color {
	if c, ok := colornames.Map[e.Color]; ok {
		return c
	}
	return colornames.White
}

// WindowSize 返回浮点窗口尺寸
func (c *GameConfig) WindowSize() (float64, float64) {
	return float64(c.Window.Width), float64(c.Window.Height)
}

// MissileLifespan 导弹寿命（毫秒）
func (c *GameConfig) MissileLifespan() float64 {
	if c.Player.LifespanMs > 0 {
		return c.Player.LifespanMs
	}
	return float64(c.Window.Height)
}
