package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Immortal 生命周期哨兵值：精灵永不过期
const Immortal = -1.0

// 精灵默认值
const (
	DefaultSpriteWidth  = 40.0
	DefaultSpriteHeight = 80.0
	DefaultSpriteName   = "UnnamedSprite"
)

// Sprite 一个可移动、有寿命的可绘制对象
//
// 精灵由 SpriteSystem 以值的形式持有，系统负责过期移除与位置积分。
// Radius > 0 且没有图片时，精灵以实心圆绘制（用于粒子特效）。
type Sprite struct {
	Transform

	Velocity  Vec2          // 速度（像素/秒）
	Image     *ebiten.Image // 可为 nil，此时绘制占位矩形
	Width     float64       // 宽度（像素）
	Height    float64       // 高度（像素）
	BirthTime float64       // 出生时间（毫秒，时钟读数）
	Lifespan  float64       // 寿命（毫秒），Immortal 表示永生
	Name      string

	Radius float64     // 粒子半径（像素）
	Tint   color.Color // 粒子/占位矩形颜色，nil 表示白色

	// Launched 是否已经完成过一次积分
	// 一次性冲量力只在精灵第一次积分时生效
	Launched bool
}

// NewSprite 创建一个带默认值的精灵：永生、40x80、位于原点
func NewSprite() Sprite {
	return Sprite{
		Transform: NewTransform(),
		Width:     DefaultSpriteWidth,
		Height:    DefaultSpriteHeight,
		Lifespan:  Immortal,
		Name:      DefaultSpriteName,
	}
}

// Age 返回精灵相对给定时间的年龄（毫秒）
func (s *Sprite) Age(now float64) float64 {
	return now - s.BirthTime
}

// IsImmortal 精灵是否永生
func (s *Sprite) IsImmortal() bool {
	return s.Lifespan == Immortal
}

// Expired 判断精灵在 now 时刻是否已过期
// 年龄恰好等于寿命时仍然存活
func (s *Sprite) Expired(now float64) bool {
	return !s.IsImmortal() && s.Age(now) > s.Lifespan
}

// SetImage 设置图片，并用图片尺寸覆盖宽高
// 传入 nil 时清除图片但保留当前尺寸
func (s *Sprite) SetImage(img *ebiten.Image) {
	s.Image = img
	if img == nil {
		return
	}
	b := img.Bounds()
	s.Width = float64(b.Dx())
	s.Height = float64(b.Dy())
}

// Draw 以位置为中心绘制精灵
func (s *Sprite) Draw(screen *ebiten.Image) {
	switch {
	case s.Image != nil:
		DrawImageCentered(screen, s.Image, s.Position, s.Width, s.Height, s.RotationRadians())
	case s.Radius > 0:
		vector.DrawFilledCircle(screen, float32(s.Position.X), float32(s.Position.Y), float32(s.Radius), s.tint(), true)
	default:
		vector.DrawFilledRect(screen,
			float32(s.Position.X-s.Width/2), float32(s.Position.Y-s.Height/2),
			float32(s.Width), float32(s.Height), s.tint(), false)
	}
}

func (s *Sprite) tint() color.Color {
	if s.Tint == nil {
		return colornames.Ghostwhite
	}
	return s.Tint
}

// DrawImageCentered 把图片缩放到 w x h 并以 center 为中心绘制
// rotation 为弧度，绕中心旋转
func DrawImageCentered(screen, img *ebiten.Image, center Vec2, w, h, rotation float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	if w > 0 && h > 0 && (w != iw || h != ih) {
		op.GeoM.Scale(w/iw, h/ih)
	}
	if rotation != 0 {
		op.GeoM.Rotate(rotation)
	}
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
