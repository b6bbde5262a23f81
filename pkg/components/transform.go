package components

import "math"

// Vec2 二维向量
// 使用屏幕坐标系：原点在左上角，X 向右，Y 向下
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v * k
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len 返回向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo 返回两点之间的欧氏距离
func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize 返回单位向量
// 零向量返回零向量（不产生 NaN）
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero 判断是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Transform 可变换对象的公共状态
// Sprite 和 Emitter 都嵌入该结构体，共享位置/旋转/缩放字段
type Transform struct {
	Position Vec2    // 位置（像素）
	Rotation float64 // 旋转角度（度，顺时针）
	Scale    Vec2    // 缩放（默认 1,1）
}

// NewTransform 创建默认变换：原点、无旋转、单位缩放
func NewTransform() Transform {
	return Transform{Scale: Vec2{X: 1, Y: 1}}
}

// SetPosition 设置位置
func (t *Transform) SetPosition(p Vec2) {
	t.Position = p
}

// RotationRadians 返回弧度制的旋转角
func (t *Transform) RotationRadians() float64 {
	return t.Rotation * math.Pi / 180
}
