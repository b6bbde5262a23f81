// Package utils 提供通用的绘制与输入工具函数
package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// 位图字体行高与高亮边距（像素）
const (
	LineHeight     = 16.0
	highlightInset = 4.0
)

// DefaultFace 7x13 位图字体，HUD 与说明文字使用
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// MeasureText 测量多行文本的宽高
func MeasureText(s string) (float64, float64) {
	return text.Measure(s, DefaultFace, LineHeight)
}

// DrawText 以 (x, y) 为左上角绘制文本
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight
	text.Draw(screen, s, DefaultFace, op)
}

// DrawHighlightedText 在黑色底框上绘制白色文本
// (x, y) 为第一行基线左端，与位图字符串的惯用坐标一致
func DrawHighlightedText(screen *ebiten.Image, s string, x, y float64) {
	DrawHighlightedTextColored(screen, s, x, y, colornames.White, colornames.Black)
}

// DrawHighlightedTextColored 指定前景/背景色的高亮文本
func DrawHighlightedTextColored(screen *ebiten.Image, s string, x, y float64, fg, bg color.Color) {
	if s == "" {
		return
	}
	w, h := MeasureText(s)
	top := y - LineHeight + highlightInset
	vector.DrawFilledRect(screen,
		float32(x-highlightInset), float32(top-highlightInset),
		float32(w+2*highlightInset), float32(h+2*highlightInset), bg, false)
	DrawText(screen, s, x, top, fg)
}

// DrawCenteredText 以 (cx, cy) 为中心绘制文本，alpha 为整体透明度
func DrawCenteredText(screen *ebiten.Image, s string, cx, cy float64, clr color.Color, alpha float32) {
	w, h := MeasureText(s)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	op.LineSpacing = LineHeight
	text.Draw(screen, s, DefaultFace, op)
}
