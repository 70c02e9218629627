package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DebugLineHeight 调试文字的行高（basicfont 7x13 字体）
const DebugLineHeight = 16.0

// NewDebugFace 创建调试信息使用的等宽字体
// 不依赖任何字体文件，资源缺失时也能显示
func NewDebugFace() *text.GoXFace {
	return text.NewGoXFace(basicfont.Face7x13)
}

// DrawTextLines 从 (x, y) 开始逐行绘制文本
//
// 参数：
//   - screen: 目标图像
//   - face: 字体
//   - lines: 每个元素为一行
//   - x, y: 第一行左上角坐标
//   - lineHeight: 行高
//   - clr: 文字颜色
func DrawTextLines(screen *ebiten.Image, face text.Face, lines []string, x, y, lineHeight float64, clr color.Color) {
	if screen == nil || face == nil {
		return
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, face, op)
	}
}

// MaxLineWidth 返回多行文本中最宽一行的宽度（像素）
// 用于计算调试面板背景的尺寸
func MaxLineWidth(face text.Face, lines []string) float64 {
	if face == nil {
		return 0
	}

	maxWidth := 0.0
	for _, line := range lines {
		if line == "" {
			continue
		}
		width, _ := text.Measure(line, face, 0)
		if width > maxWidth {
			maxWidth = width
		}
	}
	return maxWidth
}
