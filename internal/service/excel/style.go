package excel

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

// themeColors Office 标准主题色板（主题索引 -> RGB）
var themeColors = map[int]string{
	0: "FFFFFF", // background 1
	1: "000000", // text 1
	2: "E7E6E6", // background 2
	3: "44546A", // text 2
	4: "5B9BD5", // accent 1
	5: "ED7D31", // accent 2
	6: "A5A5A5", // accent 3
	7: "FFC000", // accent 4
	8: "4472C4", // accent 5
	9: "70AD47", // accent 6
}

// cellStyle 把 excelize 样式翻译为源样式模型；读不到样式时返回零值，
// 由 Style Mapper 补默认值
func (p *Parser) cellStyle(styleID int) model.CellStyle {
	style, err := p.file.GetStyle(styleID)
	if err != nil || style == nil {
		return model.CellStyle{}
	}

	var cs model.CellStyle

	if f := style.Font; f != nil {
		cs.Font = model.Font{
			Name:   f.Family,
			Size:   f.Size,
			Bold:   f.Bold,
			Italic: f.Italic,
			Color:  fontColor(f),
		}
	}

	if a := style.Alignment; a != nil {
		cs.Alignment = model.Alignment{
			Horizontal: horizontalAlign(a.Horizontal),
			Vertical:   verticalAlign(a.Vertical),
		}
	}

	for _, b := range style.Border {
		side := model.BorderSide{
			Style: borderStyle(b.Style),
			Color: stripAlpha(b.Color),
		}
		switch b.Type {
		case "left":
			cs.Border.Left = side
		case "right":
			cs.Border.Right = side
		case "top":
			cs.Border.Top = side
		case "bottom":
			cs.Border.Bottom = side
		}
	}

	// pattern 填充且图案为 solid 时才视为背景色
	if style.Fill.Type == "pattern" && style.Fill.Pattern == 1 && len(style.Fill.Color) > 0 {
		cs.Fill = model.Fill{
			Type:  model.FillSolid,
			Color: stripAlpha(style.Fill.Color[0]),
		}
	}

	return cs
}

// fontColor 解析字体颜色：直接 RGB 优先，其次主题色加明暗调
func fontColor(f *excelize.Font) string {
	if f.Color != "" {
		return stripAlpha(f.Color)
	}
	if f.ColorTheme != nil {
		base, ok := themeColors[*f.ColorTheme]
		if !ok {
			return ""
		}
		if f.ColorTint != 0 {
			return stripAlpha(excelize.ThemeColor(base, f.ColorTint))
		}
		return base
	}
	return ""
}

// stripAlpha 去掉 ARGB 的 alpha 通道
func stripAlpha(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}

func horizontalAlign(h string) model.HorizontalAlign {
	switch h {
	case "center", "centerContinuous":
		return model.AlignCenter
	case "right":
		return model.AlignRight
	default:
		return model.AlignLeft
	}
}

func verticalAlign(v string) model.VerticalAlign {
	switch v {
	case "center":
		return model.AlignMiddle
	case "bottom":
		return model.AlignBottom
	default:
		return model.AlignTop
	}
}

// borderStyle 把 excelize 边框线型索引归并到四级粗细；
// 未识别的线型降级为 thin
func borderStyle(s int) model.BorderStyle {
	switch s {
	case 0:
		return model.BorderNone
	case 1, 3, 4, 7, 9, 11:
		// thin/dashed/dotted/hair 一类细线
		return model.BorderThin
	case 2, 8, 10, 12, 13:
		return model.BorderMedium
	case 5, 6:
		return model.BorderThick
	default:
		return model.BorderThin
	}
}
