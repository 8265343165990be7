package layout

import "github.com/ryk2025/pdf-transformer/internal/model"

// 样式默认值：源样式缺失的字段全部在这里补齐
const (
	defaultFontName = "Helvetica"
	defaultFontSize = 10.0
)

// MapStyle 将源单元格样式翻译为渲染就绪样式。
// 全函数：任何残缺/畸形输入都落到默认值，样式翻译永不中断转换。
func MapStyle(cs model.CellStyle) model.RenderStyle {
	rs := model.RenderStyle{
		FontName:  cs.Font.Name,
		FontSize:  cs.Font.Size,
		Bold:      cs.Font.Bold,
		Italic:    cs.Font.Italic,
		TextColor: parseColor(cs.Font.Color, model.Black),
		HAlign:    cs.Alignment.Horizontal,
		VAlign:    cs.Alignment.Vertical,
		Left:      mapBorderSide(cs.Border.Left),
		Right:     mapBorderSide(cs.Border.Right),
		Top:       mapBorderSide(cs.Border.Top),
		Bottom:    mapBorderSide(cs.Border.Bottom),
	}

	if rs.FontName == "" {
		rs.FontName = defaultFontName
	}
	if rs.FontSize <= 0 {
		rs.FontSize = defaultFontSize
	}

	if cs.Fill.Type == model.FillSolid {
		rs.HasFill = true
		rs.FillColor = parseColor(cs.Fill.Color, model.White)
	}

	return rs
}

// mapBorderSide 翻译单侧边框；未识别的线型降级为 thin
func mapBorderSide(b model.BorderSide) model.BorderLine {
	style := b.Style
	switch style {
	case model.BorderNone, model.BorderThin, model.BorderMedium, model.BorderThick:
	default:
		style = model.BorderThin
	}
	if style == model.BorderNone {
		return model.BorderLine{Style: model.BorderNone, Color: model.Black}
	}
	return model.BorderLine{Style: style, Color: parseColor(b.Color, model.Black)}
}

// parseColor 解析 "RRGGBB" / "AARRGGBB" 十六进制颜色；畸形值回落默认色
func parseColor(hex string, fallback model.RGB) model.RGB {
	if len(hex) == 8 {
		// 去掉 alpha 通道 (ARGB -> RGB)
		hex = hex[2:]
	}
	if len(hex) != 6 {
		return fallback
	}
	var c [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(hex[i*2])
		lo, ok2 := hexNibble(hex[i*2+1])
		if !ok1 || !ok2 {
			return fallback
		}
		c[i] = hi<<4 | lo
	}
	return model.RGB{R: c[0], G: c[1], B: c[2]}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
