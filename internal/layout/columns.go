package layout

import "github.com/ryk2025/pdf-transformer/internal/model"

// minColumnWidth 列宽下限（点）：至少容纳一个字符加内边距
const minColumnWidth = 12.0

// SizeColumns 计算工作表每列宽度，返回长度为 MaxColumn 的切片（下标 0 对应第 1 列）。
//
// 所有列都有宽度提示时按比例归一化到内容宽度；提示残缺或缺失时均分。
// 提示值 <= 0 视同缺失。列宽不低于 minColumnWidth：均分/比例份额低于下限时
// 夹到下限，总宽可能超出页宽，由分页器按页宽切列组，而不是把列压到不可读。
func SizeColumns(sheet *model.Sheet, contentWidth float64) []float64 {
	n := sheet.MaxColumn
	if n <= 0 {
		return nil
	}

	widths := make([]float64, n)

	hints, complete := collectHints(sheet, n)
	if complete {
		var sum float64
		for _, h := range hints {
			sum += h
		}
		for i, h := range hints {
			widths[i] = h / sum * contentWidth
		}
	} else {
		share := contentWidth / float64(n)
		for i := range widths {
			widths[i] = share
		}
	}

	for i := range widths {
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}
	return widths
}

// collectHints 收集列宽提示；仅当每一列都有正值提示时 complete 为 true
func collectHints(sheet *model.Sheet, n int) ([]float64, bool) {
	if sheet.ColumnWidths == nil {
		return nil, false
	}
	hints := make([]float64, n)
	for col := 1; col <= n; col++ {
		h, ok := sheet.ColumnWidths[col]
		if !ok || h <= 0 {
			return nil, false
		}
		hints[col-1] = h
	}
	return hints, true
}
