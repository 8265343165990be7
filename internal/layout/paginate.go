package layout

import "github.com/ryk2025/pdf-transformer/internal/model"

// 行高参数（点）
const (
	minRowHeight = 18.0
	lineSpacing  = 1.5
)

// PageSlice 一页承载的行列范围。
// Rows 为 sheet.Rows 的下标区间 [RowFrom, RowTo)；
// Cols 为 1 起列号区间 [ColFrom, ColTo)。
type PageSlice struct {
	RowFrom, RowTo int
	ColFrom, ColTo int
}

// RowHeight 行的渲染高度：各单元格样式隐含行高的最大值，且不低于下限
func RowHeight(row *model.Row) float64 {
	h := minRowHeight
	for i := range row.Cells {
		size := row.Cells[i].Style.Font.Size
		if size <= 0 {
			size = defaultFontSize
		}
		if lh := size * lineSpacing; lh > h {
			h = lh
		}
	}
	return h
}

// Paginate 将工作表切成页大小的行列组，按行组优先序返回。
//
// 行组：贪心累加行高，放不下时在该行前断页；单行高于内容高度的独占一页，
// 行永不跨页拆分。列组：列宽总和超出内容宽度时从左到右切最大可容纳组，
// 单列宽于内容宽度的独占一组。空表（零行）产出恰好一个零行切片，
// 保证每个工作表至少贡献一页。
func Paginate(sheet *model.Sheet, columnWidths []float64, geo Geometry) []PageSlice {
	rowGroups := sliceRows(sheet, geo.ContentHeight())
	colGroups := sliceColumns(columnWidths, geo.ContentWidth())

	slices := make([]PageSlice, 0, len(rowGroups)*len(colGroups))
	for _, rg := range rowGroups {
		for _, cg := range colGroups {
			slices = append(slices, PageSlice{
				RowFrom: rg[0], RowTo: rg[1],
				ColFrom: cg[0], ColTo: cg[1],
			})
		}
	}
	return slices
}

// sliceRows 行组切分，返回 [from, to) 下标对
func sliceRows(sheet *model.Sheet, contentHeight float64) [][2]int {
	if len(sheet.Rows) == 0 {
		return [][2]int{{0, 0}}
	}

	var groups [][2]int
	start := 0
	used := 0.0
	for i := range sheet.Rows {
		h := RowHeight(&sheet.Rows[i])
		if i > start && used+h > contentHeight {
			groups = append(groups, [2]int{start, i})
			start = i
			used = 0
		}
		used += h
		// 超高行独占一页
		if h > contentHeight {
			groups = append(groups, [2]int{start, i + 1})
			start = i + 1
			used = 0
		}
	}
	if start < len(sheet.Rows) {
		groups = append(groups, [2]int{start, len(sheet.Rows)})
	}
	return groups
}

// sliceColumns 列组切分，返回 1 起列号的 [from, to) 对
func sliceColumns(widths []float64, contentWidth float64) [][2]int {
	n := len(widths)
	if n == 0 {
		return [][2]int{{1, 1}}
	}

	var groups [][2]int
	start := 1
	used := 0.0
	for col := 1; col <= n; col++ {
		w := widths[col-1]
		if col > start && used+w > contentWidth {
			groups = append(groups, [2]int{start, col})
			start = col
			used = 0
		}
		used += w
		// 超宽列独占一组
		if w > contentWidth {
			groups = append(groups, [2]int{start, col + 1})
			start = col + 1
			used = 0
		}
	}
	if start <= n {
		groups = append(groups, [2]int{start, n + 1})
	}
	return groups
}
