package layout

import (
	"fmt"
	"strconv"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

// Assemble 驱动列宽计算、分页和样式翻译，把整个工作簿装配成布局文档。
//
// 工作表按工作簿顺序处理，页码用显式累加器全文档连续编号，表间不重置。
// 布局各环节均为全函数；此处唯一的失败条件是输出页数超过 maxPages 上限
// （maxPages <= 0 表示不设限），视为 ConversionFailed。
func Assemble(wb *model.Workbook, meta model.DocumentMeta, geo Geometry, maxPages int) (*model.LayoutDocument, error) {
	doc := &model.LayoutDocument{Meta: meta}

	pageNo := 0
	for si := range wb.Sheets {
		sheet := &wb.Sheets[si]
		// 解析器保证 maxRow/maxColumn 非负；负值经 SizeColumns/Paginate
		// 自然退化为空表（一页零行），不报错
		widths := SizeColumns(sheet, geo.ContentWidth())
		slices := Paginate(sheet, widths, geo)

		for _, sl := range slices {
			pageNo++
			if maxPages > 0 && pageNo > maxPages {
				return nil, model.NewConvError(model.ErrConversionFailed,
					fmt.Sprintf("output exceeds page limit (%d)", maxPages), nil)
			}
			doc.Pages = append(doc.Pages, model.LayoutPage{
				Number:   pageNo,
				Width:    geo.PageWidth,
				Height:   geo.PageHeight,
				Elements: []model.LayoutElement{buildTable(sheet, widths, sl, geo)},
			})
		}
	}

	return doc, nil
}

// buildTable 将一个页切片转为表格元素
func buildTable(sheet *model.Sheet, widths []float64, sl PageSlice, geo Geometry) model.Table {
	table := model.Table{X: geo.MarginX, Y: geo.MarginY}

	for ri := sl.RowFrom; ri < sl.RowTo; ri++ {
		src := &sheet.Rows[ri]
		height := RowHeight(src)
		row := model.TableRow{Height: height}

		// 稀疏行按列号展开，缺失单元格补空白
		byCol := make(map[int]*model.Cell, len(src.Cells))
		for ci := range src.Cells {
			byCol[src.Cells[ci].Column] = &src.Cells[ci]
		}

		for col := sl.ColFrom; col < sl.ColTo; col++ {
			tc := model.TableCell{
				Width:  widths[col-1],
				Height: height,
			}
			if cell, ok := byCol[col]; ok {
				tc.Content = FormatValue(cell.Value)
				tc.Style = MapStyle(cell.Style)
			} else {
				tc.Style = MapStyle(model.CellStyle{})
			}
			row.Cells = append(row.Cells, tc)
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// FormatValue 单元格值的规范文本形式：数字最短十进制表示、日期 ISO 格式、
// 布尔固定 "TRUE"/"FALSE"、空白为空串
func FormatValue(v model.CellValue) string {
	switch v.Kind {
	case model.ValueString:
		return v.Str
	case model.ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case model.ValueDateTime:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 {
			return v.Time.Format("2006-01-02")
		}
		return v.Time.Format("2006-01-02 15:04:05")
	case model.ValueBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}
