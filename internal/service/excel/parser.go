package excel

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

// excelUnitToPoints Excel 列宽单位到点的换算系数
const excelUnitToPoints = 1.8

// Parser Excel 解析器：把上传的工作簿读成内存模型
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// FileID 本次解析的文件标识
func (p *Parser) FileID() string {
	return p.fileID
}

// LoadFile 加载 Excel 文件；无法打开视为文件损坏
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return model.NewConvError(model.ErrCorruptedFile, "failed to open workbook", err)
	}
	p.file = file
	return nil
}

// Close 释放底层文件资源
func (p *Parser) Close() error {
	if p.file == nil {
		return nil
	}
	return p.file.Close()
}

// ParseWorkbook 解析全部工作表。零表工作簿是合法的空文档，不报错。
func (p *Parser) ParseWorkbook(filename string) (*model.Workbook, error) {
	if p.file == nil {
		return nil, model.NewConvError(model.ErrInternal, "no file loaded", nil)
	}

	wb := &model.Workbook{Filename: filename}
	for _, name := range p.file.GetSheetList() {
		sheet, err := p.parseSheet(name)
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, *sheet)
	}
	return wb, nil
}

// parseSheet 解析单个工作表：尺寸、列宽提示、带类型和样式的单元格
func (p *Parser) parseSheet(name string) (*model.Sheet, error) {
	rows, err := p.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, model.NewConvError(model.ErrCorruptedFile, "failed to read sheet "+name, err)
	}

	maxRow := len(rows)
	maxCol := 0
	for _, r := range rows {
		if len(r) > maxCol {
			maxCol = len(r)
		}
	}

	sheet := &model.Sheet{
		Name:      name,
		MaxRow:    maxRow,
		MaxColumn: maxCol,
	}

	if maxCol > 0 {
		sheet.ColumnWidths = p.columnWidthHints(name, maxCol)
	}

	for ri, rawRow := range rows {
		rowNo := ri + 1
		row := model.Row{Index: rowNo}
		for ci, raw := range rawRow {
			colNo := ci + 1
			cell, ok, err := p.parseCell(name, rowNo, colNo, raw)
			if err != nil {
				return nil, err
			}
			if ok {
				row.Cells = append(row.Cells, cell)
			}
		}
		// 空行也占版面高度，保留占位
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// columnWidthHints 读取列宽并换算为点
func (p *Parser) columnWidthHints(sheetName string, maxCol int) map[int]float64 {
	hints := make(map[int]float64, maxCol)
	for col := 1; col <= maxCol; col++ {
		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			continue
		}
		w, err := p.file.GetColWidth(sheetName, colName)
		if err != nil || w <= 0 {
			continue
		}
		hints[col] = w * excelUnitToPoints
	}
	return hints
}

// parseCell 读取一个单元格的值与样式；值和样式都为空时跳过（稀疏模型）
func (p *Parser) parseCell(sheetName string, row, col int, raw string) (model.Cell, bool, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return model.Cell{}, false, model.NewConvError(model.ErrInternal, "bad cell coordinates", err)
	}

	styleID, _ := p.file.GetCellStyle(sheetName, axis)
	if raw == "" && styleID == 0 {
		return model.Cell{}, false, nil
	}

	cell := model.Cell{
		Row:    row,
		Column: col,
		Value:  p.cellValue(sheetName, axis, raw, styleID),
	}
	if styleID != 0 {
		cell.Style = p.cellStyle(styleID)
	}
	return cell, true, nil
}

// cellValue 按单元格类型与原始值判定值变体
func (p *Parser) cellValue(sheetName, axis, raw string, styleID int) model.CellValue {
	if raw == "" {
		return model.BlankValue()
	}

	ct, err := p.file.GetCellType(sheetName, axis)
	if err == nil {
		switch ct {
		case excelize.CellTypeBool:
			return model.BoolValue(raw == "1" || strings.EqualFold(raw, "true"))
		case excelize.CellTypeDate:
			if serial, perr := strconv.ParseFloat(raw, 64); perr == nil {
				if t, derr := excelize.ExcelDateToTime(serial, false); derr == nil {
					return model.DateTimeValue(t)
				}
			}
			if t, perr := parseDateString(raw); perr == nil {
				return model.DateTimeValue(t)
			}
			return model.StringValue(raw)
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			return model.StringValue(raw)
		case excelize.CellTypeError:
			return model.StringValue(raw)
		}
	}

	// xlsx 里数字单元格通常不带类型标记，靠原始值判定；
	// 带日期数字格式的数字单元格是序列号表示的日期
	if n, perr := strconv.ParseFloat(raw, 64); perr == nil {
		if p.isDateStyle(styleID) {
			if t, derr := excelize.ExcelDateToTime(n, false); derr == nil {
				return model.DateTimeValue(t)
			}
		}
		return model.NumberValue(n)
	}
	return model.StringValue(raw)
}

// isDateStyle 样式的数字格式是否为日期/时间格式
func (p *Parser) isDateStyle(styleID int) bool {
	if styleID == 0 {
		return false
	}
	style, err := p.file.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	// 内置日期/时间格式编号
	switch {
	case style.NumFmt >= 14 && style.NumFmt <= 22:
		return true
	case style.NumFmt >= 27 && style.NumFmt <= 36:
		return true
	case style.NumFmt >= 45 && style.NumFmt <= 47:
		return true
	case style.NumFmt >= 50 && style.NumFmt <= 58:
		return true
	}
	if style.CustomNumFmt != nil {
		fmtCode := strings.ToLower(*style.CustomNumFmt)
		for _, token := range []string{"yy", "mm", "dd", "hh"} {
			if strings.Contains(fmtCode, token) {
				return true
			}
		}
	}
	return false
}

// parseDateString 兜底解析已格式化的日期文本
func parseDateString(s string) (time.Time, error) {
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02",
		"01-02-06",
		"1/2/2006",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
