package excel

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

// buildFixture 用 excelize 生成测试工作簿
func buildFixture(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetCellValue(sheet, "A1", "Name"); err != nil {
		t.Fatalf("set A1: %v", err)
	}
	if err := f.SetCellValue(sheet, "B1", "Score"); err != nil {
		t.Fatalf("set B1: %v", err)
	}
	if err := f.SetCellValue(sheet, "A2", "alice"); err != nil {
		t.Fatalf("set A2: %v", err)
	}
	if err := f.SetCellValue(sheet, "B2", 42.5); err != nil {
		t.Fatalf("set B2: %v", err)
	}
	if err := f.SetCellValue(sheet, "C2", true); err != nil {
		t.Fatalf("set C2: %v", err)
	}
	if err := f.SetCellValue(sheet, "D2", time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("set D2: %v", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FF0000"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    []excelize.Border{{Type: "top", Style: 2, Color: "000000"}},
	})
	if err != nil {
		t.Fatalf("new style: %v", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		t.Fatalf("set style: %v", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 20); err != nil {
		t.Fatalf("set col width: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write buffer: %v", err)
	}
	return buf.Bytes()
}

func loadFixture(t *testing.T) *model.Workbook {
	t.Helper()

	p := NewParser()
	if err := p.LoadFile(bytes.NewReader(buildFixture(t))); err != nil {
		t.Fatalf("load: %v", err)
	}
	t.Cleanup(func() { p.Close() })

	wb, err := p.ParseWorkbook("fixture.xlsx")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return wb
}

func findCell(t *testing.T, sheet *model.Sheet, row, col int) *model.Cell {
	t.Helper()
	for ri := range sheet.Rows {
		for ci := range sheet.Rows[ri].Cells {
			c := &sheet.Rows[ri].Cells[ci]
			if c.Row == row && c.Column == col {
				return c
			}
		}
	}
	t.Fatalf("cell (%d,%d) not found", row, col)
	return nil
}

func TestParser_Dimensions(t *testing.T) {
	t.Parallel()

	wb := loadFixture(t)
	if len(wb.Sheets) != 1 {
		t.Fatalf("expected 1 sheet, got %d", len(wb.Sheets))
	}
	sheet := &wb.Sheets[0]
	if sheet.Name != "Sheet1" {
		t.Fatalf("sheet name: %s", sheet.Name)
	}
	if sheet.MaxRow != 2 || sheet.MaxColumn != 4 {
		t.Fatalf("dimensions: %dx%d", sheet.MaxRow, sheet.MaxColumn)
	}
}

func TestParser_TypedValues(t *testing.T) {
	t.Parallel()

	wb := loadFixture(t)
	sheet := &wb.Sheets[0]

	if c := findCell(t, sheet, 2, 1); c.Value.Kind != model.ValueString || c.Value.Str != "alice" {
		t.Fatalf("A2: %+v", c.Value)
	}
	if c := findCell(t, sheet, 2, 2); c.Value.Kind != model.ValueNumber || c.Value.Num != 42.5 {
		t.Fatalf("B2: %+v", c.Value)
	}
	if c := findCell(t, sheet, 2, 3); c.Value.Kind != model.ValueBool || !c.Value.Bool {
		t.Fatalf("C2: %+v", c.Value)
	}
	c := findCell(t, sheet, 2, 4)
	if c.Value.Kind != model.ValueDateTime {
		t.Fatalf("D2 should be datetime: %+v", c.Value)
	}
	if y, m, d := c.Value.Time.Date(); y != 2026 || m != time.August || d != 27 {
		t.Fatalf("D2 date: %v", c.Value.Time)
	}
}

func TestParser_StyleExtraction(t *testing.T) {
	t.Parallel()

	wb := loadFixture(t)
	sheet := &wb.Sheets[0]

	c := findCell(t, sheet, 1, 1)
	st := c.Style
	if !st.Font.Bold || st.Font.Size != 14 {
		t.Fatalf("header font: %+v", st.Font)
	}
	if st.Font.Color != "FF0000" {
		t.Fatalf("header font color: %q", st.Font.Color)
	}
	if st.Fill.Type != model.FillSolid || st.Fill.Color != "FFFF00" {
		t.Fatalf("header fill: %+v", st.Fill)
	}
	if st.Alignment.Horizontal != model.AlignCenter || st.Alignment.Vertical != model.AlignMiddle {
		t.Fatalf("header alignment: %+v", st.Alignment)
	}
	if st.Border.Top.Style != model.BorderMedium {
		t.Fatalf("header top border: %+v", st.Border.Top)
	}
}

func TestParser_ColumnWidthHints(t *testing.T) {
	t.Parallel()

	wb := loadFixture(t)
	sheet := &wb.Sheets[0]

	w, ok := sheet.ColumnWidths[1]
	if !ok {
		t.Fatalf("column 1 width hint missing")
	}
	if math.Abs(w-20*excelUnitToPoints) > 0.5 {
		t.Fatalf("column 1 width: want ~%v, got %v", 20*excelUnitToPoints, w)
	}
}

func TestParser_CorruptedFile(t *testing.T) {
	t.Parallel()

	p := NewParser()
	err := p.LoadFile(bytes.NewReader([]byte("this is not a zip archive")))
	if err == nil {
		t.Fatalf("expected error for garbage input")
	}
	ce, ok := err.(*model.ConvError)
	if !ok || ce.Kind != model.ErrCorruptedFile {
		t.Fatalf("expected CorruptedFile, got %v", err)
	}
}

func TestParser_FileID(t *testing.T) {
	t.Parallel()

	a, b := NewParser(), NewParser()
	if a.FileID() == "" || a.FileID() == b.FileID() {
		t.Fatalf("file IDs should be unique and non-empty")
	}
}
