package pdf

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

// Renderer 把布局文档渲染成 PDF 字节流
type Renderer struct{}

// NewRenderer 创建渲染器
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render 渲染整个文档。页面几何由布局层决定（A4 点单位）。
func (r *Renderer) Render(doc *model.LayoutDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(doc.Meta.Title, true)
	pdf.SetAuthor(doc.Meta.Author, true)
	pdf.SetCreator("pdf-transformer", true)
	if !doc.Meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.Meta.CreatedAt)
	}
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for pi := range doc.Pages {
		page := &doc.Pages[pi]
		pdf.AddPage()
		for _, el := range page.Elements {
			switch e := el.(type) {
			case model.Table:
				renderTable(pdf, tr, &e)
			case model.Text:
				renderText(pdf, tr, &e)
			case model.Rule:
				renderRule(pdf, &e)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, model.NewConvError(model.ErrConversionFailed, "pdf generation failed", err)
	}
	return buf.Bytes(), nil
}

// renderTable 逐单元格绘制：先背景，再文字，最后四侧边框
func renderTable(pdf *gofpdf.Fpdf, tr func(string) string, t *model.Table) {
	y := t.Y
	for ri := range t.Rows {
		row := &t.Rows[ri]
		x := t.X
		for ci := range row.Cells {
			cell := &row.Cells[ci]
			drawCell(pdf, tr, cell, x, y)
			x += cell.Width
		}
		y += row.Height
	}
}

func drawCell(pdf *gofpdf.Fpdf, tr func(string) string, cell *model.TableCell, x, y float64) {
	st := &cell.Style

	if st.HasFill {
		pdf.SetFillColor(int(st.FillColor.R), int(st.FillColor.G), int(st.FillColor.B))
		pdf.Rect(x, y, cell.Width, cell.Height, "F")
	}

	if cell.Content != "" {
		pdf.SetFont(coreFont(st.FontName), fontStyle(st), st.FontSize)
		pdf.SetTextColor(int(st.TextColor.R), int(st.TextColor.G), int(st.TextColor.B))
		pdf.SetXY(x, y)
		pdf.CellFormat(cell.Width, cell.Height, tr(cell.Content), "", 0, alignString(st), false, 0, "")
	}

	drawBorder(pdf, st.Top, x, y, x+cell.Width, y)
	drawBorder(pdf, st.Bottom, x, y+cell.Height, x+cell.Width, y+cell.Height)
	drawBorder(pdf, st.Left, x, y, x, y+cell.Height)
	drawBorder(pdf, st.Right, x+cell.Width, y, x+cell.Width, y+cell.Height)
}

func drawBorder(pdf *gofpdf.Fpdf, line model.BorderLine, x1, y1, x2, y2 float64) {
	if line.Style == model.BorderNone {
		return
	}
	pdf.SetDrawColor(int(line.Color.R), int(line.Color.G), int(line.Color.B))
	pdf.SetLineWidth(borderWidth(line.Style))
	pdf.Line(x1, y1, x2, y2)
}

// borderWidth 线型到线宽（点）
func borderWidth(s model.BorderStyle) float64 {
	switch s {
	case model.BorderMedium:
		return 1.0
	case model.BorderThick:
		return 1.5
	default:
		return 0.5
	}
}

func renderText(pdf *gofpdf.Fpdf, tr func(string) string, t *model.Text) {
	st := &t.Style
	pdf.SetFont(coreFont(st.FontName), fontStyle(st), st.FontSize)
	pdf.SetTextColor(int(st.TextColor.R), int(st.TextColor.G), int(st.TextColor.B))
	pdf.Text(t.X, t.Y, tr(t.Content))
}

func renderRule(pdf *gofpdf.Fpdf, r *model.Rule) {
	pdf.SetDrawColor(int(r.Color.R), int(r.Color.G), int(r.Color.B))
	pdf.SetLineWidth(r.Thickness)
	pdf.Line(r.X, r.Y, r.X+r.Length, r.Y)
}

// coreFont 任意字体名归并到 PDF 内置字族
func coreFont(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "times"), strings.Contains(n, "serif") && !strings.Contains(n, "sans"):
		return "Times"
	case strings.Contains(n, "courier"), strings.Contains(n, "mono"):
		return "Courier"
	default:
		return "Helvetica"
	}
}

func fontStyle(st *model.RenderStyle) string {
	s := ""
	if st.Bold {
		s += "B"
	}
	if st.Italic {
		s += "I"
	}
	return s
}

// alignString gofpdf 对齐描述符
func alignString(st *model.RenderStyle) string {
	h := "L"
	switch st.HAlign {
	case model.AlignCenter:
		h = "C"
	case model.AlignRight:
		h = "R"
	}
	v := "T"
	switch st.VAlign {
	case model.AlignMiddle:
		v = "M"
	case model.AlignBottom:
		v = "B"
	}
	return h + v
}
