package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

func sampleDocument() *model.LayoutDocument {
	style := model.RenderStyle{
		FontName:  "Helvetica",
		FontSize:  10,
		TextColor: model.Black,
		Top:       model.BorderLine{Style: model.BorderThin, Color: model.Black},
		Bottom:    model.BorderLine{Style: model.BorderThin, Color: model.Black},
	}
	table := model.Table{
		X: 21.6, Y: 28.8,
		Rows: []model.TableRow{
			{Height: 18, Cells: []model.TableCell{
				{Content: "Name", Width: 100, Height: 18, Style: style},
				{Content: "Value", Width: 100, Height: 18, Style: style},
			}},
			{Height: 18, Cells: []model.TableCell{
				{Content: "alpha", Width: 100, Height: 18, Style: style},
				{Content: "42", Width: 100, Height: 18, Style: style},
			}},
		},
	}
	return &model.LayoutDocument{
		Meta: model.DocumentMeta{
			Title:     "sample",
			Author:    "pdf-transformer",
			CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		Pages: []model.LayoutPage{
			{Number: 1, Width: 595, Height: 842, Elements: []model.LayoutElement{table}},
			{Number: 2, Width: 595, Height: 842, Elements: []model.LayoutElement{
				model.Text{X: 30, Y: 30, Content: "Sheet2, page 2 of 2", Style: style},
				model.Rule{X: 30, Y: 40, Length: 500, Thickness: 0.5, Color: model.Black},
			}},
		},
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer().Render(sampleDocument())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with PDF header")
	}
	if len(out) < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestRender_EmptyDocument(t *testing.T) {
	t.Parallel()

	doc := &model.LayoutDocument{Meta: model.DocumentMeta{Title: "empty"}}
	out, err := NewRenderer().Render(doc)
	if err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with PDF header")
	}
}

func TestCoreFont(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Helvetica":       "Helvetica",
		"Arial":           "Helvetica",
		"Times New Roman": "Times",
		"Courier New":     "Courier",
		"JetBrains Mono":  "Courier",
		"":                "Helvetica",
		"游ゴシック":           "Helvetica",
	}
	for in, want := range cases {
		if got := coreFont(in); got != want {
			t.Fatalf("coreFont(%q): want %s, got %s", in, want, got)
		}
	}
}

func TestAlignString(t *testing.T) {
	t.Parallel()

	st := model.RenderStyle{HAlign: model.AlignCenter, VAlign: model.AlignMiddle}
	if got := alignString(&st); got != "CM" {
		t.Fatalf("want CM, got %s", got)
	}
	st = model.RenderStyle{}
	if got := alignString(&st); got != "LT" {
		t.Fatalf("want LT, got %s", got)
	}
}
