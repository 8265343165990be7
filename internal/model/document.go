package model

import "time"

// RGB 渲染颜色
type RGB struct {
	R, G, B uint8
}

// Black 默认文字色
var Black = RGB{0, 0, 0}

// White 默认背景色
var White = RGB{255, 255, 255}

// BorderLine 渲染侧边框描述
type BorderLine struct {
	Style BorderStyle
	Color RGB
}

// RenderStyle 渲染就绪样式：所有字段已补全，渲染器可直接使用
type RenderStyle struct {
	FontName  string
	FontSize  float64
	Bold      bool
	Italic    bool
	TextColor RGB
	HasFill   bool
	FillColor RGB
	HAlign    HorizontalAlign
	VAlign    VerticalAlign
	Left      BorderLine
	Right     BorderLine
	Top       BorderLine
	Bottom    BorderLine
}

// TableCell 输出表格单元格
type TableCell struct {
	Content string
	Width   float64
	Height  float64
	Style   RenderStyle
}

// TableRow 输出表格行
type TableRow struct {
	Height float64
	Cells  []TableCell
}

// LayoutElement 页面元素（封闭变体：Table / Text / Rule）
type LayoutElement interface {
	isLayoutElement()
}

// Table 表格元素，由工作表切片生成
type Table struct {
	X, Y float64
	Rows []TableRow
}

// Text 文本元素（预留：页眉"Sheet X, page Y of Z"等）
type Text struct {
	X, Y    float64
	Content string
	Style   RenderStyle
}

// Rule 分隔线元素（预留）
type Rule struct {
	X, Y, Length, Thickness float64
	Color                   RGB
}

func (Table) isLayoutElement() {}
func (Text) isLayoutElement()  {}
func (Rule) isLayoutElement()  {}

// LayoutPage 输出页，页码全文档连续（1 起）
type LayoutPage struct {
	Number   int
	Width    float64
	Height   float64
	Elements []LayoutElement
}

// DocumentMeta 文档元信息，从转换请求原样带入
type DocumentMeta struct {
	Title     string
	Author    string
	CreatedAt time.Time
}

// LayoutDocument 布局文档，交给下游渲染器
type LayoutDocument struct {
	Meta  DocumentMeta
	Pages []LayoutPage
}

// PageCount 页数
func (d *LayoutDocument) PageCount() int { return len(d.Pages) }
