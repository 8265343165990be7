package model

import "time"

// CellValueKind 单元格值类型标签
type CellValueKind int

const (
	ValueBlank CellValueKind = iota
	ValueString
	ValueNumber
	ValueDateTime
	ValueBool
)

// CellValue 单元格值（封闭变体：string/number/datetime/boolean/blank 之一）
type CellValue struct {
	Kind CellValueKind
	Str  string
	Num  float64
	Time time.Time
	Bool bool
}

// StringValue 构造字符串值
func StringValue(s string) CellValue { return CellValue{Kind: ValueString, Str: s} }

// NumberValue 构造数值
func NumberValue(n float64) CellValue { return CellValue{Kind: ValueNumber, Num: n} }

// DateTimeValue 构造日期时间值
func DateTimeValue(t time.Time) CellValue { return CellValue{Kind: ValueDateTime, Time: t} }

// BoolValue 构造布尔值
func BoolValue(b bool) CellValue { return CellValue{Kind: ValueBool, Bool: b} }

// BlankValue 构造空白值
func BlankValue() CellValue { return CellValue{Kind: ValueBlank} }

// IsBlank 是否为空白单元格
func (v CellValue) IsBlank() bool { return v.Kind == ValueBlank }

// HorizontalAlign 水平对齐方式
type HorizontalAlign int

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
)

// VerticalAlign 垂直对齐方式
type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// BorderStyle 边框线型（四级粗细）
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderThick
)

// FillType 填充类型
type FillType int

const (
	FillNone FillType = iota
	FillSolid
)

// Font 源字体属性（空字段由 Style Mapper 补默认值）
type Font struct {
	Name   string
	Size   float64
	Bold   bool
	Italic bool
	Color  string // RGB 十六进制，如 "FF0000"；空表示未设置
}

// Alignment 源对齐属性
type Alignment struct {
	Horizontal HorizontalAlign
	Vertical   VerticalAlign
}

// BorderSide 单侧边框
type BorderSide struct {
	Style BorderStyle
	Color string // RGB 十六进制；空表示未设置
}

// Border 四侧边框
type Border struct {
	Left   BorderSide
	Right  BorderSide
	Top    BorderSide
	Bottom BorderSide
}

// Fill 背景填充
type Fill struct {
	Type  FillType
	Color string // RGB 十六进制；仅 FillSolid 时有意义
}

// CellStyle 源单元格样式（解析器产出，可能残缺）
type CellStyle struct {
	Font      Font
	Alignment Alignment
	Border    Border
	Fill      Fill
}

// Cell 源单元格，坐标 1 起
type Cell struct {
	Row    int
	Column int
	Value  CellValue
	Style  CellStyle
}

// Row 源行，单元格稀疏存储（缺失即空白）
type Row struct {
	Index int // 1 起
	Cells []Cell
}

// Sheet 工作表
type Sheet struct {
	Name      string
	Rows      []Row
	MaxRow    int
	MaxColumn int
	// ColumnWidths 列宽提示（点），下标 1 起；nil 或缺项表示无提示
	ColumnWidths map[int]float64
}

// Workbook 工作簿（解析器产出，本核心只读）
type Workbook struct {
	Filename string
	Sheets   []Sheet
}
