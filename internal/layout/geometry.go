package layout

// Geometry 页面几何：物理尺寸与页边距（单位：点）
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	MarginX    float64 // 左右边距
	MarginY    float64 // 上下边距
}

// A4 页面尺寸 595×842 点，左右 0.3 英寸、上下 0.4 英寸边距
var A4 = Geometry{
	PageWidth:  595,
	PageHeight: 842,
	MarginX:    21.6,
	MarginY:    28.8,
}

// ContentWidth 可用内容宽度
func (g Geometry) ContentWidth() float64 { return g.PageWidth - 2*g.MarginX }

// ContentHeight 可用内容高度
func (g Geometry) ContentHeight() float64 { return g.PageHeight - 2*g.MarginY }
