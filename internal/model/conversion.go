package model

import "time"

// 转换任务状态
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ConversionRecord 一次转换请求的历史记录
type ConversionRecord struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"sizeBytes"`
	PDFBytes   int64     `json:"pdfBytes"`
	SheetCount int       `json:"sheetCount"`
	PageCount  int       `json:"pageCount"`
	Status     string    `json:"status"`
	ErrorKind  string    `json:"errorKind,omitempty"`
	DurationMS int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ConversionStats 转换统计
type ConversionStats struct {
	Total      int `json:"total"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
	TotalPages int `json:"totalPages"`
}

// KindName 错误分类的稳定文本表示，用于记录与响应
func KindName(kind ErrorKind) string {
	switch kind {
	case ErrInvalidFormat:
		return "invalid_format"
	case ErrFileTooLarge:
		return "file_too_large"
	case ErrCorruptedFile:
		return "corrupted_file"
	case ErrConversionFailed:
		return "conversion_failed"
	default:
		return "internal_error"
	}
}
