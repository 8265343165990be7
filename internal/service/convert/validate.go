package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

// 允许的扩展名与 MIME 类型
var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

var allowedMIMETypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
	// 浏览器上传常见的兜底类型
	"application/octet-stream": true,
	"":                         true,
}

// 文件签名
var (
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}                         // xlsx (zip)
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1} // xls (OLE2)
)

// ValidateUpload 校验上传文件：扩展名、MIME、大小上限、魔数。
// data 为已读入内存的完整文件内容。
func ValidateUpload(filename, contentType string, data []byte, maxSize int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return model.NewConvError(model.ErrInvalidFormat,
			fmt.Sprintf("unsupported file extension: %s (allowed: .xlsx, .xls)", ext), nil)
	}

	if !allowedMIMETypes[contentType] {
		return model.NewConvError(model.ErrInvalidFormat,
			"unsupported content type: "+contentType, nil)
	}

	if int64(len(data)) > maxSize {
		return model.NewConvError(model.ErrFileTooLarge,
			fmt.Sprintf("file size %d exceeds limit %d", len(data), maxSize), nil)
	}

	if !matchesSignature(ext, data) {
		return model.NewConvError(model.ErrInvalidFormat,
			"file signature does not match expected format", nil)
	}

	return nil
}

// matchesSignature 扩展名与文件魔数是否一致
func matchesSignature(ext string, data []byte) bool {
	switch ext {
	case ".xlsx":
		return bytes.HasPrefix(data, zipMagic)
	case ".xls":
		return bytes.HasPrefix(data, ole2Magic)
	}
	return false
}
