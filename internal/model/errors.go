package model

import "fmt"

// ErrorKind 转换错误分类
type ErrorKind int

const (
	// ErrInvalidFormat 扩展名/MIME/文件签名不符
	ErrInvalidFormat ErrorKind = iota
	// ErrFileTooLarge 超过上传大小上限
	ErrFileTooLarge
	// ErrCorruptedFile 解析器无法产出有效工作簿
	ErrCorruptedFile
	// ErrConversionFailed 布局/渲染阶段内部失败（含输出页数超限）
	ErrConversionFailed
	// ErrInternal 未预期故障，始终上抛，不静默吞掉
	ErrInternal
)

// ConvError 携带分类的转换错误
type ConvError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ConvError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConvError) Unwrap() error { return e.Err }

// NewConvError 创建转换错误
func NewConvError(kind ErrorKind, message string, err error) *ConvError {
	return &ConvError{Kind: kind, Message: message, Err: err}
}
