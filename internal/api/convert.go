package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ryk2025/pdf-transformer/internal/model"
	"github.com/ryk2025/pdf-transformer/internal/service/convert"
)

// errorResponse 错误响应体
type errorResponse struct {
	ErrorType  string `json:"errorType"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Convert 上传 Excel 并返回 PDF
// POST /api/convert
func (h *Handler) Convert(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			ErrorType:  model.KindName(model.ErrInvalidFormat),
			Message:    "未找到上传文件",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	// 先按声明大小拦截，避免把超大文件读进内存
	if fileHeader.Size > h.cfg.MaxFileSizeBytes() {
		writeConvError(c, model.NewConvError(model.ErrFileTooLarge,
			fmt.Sprintf("file size %d exceeds limit %d", fileHeader.Size, h.cfg.MaxFileSizeBytes()), nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{
			ErrorType:  model.KindName(model.ErrInternal),
			Message:    "读取上传文件失败",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.cfg.MaxFileSizeBytes()+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{
			ErrorType:  model.KindName(model.ErrInternal),
			Message:    "读取上传文件失败",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	result, err := h.service.Convert(c.Request.Context(), convert.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeConvError(c, err)
		return
	}

	c.Header("Content-Disposition", buildContentDisposition(result.PDFFilename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(result.PDF)))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// writeConvError 错误分类到稳定状态码的映射
func writeConvError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := model.ErrInternal
	message := err.Error()

	var ce *model.ConvError
	if errors.As(err, &ce) {
		kind = ce.Kind
		switch ce.Kind {
		case model.ErrInvalidFormat, model.ErrCorruptedFile:
			status = http.StatusBadRequest
		case model.ErrFileTooLarge:
			status = http.StatusRequestEntityTooLarge
		case model.ErrConversionFailed:
			status = http.StatusUnprocessableEntity
		}
	}

	c.JSON(status, errorResponse{
		ErrorType:  model.KindName(kind),
		Message:    message,
		StatusCode: status,
	})
}

// buildContentDisposition 附带 UTF-8 文件名的下载头
func buildContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s",
		filename, url.PathEscape(filename))
}
