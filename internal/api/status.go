package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Status        string `json:"status"`
	MaxFileSizeMB int    `json:"maxFileSizeMb"` // 上传大小上限
	Total         int    `json:"total"`         // 历史转换总数
	Succeeded     int    `json:"succeeded"`     // 成功数
	Failed        int    `json:"failed"`        // 失败数
	TotalPages    int    `json:"totalPages"`    // 累计产出页数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Status:        "ok",
		MaxFileSizeMB: h.cfg.Convert.MaxFileSizeMB,
	}

	if h.store != nil {
		stats, err := h.store.Stats()
		if err == nil {
			resp.Total = stats.Total
			resp.Succeeded = stats.Succeeded
			resp.Failed = stats.Failed
			resp.TotalPages = stats.TotalPages
		}
	}

	c.JSON(http.StatusOK, resp)
}
