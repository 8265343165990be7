package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

// ListConversions 查询最近的转换历史
// GET /api/conversions?limit=50
func (h *Handler) ListConversions(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	records := []*model.ConversionRecord{}
	if h.store != nil {
		list, err := h.store.ListRecent(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "查询转换历史失败"})
			return
		}
		if list != nil {
			records = list
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": records,
		"count": len(records),
	})
}
