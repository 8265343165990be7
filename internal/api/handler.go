package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ryk2025/pdf-transformer/internal/config"
	"github.com/ryk2025/pdf-transformer/internal/service/convert"
	"github.com/ryk2025/pdf-transformer/internal/store"
)

// Handler API 处理器
type Handler struct {
	cfg     *config.AppConfig
	store   *store.Store
	service *convert.Service
}

// NewHandler 创建 API 处理器
func NewHandler(cfg *config.AppConfig, st *store.Store) *Handler {
	return &Handler{
		cfg:     cfg,
		store:   st,
		service: convert.NewService(cfg, st),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 转换
	router.POST("/convert", h.Convert)

	// 系统状态
	router.GET("/status", h.GetStatus)

	// 转换历史
	router.GET("/conversions", h.ListConversions)
}
