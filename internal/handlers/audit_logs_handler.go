package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/httpresp"
	"github.com/bistro-systems/table-reserve/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 200 {
		limit = 200
	}

	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "could not list audit logs")
		return
	}

	httpresp.List(c, logs)
}
