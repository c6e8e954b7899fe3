package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/httperr"
	"github.com/selamhomes/estate-api/internal/httpresp"
	"github.com/selamhomes/estate-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.Model(&models.AuditLog{})

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.Order("created_at DESC").Limit(100).Find(&logs).Error; err != nil {
		log.Printf("audit log list failed: %v", err)
		httperr.Internal(c, "failed_to_list_audit_logs", "Failed to fetch audit logs.")
		return
	}

	httpresp.List(c, logs)
}
