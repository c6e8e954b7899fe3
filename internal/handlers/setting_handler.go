package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/audit"
	"github.com/selamhomes/estate-api/internal/cache"
	"github.com/selamhomes/estate-api/internal/httperr"
	"github.com/selamhomes/estate-api/internal/models"
)

type SettingHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewSettingHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, c *cache.Cache) *SettingHandler {
	return &SettingHandler{db: db, audit: auditDispatcher, cache: c}
}

// --------- Requests ---------

type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
	Type  string `json:"type" binding:"omitempty,oneof=string number boolean json"`
}

// --------- Handlers ---------

func (h *SettingHandler) List(c *gin.Context) {
	var settings []models.Setting
	if h.cache.GetJSON(c.Request.Context(), cache.KeySettings, &settings) {
		c.JSON(http.StatusOK, settings)
		return
	}

	if err := h.db.Order("key ASC").Find(&settings).Error; err != nil {
		log.Printf("setting list failed: %v", err)
		httperr.Internal(c, "failed_to_list_settings", "Failed to fetch settings.")
		return
	}

	if settings == nil {
		settings = []models.Setting{}
	}
	h.cache.SetJSON(c.Request.Context(), cache.KeySettings, settings)

	c.JSON(http.StatusOK, settings)
}

func (h *SettingHandler) GetByKey(c *gin.Context) {
	var setting models.Setting
	if err := h.db.Where("key = ?", c.Param("key")).First(&setting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "setting_not_found", "Setting not found.")
			return
		}
		log.Printf("setting get failed: %v", err)
		httperr.Internal(c, "failed_to_get_setting", "Failed to fetch setting.")
		return
	}

	c.JSON(http.StatusOK, setting)
}

// Upsert replaces the value and type for an existing key or creates it.
func (h *SettingHandler) Upsert(c *gin.Context) {
	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	var setting models.Setting
	err := h.db.Where("key = ?", req.Key).First(&setting).Error

	switch {
	case err == nil:
		setting.Value = req.Value
		if req.Type != "" {
			setting.Type = req.Type
		}
		if err := h.db.Save(&setting).Error; err != nil {
			log.Printf("setting update failed: %v", err)
			httperr.Internal(c, "failed_to_save_setting", "Failed to save setting.")
			return
		}

	case err == gorm.ErrRecordNotFound:
		setting = models.Setting{
			Key:   req.Key,
			Value: req.Value,
			Type:  req.Type,
		}
		if err := h.db.Create(&setting).Error; err != nil {
			log.Printf("setting create failed: %v", err)
			httperr.Internal(c, "failed_to_save_setting", "Failed to save setting.")
			return
		}

	default:
		log.Printf("setting lookup failed: %v", err)
		httperr.Internal(c, "failed_to_save_setting", "Failed to save setting.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "setting_upserted",
		Entity:   "setting",
		EntityID: &setting.ID,
		Metadata: map[string]string{"key": setting.Key},
	})
	h.cache.Invalidate(c.Request.Context(), cache.KeySettings)

	c.JSON(http.StatusOK, setting)
}
