package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/audit"
	"github.com/selamhomes/estate-api/internal/httperr"
	"github.com/selamhomes/estate-api/internal/models"
)

type ConstructionUpdateHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewConstructionUpdateHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ConstructionUpdateHandler {
	return &ConstructionUpdateHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateConstructionUpdateRequest struct {
	ProjectID  string `json:"projectId" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content"`
	Progress   *int   `json:"progress"`
	UpdateDate string `json:"updateDate"` // RFC 3339; defaults to now
}

type UpdateConstructionUpdateRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Progress   *int    `json:"progress,omitempty"`
	UpdateDate *string `json:"updateDate,omitempty"`
}

// --------- Handlers ---------

// List returns updates newest-first, optionally scoped to one project.
func (h *ConstructionUpdateHandler) List(c *gin.Context) {
	q := h.db.Model(&models.ConstructionUpdate{})

	if projectID := strings.TrimSpace(c.Query("projectId")); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}

	var updates []models.ConstructionUpdate
	if err := q.Order("update_date DESC").Find(&updates).Error; err != nil {
		log.Printf("construction update list failed: %v", err)
		httperr.Internal(c, "failed_to_list_updates", "Failed to fetch construction updates.")
		return
	}

	if updates == nil {
		updates = []models.ConstructionUpdate{}
	}
	c.JSON(http.StatusOK, updates)
}

func (h *ConstructionUpdateHandler) Create(c *gin.Context) {
	var req CreateConstructionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	update := models.ConstructionUpdate{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Content:   req.Content,
		Progress:  req.Progress,
	}

	if req.UpdateDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.UpdateDate)
		if err != nil {
			httperr.Validation(c, []httperr.FieldError{
				{Path: "updateDate", Message: "must be an RFC 3339 timestamp"},
			})
			return
		}
		update.UpdateDate = parsed
	}

	if err := h.db.Create(&update).Error; err != nil {
		log.Printf("construction update create failed: %v", err)
		httperr.Internal(c, "failed_to_create_update", "Failed to create construction update.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "construction_update_created",
		Entity:   "construction_update",
		EntityID: &update.ID,
	})

	c.JSON(http.StatusCreated, update)
}

func (h *ConstructionUpdateHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var update models.ConstructionUpdate
	if err := h.db.Where("id = ?", id).First(&update).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "update_not_found", "Construction update not found.")
			return
		}
		log.Printf("construction update load failed: %v", err)
		httperr.Internal(c, "failed_to_get_update", "Failed to fetch construction update.")
		return
	}

	var req UpdateConstructionUpdateRequest
	if err := bindPatch(c, &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body could not be parsed.")
		return
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			httperr.Validation(c, []httperr.FieldError{
				{Path: "title", Message: "title must not be empty"},
			})
			return
		}
		update.Title = *req.Title
	}
	if req.Content != nil {
		update.Content = *req.Content
	}
	if req.Progress != nil {
		update.Progress = req.Progress
	}
	if req.UpdateDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.UpdateDate)
		if err != nil {
			httperr.Validation(c, []httperr.FieldError{
				{Path: "updateDate", Message: "must be an RFC 3339 timestamp"},
			})
			return
		}
		update.UpdateDate = parsed
	}

	if err := h.db.Save(&update).Error; err != nil {
		log.Printf("construction update save failed: %v", err)
		httperr.Internal(c, "failed_to_update_update", "Failed to update construction update.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "construction_update_updated",
		Entity:   "construction_update",
		EntityID: &update.ID,
	})

	c.JSON(http.StatusOK, update)
}

func (h *ConstructionUpdateHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.ConstructionUpdate{})
	if res.Error != nil {
		log.Printf("construction update delete failed: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_update", "Failed to delete construction update.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "update_not_found", "Construction update not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "construction_update_deleted",
		Entity:   "construction_update",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
