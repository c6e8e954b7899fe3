package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/audit"
	"github.com/selamhomes/estate-api/internal/httperr"
	"github.com/selamhomes/estate-api/internal/models"
)

type TeamHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTeamHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *TeamHandler {
	return &TeamHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateTeamMemberRequest struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Bio          string `json:"bio"`
	Photo        string `json:"photo"`
	Phone        string `json:"phone"`
	Whatsapp     string `json:"whatsapp"`
	Email        string `json:"email"`
	Active       *bool  `json:"active"`
	DisplayOrder int    `json:"displayOrder"`
}

type UpdateTeamMemberRequest struct {
	Name         *string `json:"name,omitempty"`
	Position     *string `json:"position,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Photo        *string `json:"photo,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Whatsapp     *string `json:"whatsapp,omitempty"`
	Email        *string `json:"email,omitempty"`
	Active       *bool   `json:"active,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

// --------- Handlers ---------

// List returns team members sorted for presentation. active=true/false
// narrows the set; any other value leaves both in.
func (h *TeamHandler) List(c *gin.Context) {
	q := h.db.Model(&models.TeamMember{})

	switch strings.TrimSpace(c.Query("active")) {
	case "true":
		q = q.Where("active = ?", true)
	case "false":
		q = q.Where("active = ?", false)
	}

	var members []models.TeamMember
	if err := q.Order("display_order ASC").Find(&members).Error; err != nil {
		log.Printf("team list failed: %v", err)
		httperr.Internal(c, "failed_to_list_team", "Failed to fetch team members.")
		return
	}

	if members == nil {
		members = []models.TeamMember{}
	}
	c.JSON(http.StatusOK, members)
}

func (h *TeamHandler) Get(c *gin.Context) {
	var member models.TeamMember
	if err := h.db.Where("id = ?", c.Param("id")).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "team_member_not_found", "Team member not found.")
			return
		}
		log.Printf("team get failed: %v", err)
		httperr.Internal(c, "failed_to_get_team_member", "Failed to fetch team member.")
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	member := models.TeamMember{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		Photo:        req.Photo,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		Email:        req.Email,
		Active:       req.Active,
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.db.Create(&member).Error; err != nil {
		log.Printf("team create failed: %v", err)
		httperr.Internal(c, "failed_to_create_team_member", "Failed to create team member.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "team_member_created",
		Entity:   "team_member",
		EntityID: &member.ID,
	})

	c.JSON(http.StatusCreated, member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var member models.TeamMember
	if err := h.db.Where("id = ?", id).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "team_member_not_found", "Team member not found.")
			return
		}
		log.Printf("team load failed: %v", err)
		httperr.Internal(c, "failed_to_get_team_member", "Failed to fetch team member.")
		return
	}

	var req UpdateTeamMemberRequest
	if err := bindPatch(c, &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body could not be parsed.")
		return
	}

	var errs []httperr.FieldError
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, httperr.FieldError{Path: "name", Message: "name must not be empty"})
	}
	if req.Position != nil && strings.TrimSpace(*req.Position) == "" {
		errs = append(errs, httperr.FieldError{Path: "position", Message: "position must not be empty"})
	}
	if len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.Photo != nil {
		member.Photo = *req.Photo
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		member.Whatsapp = *req.Whatsapp
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Active != nil {
		member.Active = req.Active
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}

	if err := h.db.Save(&member).Error; err != nil {
		log.Printf("team update failed: %v", err)
		httperr.Internal(c, "failed_to_update_team_member", "Failed to update team member.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "team_member_updated",
		Entity:   "team_member",
		EntityID: &member.ID,
	})

	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.TeamMember{})
	if res.Error != nil {
		log.Printf("team delete failed: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_team_member", "Failed to delete team member.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "team_member_not_found", "Team member not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "team_member_deleted",
		Entity:   "team_member",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
