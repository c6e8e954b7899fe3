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

type ProjectHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProjectHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ProjectHandler {
	return &ProjectHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateProjectRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Location           string   `json:"location" binding:"required"`
	Status             string   `json:"status" binding:"omitempty,oneof=planning construction completed"`
	Progress           int      `json:"progress"`
	AvailableUnits     *int     `json:"availableUnits"`
	TotalUnits         *int     `json:"totalUnits"`
	ExpectedCompletion string   `json:"expectedCompletion"`
	Features           []string `json:"features"`
	Images             []string `json:"images"`
	Featured           *bool    `json:"featured"`
}

type UpdateProjectRequest struct {
	Name               *string   `json:"name,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Location           *string   `json:"location,omitempty"`
	Status             *string   `json:"status,omitempty"`
	Progress           *int      `json:"progress,omitempty"`
	AvailableUnits     *int      `json:"availableUnits,omitempty"`
	TotalUnits         *int      `json:"totalUnits,omitempty"`
	ExpectedCompletion *string   `json:"expectedCompletion,omitempty"`
	Features           *[]string `json:"features,omitempty"`
	Images             *[]string `json:"images,omitempty"`
	Featured           *bool     `json:"featured,omitempty"`
}

func (r *UpdateProjectRequest) validate() []httperr.FieldError {
	var errs []httperr.FieldError

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, httperr.FieldError{Path: "name", Message: "name must not be empty"})
	}
	if r.Location != nil && strings.TrimSpace(*r.Location) == "" {
		errs = append(errs, httperr.FieldError{Path: "location", Message: "location must not be empty"})
	}
	if r.Status != nil && !oneOf(*r.Status, "planning", "construction", "completed") {
		errs = append(errs, httperr.FieldError{Path: "status", Message: "must be one of: planning, construction, completed"})
	}

	return errs
}

// --------- Handlers ---------

func (h *ProjectHandler) List(c *gin.Context) {
	var projects []models.Project
	if err := h.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		log.Printf("project list failed: %v", err)
		httperr.Internal(c, "failed_to_list_projects", "Failed to fetch projects.")
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	var project models.Project
	if err := h.db.Where("id = ?", c.Param("id")).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "project_not_found", "Project not found.")
			return
		}
		log.Printf("project get failed: %v", err)
		httperr.Internal(c, "failed_to_get_project", "Failed to fetch project.")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	// Progress is stored as submitted; out-of-range values are a pending
	// product decision, not silently clamped here.
	project := models.Project{
		Name:               req.Name,
		Description:        req.Description,
		Location:           req.Location,
		Status:             models.ProjectStatus(req.Status),
		Progress:           req.Progress,
		AvailableUnits:     req.AvailableUnits,
		TotalUnits:         req.TotalUnits,
		ExpectedCompletion: req.ExpectedCompletion,
		Features:           req.Features,
		Images:             req.Images,
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}

	if err := h.db.Create(&project).Error; err != nil {
		log.Printf("project create failed: %v", err)
		httperr.Internal(c, "failed_to_create_project", "Failed to create project.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "project_created",
		Entity:   "project",
		EntityID: &project.ID,
	})

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := h.db.Where("id = ?", id).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "project_not_found", "Project not found.")
			return
		}
		log.Printf("project load failed: %v", err)
		httperr.Internal(c, "failed_to_get_project", "Failed to fetch project.")
		return
	}

	var req UpdateProjectRequest
	if err := bindPatch(c, &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body could not be parsed.")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	if req.AvailableUnits != nil {
		project.AvailableUnits = req.AvailableUnits
	}
	if req.TotalUnits != nil {
		project.TotalUnits = req.TotalUnits
	}
	if req.ExpectedCompletion != nil {
		project.ExpectedCompletion = *req.ExpectedCompletion
	}
	if req.Features != nil {
		project.Features = *req.Features
	}
	if req.Images != nil {
		project.Images = *req.Images
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}

	if err := h.db.Save(&project).Error; err != nil {
		log.Printf("project update failed: %v", err)
		httperr.Internal(c, "failed_to_update_project", "Failed to update project.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "project_updated",
		Entity:   "project",
		EntityID: &project.ID,
	})

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Project{})
	if res.Error != nil {
		log.Printf("project delete failed: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_project", "Failed to delete project.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "project_not_found", "Project not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "project_deleted",
		Entity:   "project",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
