package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/audit"
	domain "github.com/selamhomes/estate-api/internal/domain/leads"
	"github.com/selamhomes/estate-api/internal/httperr"
	"github.com/selamhomes/estate-api/internal/httpresp"
	"github.com/selamhomes/estate-api/internal/models"
	ucLeads "github.com/selamhomes/estate-api/internal/usecase/leads"
)

type LeadHandler struct {
	db     *gorm.DB
	create *ucLeads.CreateLead
	audit  *audit.Dispatcher
}

func NewLeadHandler(db *gorm.DB, create *ucLeads.CreateLead, auditDispatcher *audit.Dispatcher) *LeadHandler {
	return &LeadHandler{db: db, create: create, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateLeadRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PropertyInterest string `json:"propertyInterest"`
	Message          string `json:"message"`
	Source           string `json:"source"`
	PropertyID       string `json:"propertyId"`
}

type UpdateLeadRequest struct {
	Status     *string `json:"status,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Message    *string `json:"message,omitempty"`
}

// --------- Handlers ---------

// Create is the public intake endpoint. Validation happens in the use case
// so the per-field error list is produced in a single pass.
func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body could not be parsed.")
		return
	}

	lead, err := h.create.Execute(c.Request.Context(), domain.Intake{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		PropertyInterest: req.PropertyInterest,
		Message:          req.Message,
		Source:           req.Source,
		PropertyID:       req.PropertyID,
	})
	if err != nil {
		var verr *ucLeads.ValidationError
		if errors.As(err, &verr) {
			httperr.Validation(c, verr.Fields)
			return
		}
		log.Printf("lead create failed: %v", err)
		httperr.Internal(c, "failed_to_create_lead", "Failed to submit your inquiry.")
		return
	}

	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Lead{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var leadList []models.Lead
	if err := q.Order("created_at DESC").Find(&leadList).Error; err != nil {
		log.Printf("lead list failed: %v", err)
		httperr.Internal(c, "failed_to_list_leads", "Failed to fetch leads.")
		return
	}

	httpresp.List(c, leadList)
}

func (h *LeadHandler) Get(c *gin.Context) {
	var lead models.Lead
	if err := h.db.Where("id = ?", c.Param("id")).First(&lead).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "lead_not_found", "Lead not found.")
			return
		}
		log.Printf("lead get failed: %v", err)
		httperr.Internal(c, "failed_to_get_lead", "Failed to fetch lead.")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// Update covers the only admin mutations leads receive: status transitions
// and assignment.
func (h *LeadHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var lead models.Lead
	if err := h.db.Where("id = ?", id).First(&lead).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "lead_not_found", "Lead not found.")
			return
		}
		log.Printf("lead load failed: %v", err)
		httperr.Internal(c, "failed_to_get_lead", "Failed to fetch lead.")
		return
	}

	var req UpdateLeadRequest
	if err := bindPatch(c, &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body could not be parsed.")
		return
	}

	if req.Status != nil && !oneOf(*req.Status, "new", "contacted", "qualified", "closed") {
		httperr.Validation(c, []httperr.FieldError{
			{Path: "status", Message: "must be one of: new, contacted, qualified, closed"},
		})
		return
	}

	if req.Status != nil {
		lead.Status = models.LeadStatus(*req.Status)
	}
	if req.AssignedTo != nil {
		lead.AssignedTo = *req.AssignedTo
	}
	if req.Message != nil {
		lead.Message = *req.Message
	}

	if err := h.db.Save(&lead).Error; err != nil {
		log.Printf("lead update failed: %v", err)
		httperr.Internal(c, "failed_to_update_lead", "Failed to update lead.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "lead_updated",
		Entity:   "lead",
		EntityID: &lead.ID,
	})

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Lead{})
	if res.Error != nil {
		log.Printf("lead delete failed: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_lead", "Failed to delete lead.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "lead_not_found", "Lead not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "lead_deleted",
		Entity:   "lead",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
