package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/audit"
	"github.com/selamhomes/estate-api/internal/cache"
	domain "github.com/selamhomes/estate-api/internal/domain/catalog"
	"github.com/selamhomes/estate-api/internal/httperr"
	"github.com/selamhomes/estate-api/internal/models"
	ucCatalog "github.com/selamhomes/estate-api/internal/usecase/catalog"
)

type PropertyHandler struct {
	db     *gorm.DB
	search *ucCatalog.SearchProperties
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  *cache.Cache
}

func NewPropertyHandler(
	db *gorm.DB,
	search *ucCatalog.SearchProperties,
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	c *cache.Cache,
) *PropertyHandler {
	return &PropertyHandler{
		db:     db,
		search: search,
		repo:   repo,
		audit:  auditDispatcher,
		cache:  c,
	}
}

// --------- Requests ---------

type CreatePropertyRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	PropertyType string   `json:"propertyType" binding:"required,oneof=apartment villa office commercial land"`
	ListingType  string   `json:"listingType" binding:"required,oneof=sale rent"`
	Status       string   `json:"status" binding:"omitempty,oneof=available sold rented pending"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	PricePerSqm  *float64 `json:"pricePerSqm"`
	Currency     string   `json:"currency"`
	Location     string   `json:"location" binding:"required"`
	Address      string   `json:"address"`
	Bedrooms     *int     `json:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms    *int     `json:"bathrooms" binding:"omitempty,gte=0"`
	Area         *float64 `json:"area" binding:"omitempty,gte=0"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Featured     *bool    `json:"featured"`
	AgentID      string   `json:"agentId"`
}

type UpdatePropertyRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	PropertyType *string   `json:"propertyType,omitempty"`
	ListingType  *string   `json:"listingType,omitempty"`
	Status       *string   `json:"status,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	PricePerSqm  *float64  `json:"pricePerSqm,omitempty"`
	Currency     *string   `json:"currency,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Bedrooms     *int      `json:"bedrooms,omitempty"`
	Bathrooms    *int      `json:"bathrooms,omitempty"`
	Area         *float64  `json:"area,omitempty"`
	Features     *[]string `json:"features,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
	AgentID      *string   `json:"agentId,omitempty"`
}

func (r *UpdatePropertyRequest) validate() []httperr.FieldError {
	var errs []httperr.FieldError

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs = append(errs, httperr.FieldError{Path: "title", Message: "title must not be empty"})
	}
	if r.Location != nil && strings.TrimSpace(*r.Location) == "" {
		errs = append(errs, httperr.FieldError{Path: "location", Message: "location must not be empty"})
	}
	if r.PropertyType != nil && !oneOf(*r.PropertyType, "apartment", "villa", "office", "commercial", "land") {
		errs = append(errs, httperr.FieldError{Path: "propertyType", Message: "must be one of: apartment, villa, office, commercial, land"})
	}
	if r.ListingType != nil && !oneOf(*r.ListingType, "sale", "rent") {
		errs = append(errs, httperr.FieldError{Path: "listingType", Message: "must be one of: sale, rent"})
	}
	if r.Status != nil && !oneOf(*r.Status, "available", "sold", "rented", "pending") {
		errs = append(errs, httperr.FieldError{Path: "status", Message: "must be one of: available, sold, rented, pending"})
	}
	if r.Price != nil && *r.Price < 0 {
		errs = append(errs, httperr.FieldError{Path: "price", Message: "must be greater than or equal to 0"})
	}

	return errs
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// --------- Handlers ---------

// List is the public property search. Every query parameter is optional and
// the supplied ones combine with AND.
func (h *PropertyHandler) List(c *gin.Context) {
	filter := domain.PropertyFilter{
		Type:        strings.TrimSpace(c.Query("type")),
		ListingType: strings.TrimSpace(c.Query("listingType")),
		Status:      strings.TrimSpace(c.Query("status")),
		Location:    strings.TrimSpace(c.Query("location")),
		Search:      strings.TrimSpace(c.Query("search")),
		Featured:    c.Query("featured") == "true",
		MinPrice:    domain.ParsePrice(c.Query("minPrice")),
		MaxPrice:    domain.ParsePrice(c.Query("maxPrice")),
		Limit:       domain.ParseCount(c.Query("limit")),
		Offset:      domain.ParseCount(c.Query("offset")),
	}

	if filter.OnlyFeatured() {
		var cached []models.Property
		if h.cache.GetJSON(c.Request.Context(), cache.KeyFeaturedProperties, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	properties, err := h.search.Execute(c.Request.Context(), filter)
	if err != nil {
		log.Printf("property search failed: %v", err)
		httperr.Internal(c, "failed_to_list_properties", "Failed to fetch properties.")
		return
	}

	if filter.OnlyFeatured() {
		h.cache.SetJSON(c.Request.Context(), cache.KeyFeaturedProperties, properties)
	}

	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.repo.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "property_not_found", "Property not found.")
			return
		}
		log.Printf("property get failed: %v", err)
		httperr.Internal(c, "failed_to_get_property", "Failed to fetch property.")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	property := models.Property{
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		ListingType:  req.ListingType,
		Status:       models.PropertyStatus(req.Status),
		Price:        *req.Price,
		PricePerSqm:  req.PricePerSqm,
		Currency:     req.Currency,
		Location:     req.Location,
		Address:      req.Address,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		Features:     req.Features,
		Images:       req.Images,
		AgentID:      req.AgentID,
	}
	if req.Featured != nil {
		property.Featured = *req.Featured
	}

	if err := h.db.Create(&property).Error; err != nil {
		log.Printf("property create failed: %v", err)
		httperr.Internal(c, "failed_to_create_property", "Failed to create property.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "property_created",
		Entity:   "property",
		EntityID: &property.ID,
	})
	h.cache.Invalidate(c.Request.Context(), cache.KeyFeaturedProperties)

	c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var property models.Property
	if err := h.db.Where("id = ?", id).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "property_not_found", "Property not found.")
			return
		}
		log.Printf("property load failed: %v", err)
		httperr.Internal(c, "failed_to_get_property", "Failed to fetch property.")
		return
	}

	var req UpdatePropertyRequest
	if err := bindPatch(c, &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body could not be parsed.")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.PropertyType != nil {
		property.PropertyType = *req.PropertyType
	}
	if req.ListingType != nil {
		property.ListingType = *req.ListingType
	}
	if req.Status != nil {
		property.Status = models.PropertyStatus(*req.Status)
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.PricePerSqm != nil {
		property.PricePerSqm = req.PricePerSqm
	}
	if req.Currency != nil {
		property.Currency = *req.Currency
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Bedrooms != nil {
		property.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = req.Bathrooms
	}
	if req.Area != nil {
		property.Area = req.Area
	}
	if req.Features != nil {
		property.Features = *req.Features
	}
	if req.Images != nil {
		property.Images = *req.Images
	}
	if req.Featured != nil {
		property.Featured = *req.Featured
	}
	if req.AgentID != nil {
		property.AgentID = *req.AgentID
	}

	if err := h.db.Save(&property).Error; err != nil {
		log.Printf("property update failed: %v", err)
		httperr.Internal(c, "failed_to_update_property", "Failed to update property.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "property_updated",
		Entity:   "property",
		EntityID: &property.ID,
	})
	h.cache.Invalidate(c.Request.Context(), cache.KeyFeaturedProperties)

	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Property{})
	if res.Error != nil {
		log.Printf("property delete failed: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_property", "Failed to delete property.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "property_not_found", "Property not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  actorID(c),
		Action:   "property_deleted",
		Entity:   "property",
		EntityID: &id,
	})
	h.cache.Invalidate(c.Request.Context(), cache.KeyFeaturedProperties)

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
