package handlers

import (
	"net/http"

	"estatevoice-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles HTTP requests for property listings
type PropertyHandler struct {
	propertyService service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// CreateProperty handles POST /properties
// @Summary Create a new property
// @Tags properties
// @Accept json
// @Produce json
// @Param property body service.CreatePropertyRequest true "Property data"
// @Success 201 {object} service.PropertyResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "MLS number already exists"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var req service.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyService.CreateProperty(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// GetProperty handles GET /properties/:id
// @Summary Get property by ID
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} service.PropertyResponse
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.GetPropertyByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// ListProperties handles GET /properties
// @Summary List properties
// @Tags properties
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.PropertyListResponse
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	properties, err := h.propertyService.GetProperties(tenantID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// SearchProperties handles GET /properties/search
// @Summary Search properties
// @Description Filter properties by city, zip code, price range, bedrooms and status
// @Tags properties
// @Accept json
// @Produce json
// @Param city query string false "City"
// @Param zip_code query string false "Zip code"
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param status query string false "Listing status" Enums(active, pending, sold, withdrawn)
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.PropertyListResponse
// @Failure 422 {object} ErrorResponse "Invalid price range"
// @Security BearerAuth
// @Router /properties/search [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var req service.SearchPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, offset := pagination(c)

	properties, err := h.propertyService.SearchProperties(tenantID, &req, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// UpdateProperty handles PATCH /properties/:id
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param property body service.UpdatePropertyRequest true "Property data"
// @Success 200 {object} service.PropertyResponse
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyService.UpdateProperty(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// DeleteProperty handles DELETE /properties/:id
// @Summary Delete a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 204 "Property deleted"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.propertyService.DeleteProperty(tenantID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SyncProperties handles POST /properties/sync
// @Summary Trigger an MLS sync
// @Description Enqueue a background pull of active listings for an area
// @Tags properties
// @Accept json
// @Produce json
// @Param request body syncRequest true "Area to sync"
// @Success 202 {object} map[string]string "Sync enqueued"
// @Failure 400 {object} ErrorResponse "Missing area"
// @Security BearerAuth
// @Router /properties/sync [post]
func (h *PropertyHandler) SyncProperties(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.propertyService.RequestSync(tenantID, req.Area); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Sync enqueued", "area": req.Area})
}

type syncRequest struct {
	Area string `json:"area" binding:"required"`
}
