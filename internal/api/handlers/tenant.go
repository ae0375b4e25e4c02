package handlers

import (
	"net/http"

	"estatevoice-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	tenantService service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// GetTenant retrieves the authenticated tenant
// @Summary Get current tenant
// @Description Get the tenant the authenticated user belongs to
// @Tags tenants
// @Accept json
// @Produce json
// @Success 200 {object} service.TenantResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenants/me [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetTenantByID(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant updates the authenticated tenant
// @Summary Update current tenant
// @Description Update the tenant's name, plan or metadata (owner/admin only)
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.UpdateTenantRequest true "Tenant data"
// @Success 200 {object} service.TenantResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /tenants/me [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.UpdateTenant(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}
