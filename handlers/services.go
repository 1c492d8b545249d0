package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vikash1kr1209/bireenamedico/models"
	"github.com/vikash1kr1209/bireenamedico/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler encapsulates the admin service catalog endpoints.
type ServiceHandler struct {
	Catalog catalog.ServiceCatalog
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(cat catalog.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{Catalog: cat}
}

// serviceRequest is the payload for creating or updating a service.
type serviceRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Timeline    string `json:"timeline"`
	Status      string `json:"status"`
	Features    string `json:"features"`
}

func (r serviceRequest) toModel() models.Service {
	status := r.Status
	if status == "" {
		status = models.ServiceDraft
	}
	return models.Service{
		Name:        r.Name,
		Category:    r.Category,
		Icon:        r.Icon,
		Description: r.Description,
		Price:       r.Price,
		Timeline:    r.Timeline,
		Status:      status,
		Features:    r.Features,
	}
}

// ListServicesHandler handles GET /api/admin/services.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.List())
}

// PublicServicesHandler handles GET /api/services with an optional category filter.
func (h *ServiceHandler) PublicServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.ListByCategory(c.Query("category")))
}

// CreateServiceHandler handles POST /api/admin/services.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	created, err := h.Catalog.Create(req.toModel())
	if err != nil {
		getLogger(c).Error("CreateServiceHandler: failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler handles PUT /api/admin/services/:id.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	updated, err := h.Catalog.Update(id, req.toModel())
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		getLogger(c).Error("UpdateServiceHandler: failed to update service",
			zap.Int64("serviceId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler handles DELETE /api/admin/services/:id. Deleting an
// unknown ID succeeds; user confirmation is the client's concern.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	if err := h.Catalog.Delete(id); err != nil {
		getLogger(c).Error("DeleteServiceHandler: failed to delete service",
			zap.Int64("serviceId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
