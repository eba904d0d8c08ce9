package handlers

import (
	"errors"
	"net/http"

	catalogRepo "homely/database/repository/catalog"
	"homely/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CatalogHandler serves service-catalog CRUD for the admin dashboard.
type CatalogHandler struct {
	Repo   catalogRepo.CatalogRepository
	Logger *zap.Logger
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Repo: repo, Logger: logger}
}

// ListServices handles GET /api/services. Pass ?category= to filter; only
// active services are returned unless ?all=true.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	if category := c.Query("category"); category != "" {
		services, err := h.Repo.GetByCategory(ctx, models.ServiceCategory(category))
		if err != nil {
			h.Logger.Error("ListServices: category query failed", zap.String("category", category), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, services)
		return
	}

	services, err := h.Repo.GetAll(ctx, c.Query("all") != "true")
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		h.Logger.Error("GetService: lookup failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateService handles POST /api/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), svc)
	if err != nil {
		h.Logger.Error("CreateService: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateService handles PUT /api/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		h.Logger.Error("UpdateService: update failed", zap.String("id", svc.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": svc.ID})
}

// DeleteService handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		h.Logger.Error("DeleteService: delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	c.Status(http.StatusNoContent)
}
